package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := _m.Called(ctx, username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := _m.Called(ctx, u)
	return ret.Error(0)
}

func (_m *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ret := _m.Called(ctx, u)
	return ret.Error(0)
}

func (_m *UserRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *UserRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}
