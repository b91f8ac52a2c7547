package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type PostRepository struct {
	mock.Mock
}

func (_m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	ret := _m.Called(ctx, p)
	return ret.Error(0)
}

func (_m *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	ret := _m.Called(ctx, p)
	return ret.Error(0)
}

func (_m *PostRepository) Delete(ctx context.Context, id, ownerID int64) error {
	ret := _m.Called(ctx, id, ownerID)
	return ret.Error(0)
}

func (_m *PostRepository) FetchByOwners(ctx context.Context, ownerIDs []int64, page, size int64) (domain.Page[domain.Post], error) {
	ret := _m.Called(ctx, ownerIDs, page, size)
	return ret.Get(0).(domain.Page[domain.Post]), ret.Error(1)
}

func (_m *PostRepository) FetchByOwner(ctx context.Context, ownerID, page, size int64) (domain.Page[domain.Post], error) {
	ret := _m.Called(ctx, ownerID, page, size)
	return ret.Get(0).(domain.Page[domain.Post]), ret.Error(1)
}

func (_m *PostRepository) FetchByHashtag(ctx context.Context, tag string, page, size int64) (domain.Page[domain.Post], error) {
	ret := _m.Called(ctx, tag, page, size)
	return ret.Get(0).(domain.Page[domain.Post]), ret.Error(1)
}

func (_m *PostRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ret := _m.Called(ctx, ownerID)
	return ret.Error(0)
}
