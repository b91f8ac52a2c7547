package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (_m *LikeRepository) Exists(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	ret := _m.Called(ctx, userID, targetID, target)
	return ret.Bool(0), ret.Error(1)
}

func (_m *LikeRepository) Store(ctx context.Context, l *domain.Like) error {
	ret := _m.Called(ctx, l)
	return ret.Error(0)
}

func (_m *LikeRepository) Delete(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	ret := _m.Called(ctx, userID, targetID, target)
	return ret.Bool(0), ret.Error(1)
}

func (_m *LikeRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Like
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Like)
	}
	return r0, ret.Error(1)
}

func (_m *LikeRepository) FetchTargetIDs(ctx context.Context, userID int64, target domain.LikeTarget, page, size int64) (domain.Page[int64], error) {
	ret := _m.Called(ctx, userID, target, page, size)
	return ret.Get(0).(domain.Page[int64]), ret.Error(1)
}

func (_m *LikeRepository) RecentTargetIDs(ctx context.Context, userID int64, target domain.LikeTarget, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, userID, target, limit)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}

func (_m *LikeRepository) DeleteByUser(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

func (_m *LikeRepository) DeleteByTargets(ctx context.Context, target domain.LikeTarget, targetIDs []int64) error {
	ret := _m.Called(ctx, target, targetIDs)
	return ret.Error(0)
}
