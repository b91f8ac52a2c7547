package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type FollowRepository struct {
	mock.Mock
}

func (_m *FollowRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, authorID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FollowRepository) Store(ctx context.Context, f *domain.Follow) error {
	ret := _m.Called(ctx, f)
	return ret.Error(0)
}

func (_m *FollowRepository) Delete(ctx context.Context, followerID, authorID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, authorID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FollowRepository) FollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	ret := _m.Called(ctx, followerID)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}

func (_m *FollowRepository) FetchFollowers(ctx context.Context, authorID, page, size int64) (domain.Page[domain.Follow], error) {
	ret := _m.Called(ctx, authorID, page, size)
	return ret.Get(0).(domain.Page[domain.Follow]), ret.Error(1)
}

func (_m *FollowRepository) FetchFollowing(ctx context.Context, followerID, page, size int64) (domain.Page[domain.Follow], error) {
	ret := _m.Called(ctx, followerID, page, size)
	return ret.Get(0).(domain.Page[domain.Follow]), ret.Error(1)
}

func (_m *FollowRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Follow, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Follow
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Follow)
	}
	return r0, ret.Error(1)
}

func (_m *FollowRepository) DeleteByUser(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}
