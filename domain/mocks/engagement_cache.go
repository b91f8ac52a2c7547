package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type EngagementCache struct {
	mock.Mock
}

func (_m *EngagementCache) IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, authorID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *EngagementCache) AddFollowing(ctx context.Context, followerID, authorID int64) error {
	ret := _m.Called(ctx, followerID, authorID)
	return ret.Error(0)
}

func (_m *EngagementCache) RemoveFollowing(ctx context.Context, followerID, authorID int64) error {
	ret := _m.Called(ctx, followerID, authorID)
	return ret.Error(0)
}

func (_m *EngagementCache) SetFollowing(ctx context.Context, followerID int64, authorIDs []int64) error {
	ret := _m.Called(ctx, followerID, authorIDs)
	return ret.Error(0)
}

func (_m *EngagementCache) IsLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	ret := _m.Called(ctx, userID, targetID, target)
	return ret.Bool(0), ret.Error(1)
}

func (_m *EngagementCache) AddLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) error {
	ret := _m.Called(ctx, userID, targetID, target)
	return ret.Error(0)
}

func (_m *EngagementCache) RemoveLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) error {
	ret := _m.Called(ctx, userID, targetID, target)
	return ret.Error(0)
}

func (_m *EngagementCache) SetLiked(ctx context.Context, userID int64, target domain.LikeTarget, targetIDs []int64, complete bool) error {
	ret := _m.Called(ctx, userID, target, targetIDs, complete)
	return ret.Error(0)
}

func (_m *EngagementCache) InvalidateUser(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}
