package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type CounterRepository struct {
	mock.Mock
}

func (_m *CounterRepository) Adjust(ctx context.Context, entity domain.CounterEntity, id int64, field domain.CounterField, delta int64) error {
	ret := _m.Called(ctx, entity, id, field, delta)
	return ret.Error(0)
}

func (_m *CounterRepository) RecomputeUserFollowCounts(ctx context.Context, userIDs []int64) error {
	ret := _m.Called(ctx, userIDs)
	return ret.Error(0)
}

func (_m *CounterRepository) RecomputeArticleEngagement(ctx context.Context, articleIDs []int64) error {
	ret := _m.Called(ctx, articleIDs)
	return ret.Error(0)
}

func (_m *CounterRepository) RecomputeCommentLikes(ctx context.Context, commentIDs []int64) error {
	ret := _m.Called(ctx, commentIDs)
	return ret.Error(0)
}
