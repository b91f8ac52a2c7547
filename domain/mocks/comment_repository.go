package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Comment
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Comment)
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CommentRepository) UpdateContent(ctx context.Context, id, ownerID int64, content string) error {
	ret := _m.Called(ctx, id, ownerID, content)
	return ret.Error(0)
}

func (_m *CommentRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	ret := _m.Called(ctx, id, ownerID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CommentRepository) FetchTopLevel(ctx context.Context, articleID, page, size int64) (domain.Page[domain.Comment], error) {
	ret := _m.Called(ctx, articleID, page, size)
	return ret.Get(0).(domain.Page[domain.Comment]), ret.Error(1)
}

func (_m *CommentRepository) FetchReplies(ctx context.Context, parentID, page, size int64) (domain.Page[domain.Comment], error) {
	ret := _m.Called(ctx, parentID, page, size)
	return ret.Get(0).(domain.Page[domain.Comment]), ret.Error(1)
}

func (_m *CommentRepository) CountReplies(ctx context.Context, parentIDs []int64) (map[int64]int64, error) {
	ret := _m.Called(ctx, parentIDs)
	var r0 map[int64]int64
	if v := ret.Get(0); v != nil {
		r0 = v.(map[int64]int64)
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) IDsByArticles(ctx context.Context, articleIDs []int64) ([]int64, error) {
	ret := _m.Called(ctx, articleIDs)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	ret := _m.Called(ctx, ownerID)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) CountOwnedPerArticle(ctx context.Context, ownerID int64) (map[int64]int64, error) {
	ret := _m.Called(ctx, ownerID)
	var r0 map[int64]int64
	if v := ret.Get(0); v != nil {
		r0 = v.(map[int64]int64)
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ret := _m.Called(ctx, ownerID)
	return ret.Error(0)
}

func (_m *CommentRepository) DeleteByArticles(ctx context.Context, articleIDs []int64) error {
	ret := _m.Called(ctx, articleIDs)
	return ret.Error(0)
}

func (_m *CommentRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}
