package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type ArticleRepository struct {
	mock.Mock
}

func (_m *ArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Article), ret.Error(1)
}

func (_m *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Article
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Article)
	}
	return r0, ret.Error(1)
}

func (_m *ArticleRepository) Fetch(ctx context.Context, page, size int64) (domain.Page[domain.Article], error) {
	ret := _m.Called(ctx, page, size)
	return ret.Get(0).(domain.Page[domain.Article]), ret.Error(1)
}

func (_m *ArticleRepository) FetchByAuthor(ctx context.Context, authorID, page, size int64) (domain.Page[domain.Article], error) {
	ret := _m.Called(ctx, authorID, page, size)
	return ret.Get(0).(domain.Page[domain.Article]), ret.Error(1)
}

func (_m *ArticleRepository) Store(ctx context.Context, a *domain.Article) error {
	ret := _m.Called(ctx, a)
	return ret.Error(0)
}

func (_m *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	ret := _m.Called(ctx, a)
	return ret.Error(0)
}

func (_m *ArticleRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *ArticleRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	ret := _m.Called(ctx, id, deltaViews)
	return ret.Error(0)
}

func (_m *ArticleRepository) IDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	ret := _m.Called(ctx, authorID)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}

func (_m *ArticleRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	ret := _m.Called(ctx, authorID)
	return ret.Error(0)
}

func (_m *ArticleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)
	var r0 []int64
	if v := ret.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, ret.Error(1)
}
