package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type PlaylistRepository struct {
	mock.Mock
}

func (_m *PlaylistRepository) GetByID(ctx context.Context, id int64) (domain.Playlist, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Playlist), ret.Error(1)
}

func (_m *PlaylistRepository) Store(ctx context.Context, p *domain.Playlist) error {
	ret := _m.Called(ctx, p)
	return ret.Error(0)
}

func (_m *PlaylistRepository) Delete(ctx context.Context, id, ownerID int64) error {
	ret := _m.Called(ctx, id, ownerID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) FetchByOwner(ctx context.Context, ownerID, page, size int64) (domain.Page[domain.Playlist], error) {
	ret := _m.Called(ctx, ownerID, page, size)
	return ret.Get(0).(domain.Page[domain.Playlist]), ret.Error(1)
}

func (_m *PlaylistRepository) AddArticle(ctx context.Context, playlistID, articleID int64) error {
	ret := _m.Called(ctx, playlistID, articleID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) RemoveArticle(ctx context.Context, playlistID, articleID int64) error {
	ret := _m.Called(ctx, playlistID, articleID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) RemoveArticleEverywhere(ctx context.Context, articleID int64) error {
	ret := _m.Called(ctx, articleID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ret := _m.Called(ctx, ownerID)
	return ret.Error(0)
}
