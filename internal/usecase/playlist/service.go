package playlist

import (
	"context"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type service struct {
	playlistRepo domain.PlaylistRepository
	articleRepo  domain.ArticleRepository
	bloomRepo    domain.BloomRepository
}

var _ domain.PlaylistUsecase = (*service)(nil)

func NewService(p domain.PlaylistRepository, a domain.ArticleRepository, b domain.BloomRepository) *service {
	return &service{
		playlistRepo: p,
		articleRepo:  a,
		bloomRepo:    b,
	}
}

func (s *service) Create(ctx context.Context, p *domain.Playlist) error {
	if p.Name == "" {
		return domain.ErrBadParamInput
	}
	return s.playlistRepo.Store(ctx, p)
}

func (s *service) Get(ctx context.Context, id int64) (domain.Playlist, error) {
	p, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Playlist{}, err
	}

	articles, err := s.articleRepo.GetByIDs(ctx, p.ArticleIDs)
	if err != nil {
		return domain.Playlist{}, err
	}

	// keep membership order, dropping articles deleted since they were added
	mp := make(map[int64]domain.Article, len(articles))
	for i := range articles {
		mp[articles[i].ID] = articles[i]
	}
	p.Articles = make([]domain.Article, 0, len(p.ArticleIDs))
	for _, articleID := range p.ArticleIDs {
		if a, ok := mp[articleID]; ok {
			p.Articles = append(p.Articles, a)
		}
	}
	return p, nil
}

func (s *service) FetchByOwner(ctx context.Context, ownerID, page, size int64) (domain.Page[domain.Playlist], error) {
	return s.playlistRepo.FetchByOwner(ctx, ownerID, page, size)
}

func (s *service) AddArticle(ctx context.Context, playlistID, articleID, ownerID int64) error {
	p, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err == nil && !exists {
		return domain.ErrNotFound
	}
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return err
	}
	return s.playlistRepo.AddArticle(ctx, playlistID, articleID)
}

func (s *service) RemoveArticle(ctx context.Context, playlistID, articleID, ownerID int64) error {
	p, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return s.playlistRepo.RemoveArticle(ctx, playlistID, articleID)
}

func (s *service) Delete(ctx context.Context, playlistID, ownerID int64) error {
	return s.playlistRepo.Delete(ctx, playlistID, ownerID)
}
