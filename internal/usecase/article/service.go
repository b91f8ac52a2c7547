package article

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/userfill"
)

type Service struct {
	articleRepo  domain.ArticleRepository
	userRepo     domain.UserRepository
	commentRepo  domain.CommentRepository
	likeRepo     domain.LikeRepository
	playlistRepo domain.PlaylistRepository
	bloomRepo    domain.BloomRepository
	assets       domain.AssetReleaser
	sanitizer    *bluemonday.Policy
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(
	a domain.ArticleRepository,
	u domain.UserRepository,
	c domain.CommentRepository,
	l domain.LikeRepository,
	p domain.PlaylistRepository,
	b domain.BloomRepository,
	assets domain.AssetReleaser,
) *Service {
	return &Service{
		articleRepo:  a,
		userRepo:     u,
		commentRepo:  c,
		likeRepo:     l,
		playlistRepo: p,
		bloomRepo:    b,
		assets:       assets,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

// InitBloomFilter seeds the bloom filter with every existing article ID.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	const batchSize = 1000
	var cursor int64
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
		if len(ids) < batchSize {
			return nil
		}
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	res, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	author, err := s.userRepo.GetByID(ctx, res.Author.ID)
	if err == nil {
		res.Author = author
	}

	if err := s.articleRepo.AddViews(ctx, id, 1); err != nil {
		logrus.Warnf("failed to add view to article %d: %v", id, err)
	} else {
		res.Views++
	}
	return res, nil
}

func (s *Service) Fetch(ctx context.Context, page, size int64) (domain.Page[domain.Article], error) {
	res, err := s.articleRepo.Fetch(ctx, page, size)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	res.Items, err = s.fillAuthorDetails(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	return res, nil
}

func (s *Service) FetchByAuthor(ctx context.Context, authorID, page, size int64) (domain.Page[domain.Article], error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	res, err := s.articleRepo.FetchByAuthor(ctx, authorID, page, size)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	for i := range res.Items {
		res.Items[i].Author = author
	}
	return res, nil
}

func (s *Service) Store(ctx context.Context, a *domain.Article) error {
	a.Content = s.sanitizer.Sanitize(a.Content)
	if a.Title == "" || a.Content == "" {
		return domain.ErrBadParamInput
	}

	author, err := s.userRepo.GetByID(ctx, a.Author.ID)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Store(ctx, a); err != nil {
		return err
	}
	a.Author = author

	if err := s.bloomRepo.Add(ctx, a.ID); err != nil {
		logrus.Warnf("failed to add article %d to bloom filter: %v", a.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, a *domain.Article) error {
	existing, err := s.articleRepo.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing.Author.ID != a.Author.ID {
		return domain.ErrForbidden
	}

	a.Content = s.sanitizer.Sanitize(a.Content)
	a.UpdatedAt = time.Now()
	return s.articleRepo.Update(ctx, a)
}

// Delete removes the article with everything hanging off it: its comments,
// the likes targeting the article or those comments, and its playlist
// memberships. Each step is idempotent so a half-finished delete can be
// retried.
func (s *Service) Delete(ctx context.Context, id, authorID int64) error {
	existing, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Author.ID != authorID {
		return domain.ErrForbidden
	}

	commentIDs, err := s.commentRepo.IDsByArticles(ctx, []int64{id})
	if err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByTargets(ctx, domain.LikeTargetComment, commentIDs); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByTargets(ctx, domain.LikeTargetArticle, []int64{id}); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByArticles(ctx, []int64{id}); err != nil {
		return err
	}
	if err := s.playlistRepo.RemoveArticleEverywhere(ctx, id); err != nil {
		return err
	}

	if existing.Thumbnail != "" {
		go func(publicID string) {
			if err := s.assets.Release(context.Background(), publicID); err != nil {
				logrus.Warnf("failed to release thumbnail %s: %v", publicID, err)
			}
		}(existing.Thumbnail)
	}

	return s.articleRepo.Delete(ctx, id)
}

func (s *Service) fillAuthorDetails(ctx context.Context, data []domain.Article) ([]domain.Article, error) {
	ids := make([]int64, 0, len(data))
	for i := range data {
		ids = append(ids, data[i].Author.ID)
	}
	authors, err := userfill.Details(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}
	for i := range data {
		if u, ok := authors[data[i].Author.ID]; ok {
			data[i].Author = u
		}
	}
	return data, nil
}
