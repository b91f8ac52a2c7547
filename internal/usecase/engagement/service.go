package engagement

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/userfill"
)

// likedSetLimit bounds how many recent likes are loaded when rebuilding a
// user's cached liked set. Older likes fall back to the edge table.
const likedSetLimit = 300

type Service struct {
	followRepo  domain.FollowRepository
	likeRepo    domain.LikeRepository
	counterRepo domain.CounterRepository
	userRepo    domain.UserRepository
	articleRepo domain.ArticleRepository
	commentRepo domain.CommentRepository
	cache       domain.EngagementCache
	reconciler  domain.CounterReconciler

	// rebuilds collapses concurrent cache-set rebuilds for the same user
	rebuilds singleflight.Group
}

var _ domain.EngagementUsecase = (*Service)(nil)

// NewService will create a new engagement service object
func NewService(
	f domain.FollowRepository,
	l domain.LikeRepository,
	cnt domain.CounterRepository,
	u domain.UserRepository,
	a domain.ArticleRepository,
	c domain.CommentRepository,
	cache domain.EngagementCache,
	rec domain.CounterReconciler,
) *Service {
	return &Service{
		followRepo:  f,
		likeRepo:    l,
		counterRepo: cnt,
		userRepo:    u,
		articleRepo: a,
		commentRepo: c,
		cache:       cache,
		reconciler:  rec,
	}
}

// adjustCounter applies one counter delta. The edge row is already committed
// when this runs, so a failure here is drift, not a reason to undo the
// toggle: log it and ask the reconciler for a repair pass.
func (s *Service) adjustCounter(ctx context.Context, entity domain.CounterEntity, id int64, field domain.CounterField, delta int64) {
	if err := s.counterRepo.Adjust(ctx, entity, id, field, delta); err != nil {
		logrus.Warnf("failed to adjust %s.%s by %d for id %d: %v", entity, field, delta, id, err)
		s.reconciler.Trigger()
	}
}

func (s *Service) adjustFollowCounters(ctx context.Context, followerID, authorID, delta int64) {
	s.adjustCounter(ctx, domain.CounterEntityUser, followerID, domain.CounterFollowing, delta)
	s.adjustCounter(ctx, domain.CounterEntityUser, authorID, domain.CounterFollowers, delta)
}

func (s *Service) ToggleFollow(ctx context.Context, followerID, authorID int64) (bool, error) {
	if followerID == authorID {
		return false, domain.ErrInvalidOperation
	}
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return false, err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, authorID)
	if err != nil {
		return false, err
	}

	if exists {
		removed, err := s.followRepo.Delete(ctx, followerID, authorID)
		if err != nil {
			return false, err
		}
		// removed == false means a concurrent toggle already took the
		// edge out and settled the counters with it
		if removed {
			s.adjustFollowCounters(ctx, followerID, authorID, -1)
		}
		if err := s.cache.RemoveFollowing(ctx, followerID, authorID); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("failed to remove following from cache: %v", err)
		}
		return false, nil
	}

	err = s.followRepo.Store(ctx, &domain.Follow{FollowerID: followerID, AuthorID: authorID})
	if errors.Is(err, domain.ErrConflict) {
		// a concurrent toggle won the insert; the constraint already
		// holds exactly one edge, so report the stored state without
		// touching the counters again
		return s.followRepo.Exists(ctx, followerID, authorID)
	}
	if err != nil {
		return false, err
	}

	s.adjustFollowCounters(ctx, followerID, authorID, 1)
	if err := s.cache.AddFollowing(ctx, followerID, authorID); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to add following to cache: %v", err)
	}
	return true, nil
}

func (s *Service) CheckFollowStatus(ctx context.Context, followerID, authorID int64) (bool, error) {
	following, err := s.cache.IsFollowing(ctx, followerID, authorID)
	if err == nil {
		return following, nil
	}

	if errors.Is(err, domain.ErrCacheMiss) {
		// concurrent misses for the same follower rebuild the set once
		v, repoErr, _ := s.rebuilds.Do(fmt.Sprintf("following:%d", followerID), func() (interface{}, error) {
			ids, err := s.followRepo.FollowingIDs(ctx, followerID)
			if err != nil {
				return nil, err
			}
			go func() {
				if err := s.cache.SetFollowing(context.Background(), followerID, ids); err != nil {
					logrus.Warnf("failed to load following set into cache: %v", err)
				}
			}()
			return ids, nil
		})
		if repoErr != nil {
			logrus.Warnf("failed to resolve following ids for status check: %v", repoErr)
			return false, nil
		}
		return slices.Contains(v.([]int64), authorID), nil
	}

	logrus.Warnf("failed to check following in cache: %v", err)
	following, err = s.followRepo.Exists(ctx, followerID, authorID)
	if err != nil {
		logrus.Warnf("failed to check follow edge in repo: %v", err)
		return false, nil
	}
	return following, nil
}

func (s *Service) GetFollowers(ctx context.Context, authorID, page, size int64) (domain.Page[domain.User], error) {
	edges, err := s.followRepo.FetchFollowers(ctx, authorID, page, size)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	ids := make([]int64, len(edges.Items))
	for i := range edges.Items {
		ids[i] = edges.Items[i].FollowerID
	}
	users, err := s.usersInOrder(ctx, ids)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return domain.Page[domain.User]{Items: users, Total: edges.Total, Page: edges.Page, Pages: edges.Pages}, nil
}

func (s *Service) GetFollowing(ctx context.Context, followerID, page, size int64) (domain.Page[domain.User], error) {
	edges, err := s.followRepo.FetchFollowing(ctx, followerID, page, size)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	ids := make([]int64, len(edges.Items))
	for i := range edges.Items {
		ids[i] = edges.Items[i].AuthorID
	}
	users, err := s.usersInOrder(ctx, ids)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return domain.Page[domain.User]{Items: users, Total: edges.Total, Page: edges.Page, Pages: edges.Pages}, nil
}

// usersInOrder resolves accounts and returns them in the order of ids,
// skipping accounts that no longer exist.
func (s *Service) usersInOrder(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	mp := make(map[int64]domain.User, len(users))
	for i := range users {
		mp[users[i].ID] = users[i]
	}
	ordered := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := mp[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

func (s *Service) likeTargetExists(ctx context.Context, targetID int64, target domain.LikeTarget) error {
	switch target {
	case domain.LikeTargetArticle:
		_, err := s.articleRepo.GetByID(ctx, targetID)
		return err
	case domain.LikeTargetComment:
		_, err := s.commentRepo.GetByID(ctx, targetID)
		return err
	default:
		return domain.ErrBadParamInput
	}
}

func likeCounterOf(target domain.LikeTarget) domain.CounterEntity {
	if target == domain.LikeTargetComment {
		return domain.CounterEntityComment
	}
	return domain.CounterEntityArticle
}

func (s *Service) ToggleLike(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	if !target.Valid() {
		return false, domain.ErrBadParamInput
	}
	if err := s.likeTargetExists(ctx, targetID, target); err != nil {
		return false, err
	}

	exists, err := s.likeRepo.Exists(ctx, userID, targetID, target)
	if err != nil {
		return false, err
	}

	if exists {
		removed, err := s.likeRepo.Delete(ctx, userID, targetID, target)
		if err != nil {
			return false, err
		}
		if removed {
			s.adjustCounter(ctx, likeCounterOf(target), targetID, domain.CounterLikes, -1)
		}
		if err := s.cache.RemoveLiked(ctx, userID, targetID, target); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("failed to remove like from cache: %v", err)
		}
		return false, nil
	}

	err = s.likeRepo.Store(ctx, &domain.Like{UserID: userID, TargetID: targetID, Target: target})
	if errors.Is(err, domain.ErrConflict) {
		return s.likeRepo.Exists(ctx, userID, targetID, target)
	}
	if err != nil {
		return false, err
	}

	s.adjustCounter(ctx, likeCounterOf(target), targetID, domain.CounterLikes, 1)
	if err := s.cache.AddLiked(ctx, userID, targetID, target); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to add like to cache: %v", err)
	}
	return true, nil
}

func (s *Service) CheckLikeStatus(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	if !target.Valid() {
		return false, domain.ErrBadParamInput
	}

	liked, err := s.cache.IsLiked(ctx, userID, targetID, target)
	if err == nil {
		return liked, nil
	}

	switch {
	case errors.Is(err, domain.ErrCacheIncomplete):
		// the cached set is truncated and does not hold the target; only
		// the edge table can rule the like out
	case errors.Is(err, domain.ErrCacheMiss):
		v, repoErr, _ := s.rebuilds.Do(fmt.Sprintf("liked:%d:%s", userID, target), func() (interface{}, error) {
			ids, err := s.likeRepo.RecentTargetIDs(ctx, userID, target, likedSetLimit)
			if err != nil {
				return nil, err
			}
			complete := int64(len(ids)) < likedSetLimit
			go func() {
				if err := s.cache.SetLiked(context.Background(), userID, target, ids, complete); err != nil {
					logrus.Warnf("failed to load liked set into cache: %v", err)
				}
			}()
			return ids, nil
		})
		if repoErr != nil {
			logrus.Warnf("failed to resolve liked ids for status check: %v", repoErr)
			return false, nil
		}
		ids := v.([]int64)
		if slices.Contains(ids, targetID) {
			return true, nil
		}
		// a complete rebuild proves absence; a truncated one cannot, an
		// older like may only live in the edge table
		if int64(len(ids)) < likedSetLimit {
			return false, nil
		}
	default:
		logrus.Warnf("failed to check like in cache: %v", err)
	}

	liked, err = s.likeRepo.Exists(ctx, userID, targetID, target)
	if err != nil {
		logrus.Warnf("failed to check like edge in repo: %v", err)
		return false, nil
	}
	return liked, nil
}

func (s *Service) GetLikedArticles(ctx context.Context, userID, page, size int64) (domain.Page[domain.Article], error) {
	idPage, err := s.likeRepo.FetchTargetIDs(ctx, userID, domain.LikeTargetArticle, page, size)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	articles, err := s.articleRepo.GetByIDs(ctx, idPage.Items)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	articles, err = s.fillArticleAuthors(ctx, articles)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	mp := make(map[int64]domain.Article, len(articles))
	for i := range articles {
		mp[articles[i].ID] = articles[i]
	}
	ordered := make([]domain.Article, 0, len(idPage.Items))
	for _, id := range idPage.Items {
		if a, ok := mp[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return domain.Page[domain.Article]{Items: ordered, Total: idPage.Total, Page: idPage.Page, Pages: idPage.Pages}, nil
}

func (s *Service) GetLikedComments(ctx context.Context, userID, page, size int64) (domain.Page[domain.Comment], error) {
	idPage, err := s.likeRepo.FetchTargetIDs(ctx, userID, domain.LikeTargetComment, page, size)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	comments, err := s.commentRepo.GetByIDs(ctx, idPage.Items)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	ownerIDs := make([]int64, 0, len(comments))
	for i := range comments {
		ownerIDs = append(ownerIDs, comments[i].Owner.ID)
	}
	owners, err := userfill.Existing(ctx, s.userRepo, ownerIDs)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	mp := make(map[int64]domain.Comment, len(comments))
	for i := range comments {
		if u, ok := owners[comments[i].Owner.ID]; ok {
			comments[i].Owner = u
		}
		mp[comments[i].ID] = comments[i]
	}
	ordered := make([]domain.Comment, 0, len(idPage.Items))
	for _, id := range idPage.Items {
		if c, ok := mp[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return domain.Page[domain.Comment]{Items: ordered, Total: idPage.Total, Page: idPage.Page, Pages: idPage.Pages}, nil
}

func (s *Service) fillArticleAuthors(ctx context.Context, data []domain.Article) ([]domain.Article, error) {
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
