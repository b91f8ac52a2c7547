package user

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/auth"
)

type Service struct {
	userRepo     domain.UserRepository
	followRepo   domain.FollowRepository
	likeRepo     domain.LikeRepository
	commentRepo  domain.CommentRepository
	articleRepo  domain.ArticleRepository
	postRepo     domain.PostRepository
	playlistRepo domain.PlaylistRepository
	counterRepo  domain.CounterRepository
	cache        domain.EngagementCache
	assets       domain.AssetReleaser
	mailer       domain.Mailer
	reconciler   domain.CounterReconciler
	jwtSecret    string
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(
	userRepo domain.UserRepository,
	followRepo domain.FollowRepository,
	likeRepo domain.LikeRepository,
	commentRepo domain.CommentRepository,
	articleRepo domain.ArticleRepository,
	postRepo domain.PostRepository,
	playlistRepo domain.PlaylistRepository,
	counterRepo domain.CounterRepository,
	cache domain.EngagementCache,
	assets domain.AssetReleaser,
	mailer domain.Mailer,
	reconciler domain.CounterReconciler,
	jwtSecret string,
) *Service {
	return &Service{
		userRepo:     userRepo,
		followRepo:   followRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		articleRepo:  articleRepo,
		postRepo:     postRepo,
		playlistRepo: playlistRepo,
		counterRepo:  counterRepo,
		cache:        cache,
		assets:       assets,
		mailer:       mailer,
		reconciler:   reconciler,
		jwtSecret:    jwtSecret,
	}
}

func (s *Service) Register(ctx context.Context, name, username, email, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, domain.ErrBadParamInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, err
	}

	go func(to, name string) {
		if to == "" {
			return
		}
		body := fmt.Sprintf("Welcome aboard, %s! Your account is ready.", name)
		if err := s.mailer.Send(context.Background(), to, "Welcome", body); err != nil {
			logrus.Warnf("failed to send welcome mail: %v", err)
		}
	}(u.Email, u.Name)

	u.Password = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrForbidden
	}
	return auth.GenerateToken(s.jwtSecret, u.ID, u.Username, auth.TokenDuration)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, u *domain.User) error {
	existing, err := s.userRepo.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}

	existing.Name = u.Name
	existing.Email = u.Email
	existing.Bio = u.Bio

	if u.AvatarID != existing.AvatarID {
		s.releaseAsset(existing.AvatarID)
		existing.AvatarID = u.AvatarID
	}
	if u.CoverID != existing.CoverID {
		s.releaseAsset(existing.CoverID)
		existing.CoverID = u.CoverID
	}

	if err := s.userRepo.Update(ctx, &existing); err != nil {
		return err
	}
	*u = existing
	u.Password = ""
	return nil
}

func (s *Service) EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrBadParamInput
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return domain.ErrForbidden
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return s.userRepo.Update(ctx, &u)
}

// Delete tears down the account and everything referencing it. The steps
// run in dependency order and each one is idempotent, so the cascade can be
// retried from the top after a partial failure. The account row itself goes
// last: as long as it exists, retrying is possible.
func (s *Service) Delete(ctx context.Context, accountID int64) error {
	account, err := s.userRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	ownedArticleIDs, err := s.articleRepo.IDsByAuthor(ctx, accountID)
	if err != nil {
		return err
	}
	ownedCommentIDs, err := s.commentRepo.IDsByOwner(ctx, accountID)
	if err != nil {
		return err
	}
	commentsOnOwned, err := s.commentRepo.IDsByArticles(ctx, ownedArticleIDs)
	if err != nil {
		return err
	}

	if err := s.removeFollowEdges(ctx, accountID); err != nil {
		return err
	}
	if err := s.removeOwnLikes(ctx, accountID, ownedArticleIDs, ownedCommentIDs, commentsOnOwned); err != nil {
		return err
	}
	if err := s.removeComments(ctx, accountID, ownedArticleIDs, ownedCommentIDs, commentsOnOwned); err != nil {
		return err
	}
	if err := s.removeArticles(ctx, accountID, ownedArticleIDs); err != nil {
		return err
	}
	if err := s.removePosts(ctx, accountID); err != nil {
		return err
	}
	if err := s.playlistRepo.DeleteByOwner(ctx, accountID); err != nil {
		return err
	}

	s.releaseAsset(account.AvatarID)
	s.releaseAsset(account.CoverID)

	if err := s.cache.InvalidateUser(ctx, accountID); err != nil {
		logrus.Warnf("failed to invalidate engagement cache for user %d: %v", accountID, err)
	}

	if err := s.userRepo.Delete(ctx, accountID); err != nil {
		return err
	}

	go func(to, name string) {
		if to == "" {
			return
		}
		body := fmt.Sprintf("Goodbye, %s. Your account and its data have been removed.", name)
		if err := s.mailer.Send(context.Background(), to, "Account deleted", body); err != nil {
			logrus.Warnf("failed to send account deletion mail: %v", err)
		}
	}(account.Email, account.Name)

	// sweep up any counter drift the per-edge fixes missed
	s.reconciler.Trigger()
	return nil
}

// removeFollowEdges deletes every follow edge touching the account and
// fixes the counter on the surviving side of each edge.
func (s *Service) removeFollowEdges(ctx context.Context, accountID int64) error {
	edges, err := s.followRepo.FetchByUser(ctx, accountID)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if e.FollowerID == accountID {
			s.adjustCounter(ctx, domain.CounterEntityUser, e.AuthorID, domain.CounterFollowers, -1)
		} else {
			s.adjustCounter(ctx, domain.CounterEntityUser, e.FollowerID, domain.CounterFollowing, -1)
		}
	}
	return s.followRepo.DeleteByUser(ctx, accountID)
}

// removeOwnLikes deletes the account's like edges, decrementing the counter
// of every liked target that survives the cascade. Targets owned by the
// account are about to be deleted anyway and are skipped.
func (s *Service) removeOwnLikes(ctx context.Context, accountID int64, ownedArticleIDs, ownedCommentIDs, commentsOnOwned []int64) error {
	doomedArticles := toSet(ownedArticleIDs)
	doomedComments := toSet(ownedCommentIDs)
	for _, id := range commentsOnOwned {
		doomedComments[id] = true
	}

	likes, err := s.likeRepo.FetchByUser(ctx, accountID)
	if err != nil {
		return err
	}
	for _, l := range likes {
		switch l.Target {
		case domain.LikeTargetArticle:
			if !doomedArticles[l.TargetID] {
				s.adjustCounter(ctx, domain.CounterEntityArticle, l.TargetID, domain.CounterLikes, -1)
			}
		case domain.LikeTargetComment:
			if !doomedComments[l.TargetID] {
				s.adjustCounter(ctx, domain.CounterEntityComment, l.TargetID, domain.CounterLikes, -1)
			}
		}
	}
	return s.likeRepo.DeleteByUser(ctx, accountID)
}

// removeComments deletes the account's comments and the comments on its
// articles, with every like edge targeting them, and fixes comment_count on
// the surviving articles the account had commented on.
func (s *Service) removeComments(ctx context.Context, accountID int64, ownedArticleIDs, ownedCommentIDs, commentsOnOwned []int64) error {
	ownedArticles := toSet(ownedArticleIDs)

	perArticle, err := s.commentRepo.CountOwnedPerArticle(ctx, accountID)
	if err != nil {
		return err
	}
	for articleID, count := range perArticle {
		if !ownedArticles[articleID] {
			s.adjustCounter(ctx, domain.CounterEntityArticle, articleID, domain.CounterComments, -count)
		}
	}

	doomedComments := append(append([]int64{}, ownedCommentIDs...), commentsOnOwned...)
	if err := s.likeRepo.DeleteByTargets(ctx, domain.LikeTargetComment, doomedComments); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByOwner(ctx, accountID); err != nil {
		return err
	}
	return s.commentRepo.DeleteByArticles(ctx, ownedArticleIDs)
}

// removeArticles deletes the account's articles, the likes targeting them
// and their playlist memberships, releasing thumbnails along the way.
func (s *Service) removeArticles(ctx context.Context, accountID int64, ownedArticleIDs []int64) error {
	if err := s.likeRepo.DeleteByTargets(ctx, domain.LikeTargetArticle, ownedArticleIDs); err != nil {
		return err
	}
	for _, id := range ownedArticleIDs {
		if err := s.playlistRepo.RemoveArticleEverywhere(ctx, id); err != nil {
			return err
		}
	}

	articles, err := s.articleRepo.GetByIDs(ctx, ownedArticleIDs)
	if err != nil {
		logrus.Warnf("failed to load articles for asset release: %v", err)
	} else {
		for _, a := range articles {
			s.releaseAsset(a.Thumbnail)
		}
	}
	return s.articleRepo.DeleteByAuthor(ctx, accountID)
}

// removePosts walks the account's posts page by page to release attached
// media, then drops them all.
func (s *Service) removePosts(ctx context.Context, accountID int64) error {
	for page := int64(1); ; page++ {
		res, err := s.postRepo.FetchByOwner(ctx, accountID, page, 50)
		if err != nil {
			return err
		}
		for _, p := range res.Items {
			s.releaseAsset(p.Media)
		}
		if page >= res.Pages {
			break
		}
	}
	return s.postRepo.DeleteByOwner(ctx, accountID)
}

func (s *Service) adjustCounter(ctx context.Context, entity domain.CounterEntity, id int64, field domain.CounterField, delta int64) {
	if err := s.counterRepo.Adjust(ctx, entity, id, field, delta); err != nil {
		logrus.Warnf("failed to adjust %s.%s by %d for id %d: %v", entity, field, delta, id, err)
	}
}

// releaseAsset frees an external asset fire-and-forget. A failed release
// leaks a blob at worst, it never blocks the cascade.
func (s *Service) releaseAsset(publicID string) {
	if publicID == "" {
		return
	}
	go func() {
		if err := s.assets.Release(context.Background(), publicID); err != nil {
			logrus.Warnf("failed to release asset %s: %v", publicID, err)
		}
	}()
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
