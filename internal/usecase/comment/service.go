package comment

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/userfill"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	counterRepo domain.CounterRepository
	bloomRepo   domain.BloomRepository
	reconciler  domain.CounterReconciler
	sanitizer   *bluemonday.Policy
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	articleRepo domain.ArticleRepository,
	userRepo domain.UserRepository,
	counterRepo domain.CounterRepository,
	bloomRepo domain.BloomRepository,
	reconciler domain.CounterReconciler,
) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
		bloomRepo:   bloomRepo,
		reconciler:  reconciler,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// mustExists screens the article ID through the bloom filter before paying
// for a real lookup. A bloom miss is a definite absence.
func (s *service) mustExists(ctx context.Context, articleID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %d does not exist", articleID)
		return domain.ErrNotFound
	}
	_, err = s.articleRepo.GetByID(ctx, articleID)
	return err
}

func (s *service) cleanContent(content string) (string, error) {
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if content == "" {
		return "", domain.ErrBadParamInput
	}
	return content, nil
}

func (s *service) bumpCommentCount(ctx context.Context, articleID, delta int64) {
	if err := s.counterRepo.Adjust(ctx, domain.CounterEntityArticle, articleID, domain.CounterComments, delta); err != nil {
		logrus.Warnf("failed to adjust comment_count by %d for article %d: %v", delta, articleID, err)
		s.reconciler.Trigger()
	}
}

func (s *service) Add(ctx context.Context, articleID, ownerID int64, content string) (domain.Comment, error) {
	content, err := s.cleanContent(content)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.mustExists(ctx, articleID); err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ArticleID: articleID,
		Content:   content,
		ParentID:  0,
		Depth:     0,
		Owner:     domain.User{ID: ownerID},
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	s.bumpCommentCount(ctx, articleID, 1)
	return c, nil
}

func (s *service) Reply(ctx context.Context, parentID, ownerID int64, content string) (domain.Comment, error) {
	content, err := s.cleanContent(content)
	if err != nil {
		return domain.Comment{}, err
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ArticleID: parent.ArticleID,
		Content:   content,
		ParentID:  parent.ID,
		Depth:     parent.Depth + 1,
		Owner:     domain.User{ID: ownerID},
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	s.bumpCommentCount(ctx, parent.ArticleID, 1)
	return c, nil
}

func (s *service) Edit(ctx context.Context, commentID, ownerID int64, content string) (domain.Comment, error) {
	content, err := s.cleanContent(content)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.commentRepo.UpdateContent(ctx, commentID, ownerID, content); err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *service) Delete(ctx context.Context, commentID, ownerID int64) error {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	removed, err := s.commentRepo.Delete(ctx, commentID, ownerID)
	if err != nil {
		return err
	}
	if !removed {
		// the row existed a moment ago, so the mismatch is ownership
		if c.Owner.ID != ownerID {
			return domain.ErrForbidden
		}
		return nil
	}
	s.bumpCommentCount(ctx, c.ArticleID, -1)
	return nil
}

func (s *service) TopLevel(ctx context.Context, articleID, page, size int64) (domain.Page[domain.Comment], error) {
	if err := s.mustExists(ctx, articleID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	res, err := s.commentRepo.FetchTopLevel(ctx, articleID, page, size)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	if len(res.Items) == 0 {
		return res, nil
	}

	parentIDs := make([]int64, len(res.Items))
	for i := range res.Items {
		parentIDs[i] = res.Items[i].ID
	}
	counts, err := s.commentRepo.CountReplies(ctx, parentIDs)
	if err != nil {
		logrus.Warnf("failed to count replies: %v", err)
	} else {
		for i := range res.Items {
			res.Items[i].ReplyCount = counts[res.Items[i].ID]
		}
	}

	res.Items, err = s.fillOwners(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	return res, nil
}

func (s *service) Replies(ctx context.Context, commentID, page, size int64) (domain.Page[domain.Comment], error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	res, err := s.commentRepo.FetchReplies(ctx, commentID, page, size)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	res.Items, err = s.fillOwners(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	return res, nil
}

// fillOwners resolves comment authors in one batched read. Comments of a
// since-deleted account keep a bare owner ID.
func (s *service) fillOwners(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	ids := make([]int64, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].Owner.ID)
	}
	owners, err := userfill.Existing(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if u, ok := owners[comments[i].Owner.ID]; ok {
			comments[i].Owner = u
		}
	}
	return comments, nil
}
