package feed

import (
	"context"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/userfill"
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

type Service struct {
	postRepo   domain.PostRepository
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	sanitizer  *bluemonday.Policy
}

var _ domain.FeedUsecase = (*Service)(nil)

// NewService will create a new feed service object
func NewService(p domain.PostRepository, f domain.FollowRepository, u domain.UserRepository) *Service {
	return &Service{
		postRepo:   p,
		followRepo: f,
		userRepo:   u,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// ExtractHashtags pulls #tags out of post content, lowercased and
// deduplicated in order of first appearance.
func ExtractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	tags := make([]string, 0, len(matches))
	seen := map[string]bool{}
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func (s *Service) cleanContent(content string) (string, error) {
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if content == "" || len([]rune(content)) > domain.MaxPostLength {
		return "", domain.ErrBadParamInput
	}
	return content, nil
}

func (s *Service) GetFeed(ctx context.Context, viewerID, page, size int64) (domain.Page[domain.Post], error) {
	// re-resolved every call so a follow toggle shows up on the next fetch
	followingIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	ownerIDs := append(followingIDs, viewerID)

	res, err := s.postRepo.FetchByOwners(ctx, ownerIDs, page, size)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	res.Items, err = s.fillOwnerDetails(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return res, nil
}

func (s *Service) CreatePost(ctx context.Context, p *domain.Post) error {
	content, err := s.cleanContent(p.Content)
	if err != nil {
		return err
	}
	p.Content = content
	p.Hashtags = ExtractHashtags(content)

	owner, err := s.userRepo.GetByID(ctx, p.Owner.ID)
	if err != nil {
		return err
	}
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}
	p.Owner = owner
	return nil
}

func (s *Service) UpdatePost(ctx context.Context, postID, ownerID int64, content string) (domain.Post, error) {
	content, err := s.cleanContent(content)
	if err != nil {
		return domain.Post{}, err
	}

	p := domain.Post{
		ID:       postID,
		Content:  content,
		Hashtags: ExtractHashtags(content),
		Owner:    domain.User{ID: ownerID},
	}
	if err := s.postRepo.Update(ctx, &p); err != nil {
		return domain.Post{}, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

func (s *Service) DeletePost(ctx context.Context, postID, ownerID int64) error {
	return s.postRepo.Delete(ctx, postID, ownerID)
}

func (s *Service) UserPosts(ctx context.Context, userID, page, size int64) (domain.Page[domain.Post], error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return domain.Page[domain.Post]{}, err
	}

	res, err := s.postRepo.FetchByOwner(ctx, userID, page, size)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	res.Items, err = s.fillOwnerDetails(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return res, nil
}

func (s *Service) HashtagPosts(ctx context.Context, tag string, page, size int64) (domain.Page[domain.Post], error) {
	tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
	if tag == "" {
		return domain.Page[domain.Post]{}, domain.ErrBadParamInput
	}

	res, err := s.postRepo.FetchByHashtag(ctx, tag, page, size)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	res.Items, err = s.fillOwnerDetails(ctx, res.Items)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return res, nil
}

func (s *Service) fillOwnerDetails(ctx context.Context, data []domain.Post) ([]domain.Post, error) {
	ids := make([]int64, 0, len(data))
	for i := range data {
		ids = append(ids, data[i].Owner.ID)
	}
	owners, err := userfill.Details(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}
	for i := range data {
		if u, ok := owners[data[i].Owner.ID]; ok {
			data[i].Owner = u
		}
	}
	return data, nil
}
