package engagement_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/domain/mocks"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/engagement"
)

func fakeUser(id int64) domain.User {
	return domain.User{
		ID:       id,
		Name:     faker.Name(),
		Username: faker.Username(),
		Email:    faker.Email(),
	}
}

type serviceMocks struct {
	followRepo  *mocks.FollowRepository
	likeRepo    *mocks.LikeRepository
	counterRepo *mocks.CounterRepository
	userRepo    *mocks.UserRepository
	articleRepo *mocks.ArticleRepository
	commentRepo *mocks.CommentRepository
	cache       *mocks.EngagementCache
	reconciler  *mocks.CounterReconciler
}

func newService() (*engagement.Service, serviceMocks) {
	m := serviceMocks{
		followRepo:  new(mocks.FollowRepository),
		likeRepo:    new(mocks.LikeRepository),
		counterRepo: new(mocks.CounterRepository),
		userRepo:    new(mocks.UserRepository),
		articleRepo: new(mocks.ArticleRepository),
		commentRepo: new(mocks.CommentRepository),
		cache:       new(mocks.EngagementCache),
		reconciler:  new(mocks.CounterReconciler),
	}
	svc := engagement.NewService(m.followRepo, m.likeRepo, m.counterRepo, m.userRepo, m.articleRepo, m.commentRepo, m.cache, m.reconciler)
	return svc, m
}

func TestToggleFollow_Follow(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)
	m.followRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Follow")).Return(nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(1), domain.CounterFollowing, int64(1)).Return(nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(2), domain.CounterFollowers, int64(1)).Return(nil)
	m.cache.On("AddFollowing", mock.Anything, int64(1), int64(2)).Return(nil)

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	m.counterRepo.AssertExpectations(t)
}

func TestToggleFollow_Unfollow(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)
	m.followRepo.On("Delete", mock.Anything, int64(1), int64(2)).Return(true, nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(1), domain.CounterFollowing, int64(-1)).Return(nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(2), domain.CounterFollowers, int64(-1)).Return(nil)
	m.cache.On("RemoveFollowing", mock.Anything, int64(1), int64(2)).Return(nil)

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
	m.counterRepo.AssertExpectations(t)
}

func TestToggleFollow_Self(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ToggleFollow(context.Background(), 7, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestToggleFollow_AuthorMissing(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(99)).Return(domain.User{}, domain.ErrNotFound)

	_, err := svc.ToggleFollow(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToggleFollow_InsertRace(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)
	// first read misses the concurrent insert, the constraint catches it
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	m.followRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Follow")).Return(domain.ErrConflict)
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// the losing toggle must not touch the counters
	m.counterRepo.AssertNotCalled(t, "Adjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_DeleteRace(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)
	// someone else already removed the edge and settled the counters
	m.followRepo.On("Delete", mock.Anything, int64(1), int64(2)).Return(false, nil)
	m.cache.On("RemoveFollowing", mock.Anything, int64(1), int64(2)).Return(nil)

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
	m.counterRepo.AssertNotCalled(t, "Adjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_CounterFailureTriggersReconcile(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)
	m.followRepo.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)
	m.followRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Follow")).Return(nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(1), domain.CounterFollowing, int64(1)).Return(errors.New("db gone"))
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(2), domain.CounterFollowers, int64(1)).Return(nil)
	m.cache.On("AddFollowing", mock.Anything, int64(1), int64(2)).Return(nil)
	m.reconciler.On("Trigger").Return()

	following, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	m.reconciler.AssertCalled(t, "Trigger")
}

func TestCheckFollowStatus_CacheHit(t *testing.T) {
	svc, m := newService()

	m.cache.On("IsFollowing", mock.Anything, int64(1), int64(2)).Return(true, nil)

	following, err := svc.CheckFollowStatus(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	m.followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckFollowStatus_CacheMissRebuild(t *testing.T) {
	svc, m := newService()

	m.cache.On("IsFollowing", mock.Anything, int64(1), int64(2)).Return(false, domain.ErrCacheMiss)
	m.followRepo.On("FollowingIDs", mock.Anything, int64(1)).Return([]int64{2, 5}, nil)
	m.cache.On("SetFollowing", mock.Anything, int64(1), []int64{2, 5}).Return(nil).Maybe()

	following, err := svc.CheckFollowStatus(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestCheckFollowStatus_StorageDownDegradesToFalse(t *testing.T) {
	svc, m := newService()

	m.cache.On("IsFollowing", mock.Anything, int64(1), int64(2)).Return(false, domain.ErrCacheMiss)
	m.followRepo.On("FollowingIDs", mock.Anything, int64(1)).Return(nil, domain.ErrStorageUnavailable)

	following, err := svc.CheckFollowStatus(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestToggleLike_Article(t *testing.T) {
	svc, m := newService()

	m.articleRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Article{ID: 10}, nil)
	m.likeRepo.On("Exists", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(false, nil)
	m.likeRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Like")).Return(nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityArticle, int64(10), domain.CounterLikes, int64(1)).Return(nil)
	m.cache.On("AddLiked", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(nil)

	liked, err := svc.ToggleLike(context.Background(), 1, 10, domain.LikeTargetArticle)
	require.NoError(t, err)
	assert.True(t, liked)
	m.counterRepo.AssertExpectations(t)
}

func TestToggleLike_CommentUnlike(t *testing.T) {
	svc, m := newService()

	m.commentRepo.On("GetByID", mock.Anything, int64(33)).Return(domain.Comment{ID: 33}, nil)
	m.likeRepo.On("Exists", mock.Anything, int64(1), int64(33), domain.LikeTargetComment).Return(true, nil)
	m.likeRepo.On("Delete", mock.Anything, int64(1), int64(33), domain.LikeTargetComment).Return(true, nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityComment, int64(33), domain.CounterLikes, int64(-1)).Return(nil)
	m.cache.On("RemoveLiked", mock.Anything, int64(1), int64(33), domain.LikeTargetComment).Return(nil)

	liked, err := svc.ToggleLike(context.Background(), 1, 33, domain.LikeTargetComment)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLike_BadTargetKind(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ToggleLike(context.Background(), 1, 10, domain.LikeTarget("playlist"))
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestToggleLike_TargetMissing(t *testing.T) {
	svc, m := newService()

	m.articleRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Article{}, domain.ErrNotFound)

	_, err := svc.ToggleLike(context.Background(), 1, 10, domain.LikeTargetArticle)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckLikeStatus_CacheHit(t *testing.T) {
	svc, m := newService()

	m.cache.On("IsLiked", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(true, nil)

	liked, err := svc.CheckLikeStatus(context.Background(), 1, 10, domain.LikeTargetArticle)
	require.NoError(t, err)
	assert.True(t, liked)
	m.likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckLikeStatus_TruncatedSetChecksEdgeTable(t *testing.T) {
	svc, m := newService()

	// the cached set is bounded, so absence from it is not an answer
	m.cache.On("IsLiked", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(false, domain.ErrCacheIncomplete)
	m.likeRepo.On("Exists", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(true, nil)

	liked, err := svc.CheckLikeStatus(context.Background(), 1, 10, domain.LikeTargetArticle)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestCheckLikeStatus_BoundedRebuildChecksEdgeTable(t *testing.T) {
	svc, m := newService()

	// rebuild comes back at the cap without the target: the like may be
	// older than every cached entry, so the edge table decides
	recent := make([]int64, 300)
	for i := range recent {
		recent[i] = int64(1000 + i)
	}
	m.cache.On("IsLiked", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(false, domain.ErrCacheMiss)
	m.likeRepo.On("RecentTargetIDs", mock.Anything, int64(1), domain.LikeTargetArticle, int64(300)).Return(recent, nil)
	m.cache.On("SetLiked", mock.Anything, int64(1), domain.LikeTargetArticle, recent, false).Return(nil).Maybe()
	m.likeRepo.On("Exists", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(true, nil)

	liked, err := svc.CheckLikeStatus(context.Background(), 1, 10, domain.LikeTargetArticle)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestCheckLikeStatus_CompleteRebuildProvesAbsence(t *testing.T) {
	svc, m := newService()

	m.cache.On("IsLiked", mock.Anything, int64(1), int64(10), domain.LikeTargetArticle).Return(false, domain.ErrCacheMiss)
	m.likeRepo.On("RecentTargetIDs", mock.Anything, int64(1), domain.LikeTargetArticle, int64(300)).Return([]int64{11, 12}, nil)
	m.cache.On("SetLiked", mock.Anything, int64(1), domain.LikeTargetArticle, []int64{11, 12}, true).Return(nil).Maybe()

	liked, err := svc.CheckLikeStatus(context.Background(), 1, 10, domain.LikeTargetArticle)
	require.NoError(t, err)
	assert.False(t, liked)
	m.likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLikedComments_FillsOwners(t *testing.T) {
	svc, m := newService()

	owner := fakeUser(7)
	idPage := domain.Page[int64]{Items: []int64{33, 34}, Total: 2, Page: 1, Pages: 1}
	m.likeRepo.On("FetchTargetIDs", mock.Anything, int64(1), domain.LikeTargetComment, int64(1), int64(10)).Return(idPage, nil)
	m.commentRepo.On("GetByIDs", mock.Anything, []int64{33, 34}).Return([]domain.Comment{
		{ID: 33, Owner: domain.User{ID: 7}},
		{ID: 34, Owner: domain.User{ID: 9}},
	}, nil)
	// owner 9 deleted their account and stays a bare ID
	m.userRepo.On("GetByIDs", mock.Anything, []int64{7, 9}).Return([]domain.User{owner}, nil)

	res, err := svc.GetLikedComments(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, owner.Name, res.Items[0].Owner.Name)
	assert.Equal(t, owner.Username, res.Items[0].Owner.Username)
	assert.Equal(t, int64(9), res.Items[1].Owner.ID)
	assert.Empty(t, res.Items[1].Owner.Name)
}

func TestGetFollowers_PreservesEdgeOrder(t *testing.T) {
	svc, m := newService()

	edges := domain.Page[domain.Follow]{
		Items: []domain.Follow{{FollowerID: 5, AuthorID: 2}, {FollowerID: 3, AuthorID: 2}},
		Total: 2, Page: 1, Pages: 1,
	}
	m.followRepo.On("FetchFollowers", mock.Anything, int64(2), int64(1), int64(10)).Return(edges, nil)
	// repo returns them in storage order, not edge order
	m.userRepo.On("GetByIDs", mock.Anything, []int64{5, 3}).Return([]domain.User{fakeUser(3), fakeUser(5)}, nil)

	res, err := svc.GetFollowers(context.Background(), 2, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(5), res.Items[0].ID)
	assert.Equal(t, int64(3), res.Items[1].ID)
}

// fake stores for the concurrency exercise below

type fakeFollowStore struct {
	mu    sync.Mutex
	edges map[[2]int64]bool
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{edges: map[[2]int64]bool{}}
}

func (s *fakeFollowStore) Exists(_ context.Context, followerID, authorID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges[[2]int64{followerID, authorID}], nil
}

func (s *fakeFollowStore) Store(_ context.Context, f *domain.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{f.FollowerID, f.AuthorID}
	if s.edges[key] {
		return domain.ErrConflict
	}
	s.edges[key] = true
	return nil
}

func (s *fakeFollowStore) Delete(_ context.Context, followerID, authorID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{followerID, authorID}
	if !s.edges[key] {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *fakeFollowStore) FollowingIDs(context.Context, int64) ([]int64, error) {
	return nil, nil
}

func (s *fakeFollowStore) FetchFollowers(context.Context, int64, int64, int64) (domain.Page[domain.Follow], error) {
	return domain.Page[domain.Follow]{}, nil
}

func (s *fakeFollowStore) FetchFollowing(context.Context, int64, int64, int64) (domain.Page[domain.Follow], error) {
	return domain.Page[domain.Follow]{}, nil
}

func (s *fakeFollowStore) FetchByUser(context.Context, int64) ([]domain.Follow, error) {
	return nil, nil
}

func (s *fakeFollowStore) DeleteByUser(context.Context, int64) error { return nil }

type fakeCounters struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (c *fakeCounters) Adjust(_ context.Context, entity domain.CounterEntity, id int64, field domain.CounterField, delta int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := string(entity) + "/" + string(field)
	c.counts[key] += delta
	return nil
}

func (c *fakeCounters) RecomputeUserFollowCounts(context.Context, []int64) error { return nil }
func (c *fakeCounters) RecomputeArticleEngagement(context.Context, []int64) error {
	return nil
}
func (c *fakeCounters) RecomputeCommentLikes(context.Context, []int64) error { return nil }

type missCache struct{}

func (missCache) IsFollowing(context.Context, int64, int64) (bool, error) {
	return false, domain.ErrCacheMiss
}
func (missCache) AddFollowing(context.Context, int64, int64) error    { return domain.ErrCacheMiss }
func (missCache) RemoveFollowing(context.Context, int64, int64) error { return domain.ErrCacheMiss }
func (missCache) SetFollowing(context.Context, int64, []int64) error  { return nil }
func (missCache) IsLiked(context.Context, int64, int64, domain.LikeTarget) (bool, error) {
	return false, domain.ErrCacheMiss
}
func (missCache) AddLiked(context.Context, int64, int64, domain.LikeTarget) error {
	return domain.ErrCacheMiss
}
func (missCache) RemoveLiked(context.Context, int64, int64, domain.LikeTarget) error {
	return domain.ErrCacheMiss
}
func (missCache) SetLiked(context.Context, int64, domain.LikeTarget, []int64, bool) error {
	return nil
}
func (missCache) InvalidateUser(context.Context, int64) error                       { return nil }

type noopReconciler struct{}

func (noopReconciler) Start(context.Context) {}
func (noopReconciler) Trigger()              {}

// TestToggleFollow_ConcurrentNetEffect hammers one edge with concurrent
// toggles and checks that the edge table and the counters still agree
// afterwards: the accumulated counter delta equals 1 when the edge
// survived and 0 when it did not.
func TestToggleFollow_ConcurrentNetEffect(t *testing.T) {
	followStore := newFakeFollowStore()
	counters := &fakeCounters{counts: map[string]int64{}}

	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(fakeUser(2), nil)

	svc := engagement.NewService(
		followStore,
		new(mocks.LikeRepository),
		counters,
		userRepo,
		new(mocks.ArticleRepository),
		new(mocks.CommentRepository),
		missCache{},
		noopReconciler{},
	)

	const workers = 16
	const togglesPerWorker = 25

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range togglesPerWorker {
				_, err := svc.ToggleFollow(context.Background(), 1, 2)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	exists, err := followStore.Exists(context.Background(), 1, 2)
	require.NoError(t, err)

	counters.mu.Lock()
	followers := counters.counts["user/followers_count"]
	following := counters.counts["user/following_count"]
	counters.mu.Unlock()

	var want int64
	if exists {
		want = 1
	}
	assert.Equal(t, want, followers)
	assert.Equal(t, want, following)
}
