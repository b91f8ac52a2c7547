package user_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/domain/mocks"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/user"
)

const testSecret = "test-secret"

type serviceMocks struct {
	userRepo     *mocks.UserRepository
	followRepo   *mocks.FollowRepository
	likeRepo     *mocks.LikeRepository
	commentRepo  *mocks.CommentRepository
	articleRepo  *mocks.ArticleRepository
	postRepo     *mocks.PostRepository
	playlistRepo *mocks.PlaylistRepository
	counterRepo  *mocks.CounterRepository
	cache        *mocks.EngagementCache
	assets       *mocks.AssetReleaser
	mailer       *mocks.Mailer
	reconciler   *mocks.CounterReconciler
}

func newService() (domain.UserUsecase, serviceMocks) {
	m := serviceMocks{
		userRepo:     new(mocks.UserRepository),
		followRepo:   new(mocks.FollowRepository),
		likeRepo:     new(mocks.LikeRepository),
		commentRepo:  new(mocks.CommentRepository),
		articleRepo:  new(mocks.ArticleRepository),
		postRepo:     new(mocks.PostRepository),
		playlistRepo: new(mocks.PlaylistRepository),
		counterRepo:  new(mocks.CounterRepository),
		cache:        new(mocks.EngagementCache),
		assets:       new(mocks.AssetReleaser),
		mailer:       new(mocks.Mailer),
		reconciler:   new(mocks.CounterReconciler),
	}
	svc := user.NewService(
		m.userRepo, m.followRepo, m.likeRepo, m.commentRepo, m.articleRepo,
		m.postRepo, m.playlistRepo, m.counterRepo, m.cache, m.assets,
		m.mailer, m.reconciler, testSecret,
	)
	return svc, m
}

func TestRegister(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = 1
		// the stored password must be a bcrypt hash, never the plaintext
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22hunter22")))
	}).Return(nil)
	m.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	u, err := svc.Register(context.Background(), "Alice", "alice", faker.Email(), "hunter22hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Empty(t, u.Password)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrConflict)

	_, err := svc.Register(context.Background(), "Alice", "alice", faker.Email(), "hunter22hunter22")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	svc, m := newService()

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	m.userRepo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{ID: 1, Username: "alice", Password: string(hashed)}, nil)

	token, err := svc.Login(context.Background(), "alice", "hunter22hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := newService()

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	m.userRepo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{ID: 1, Username: "alice", Password: string(hashed)}, nil)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEditPassword_WrongOldPassword(t *testing.T) {
	svc, m := newService()

	hashed, err := bcrypt.GenerateFromPassword([]byte("oldpassword1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(domain.User{ID: 1, Password: string(hashed)}, nil)

	err = svc.EditPassword(context.Background(), 1, "guessed", "newpassword1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	m.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// The cascade scenario: alice follows bob and carol, bob follows alice.
// Alice liked bob's article 70 and commented twice on it; she owns article
// 50 which bob liked and commented on. Deleting alice must fix bob's and
// carol's counters, fix article 70's counters, and leave nothing pointing
// at alice.
func TestDelete_Cascade(t *testing.T) {
	svc, m := newService()

	alice := domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(alice, nil)

	m.articleRepo.On("IDsByAuthor", mock.Anything, int64(1)).Return([]int64{50}, nil)
	// comments 500, 501 are alice's on article 70; comment 900 is bob's on
	// alice's article 50
	m.commentRepo.On("IDsByOwner", mock.Anything, int64(1)).Return([]int64{500, 501}, nil)
	m.commentRepo.On("IDsByArticles", mock.Anything, []int64{50}).Return([]int64{900}, nil)

	// follow edges: alice->bob(2), alice->carol(3), bob(2)->alice
	edges := []domain.Follow{
		{FollowerID: 1, AuthorID: 2},
		{FollowerID: 1, AuthorID: 3},
		{FollowerID: 2, AuthorID: 1},
	}
	m.followRepo.On("FetchByUser", mock.Anything, int64(1)).Return(edges, nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(2), domain.CounterFollowers, int64(-1)).Return(nil).Once()
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(3), domain.CounterFollowers, int64(-1)).Return(nil).Once()
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityUser, int64(2), domain.CounterFollowing, int64(-1)).Return(nil).Once()
	m.followRepo.On("DeleteByUser", mock.Anything, int64(1)).Return(nil)

	// alice liked bob's article 70 and her own article 50; only 70 survives
	likes := []domain.Like{
		{UserID: 1, TargetID: 70, Target: domain.LikeTargetArticle},
		{UserID: 1, TargetID: 50, Target: domain.LikeTargetArticle},
	}
	m.likeRepo.On("FetchByUser", mock.Anything, int64(1)).Return(likes, nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityArticle, int64(70), domain.CounterLikes, int64(-1)).Return(nil).Once()
	m.likeRepo.On("DeleteByUser", mock.Anything, int64(1)).Return(nil)

	// alice's two comments sat on bob's article 70, which survives
	m.commentRepo.On("CountOwnedPerArticle", mock.Anything, int64(1)).Return(map[int64]int64{70: 2, 50: 0}, nil)
	m.counterRepo.On("Adjust", mock.Anything, domain.CounterEntityArticle, int64(70), domain.CounterComments, int64(-2)).Return(nil).Once()
	m.likeRepo.On("DeleteByTargets", mock.Anything, domain.LikeTargetComment, []int64{500, 501, 900}).Return(nil)
	m.commentRepo.On("DeleteByOwner", mock.Anything, int64(1)).Return(nil)
	m.commentRepo.On("DeleteByArticles", mock.Anything, []int64{50}).Return(nil)

	m.likeRepo.On("DeleteByTargets", mock.Anything, domain.LikeTargetArticle, []int64{50}).Return(nil)
	m.playlistRepo.On("RemoveArticleEverywhere", mock.Anything, int64(50)).Return(nil)
	m.articleRepo.On("GetByIDs", mock.Anything, []int64{50}).Return([]domain.Article{{ID: 50}}, nil)
	m.articleRepo.On("DeleteByAuthor", mock.Anything, int64(1)).Return(nil)

	m.postRepo.On("FetchByOwner", mock.Anything, int64(1), int64(1), int64(50)).
		Return(domain.Page[domain.Post]{Items: []domain.Post{}, Page: 1, Pages: 1}, nil)
	m.postRepo.On("DeleteByOwner", mock.Anything, int64(1)).Return(nil)
	m.playlistRepo.On("DeleteByOwner", mock.Anything, int64(1)).Return(nil)

	m.cache.On("InvalidateUser", mock.Anything, int64(1)).Return(nil)
	m.userRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	m.assets.On("Release", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.mailer.On("Send", mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.reconciler.On("Trigger").Return()

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	m.counterRepo.AssertExpectations(t)
	m.followRepo.AssertExpectations(t)
	m.likeRepo.AssertExpectations(t)
	m.commentRepo.AssertExpectations(t)
	m.articleRepo.AssertExpectations(t)
	m.userRepo.AssertExpectations(t)

	// no counter fix may target alice herself or her own doomed rows
	m.counterRepo.AssertNotCalled(t, "Adjust", mock.Anything, domain.CounterEntityUser, int64(1), mock.Anything, mock.Anything)
	m.counterRepo.AssertNotCalled(t, "Adjust", mock.Anything, domain.CounterEntityArticle, int64(50), mock.Anything, mock.Anything)
}

func TestDelete_AccountMissing(t *testing.T) {
	svc, m := newService()

	m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(domain.User{}, domain.ErrNotFound)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_RetryAfterPartialFailure(t *testing.T) {
	svc, m := newService()

	alice := domain.User{ID: 1, Name: "Alice"}
	m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(alice, nil)
	m.articleRepo.On("IDsByAuthor", mock.Anything, int64(1)).Return([]int64{}, nil)
	m.commentRepo.On("IDsByOwner", mock.Anything, int64(1)).Return([]int64{}, nil)
	m.commentRepo.On("IDsByArticles", mock.Anything, []int64{}).Return([]int64{}, nil)
	m.followRepo.On("FetchByUser", mock.Anything, int64(1)).Return([]domain.Follow{}, nil)
	m.followRepo.On("DeleteByUser", mock.Anything, int64(1)).Return(domain.ErrStorageUnavailable)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	// the account row survives a failed cascade so the delete can be retried
	m.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
