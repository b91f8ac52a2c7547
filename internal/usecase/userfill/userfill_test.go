package userfill_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/domain/mocks"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/userfill"
)

func TestDetails(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2, Username: "alice"}, nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Username: "bob"}, nil)

	// duplicate IDs collapse into one lookup each
	users, err := userfill.Details(context.Background(), repo, []int64{2, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, "alice", users[2].Username)
	assert.Equal(t, "bob", users[3].Username)
	repo.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestDetails_MissingAccountFails(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{}, domain.ErrNotFound)

	_, err := userfill.Details(context.Background(), repo, []int64{2})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExisting_SkipsDeletedAccounts(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByIDs", mock.Anything, []int64{2, 3}).Return([]domain.User{{ID: 3, Username: "bob"}}, nil)

	users, err := userfill.Existing(context.Background(), repo, []int64{2, 3, 2})
	require.NoError(t, err)
	_, ok := users[2]
	assert.False(t, ok)
	assert.Equal(t, "bob", users[3].Username)
}
