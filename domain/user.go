package domain

import (
	"context"
	"time"
)

// User represents an account on the platform.
// The denormalized follower counters are maintained exclusively by the
// engagement layer; nothing else writes them.
type User struct {
	ID             int64     // Unique identifier
	Name           string    // Display name
	Username       string    // Login username (unique)
	Email          string    // Contact address, used for account notifications
	Password       string    // Bcrypt hashed password
	Bio            string    // Short profile text
	AvatarID       string    // Public ID of the avatar asset, empty if none
	CoverID        string    // Public ID of the cover image asset, empty if none
	FollowersCount int64     // Accounts following this one, never negative
	FollowingCount int64     // Accounts this one follows, never negative
	CreatedAt      time.Time // Account creation timestamp
	UpdatedAt      time.Time // Last profile update timestamp
}

// UserRepository defines the contract for account persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users for the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the username is already taken.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's profile fields.
	Update(ctx context.Context, u *User) error

	// Delete removes the account row only. Dependent rows are the
	// cascade coordinator's job. Deleting an absent row is not an error.
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages through account IDs greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// UserUsecase defines the business logic contract for account operations,
// including the deletion cascade over everything the account touches.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, name, username, email, password string) (User, error)

	// Login verifies user credentials and returns a JWT token.
	Login(ctx context.Context, username, password string) (string, error)

	GetProfile(ctx context.Context, id int64) (User, error)

	UpdateProfile(ctx context.Context, u *User) error

	// EditPassword verifies the old password and stores the new one.
	EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error

	// Delete removes the account and cascades over its follow and like
	// edges, owned articles, comments, posts and playlists, fixing the
	// counterpart counters for every removed edge. Returns ErrNotFound
	// if the account doesn't exist.
	Delete(ctx context.Context, accountID int64) error
}
