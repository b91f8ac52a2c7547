package domain

import (
	"context"
	"time"
)

// Follow is a single edge of the follow graph: follower watches author.
// At most one edge exists per ordered pair, enforced by the store.
type Follow struct {
	FollowerID int64
	AuthorID   int64
	CreatedAt  time.Time
}

// FollowRepository persists the follow relation. The uniqueness constraint
// on (follower_id, author_id) is the arbiter of edge existence; counters
// derived from it live with the accounts and are adjusted separately.
type FollowRepository interface {
	// Exists reports whether the edge is present.
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)

	// Store inserts the edge. Returns ErrConflict when the pair already
	// exists, which toggles treat as a concurrent transition.
	Store(ctx context.Context, f *Follow) error

	// Delete removes the edge and reports whether a row was removed.
	// Deleting an absent edge is not an error.
	Delete(ctx context.Context, followerID, authorID int64) (bool, error)

	// FollowingIDs resolves every author the follower currently follows.
	FollowingIDs(ctx context.Context, followerID int64) ([]int64, error)

	// FetchFollowers pages the edges pointing at the author, newest first.
	FetchFollowers(ctx context.Context, authorID, page, size int64) (Page[Follow], error)

	// FetchFollowing pages the edges originating at the follower, newest first.
	FetchFollowing(ctx context.Context, followerID, page, size int64) (Page[Follow], error)

	// FetchByUser returns every edge referencing the account in either role.
	FetchByUser(ctx context.Context, userID int64) ([]Follow, error)

	// DeleteByUser removes every edge referencing the account in either role.
	DeleteByUser(ctx context.Context, userID int64) error
}

// EngagementUsecase is the public mutation surface of the engagement layer:
// idempotent-in-effect toggles plus the derived list and status views.
type EngagementUsecase interface {
	// ToggleFollow flips the follower->author edge and returns the
	// resulting state. Returns ErrInvalidOperation when follower equals
	// author and ErrNotFound when the author doesn't exist.
	ToggleFollow(ctx context.Context, followerID, authorID int64) (bool, error)

	// CheckFollowStatus is an advisory read used to render UI state; it
	// degrades to false instead of failing when storage is unreachable.
	CheckFollowStatus(ctx context.Context, followerID, authorID int64) (bool, error)

	GetFollowers(ctx context.Context, authorID, page, size int64) (Page[User], error)
	GetFollowing(ctx context.Context, followerID, page, size int64) (Page[User], error)

	// ToggleLike flips the user's like on the target and returns the
	// resulting state. Returns ErrNotFound when the target doesn't exist
	// and ErrBadParamInput on an unsupported target kind.
	ToggleLike(ctx context.Context, userID, targetID int64, target LikeTarget) (bool, error)

	// CheckLikeStatus is advisory, same degradation as CheckFollowStatus.
	CheckLikeStatus(ctx context.Context, userID, targetID int64, target LikeTarget) (bool, error)

	GetLikedArticles(ctx context.Context, userID, page, size int64) (Page[Article], error)
	GetLikedComments(ctx context.Context, userID, page, size int64) (Page[Comment], error)
}
