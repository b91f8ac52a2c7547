package domain

import "context"

// EngagementCache is the advisory redis-backed view of a user's follow and
// like sets, used to answer status checks without touching the edge tables.
// It never arbitrates edge existence; the relational uniqueness constraint
// does. Every method returns ErrCacheMiss when the user's set has not been
// loaded, and callers rebuild it from the repository.
type EngagementCache interface {
	// IsFollowing checks the cached following set.
	IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error)

	// AddFollowing/RemoveFollowing mutate the cached set only when it is
	// already loaded; a missing set returns ErrCacheMiss untouched.
	AddFollowing(ctx context.Context, followerID, authorID int64) error
	RemoveFollowing(ctx context.Context, followerID, authorID int64) error

	// SetFollowing loads the follower's full following set.
	SetFollowing(ctx context.Context, followerID int64, authorIDs []int64) error

	// IsLiked checks the cached liked set of the given target kind.
	// Returns ErrCacheIncomplete when the target is absent from a set
	// that was loaded truncated; such an absence is not authoritative.
	IsLiked(ctx context.Context, userID, targetID int64, target LikeTarget) (bool, error)

	AddLiked(ctx context.Context, userID, targetID int64, target LikeTarget) error
	RemoveLiked(ctx context.Context, userID, targetID int64, target LikeTarget) error

	// SetLiked loads the user's liked set for the target kind. complete
	// reports whether targetIDs holds every like the user has; a
	// truncated set is marked so IsLiked can refuse to prove absence.
	SetLiked(ctx context.Context, userID int64, target LikeTarget, targetIDs []int64, complete bool) error

	// InvalidateUser drops every cached set of the user. Called by the
	// cascade coordinator so a deleted account leaves no advisory state.
	InvalidateUser(ctx context.Context, userID int64) error
}

// BloomRepository is a probabilistic existence filter over article IDs.
// Exists == false means the ID is definitely absent; true means it needs a
// real lookup.
type BloomRepository interface {
	Add(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	BulkAdd(ctx context.Context, ids []int64) error
}
