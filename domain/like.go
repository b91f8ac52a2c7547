package domain

import (
	"context"
	"time"
)

// LikeTarget is the kind of entity a like points at.
type LikeTarget string

const (
	LikeTargetArticle LikeTarget = "article"
	LikeTargetComment LikeTarget = "comment"
)

func (t LikeTarget) Valid() bool {
	return t == LikeTargetArticle || t == LikeTargetComment
}

// Like is a single like edge. At most one edge exists per
// (user_id, target_id, target_kind) triple, enforced by the store.
// Liking your own content is allowed; only self-follow is rejected.
type Like struct {
	UserID    int64
	TargetID  int64
	Target    LikeTarget
	CreatedAt time.Time
}

// LikeRepository persists the like relation.
type LikeRepository interface {
	// Exists reports whether the edge is present.
	Exists(ctx context.Context, userID, targetID int64, target LikeTarget) (bool, error)

	// Store inserts the edge. Returns ErrConflict when the triple already
	// exists, which toggles treat as a concurrent transition.
	Store(ctx context.Context, l *Like) error

	// Delete removes the edge and reports whether a row was removed.
	Delete(ctx context.Context, userID, targetID int64, target LikeTarget) (bool, error)

	// FetchByUser returns every like edge owned by the user.
	FetchByUser(ctx context.Context, userID int64) ([]Like, error)

	// FetchTargetIDs pages the IDs of the given kind the user has liked,
	// newest like first.
	FetchTargetIDs(ctx context.Context, userID int64, target LikeTarget, page, size int64) (Page[int64], error)

	// RecentTargetIDs returns up to limit most recently liked IDs of the
	// given kind, used to rebuild the advisory cache set.
	RecentTargetIDs(ctx context.Context, userID int64, target LikeTarget, limit int64) ([]int64, error)

	// DeleteByUser removes every like edge owned by the user.
	DeleteByUser(ctx context.Context, userID int64) error

	// DeleteByTargets removes every like edge pointing at the given
	// targets, regardless of owner. Used when targets are deleted so no
	// edge is left referencing a nonexistent entity.
	DeleteByTargets(ctx context.Context, target LikeTarget, targetIDs []int64) error
}
