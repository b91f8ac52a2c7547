package domain

import "context"

// CounterEntity is the table family a counter lives on.
type CounterEntity string

// CounterField is a denormalized counter column.
type CounterField string

const (
	CounterEntityUser    CounterEntity = "user"
	CounterEntityArticle CounterEntity = "article"
	CounterEntityComment CounterEntity = "comment"

	CounterFollowers CounterField = "followers_count"
	CounterFollowing CounterField = "following_count"
	CounterLikes     CounterField = "likes_count"
	CounterComments  CounterField = "comment_count"
)

// CounterRepository applies atomic adjustments to denormalized counters.
// The counters are a materialized cache over the edge tables; the edge
// tables stay the source of truth and the recompute operations restore the
// counters from them when drift is detected.
type CounterRepository interface {
	// Adjust atomically adds delta to the counter field. The increment
	// happens inside the storage engine, never read-modify-write at the
	// caller. A decrement that would drive the counter negative clamps it
	// to zero and logs a warning instead of propagating the negative.
	// Returns ErrNotFound if the entity row doesn't exist.
	Adjust(ctx context.Context, entity CounterEntity, id int64, field CounterField, delta int64) error

	// RecomputeUserFollowCounts resets followers/following counters from
	// the follow edge counts for the given accounts.
	RecomputeUserFollowCounts(ctx context.Context, userIDs []int64) error

	// RecomputeArticleEngagement resets likes and comment counters from
	// the like and comment rows for the given articles.
	RecomputeArticleEngagement(ctx context.Context, articleIDs []int64) error

	// RecomputeCommentLikes resets like counters from the like rows for
	// the given comments.
	RecomputeCommentLikes(ctx context.Context, commentIDs []int64) error
}
