package domain

import (
	"context"
	"time"
)

// Comment belongs to exactly one article. ParentID is 0 for top-level
// comments; replies carry the parent's ID and depth+1. Depth and ParentID
// are fixed at creation and never change afterwards.
type Comment struct {
	ID         int64     `json:"id"`
	ArticleID  int64     `json:"article_id"`
	Content    string    `json:"content"`
	ParentID   int64     `json:"parent_id"` // 0 means top level
	Depth      int64     `json:"depth"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Owner is the comment author, populated on list reads
	Owner User `json:"owner"`
	// ReplyCount is counted live from the table on top-level reads,
	// never denormalized, so it is always exact
	ReplyCount int64 `json:"reply_count"`
}

// CommentRepository defines the contract for the flat comment table.
type CommentRepository interface {
	// GetByID returns the comment or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// GetByIDs returns the comments matching ids, skipping missing ones.
	GetByIDs(ctx context.Context, ids []int64) ([]Comment, error)

	// Store creates the comment and backfills its ID.
	Store(ctx context.Context, c *Comment) error

	// UpdateContent changes the content of the owner's comment only.
	// Returns ErrForbidden when no row matches (id, ownerID).
	UpdateContent(ctx context.Context, id, ownerID int64, content string) error

	// Delete removes the owner's comment and reports whether a row was
	// removed. Replies to it are left in place.
	Delete(ctx context.Context, id, ownerID int64) (bool, error)

	// FetchTopLevel pages comments on the article with no parent, newest first.
	FetchTopLevel(ctx context.Context, articleID, page, size int64) (Page[Comment], error)

	// FetchReplies pages comments whose parent is the given comment, newest first.
	FetchReplies(ctx context.Context, parentID, page, size int64) (Page[Comment], error)

	// CountReplies counts, per parent ID, the comments pointing at it.
	CountReplies(ctx context.Context, parentIDs []int64) (map[int64]int64, error)

	// IDsByArticles returns the IDs of every comment on the given articles.
	IDsByArticles(ctx context.Context, articleIDs []int64) ([]int64, error)

	// IDsByOwner returns the IDs of every comment the owner wrote.
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)

	// CountOwnedPerArticle counts the owner's comments grouped by article.
	CountOwnedPerArticle(ctx context.Context, ownerID int64) (map[int64]int64, error)

	// DeleteByOwner removes every comment the owner wrote. Idempotent.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// DeleteByArticles removes every comment on the given articles. Idempotent.
	DeleteByArticles(ctx context.Context, articleIDs []int64) error

	// FetchIDs pages through comment IDs greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// CommentUsecase assembles the two-level thread view and keeps the
// article's comment counter in step with every mutation.
type CommentUsecase interface {
	Add(ctx context.Context, articleID, ownerID int64, content string) (Comment, error)
	Reply(ctx context.Context, parentID, ownerID int64, content string) (Comment, error)
	Edit(ctx context.Context, commentID, ownerID int64, content string) (Comment, error)
	Delete(ctx context.Context, commentID, ownerID int64) error
	TopLevel(ctx context.Context, articleID, page, size int64) (Page[Comment], error)
	Replies(ctx context.Context, commentID, page, size int64) (Page[Comment], error)
}
