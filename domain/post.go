package domain

import (
	"context"
	"time"
)

// MaxPostLength caps short-form post content.
const MaxPostLength = 280

// Post is a short-form publication that feeds the follower feed.
type Post struct {
	ID        int64
	Content   string
	Media     string   // Public ID of an attached media asset, empty if none
	Hashtags  []string // Extracted from content, lowercased, deduplicated
	Owner     User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostRepository defines the contract for post persistence.
type PostRepository interface {
	// GetByID returns the post or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates the post with its hashtag rows and backfills the ID.
	Store(ctx context.Context, p *Post) error

	// Update rewrites content and hashtags of the owner's post.
	// Returns ErrForbidden when no row matches (id, ownerID).
	Update(ctx context.Context, p *Post) error

	// Delete removes the owner's post. Returns ErrForbidden when no row
	// matches (id, ownerID).
	Delete(ctx context.Context, id, ownerID int64) error

	// FetchByOwners pages posts whose owner is in the set, newest first.
	FetchByOwners(ctx context.Context, ownerIDs []int64, page, size int64) (Page[Post], error)

	// FetchByOwner pages one account's posts, newest first.
	FetchByOwner(ctx context.Context, ownerID, page, size int64) (Page[Post], error)

	// FetchByHashtag pages posts carrying the tag, newest first.
	FetchByHashtag(ctx context.Context, tag string, page, size int64) (Page[Post], error)

	// DeleteByOwner removes every post the owner wrote. Idempotent.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

// FeedUsecase assembles the personalized feed and owns post mutations.
type FeedUsecase interface {
	// GetFeed returns posts by the accounts the viewer follows plus the
	// viewer's own, newest first. The follow set is re-resolved on every
	// call so a toggle is visible on the next page fetch.
	GetFeed(ctx context.Context, viewerID, page, size int64) (Page[Post], error)

	CreatePost(ctx context.Context, p *Post) error
	UpdatePost(ctx context.Context, postID, ownerID int64, content string) (Post, error)
	DeletePost(ctx context.Context, postID, ownerID int64) error
	UserPosts(ctx context.Context, userID, page, size int64) (Page[Post], error)
	HashtagPosts(ctx context.Context, tag string, page, size int64) (Page[Post], error)
}
