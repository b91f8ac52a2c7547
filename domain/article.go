package domain

import (
	"context"
	"time"
)

// Article is a long-form publication.
// LikesCount and CommentCount mirror the edge/comment tables and are only
// written through the counter maintainer.
type Article struct {
	ID           int64     // Unique identifier for the article
	Title        string    // Article title
	Description  string    // Short summary shown in lists
	Content      string    // Article body content
	Thumbnail    string    // Public ID of the thumbnail asset, empty if none
	Author       User      // Author information
	LikesCount   int64     // Likes pointing at this article
	CommentCount int64     // Comments on this article, replies included
	Views        int64     // Number of views, monotonic
	CreatedAt    time.Time // Creation timestamp
	UpdatedAt    time.Time // Last update timestamp
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByIDs retrieves articles by the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)

	// Fetch retrieves a page of articles, newest first.
	Fetch(ctx context.Context, page, size int64) (Page[Article], error)

	// FetchByAuthor retrieves a page of the author's articles, newest first.
	FetchByAuthor(ctx context.Context, authorID, page, size int64) (Page[Article], error)

	// Store creates a new article and backfills its ID.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article row by its ID. Idempotent.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the view count of an article.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// IDsByAuthor returns the IDs of every article the author owns.
	IDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)

	// DeleteByAuthor removes every article the author owns. Idempotent.
	DeleteByAuthor(ctx context.Context, authorID int64) error

	// FetchIDs pages through article IDs greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type ArticleUsecase interface {
	GetByID(ctx context.Context, id int64) (Article, error)
	Fetch(ctx context.Context, page, size int64) (Page[Article], error)
	FetchByAuthor(ctx context.Context, authorID, page, size int64) (Page[Article], error)
	Store(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error

	// Delete removes the article together with its comments and every
	// like edge targeting the article or those comments.
	Delete(ctx context.Context, id, authorID int64) error
}
