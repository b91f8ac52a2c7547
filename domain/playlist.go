package domain

import (
	"context"
	"time"
)

// Playlist is an owner-curated, deduplicated list of articles.
type Playlist struct {
	ID          int64
	Name        string
	Description string
	OwnerID     int64
	ArticleIDs  []int64 // membership, insertion-ordered
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Articles is the populated membership, filled on detail reads
	Articles []Article
}

type PlaylistRepository interface {
	// GetByID returns the playlist with its membership IDs or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Playlist, error)

	// Store creates the playlist and backfills its ID.
	Store(ctx context.Context, p *Playlist) error

	// Delete removes the owner's playlist and its membership rows.
	// Returns ErrForbidden when no row matches (id, ownerID).
	Delete(ctx context.Context, id, ownerID int64) error

	// FetchByOwner pages the owner's playlists, newest first.
	FetchByOwner(ctx context.Context, ownerID, page, size int64) (Page[Playlist], error)

	// AddArticle appends the article to the membership. Adding a member
	// that is already present is a no-op.
	AddArticle(ctx context.Context, playlistID, articleID int64) error

	// RemoveArticle drops the article from the membership. Idempotent.
	RemoveArticle(ctx context.Context, playlistID, articleID int64) error

	// RemoveArticleEverywhere drops the article from every playlist.
	RemoveArticleEverywhere(ctx context.Context, articleID int64) error

	// DeleteByOwner removes every playlist the owner has, membership
	// rows included. Idempotent.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

type PlaylistUsecase interface {
	Create(ctx context.Context, p *Playlist) error
	Get(ctx context.Context, id int64) (Playlist, error)
	FetchByOwner(ctx context.Context, ownerID, page, size int64) (Page[Playlist], error)
	AddArticle(ctx context.Context, playlistID, articleID, ownerID int64) error
	RemoveArticle(ctx context.Context, playlistID, articleID, ownerID int64) error
	Delete(ctx context.Context, playlistID, ownerID int64) error
}
