package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(255)"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (Playlist) TableName() string {
	return "playlist"
}

// PlaylistArticle is one membership row; the unique index deduplicates the
// list at the storage layer.
type PlaylistArticle struct {
	PlaylistID int64     `gorm:"column:playlist_id;not null;uniqueIndex:idx_playlist_article"`
	ArticleID  int64     `gorm:"column:article_id;not null;uniqueIndex:idx_playlist_article;index"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (PlaylistArticle) TableName() string {
	return "playlist_article"
}

func NewPlaylistFromDomain(p *domain.Playlist) *Playlist {
	return &Playlist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
