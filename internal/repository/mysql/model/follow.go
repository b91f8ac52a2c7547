package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

// Follow carries a composite unique index so the database is the arbiter
// of edge existence under concurrent toggles.
type Follow struct {
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follower_author;index"`
	AuthorID   int64     `gorm:"column:author_id;not null;uniqueIndex:idx_follower_author;index"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follow"
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		FollowerID: f.FollowerID,
		AuthorID:   f.AuthorID,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *Follow) ToDomain() domain.Follow {
	return domain.Follow{
		FollowerID: m.FollowerID,
		AuthorID:   m.AuthorID,
		CreatedAt:  m.CreatedAt,
	}
}
