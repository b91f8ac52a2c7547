package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:varchar(280);not null"`
	Media     string    `gorm:"type:varchar(100)"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index"`
	CreatedAt time.Time `gorm:"type:datetime;index"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

// PostHashtag is the relational projection of a post's hashtag list.
type PostHashtag struct {
	PostID int64  `gorm:"column:post_id;not null;uniqueIndex:idx_post_tag"`
	Tag    string `gorm:"type:varchar(45);not null;uniqueIndex:idx_post_tag;index"`
}

func (PostHashtag) TableName() string {
	return "post_hashtag"
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		Content:   p.Content,
		Media:     p.Media,
		OwnerID:   p.Owner.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:      m.ID,
		Content: m.Content,
		Media:   m.Media,
		Owner: domain.User{
			ID: m.OwnerID,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
