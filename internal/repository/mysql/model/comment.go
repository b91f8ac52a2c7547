package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type Comment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID  int64     `gorm:"column:article_id;not null;index:idx_article_parent"`
	OwnerID    int64     `gorm:"column:owner_id;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	ParentID   int64     `gorm:"column:parent_id;default:0;index:idx_article_parent"`
	Depth      int64     `gorm:"default:0"`
	LikesCount int64     `gorm:"column:likes_count;default:0"`
	CreatedAt  time.Time `gorm:"type:datetime"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		OwnerID:    c.Owner.ID,
		Content:    c.Content,
		ParentID:   c.ParentID,
		Depth:      c.Depth,
		LikesCount: c.LikesCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		ArticleID:  m.ArticleID,
		Content:    m.Content,
		ParentID:   m.ParentID,
		Depth:      m.Depth,
		LikesCount: m.LikesCount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Owner: domain.User{
			ID: m.OwnerID,
		},
	}
}
