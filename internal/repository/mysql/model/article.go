package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type Article struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:varchar(255)"`
	Content      string    `gorm:"type:longtext;not null"`
	Thumbnail    string    `gorm:"type:varchar(100)"`
	AuthorID     int64     `gorm:"column:author_id;not null;index"`
	LikesCount   int64     `gorm:"column:likes_count;default:0"`
	CommentCount int64     `gorm:"column:comment_count;default:0"`
	Views        int64     `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"type:datetime;index"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Thumbnail:   m.Thumbnail,
		Author: domain.User{
			ID: m.AuthorID,
		},
		LikesCount:   m.LikesCount,
		CommentCount: m.CommentCount,
		Views:        m.Views,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Content:      a.Content,
		Thumbnail:    a.Thumbnail,
		AuthorID:     a.Author.ID,
		LikesCount:   a.LikesCount,
		CommentCount: a.CommentCount,
		Views:        a.Views,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
