package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type User struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"type:varchar(45);not null"`
	Username       string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	Email          string    `gorm:"type:varchar(100);not null"`
	Password       string    `gorm:"type:varchar(100);not null"`
	Bio            string    `gorm:"type:varchar(255)"`
	AvatarID       string    `gorm:"column:avatar_id;type:varchar(100)"`
	CoverID        string    `gorm:"column:cover_id;type:varchar(100)"`
	FollowersCount int64     `gorm:"column:followers_count;default:0"`
	FollowingCount int64     `gorm:"column:following_count;default:0"`
	CreatedAt      time.Time `gorm:"type:datetime"`
	UpdatedAt      time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:             m.ID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          m.Email,
		Password:       m.Password,
		Bio:            m.Bio,
		AvatarID:       m.AvatarID,
		CoverID:        m.CoverID,
		FollowersCount: m.FollowersCount,
		FollowingCount: m.FollowingCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Password:       u.Password,
		Bio:            u.Bio,
		AvatarID:       u.AvatarID,
		CoverID:        u.CoverID,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
