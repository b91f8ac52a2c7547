package model

import (
	"time"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

// Like keys on (user_id, target_id, target_kind); the unique index rejects
// a racing duplicate insert.
type Like struct {
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_target;index"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:idx_user_target;index:idx_target"`
	TargetKind string    `gorm:"column:target_kind;type:varchar(10);not null;uniqueIndex:idx_user_target;index:idx_target"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "user_like"
}

func NewLikeFromDomain(l *domain.Like) *Like {
	return &Like{
		UserID:     l.UserID,
		TargetID:   l.TargetID,
		TargetKind: string(l.Target),
		CreatedAt:  l.CreatedAt,
	}
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		UserID:    m.UserID,
		TargetID:  m.TargetID,
		Target:    domain.LikeTarget(m.TargetKind),
		CreatedAt: m.CreatedAt,
	}
}
