package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

func (r *likeRepository) Exists(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, string(target)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Store(ctx context.Context, l *domain.Like) error {
	result := r.DB.WithContext(ctx).Create(model.NewLikeFromDomain(l))
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, string(target)).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	var rows []model.Like
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	likes := make([]domain.Like, len(rows))
	for i := range rows {
		likes[i] = rows[i].ToDomain()
	}
	return likes, nil
}

func (r *likeRepository) FetchTargetIDs(ctx context.Context, userID int64, target domain.LikeTarget, page, size int64) (domain.Page[int64], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userID, string(target)).
		Count(&total).Error
	if err != nil {
		return domain.Page[int64]{}, err
	}

	var ids []int64
	err = r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Select("target_id").
		Where("user_id = ? AND target_kind = ?", userID, string(target)).
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&ids).Error
	if err != nil {
		return domain.Page[int64]{}, err
	}
	return domain.NewPage(ids, total, page, size), nil
}

func (r *likeRepository) RecentTargetIDs(ctx context.Context, userID int64, target domain.LikeTarget, limit int64) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Select("target_id").
		Where("user_id = ? AND target_kind = ?", userID, string(target)).
		Order("created_at DESC").
		Limit(int(limit)).
		Find(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *likeRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) DeleteByTargets(ctx context.Context, target domain.LikeTarget, targetIDs []int64) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Where("target_kind = ? AND target_id IN ?", string(target), targetIDs).
		Delete(&model.Like{}).Error
}
