package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{
		DB: db,
	}
}

func (r *followRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) Store(ctx context.Context, f *domain.Follow) error {
	result := r.DB.WithContext(ctx).Create(model.NewFollowFromDomain(f))
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, authorID int64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) FollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("author_id", &ids).Error
	return ids, err
}

func (r *followRepository) FetchFollowers(ctx context.Context, authorID, page, size int64) (domain.Page[domain.Follow], error) {
	return r.fetchEdges(ctx, "author_id = ?", authorID, page, size)
}

func (r *followRepository) FetchFollowing(ctx context.Context, followerID, page, size int64) (domain.Page[domain.Follow], error) {
	return r.fetchEdges(ctx, "follower_id = ?", followerID, page, size)
}

func (r *followRepository) fetchEdges(ctx context.Context, cond string, id, page, size int64) (domain.Page[domain.Follow], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Follow{}).Where(cond, id).Count(&total).Error; err != nil {
		return domain.Page[domain.Follow]{}, err
	}

	var rows []model.Follow
	err := r.DB.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&rows).Error
	if err != nil {
		return domain.Page[domain.Follow]{}, err
	}

	edges := make([]domain.Follow, len(rows))
	for i := range rows {
		edges[i] = rows[i].ToDomain()
	}
	return domain.NewPage(edges, total, page, size), nil
}

func (r *followRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Follow, error) {
	var rows []model.Follow
	err := r.DB.WithContext(ctx).
		Where("follower_id = ? OR author_id = ?", userID, userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	edges := make([]domain.Follow, len(rows))
	for i := range rows {
		edges[i] = rows[i].ToDomain()
	}
	return edges, nil
}

func (r *followRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.DB.WithContext(ctx).
		Where("follower_id = ? OR author_id = ?", userID, userID).
		Delete(&model.Follow{}).Error
}
