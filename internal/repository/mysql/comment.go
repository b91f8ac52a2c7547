package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrNotFound
		}
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return []domain.Comment{}, nil
	}
	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, len(rows))
	for i := range rows {
		comments[i] = rows[i].ToDomain()
	}
	return comments, nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) UpdateContent(ctx context.Context, id, ownerID int64, content string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	result := c.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (c *commentRepository) FetchTopLevel(ctx context.Context, articleID, page, size int64) (domain.Page[domain.Comment], error) {
	return c.fetchPage(ctx, "article_id = ? AND parent_id = 0", []any{articleID}, page, size)
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentID, page, size int64) (domain.Page[domain.Comment], error) {
	return c.fetchPage(ctx, "parent_id = ?", []any{parentID}, page, size)
}

func (c *commentRepository) fetchPage(ctx context.Context, cond string, args []any, page, size int64) (domain.Page[domain.Comment], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	if err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where(cond, args...).Count(&total).Error; err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&rows).Error
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	comments := make([]domain.Comment, len(rows))
	for i := range rows {
		comments[i] = rows[i].ToDomain()
	}
	return domain.NewPage(comments, total, page, size), nil
}

func (c *commentRepository) CountReplies(ctx context.Context, parentIDs []int64) (map[int64]int64, error) {
	if len(parentIDs) == 0 {
		return map[int64]int64{}, nil
	}

	var rows []struct {
		ParentID int64
		Count    int64
	}
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("parent_id, COUNT(*) AS count").
		Where("parent_id IN ?", parentIDs).
		Group("parent_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.ParentID] = row.Count
	}
	return counts, nil
}

func (c *commentRepository) IDsByArticles(ctx context.Context, articleIDs []int64) ([]int64, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("article_id IN ?", articleIDs).
		Pluck("id", &ids).Error
	return ids, err
}

func (c *commentRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (c *commentRepository) CountOwnedPerArticle(ctx context.Context, ownerID int64) (map[int64]int64, error) {
	var rows []struct {
		ArticleID int64
		Count     int64
	}
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("article_id, COUNT(*) AS count").
		Where("owner_id = ?", ownerID).
		Group("article_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.ArticleID] = row.Count
	}
	return counts, nil
}

func (c *commentRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return c.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.Comment{}).Error
}

func (c *commentRepository) DeleteByArticles(ctx context.Context, articleIDs []int64) error {
	if len(articleIDs) == 0 {
		return nil
	}
	return c.DB.WithContext(ctx).
		Where("article_id IN ?", articleIDs).
		Delete(&model.Comment{}).Error
}

func (c *commentRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
