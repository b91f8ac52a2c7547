package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}

func (m *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var articles []model.Article
	err := m.DB.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) Fetch(ctx context.Context, page, size int64) (domain.Page[domain.Article], error) {
	return m.fetchPage(ctx, m.DB.WithContext(ctx).Model(&model.Article{}), page, size)
}

func (m *articleRepository) FetchByAuthor(ctx context.Context, authorID, page, size int64) (domain.Page[domain.Article], error) {
	tx := m.DB.WithContext(ctx).Model(&model.Article{}).Where("author_id = ?", authorID)
	return m.fetchPage(ctx, tx, page, size)
}

func (m *articleRepository) fetchPage(_ context.Context, tx *gorm.DB, page, size int64) (domain.Page[domain.Article], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.Article]{}, err
	}

	var articles []model.Article
	err := tx.
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&articles).Error
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return domain.NewPage(res, total, page, size), nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Model(&articleModel).Updates(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Delete(&model.Article{}, id).Error
}

func (m *articleRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) IDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("author_id = ?", authorID).
		Pluck("id", &ids).Error
	return ids, err
}

func (m *articleRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	return m.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.Article{}).Error
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
