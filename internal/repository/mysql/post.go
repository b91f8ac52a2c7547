package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Post{}, domain.ErrNotFound
		}
		return domain.Post{}, err
	}

	res := post.ToDomain()
	res.Hashtags, err = r.hashtags(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return res, nil
}

func (r *postRepository) hashtags(ctx context.Context, postID int64) ([]string, error) {
	var tags []string
	err := r.DB.WithContext(ctx).
		Model(&model.PostHashtag{}).
		Where("post_id = ?", postID).
		Pluck("tag", &tags).Error
	return tags, err
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postModel := model.NewPostFromDomain(p)
		if err := tx.Create(postModel).Error; err != nil {
			return err
		}
		p.ID = postModel.ID
		p.CreatedAt = postModel.CreatedAt
		p.UpdatedAt = postModel.UpdatedAt

		return storeHashtags(tx, p.ID, p.Hashtags)
	})
}

func storeHashtags(tx *gorm.DB, postID int64, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	rows := make([]model.PostHashtag, len(tags))
	for i, tag := range tags {
		rows[i] = model.PostHashtag{PostID: postID, Tag: tag}
	}
	return tx.Create(&rows).Error
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).
			Where("id = ? AND owner_id = ?", p.ID, p.Owner.ID).
			Update("content", p.Content)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrForbidden
		}

		// Hashtags are derived from content, rewrite them wholesale.
		if err := tx.Where("post_id = ?", p.ID).Delete(&model.PostHashtag{}).Error; err != nil {
			return err
		}
		return storeHashtags(tx, p.ID, p.Hashtags)
	})
}

func (r *postRepository) Delete(ctx context.Context, id, ownerID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrForbidden
		}
		return tx.Where("post_id = ?", id).Delete(&model.PostHashtag{}).Error
	})
}

func (r *postRepository) FetchByOwners(ctx context.Context, ownerIDs []int64, page, size int64) (domain.Page[domain.Post], error) {
	if len(ownerIDs) == 0 {
		domain.VerifyPage(&page, &size)
		return domain.NewPage([]domain.Post{}, 0, page, size), nil
	}
	return r.fetchPage(ctx, "owner_id IN ?", []any{ownerIDs}, page, size)
}

func (r *postRepository) FetchByOwner(ctx context.Context, ownerID, page, size int64) (domain.Page[domain.Post], error) {
	return r.fetchPage(ctx, "owner_id = ?", []any{ownerID}, page, size)
}

func (r *postRepository) FetchByHashtag(ctx context.Context, tag string, page, size int64) (domain.Page[domain.Post], error) {
	return r.fetchPage(ctx,
		"id IN (SELECT post_id FROM post_hashtag WHERE tag = ?)", []any{tag},
		page, size)
}

func (r *postRepository) fetchPage(ctx context.Context, cond string, args []any, page, size int64) (domain.Page[domain.Post], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Post{}).Where(cond, args...).Count(&total).Error; err != nil {
		return domain.Page[domain.Post]{}, err
	}

	var rows []model.Post
	err := r.DB.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&rows).Error
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	posts := make([]domain.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].ToDomain()
	}

	if err := r.fillHashtags(ctx, posts); err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return domain.NewPage(posts, total, page, size), nil
}

func (r *postRepository) fillHashtags(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	var rows []model.PostHashtag
	err := r.DB.WithContext(ctx).
		Where("post_id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return err
	}

	tagsByPost := make(map[int64][]string)
	for _, row := range rows {
		tagsByPost[row.PostID] = append(tagsByPost[row.PostID], row.Tag)
	}
	for i := range posts {
		posts[i].Hashtags = tagsByPost[posts[i].ID]
	}
	return nil
}

func (r *postRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&model.Post{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := tx.Where("post_id IN ?", ids).Delete(&model.PostHashtag{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("owner_id = ?", ownerID).Delete(&model.Post{}).Error
	})
}
