package mysql

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

// counterRepository applies denormalized-counter adjustments as single
// atomic UPDATEs inside the storage engine, so N concurrent ±1 deltas sum
// correctly regardless of interleaving.
type counterRepository struct {
	DB *gorm.DB
}

var _ domain.CounterRepository = (*counterRepository)(nil)

func NewCounterRepository(db *gorm.DB) *counterRepository {
	return &counterRepository{db}
}

var counterColumns = map[domain.CounterEntity]map[domain.CounterField]bool{
	domain.CounterEntityUser: {
		domain.CounterFollowers: true,
		domain.CounterFollowing: true,
	},
	domain.CounterEntityArticle: {
		domain.CounterLikes:    true,
		domain.CounterComments: true,
	},
	domain.CounterEntityComment: {
		domain.CounterLikes: true,
	},
}

func (r *counterRepository) Adjust(ctx context.Context, entity domain.CounterEntity, id int64, field domain.CounterField, delta int64) error {
	if !counterColumns[entity][field] {
		return domain.ErrBadParamInput
	}
	table := string(entity)
	column := string(field)

	if delta >= 0 {
		result := r.DB.WithContext(ctx).
			Table(table).
			Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	}

	// Guarded decrement: refuse to go below zero in the same statement.
	result := r.DB.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("id = ? AND %s + ? >= 0", column), id, delta).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Either the row is gone or the decrement would have gone negative.
	var count int64
	if err := r.DB.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}

	logrus.Warnf("counter %s.%s on id %d would go negative (delta %d), clamping to zero", table, column, id, delta)
	return r.DB.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		UpdateColumn(column, 0).Error
}

func (r *counterRepository) RecomputeUserFollowCounts(ctx context.Context, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Exec(`
		UPDATE user SET
			followers_count = (SELECT COUNT(*) FROM follow WHERE follow.author_id = user.id),
			following_count = (SELECT COUNT(*) FROM follow WHERE follow.follower_id = user.id)
		WHERE id IN ?`, userIDs).Error
}

func (r *counterRepository) RecomputeArticleEngagement(ctx context.Context, articleIDs []int64) error {
	if len(articleIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Exec(`
		UPDATE article SET
			likes_count = (SELECT COUNT(*) FROM user_like WHERE user_like.target_id = article.id AND user_like.target_kind = 'article'),
			comment_count = (SELECT COUNT(*) FROM comment WHERE comment.article_id = article.id)
		WHERE id IN ?`, articleIDs).Error
}

func (r *counterRepository) RecomputeCommentLikes(ctx context.Context, commentIDs []int64) error {
	if len(commentIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Exec(`
		UPDATE comment SET
			likes_count = (SELECT COUNT(*) FROM user_like WHERE user_like.target_id = comment.id AND user_like.target_kind = 'comment')
		WHERE id IN ?`, commentIDs).Error
}
