package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql/model"
)

type playlistRepository struct {
	DB *gorm.DB
}

var _ domain.PlaylistRepository = (*playlistRepository)(nil)

func NewPlaylistRepository(db *gorm.DB) *playlistRepository {
	return &playlistRepository{
		DB: db,
	}
}

func (r *playlistRepository) GetByID(ctx context.Context, id int64) (domain.Playlist, error) {
	var playlist model.Playlist
	err := r.DB.WithContext(ctx).First(&playlist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Playlist{}, domain.ErrNotFound
		}
		return domain.Playlist{}, err
	}

	res := playlist.ToDomain()
	err = r.DB.WithContext(ctx).
		Model(&model.PlaylistArticle{}).
		Where("playlist_id = ?", id).
		Order("created_at").
		Pluck("article_id", &res.ArticleIDs).Error
	if err != nil {
		return domain.Playlist{}, err
	}
	return res, nil
}

func (r *playlistRepository) Store(ctx context.Context, p *domain.Playlist) error {
	playlistModel := model.NewPlaylistFromDomain(p)
	if err := r.DB.WithContext(ctx).Create(playlistModel).Error; err != nil {
		return err
	}
	p.ID = playlistModel.ID
	p.CreatedAt = playlistModel.CreatedAt
	p.UpdatedAt = playlistModel.UpdatedAt
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id, ownerID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrForbidden
		}
		return tx.Where("playlist_id = ?", id).Delete(&model.PlaylistArticle{}).Error
	})
}

func (r *playlistRepository) FetchByOwner(ctx context.Context, ownerID, page, size int64) (domain.Page[domain.Playlist], error) {
	domain.VerifyPage(&page, &size)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.Playlist{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return domain.Page[domain.Playlist]{}, err
	}

	var rows []model.Playlist
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset(domain.PageOffset(page, size)).
		Limit(int(size)).
		Find(&rows).Error
	if err != nil {
		return domain.Page[domain.Playlist]{}, err
	}

	playlists := make([]domain.Playlist, len(rows))
	for i := range rows {
		playlists[i] = rows[i].ToDomain()
	}
	return domain.NewPage(playlists, total, page, size), nil
}

func (r *playlistRepository) AddArticle(ctx context.Context, playlistID, articleID int64) error {
	err := r.DB.WithContext(ctx).Create(&model.PlaylistArticle{
		PlaylistID: playlistID,
		ArticleID:  articleID,
	}).Error
	if err != nil && !isDuplicateEntry(err) {
		return err
	}
	// Already a member: the list is deduplicated, nothing to do.
	return nil
}

func (r *playlistRepository) RemoveArticle(ctx context.Context, playlistID, articleID int64) error {
	return r.DB.WithContext(ctx).
		Where("playlist_id = ? AND article_id = ?", playlistID, articleID).
		Delete(&model.PlaylistArticle{}).Error
}

func (r *playlistRepository) RemoveArticleEverywhere(ctx context.Context, articleID int64) error {
	return r.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&model.PlaylistArticle{}).Error
}

func (r *playlistRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&model.Playlist{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := tx.Where("playlist_id IN ?", ids).Delete(&model.PlaylistArticle{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("owner_id = ?", ownerID).Delete(&model.Playlist{}).Error
	})
}
