package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	Exists(ctx context.Context, userID, feedID uint) (bool, error)
	CountByFeed(ctx context.Context, feedID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, feedID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND feed_id = ?", userID, feedID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByFeed(ctx context.Context, feedID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("feed_id = ?", feedID).
		Count(&count).Error
	return count, err
}
