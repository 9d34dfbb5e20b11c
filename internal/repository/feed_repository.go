package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// FeedRepository defines feed persistence operations.
type FeedRepository interface {
	Create(ctx context.Context, feed *model.Feed) error
	Update(ctx context.Context, feed *model.Feed) error
	FindByID(ctx context.Context, id uint) (*model.Feed, error)
	ListNewest(ctx context.Context, offset, limit int) ([]model.Feed, error)
	Count(ctx context.Context) (int64, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository builds a GORM-backed repository.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(ctx context.Context, feed *model.Feed) error {
	return r.db.WithContext(ctx).Create(feed).Error
}

func (r *feedRepository) Update(ctx context.Context, feed *model.Feed) error {
	return r.db.WithContext(ctx).Save(feed).Error
}

func (r *feedRepository) FindByID(ctx context.Context, id uint) (*model.Feed, error) {
	var feed model.Feed
	if err := r.db.WithContext(ctx).First(&feed, id).Error; err != nil {
		return nil, err
	}
	return &feed, nil
}

func (r *feedRepository) ListNewest(ctx context.Context, offset, limit int) ([]model.Feed, error) {
	var feeds []model.Feed
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&feeds).Error
	if err != nil {
		return nil, err
	}
	return feeds, nil
}

func (r *feedRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Feed{}).Count(&count).Error
	return count, err
}
