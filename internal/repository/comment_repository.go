package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByFeed(ctx context.Context, feedID uint) ([]model.Comment, error)
	CountByFeed(ctx context.Context, feedID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByFeed(ctx context.Context, feedID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("feed_id = ?", feedID).
		Order("timestamp").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountByFeed(ctx context.Context, feedID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("feed_id = ?", feedID).
		Count(&count).Error
	return count, err
}
