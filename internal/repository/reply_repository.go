package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// ReplyRepository defines reply persistence operations.
type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	ListByMessage(ctx context.Context, messageID uint) ([]model.Reply, error)
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository builds a GORM-backed repository.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepository) ListByMessage(ctx context.Context, messageID uint) ([]model.Reply, error) {
	var replies []model.Reply
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("timestamp").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}
