package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// MessageRepository defines message persistence operations. Delete is a hard
// delete; messages are the only entity that is ever removed.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Update(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	ListByReceiver(ctx context.Context, userID uint, offset, limit int) ([]model.Message, error)
	ListBySender(ctx context.Context, userID uint, offset, limit int) ([]model.Message, error)
	CountByReceiver(ctx context.Context, userID uint) (int64, error)
	CountBySender(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, message *model.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Update(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ListByReceiver(ctx context.Context, userID uint, offset, limit int) ([]model.Message, error) {
	return r.list(ctx, "receiver_id = ?", userID, offset, limit)
}

func (r *messageRepository) ListBySender(ctx context.Context, userID uint, offset, limit int) ([]model.Message, error) {
	return r.list(ctx, "sender_id = ?", userID, offset, limit)
}

func (r *messageRepository) list(ctx context.Context, cond string, userID uint, offset, limit int) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where(cond, userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) CountByReceiver(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "receiver_id = ?", userID)
}

func (r *messageRepository) CountBySender(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "sender_id = ?", userID)
}

func (r *messageRepository) count(ctx context.Context, cond string, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where(cond, userID).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) Delete(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Delete(message).Error
}
