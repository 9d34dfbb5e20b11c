package service

import (
	"context"
	"fmt"

	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/repository"
)

// MessageService handles the private message boxes and reply threads.
type MessageService interface {
	Inbox(ctx context.Context, user *model.User, page int) (map[string]interface{}, error)
	Outbox(ctx context.Context, user *model.User, page int) (map[string]interface{}, error)
	Total(ctx context.Context, user *model.User) (int64, error)
	Get(ctx context.Context, user *model.User, id uint) (map[string]interface{}, error)
	Replies(ctx context.Context, user *model.User, id uint) ([]map[string]interface{}, error)
	Send(ctx context.Context, sender *model.User, in *model.MessageImport) (*model.Message, string, error)
	Reply(ctx context.Context, author *model.User, messageID uint, in *model.ReplyImport) (map[string]interface{}, error)
	Delete(ctx context.Context, user *model.User, id uint) error
}

type messageService struct {
	messages repository.MessageRepository
	replies  repository.ReplyRepository
	users    repository.UserRepository
	urls     urls
	pageSize int
}

// NewMessageService creates a new message service.
func NewMessageService(
	messages repository.MessageRepository,
	replies repository.ReplyRepository,
	users repository.UserRepository,
	baseURL string,
	pageSize int,
) MessageService {
	return &messageService{
		messages: messages,
		replies:  replies,
		users:    users,
		urls:     newURLs(baseURL),
		pageSize: pageSize,
	}
}

// Inbox returns one page of messages received by the user.
func (s *messageService) Inbox(ctx context.Context, user *model.User, page int) (map[string]interface{}, error) {
	total, err := s.messages.CountByReceiver(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	p, err := pagination.New(total, page, s.pageSize, s.urls.inbox())
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByReceiver(ctx, user.ID, p.Offset(), p.PerPage)
	if err != nil {
		return nil, err
	}
	return s.envelope(ctx, user, p, messages)
}

// Outbox returns one page of messages sent by the user.
func (s *messageService) Outbox(ctx context.Context, user *model.User, page int) (map[string]interface{}, error) {
	total, err := s.messages.CountBySender(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	p, err := pagination.New(total, page, s.pageSize, s.urls.outbox())
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListBySender(ctx, user.ID, p.Offset(), p.PerPage)
	if err != nil {
		return nil, err
	}
	return s.envelope(ctx, user, p, messages)
}

func (s *messageService) envelope(ctx context.Context, viewer *model.User, p *pagination.Page, messages []model.Message) (map[string]interface{}, error) {
	exports := make([]map[string]interface{}, 0, len(messages))
	for i := range messages {
		export, err := s.exportMessage(ctx, viewer, &messages[i])
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}
	return p.Envelope("messages", exports), nil
}

// Total counts the user's inbox and outbox together.
func (s *messageService) Total(ctx context.Context, user *model.User) (int64, error) {
	sent, err := s.messages.CountBySender(ctx, user.ID)
	if err != nil {
		return 0, err
	}
	received, err := s.messages.CountByReceiver(ctx, user.ID)
	if err != nil {
		return 0, err
	}
	return sent + received, nil
}

// Get returns the message with its replies and marks it read. Only the
// sender or the receiver may view it.
func (s *messageService) Get(ctx context.Context, user *model.User, id uint) (map[string]interface{}, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !message.Involves(user.ID) {
		return nil, apperrors.ErrForbidden
	}

	message.Read = true
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}

	export, err := s.exportMessage(ctx, user, message)
	if err != nil {
		return nil, err
	}
	replies, err := s.replyExports(ctx, user, message.ID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": export,
		"replies": replies,
	}, nil
}

// Replies returns the reply exports for a message the user is part of.
func (s *messageService) Replies(ctx context.Context, user *model.User, id uint) ([]map[string]interface{}, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !message.Involves(user.ID) {
		return nil, apperrors.ErrForbidden
	}
	return s.replyExports(ctx, user, message.ID)
}

// Send stores a new message and returns it with its canonical URL.
func (s *messageService) Send(ctx context.Context, sender *model.User, in *model.MessageImport) (*model.Message, string, error) {
	message := &model.Message{SenderID: sender.ID}
	if err := in.Apply(message); err != nil {
		return nil, "", err
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, "", fmt.Errorf("create message: %w", err)
	}
	return message, s.urls.message(message.ID), nil
}

// Reply attaches a reply to the thread and resets the message to unread:
// whichever party did not just post now has unseen content.
func (s *messageService) Reply(ctx context.Context, author *model.User, messageID uint, in *model.ReplyImport) (map[string]interface{}, error) {
	message, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, notFound(err)
	}

	// validate before touching anything in the store
	reply := &model.Reply{AuthorID: author.ID, MessageID: message.ID}
	if err := in.Apply(reply); err != nil {
		return nil, err
	}

	message.Read = false
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, fmt.Errorf("reset read: %w", err)
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	return s.exportReply(ctx, author, reply)
}

// Delete removes the message. Only the sender or the receiver may do so.
func (s *messageService) Delete(ctx context.Context, user *model.User, id uint) error {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !message.Involves(user.ID) {
		return apperrors.ErrForbidden
	}
	return s.messages.Delete(ctx, message)
}

func (s *messageService) replyExports(ctx context.Context, viewer *model.User, messageID uint) ([]map[string]interface{}, error) {
	replies, err := s.replies.ListByMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	exports := make([]map[string]interface{}, 0, len(replies))
	for i := range replies {
		export, err := s.exportReply(ctx, viewer, &replies[i])
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}
	return exports, nil
}

func (s *messageService) exportMessage(ctx context.Context, viewer *model.User, message *model.Message) (map[string]interface{}, error) {
	senderImage, err := s.userImage(ctx, message.SenderID)
	if err != nil {
		return nil, err
	}
	receiverImage, err := s.userImage(ctx, message.ReceiverID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":             message.ID,
		"isMe":           message.SenderID == viewer.ID,
		"title":          message.Title,
		"body":           message.Body,
		"created_on":     message.CreatedOn,
		"read":           message.Read,
		"sender_id":      message.SenderID,
		"receiver_id":    message.ReceiverID,
		"sender_image":   senderImage,
		"receiver_image": receiverImage,
	}, nil
}

func (s *messageService) exportReply(ctx context.Context, viewer *model.User, reply *model.Reply) (map[string]interface{}, error) {
	authorImage, err := s.userImage(ctx, reply.AuthorID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":           reply.ID,
		"isMe":         reply.AuthorID == viewer.ID,
		"body":         reply.Body,
		"timestamp":    reply.Timestamp,
		"author_id":    reply.AuthorID,
		"message_id":   reply.MessageID,
		"sender_image": authorImage,
	}, nil
}

func (s *messageService) userImage(ctx context.Context, userID uint) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", notFound(err)
	}
	return s.urls.userImage(user.Image), nil
}
