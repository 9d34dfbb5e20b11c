package service

import (
	"context"
	"fmt"

	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/repository"
)

// FeedService handles posting, listing, liking and commenting.
type FeedService interface {
	List(ctx context.Context, page int) (map[string]interface{}, error)
	Get(ctx context.Context, id uint) (map[string]interface{}, error)
	Create(ctx context.Context, author *model.User, in *model.FeedImport, image string) (*model.Feed, error)
	Edit(ctx context.Context, id uint, title, body, image string) error
	Like(ctx context.Context, user *model.User, feedID uint) (liked bool, err error)
	AddComment(ctx context.Context, author *model.User, feedID uint, in *model.CommentImport) (map[string]interface{}, error)
	CommentsOf(ctx context.Context, feedID uint) ([]map[string]interface{}, error)
}

type feedService struct {
	feeds    repository.FeedRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	users    repository.UserRepository
	urls     urls
	pageSize int
}

// NewFeedService creates a new feed service.
func NewFeedService(
	feeds repository.FeedRepository,
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	users repository.UserRepository,
	baseURL string,
	pageSize int,
) FeedService {
	return &feedService{
		feeds:    feeds,
		comments: comments,
		likes:    likes,
		users:    users,
		urls:     newURLs(baseURL),
		pageSize: pageSize,
	}
}

// List returns one page of feeds, newest first.
func (s *feedService) List(ctx context.Context, page int) (map[string]interface{}, error) {
	total, err := s.feeds.Count(ctx)
	if err != nil {
		return nil, err
	}

	p, err := pagination.New(total, page, s.pageSize, s.urls.feeds())
	if err != nil {
		return nil, err
	}

	feeds, err := s.feeds.ListNewest(ctx, p.Offset(), p.PerPage)
	if err != nil {
		return nil, err
	}

	exports := make([]map[string]interface{}, 0, len(feeds))
	for i := range feeds {
		export, err := s.exportFeed(ctx, &feeds[i])
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}
	return p.Envelope("feeds", exports), nil
}

// Get returns a feed together with its comments.
func (s *feedService) Get(ctx context.Context, id uint) (map[string]interface{}, error) {
	feed, err := s.feeds.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	export, err := s.exportFeed(ctx, feed)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentsOf(ctx, feed.ID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"feed":     export,
		"comments": comments,
	}, nil
}

// Create stores a new feed for the author. An empty image leaves the field
// unset.
func (s *feedService) Create(ctx context.Context, author *model.User, in *model.FeedImport, image string) (*model.Feed, error) {
	feed := &model.Feed{AuthorID: author.ID}
	if err := in.Apply(feed); err != nil {
		return nil, err
	}
	if image != "" {
		feed.Image = image
	}
	if err := s.feeds.Create(ctx, feed); err != nil {
		return nil, fmt.Errorf("create feed: %w", err)
	}
	return feed, nil
}

// Edit replaces title and body, and the image when a new one was stored.
func (s *feedService) Edit(ctx context.Context, id uint, title, body, image string) error {
	feed, err := s.feeds.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	feed.Title = title
	feed.Body = body
	if image != "" {
		feed.Image = image
	}
	if err := s.feeds.Update(ctx, feed); err != nil {
		return fmt.Errorf("update feed: %w", err)
	}
	return nil
}

// Like records the user's like unless one already exists; liking twice is a
// benign no-op reported via the liked flag.
func (s *feedService) Like(ctx context.Context, user *model.User, feedID uint) (bool, error) {
	feed, err := s.feeds.FindByID(ctx, feedID)
	if err != nil {
		return false, notFound(err)
	}

	exists, err := s.likes.Exists(ctx, user.ID, feed.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	like := &model.Like{UserID: user.ID, FeedID: feed.ID}
	if err := s.likes.Create(ctx, like); err != nil {
		return false, fmt.Errorf("create like: %w", err)
	}
	return true, nil
}

// AddComment attaches a comment to the feed and returns its export.
func (s *feedService) AddComment(ctx context.Context, author *model.User, feedID uint, in *model.CommentImport) (map[string]interface{}, error) {
	feed, err := s.feeds.FindByID(ctx, feedID)
	if err != nil {
		return nil, notFound(err)
	}

	comment := &model.Comment{AuthorID: author.ID, FeedID: feed.ID}
	if err := in.Apply(comment); err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.exportComment(ctx, comment)
}

// CommentsOf returns all exports for the feed's comments in posting order.
func (s *feedService) CommentsOf(ctx context.Context, feedID uint) ([]map[string]interface{}, error) {
	comments, err := s.comments.ListByFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}

	exports := make([]map[string]interface{}, 0, len(comments))
	for i := range comments {
		export, err := s.exportComment(ctx, &comments[i])
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}
	return exports, nil
}

// exportFeed builds the feed payload. Like and comment counts are queried
// fresh on every export, never cached.
func (s *feedService) exportFeed(ctx context.Context, feed *model.Feed) (map[string]interface{}, error) {
	likes, err := s.likes.CountByFeed(ctx, feed.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.CountByFeed(ctx, feed.ID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, feed.AuthorID)
	if err != nil {
		return nil, notFound(err)
	}

	return map[string]interface{}{
		"id":              feed.ID,
		"likes":           likes,
		"comments":        comments,
		"self_url":        s.urls.feed(feed.ID),
		"author_id":       author.ID,
		"author_name":     author.Name,
		"author_image":    s.urls.userImage(author.Image),
		"author_company":  author.Company,
		"author_position": author.Position,
		"title":           feed.Title,
		"body":            feed.Body,
		"created_on":      feed.Timestamp,
		"image":           s.urls.feedImage(feed.Image),
		"comments_url":    s.urls.feedComments(feed.ID),
	}, nil
}

func (s *feedService) exportComment(ctx context.Context, comment *model.Comment) (map[string]interface{}, error) {
	author, err := s.users.FindByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, notFound(err)
	}
	return map[string]interface{}{
		"body":         comment.Body,
		"author_image": s.urls.userImage(author.Image),
		"author_name":  author.Name,
		"author_id":    author.ID,
		"created_on":   comment.Timestamp,
	}, nil
}
