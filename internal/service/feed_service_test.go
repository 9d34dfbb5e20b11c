package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
)

const testBaseURL = "http://localhost:8080"

func newFeedServiceForTest(feeds *MockFeedRepository, comments *MockCommentRepository, likes *MockLikeRepository, users *MockUserRepository) FeedService {
	return NewFeedService(feeds, comments, likes, users, testBaseURL, 10)
}

func TestFeedService_Like(t *testing.T) {
	user := &model.User{ID: 3}
	feed := &model.Feed{ID: 9, AuthorID: 1}

	tests := []struct {
		name          string
		setupMocks    func(*MockFeedRepository, *MockLikeRepository)
		expectedLiked bool
		expectedError error
	}{
		{
			name: "first like is recorded",
			setupMocks: func(f *MockFeedRepository, l *MockLikeRepository) {
				f.On("FindByID", mock.Anything, uint(9)).Return(feed, nil)
				l.On("Exists", mock.Anything, uint(3), uint(9)).Return(false, nil)
				l.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil)
			},
			expectedLiked: true,
		},
		{
			name: "second like is a benign no-op",
			setupMocks: func(f *MockFeedRepository, l *MockLikeRepository) {
				f.On("FindByID", mock.Anything, uint(9)).Return(feed, nil)
				l.On("Exists", mock.Anything, uint(3), uint(9)).Return(true, nil)
			},
			expectedLiked: false,
		},
		{
			name: "unknown feed",
			setupMocks: func(f *MockFeedRepository, l *MockLikeRepository) {
				f.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedRepo := new(MockFeedRepository)
			likeRepo := new(MockLikeRepository)
			tt.setupMocks(feedRepo, likeRepo)

			svc := newFeedServiceForTest(feedRepo, new(MockCommentRepository), likeRepo, new(MockUserRepository))
			liked, err := svc.Like(context.Background(), user, 9)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedLiked, liked)
			// no Create call must have happened on the duplicate path
			likeRepo.AssertExpectations(t)
		})
	}
}

func TestFeedService_Create_MissingFields(t *testing.T) {
	title := "has a title"
	body := "has a body"

	tests := []struct {
		name          string
		payload       model.FeedImport
		expectedField string
	}{
		{name: "missing title", payload: model.FeedImport{Body: &body}, expectedField: "title"},
		{name: "missing body", payload: model.FeedImport{Title: &title}, expectedField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFeedServiceForTest(new(MockFeedRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockUserRepository))
			_, err := svc.Create(context.Background(), &model.User{ID: 1}, &tt.payload, "")

			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.expectedField, ve.Field)
		})
	}
}

func TestFeedService_ExportCountsAreFresh(t *testing.T) {
	feed := &model.Feed{ID: 4, Title: "t", Body: "b", AuthorID: 2, Timestamp: time.Now()}
	author := &model.User{ID: 2, Name: "Author", Image: "a.jpg", Company: "Firm", Position: "Partner"}

	feedRepo := new(MockFeedRepository)
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)
	userRepo := new(MockUserRepository)

	feedRepo.On("FindByID", mock.Anything, uint(4)).Return(feed, nil)
	commentRepo.On("ListByFeed", mock.Anything, uint(4)).Return([]model.Comment{}, nil)
	userRepo.On("FindByID", mock.Anything, uint(2)).Return(author, nil)
	// counts come from the store on every export, not from any cache
	likeRepo.On("CountByFeed", mock.Anything, uint(4)).Return(int64(5), nil).Once()
	commentRepo.On("CountByFeed", mock.Anything, uint(4)).Return(int64(2), nil).Once()

	svc := newFeedServiceForTest(feedRepo, commentRepo, likeRepo, userRepo)
	body, err := svc.Get(context.Background(), 4)
	assert.NoError(t, err)

	export := body["feed"].(map[string]interface{})
	assert.Equal(t, int64(5), export["likes"])
	assert.Equal(t, int64(2), export["comments"])
	assert.Equal(t, testBaseURL+"/api/feed/4", export["self_url"])
	assert.Equal(t, testBaseURL+"/static/images/users/a.jpg", export["author_image"])
	likeRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestFeedService_ExportImageSentinel(t *testing.T) {
	feed := &model.Feed{ID: 6, Title: "t", Body: "b", AuthorID: 2}
	author := &model.User{ID: 2, Name: "Bare"}

	feedRepo := new(MockFeedRepository)
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)
	userRepo := new(MockUserRepository)

	feedRepo.On("FindByID", mock.Anything, uint(6)).Return(feed, nil)
	commentRepo.On("ListByFeed", mock.Anything, uint(6)).Return([]model.Comment{}, nil)
	commentRepo.On("CountByFeed", mock.Anything, uint(6)).Return(int64(0), nil)
	likeRepo.On("CountByFeed", mock.Anything, uint(6)).Return(int64(0), nil)
	userRepo.On("FindByID", mock.Anything, uint(2)).Return(author, nil)

	svc := newFeedServiceForTest(feedRepo, commentRepo, likeRepo, userRepo)
	body, err := svc.Get(context.Background(), 6)
	assert.NoError(t, err)

	export := body["feed"].(map[string]interface{})
	assert.Equal(t, ImageSentinel, export["image"])
	assert.Equal(t, ImageSentinel, export["author_image"])
}

func TestFeedService_CommentRoundTrip(t *testing.T) {
	feed := &model.Feed{ID: 8, AuthorID: 1}
	author := &model.User{ID: 5, Name: "Commenter", Image: "c.png"}
	commentBody := "a considered remark"
	before := time.Now()

	feedRepo := new(MockFeedRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)

	feedRepo.On("FindByID", mock.Anything, uint(8)).Return(feed, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
		c := args.Get(1).(*model.Comment)
		c.ID = 1
		c.Timestamp = time.Now().UTC()
	}).Return(nil)
	userRepo.On("FindByID", mock.Anything, uint(5)).Return(author, nil)

	svc := newFeedServiceForTest(feedRepo, commentRepo, new(MockLikeRepository), userRepo)
	export, err := svc.AddComment(context.Background(), author, 8, &model.CommentImport{Body: &commentBody})
	assert.NoError(t, err)

	assert.Equal(t, commentBody, export["body"])
	assert.NotEqual(t, ImageSentinel, export["author_image"])
	assert.NotEmpty(t, export["author_image"])
	created := export["created_on"].(time.Time)
	assert.False(t, created.Before(before.Add(-time.Second)))
}
