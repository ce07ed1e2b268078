package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "miniblog/internal/errors"
	"miniblog/internal/model"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) FindByAuthor(ctx context.Context, userID uint) ([]model.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	alice := &model.User{ID: 7, Username: "alice"}

	tests := []struct {
		name          string
		actor         *model.User
		title         string
		content       string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:    "successful create",
			actor:   alice,
			title:   "Hello",
			content: "<p>world</p>",
			setupMock: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "anonymous cannot post",
			actor:         nil,
			title:         "Hello",
			content:       "world",
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errs.ErrUnauthorized,
		},
		{
			name:          "empty title",
			actor:         alice,
			title:         "",
			content:       "world",
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errs.ErrValidationFailed,
		},
		{
			name:          "empty content",
			actor:         alice,
			title:         "Hello",
			content:       "",
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errs.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			svc := NewPostService(mockRepo)
			post, err := svc.CreatePost(context.Background(), tt.actor, tt.title, tt.content)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, post)
				// Failed authorization or validation must not touch storage.
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				assert.Equal(t, tt.actor.ID, post.UserID)
				assert.WithinDuration(t, time.Now().UTC(), post.DatePosted, 5*time.Second)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	now := time.Now().UTC()
	mockRepo := new(MockPostRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Post{
		{ID: 3, DatePosted: now},
		{ID: 1, DatePosted: now.Add(-time.Hour)},
		{ID: 2, DatePosted: now.Add(-2 * time.Hour)},
	}, nil)

	svc := NewPostService(mockRepo)
	posts, err := svc.ListPosts(context.Background())

	assert.NoError(t, err)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].DatePosted.Before(posts[i].DatePosted))
	}
}

func TestPostService_DeletePost(t *testing.T) {
	admin := &model.User{ID: 1, Username: "admin", IsAdmin: true}
	alice := &model.User{ID: 7, Username: "alice"}

	tests := []struct {
		name          string
		actor         *model.User
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:  "admin deletes",
			actor: admin,
			setupMock: func(m *MockPostRepository) {
				m.On("DeleteCascade", mock.Anything, uint(5)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "non-admin is forbidden",
			actor:         alice,
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errs.ErrForbidden,
		},
		{
			name:          "anonymous is unauthorized",
			actor:         nil,
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errs.ErrUnauthorized,
		},
		{
			name:  "already gone is reported, not fatal",
			actor: admin,
			setupMock: func(m *MockPostRepository) {
				m.On("DeleteCascade", mock.Anything, uint(5)).Return(gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			svc := NewPostService(mockRepo)
			err := svc.DeletePost(context.Background(), tt.actor, 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
