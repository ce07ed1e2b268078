package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "miniblog/internal/errors"
	"miniblog/internal/model"
)

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID uint, limit, offset int) ([]model.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func postExists(m *MockPostRepository, id uint) {
	m.On("FindByID", mock.Anything, id).Return(&model.Post{ID: id, Title: "t", Content: "c"}, nil)
}

func TestCommentService_CreateComment(t *testing.T) {
	alice := &model.User{ID: 7, Username: "alice"}

	t.Run("anonymous comment keeps the guest name", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)
		postExists(mockPosts, 1)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), nil, 1, "hi", "Bob", nil)

		assert.NoError(t, err)
		assert.Nil(t, comment.UserID)
		if assert.NotNil(t, comment.GuestName) {
			assert.Equal(t, "Bob", *comment.GuestName)
		}
		assert.True(t, comment.CommentAuthor().IsGuest())
	})

	t.Run("empty guest name is stored verbatim", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)
		postExists(mockPosts, 1)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), nil, 1, "hi", "", nil)

		assert.NoError(t, err)
		assert.Nil(t, comment.UserID)
		if assert.NotNil(t, comment.GuestName) {
			assert.Equal(t, "", *comment.GuestName)
		}
	})

	t.Run("authenticated comment discards the guest name", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)
		postExists(mockPosts, 1)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), alice, 1, "hi", "Bob", nil)

		assert.NoError(t, err)
		if assert.NotNil(t, comment.UserID) {
			assert.Equal(t, alice.ID, *comment.UserID)
		}
		assert.Nil(t, comment.GuestName)
		assert.False(t, comment.CommentAuthor().IsGuest())
	})

	t.Run("reply records the parent id", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)
		postExists(mockPosts, 1)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		parentID := uint(42)
		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), alice, 1, "hi", "", &parentID)

		assert.NoError(t, err)
		if assert.NotNil(t, comment.ParentID) {
			assert.Equal(t, parentID, *comment.ParentID)
		}
	})

	t.Run("empty content fails validation", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)

		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), nil, 1, "", "Bob", nil)

		assert.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Nil(t, comment)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockComments, mockPosts)
		comment, err := svc.CreateComment(context.Background(), nil, 99, "hi", "Bob", nil)

		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, comment)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	t.Run("requests a fixed-size page", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockComments.On("FindByPost", mock.Anything, uint(1), CommentsPerPage, 2*CommentsPerPage).
			Return([]model.Comment{}, nil)

		svc := NewCommentService(mockComments, new(MockPostRepository))
		comments, err := svc.ListComments(context.Background(), 1, 3)

		assert.NoError(t, err)
		assert.Empty(t, comments)
		mockComments.AssertExpectations(t)
	})

	t.Run("page below one is invalid", func(t *testing.T) {
		svc := NewCommentService(new(MockCommentRepository), new(MockPostRepository))

		for _, page := range []int{0, -1} {
			comments, err := svc.ListComments(context.Background(), 1, page)
			assert.ErrorIs(t, err, errs.ErrValidationFailed)
			assert.Nil(t, comments)
		}
	})

	t.Run("deleted post reads as an empty page, not an error", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockComments.On("FindByPost", mock.Anything, uint(99), CommentsPerPage, 0).
			Return([]model.Comment{}, nil)

		svc := NewCommentService(mockComments, new(MockPostRepository))
		comments, err := svc.ListComments(context.Background(), 99, 1)

		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	admin := &model.User{ID: 1, Username: "admin", IsAdmin: true}
	alice := &model.User{ID: 7, Username: "alice"}

	t.Run("admin deletes", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockComments.On("Delete", mock.Anything, uint(5)).Return(nil)

		svc := NewCommentService(mockComments, new(MockPostRepository))
		assert.NoError(t, svc.DeleteComment(context.Background(), admin, 5))
		mockComments.AssertExpectations(t)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		mockComments := new(MockCommentRepository)

		svc := NewCommentService(mockComments, new(MockPostRepository))
		assert.ErrorIs(t, svc.DeleteComment(context.Background(), alice, 5), errs.ErrForbidden)
		mockComments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		svc := NewCommentService(new(MockCommentRepository), new(MockPostRepository))
		assert.ErrorIs(t, svc.DeleteComment(context.Background(), nil, 5), errs.ErrUnauthorized)
	})

	t.Run("already gone is reported, not fatal", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockComments.On("Delete", mock.Anything, uint(5)).Return(gorm.ErrRecordNotFound)

		svc := NewCommentService(mockComments, new(MockPostRepository))
		assert.ErrorIs(t, svc.DeleteComment(context.Background(), admin, 5), errs.ErrNotFound)
	})
}
