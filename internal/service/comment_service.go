package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"miniblog/internal/auth"
	errs "miniblog/internal/errors"
	"miniblog/internal/model"
	"miniblog/internal/repository"
)

// CommentsPerPage is the fixed page size for comment listings.
const CommentsPerPage = 5

// CommentService exposes comment operations.
type CommentService interface {
	CreateComment(ctx context.Context, actor *model.User, postID uint, content, guestName string, parentID *uint) (*model.Comment, error)
	// ListComments returns one page of a post's comments, newest first.
	// Pages are 1-based; a page past the end is empty, page < 1 is invalid.
	ListComments(ctx context.Context, postID uint, page int) ([]model.Comment, error)
	DeleteComment(ctx context.Context, actor *model.User, id uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment adds a comment to a post. A logged-in actor always comments
// as themselves and any supplied guest name is discarded; an anonymous actor
// comments under the guest name as given, which may be empty.
//
// Known gap kept from the original system: parentID is stored as supplied.
// It is not checked to belong to the same post, and deleting a parent
// comment leaves replies in place with a dangling parent_id.
func (s *commentService) CreateComment(ctx context.Context, actor *model.User, postID uint, content, guestName string, parentID *uint) (*model.Comment, error) {
	if !auth.CanComment(actor) {
		return nil, errs.ErrUnauthorized
	}
	if content == "" {
		return nil, errs.ErrValidationFailed
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("fetch post: %w", err)
	}

	var author model.Author
	if auth.IsAuthenticated(actor) {
		author = model.RegisteredAuthor(actor.ID)
	} else {
		author = model.GuestAuthor(guestName)
	}

	comment := &model.Comment{
		Content:    content,
		DatePosted: time.Now().UTC(),
		UserID:     author.UserID,
		GuestName:  author.GuestName,
		PostID:     postID,
		ParentID:   parentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// ListComments returns the requested page of comments for a post. A post
// with no comments, including one that was just deleted, yields an empty
// page rather than an error.
func (s *commentService) ListComments(ctx context.Context, postID uint, page int) ([]model.Comment, error) {
	if page < 1 {
		return nil, errs.ErrValidationFailed
	}

	offset := (page - 1) * CommentsPerPage
	comments, err := s.commentRepo.FindByPost(ctx, postID, CommentsPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a single comment. Admin only. Replies are not
// cascaded.
func (s *commentService) DeleteComment(ctx context.Context, actor *model.User, id uint) error {
	if !auth.IsAuthenticated(actor) {
		return errs.ErrUnauthorized
	}
	if !auth.CanModerate(actor) {
		return errs.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
