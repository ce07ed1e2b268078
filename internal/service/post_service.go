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

// PostService exposes post operations.
type PostService interface {
	CreatePost(ctx context.Context, actor *model.User, title, content string) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	DeletePost(ctx context.Context, actor *model.User, id uint) error
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService builds a PostService.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost publishes a new post authored by the actor.
func (s *postService) CreatePost(ctx context.Context, actor *model.User, title, content string) (*model.Post, error) {
	if !auth.CanPost(actor) {
		return nil, errs.ErrUnauthorized
	}
	if title == "" || content == "" {
		return nil, errs.ErrValidationFailed
	}

	post := &model.Post{
		Title:      title,
		Content:    content,
		DatePosted: time.Now().UTC(),
		UserID:     actor.ID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

// GetPost returns a single post by id.
func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("fetch post: %w", err)
	}
	return post, nil
}

// ListPosts returns all posts newest first.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.List(ctx)
}

// DeletePost removes a post and all its comments. Admin only.
func (s *postService) DeletePost(ctx context.Context, actor *model.User, id uint) error {
	if !auth.IsAuthenticated(actor) {
		return errs.ErrUnauthorized
	}
	if !auth.CanModerate(actor) {
		return errs.ErrForbidden
	}

	if err := s.postRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
