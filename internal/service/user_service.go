package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"miniblog/internal/auth"
	errs "miniblog/internal/errors"
	"miniblog/internal/model"
	"miniblog/internal/repository"
)

// UserService exposes the admin-facing user operations.
type UserService interface {
	ListUsers(ctx context.Context, actor *model.User) ([]model.User, error)
	// DeleteUser removes a user together with their posts, the comments on
	// those posts, and the user's own comments.
	DeleteUser(ctx context.Context, actor *model.User, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	if !auth.IsAuthenticated(actor) {
		return nil, errs.ErrUnauthorized
	}
	if !auth.CanModerate(actor) {
		return nil, errs.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, actor *model.User, id uint) error {
	if !auth.IsAuthenticated(actor) {
		return errs.ErrUnauthorized
	}
	if !auth.CanModerate(actor) {
		return errs.ErrForbidden
	}

	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
