package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"miniblog/internal/auth"
	errs "miniblog/internal/errors"
	"miniblog/internal/model"
	"miniblog/internal/repository"
)

const bcryptCost = 10

const (
	// AdminUsername is the bootstrap administrator account name.
	AdminUsername = "admin"
	// defaultAdminPassword is the fixed first-run password for the bootstrap
	// admin. It is hashed exactly like a normal registration.
	defaultAdminPassword = "admin123"
)

// AuthService handles registration, credential verification and sessions.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	// Bootstrap creates the admin account if it does not exist yet.
	// Idempotent: a second run changes nothing.
	Bootstrap(ctx context.Context) error
}

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Register creates a new non-admin user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errs.ErrValidationFailed
	}

	// Exact, case-sensitive username match.
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errs.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsAdmin:      false,
		Avatar:       model.DefaultAvatar,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration of the same name: the unique constraint
		// is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and opens a session. An unknown username and a
// wrong password fail with the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	tokenID, token, err := s.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessionStore.StoreSession(ctx, tokenID, user.ID, user.Username, auth.SessionTokenExpiry); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

// Logout drops the session binding. Logging out with no active session is a
// no-op, not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessionStore.DeleteSession(ctx, claims.ID)
}

// CurrentUser resolves a session token back to a live user record. The user
// is re-fetched on every call: an admin may have deleted the account since
// login, in which case the session is dropped.
func (s *authService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	userID, _, err := s.sessionStore.GetSession(ctx, claims.ID)
	if err != nil || userID != claims.UserID {
		return nil, errs.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = s.sessionStore.DeleteSession(ctx, claims.ID)
			return nil, errs.ErrUnauthorized
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	return user, nil
}

// Bootstrap ensures the admin account exists.
func (s *authService) Bootstrap(ctx context.Context) error {
	_, err := s.userRepo.FindByUsername(ctx, AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Username:     AdminUsername,
		PasswordHash: string(hashedPassword),
		IsAdmin:      true,
		Avatar:       model.DefaultAvatar,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		// Two instances racing the first run: whoever loses the unique
		// constraint is fine with the existing admin.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}
