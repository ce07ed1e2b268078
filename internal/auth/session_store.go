package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"miniblog/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error
	GetSession(ctx context.Context, tokenID string) (userID uint, username string, err error)
	DeleteSession(ctx context.Context, tokenID string) error
}

// SessionStore handles storage and retrieval of login sessions in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// StoreSession records a login binding in Redis with TTL.
func (s *SessionStore) StoreSession(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	data := map[string]interface{}{
		"user_id":  userID,
		"username": username,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetSession retrieves session data from Redis.
func (s *SessionStore) GetSession(ctx context.Context, tokenID string) (userID uint, username string, err error) {
	key := sessionKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return 0, "", fmt.Errorf("session not found")
	}

	var sessionData map[string]interface{}
	if err := json.Unmarshal(data, &sessionData); err != nil {
		return 0, "", fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := sessionData["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid user_id in session data")
	}
	userID = uint(uid)

	username, ok = sessionData["username"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid username in session data")
	}

	return userID, username, nil
}

// DeleteSession removes a session from Redis. Deleting a session that does
// not exist is a no-op.
func (s *SessionStore) DeleteSession(ctx context.Context, tokenID string) error {
	key := sessionKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}
