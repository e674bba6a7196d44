// Package services holds the application services: session management,
// authentication, and workout logging.
package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days.
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions.
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix is the Redis key prefix for user->session mapping.
	UserSessionKeyPrefix = "user_session:"
)

// SessionStore binds opaque tokens to user identities. Establishing and
// destroying sessions is the only mutation of request-scoped identity state
// in the system; no other component creates authenticated identity.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Validate(ctx context.Context, token string) (uuid.UUID, bool, error)
	Invalidate(ctx context.Context, token string) error
}

// RedisSessions stores sessions in Redis with a TTL. A user has at most one
// active session: creating a new one invalidates the previous token so the
// expiry timer always restarts from the latest login.
type RedisSessions struct {
	client *redis.Client
}

// NewRedisSessions creates a RedisSessions backed by the given client.
func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

var _ SessionStore = (*RedisSessions)(nil)

// Create generates a secure token and stores the session with a 7-day expiration.
func (s *RedisSessions) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	// Invalidate any existing session for this user first
	_ = s.invalidateUserSession(ctx, userID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	sessionKey := SessionKeyPrefix + token
	userSessionKey := UserSessionKeyPrefix + userID.String()

	if err := s.client.Set(ctx, sessionKey, userID.String(), SessionDuration).Err(); err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, userSessionKey, token, SessionDuration).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Validate checks if a session token is valid and returns the user ID.
func (s *RedisSessions) Validate(ctx context.Context, token string) (uuid.UUID, bool, error) {
	if token == "" {
		return uuid.Nil, false, nil
	}

	userIDStr, err := s.client.Get(ctx, SessionKeyPrefix+token).Result()
	if err != nil {
		// Missing key and transport errors both read as "no session"
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}

	return userID, true, nil
}

// Invalidate removes a session and its user mapping from Redis.
func (s *RedisSessions) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionKey := SessionKeyPrefix + token

	userIDStr, err := s.client.Get(ctx, sessionKey).Result()
	if err == nil && userIDStr != "" {
		s.client.Del(ctx, UserSessionKeyPrefix+userIDStr)
	}

	return s.client.Del(ctx, sessionKey).Err()
}

func (s *RedisSessions) invalidateUserSession(ctx context.Context, userID uuid.UUID) error {
	userSessionKey := UserSessionKeyPrefix + userID.String()

	token, err := s.client.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		s.client.Del(ctx, SessionKeyPrefix+token)
	}

	return s.client.Del(ctx, userSessionKey).Err()
}
