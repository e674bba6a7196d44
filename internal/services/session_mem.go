package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemSessions is an in-memory SessionStore for development and testing.
type MemSessions struct {
	mu       sync.Mutex
	sessions map[string]memSession
	byUser   map[uuid.UUID]string
}

type memSession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// NewMemSessions creates an empty in-memory session store.
func NewMemSessions() *MemSessions {
	return &MemSessions{
		sessions: make(map[string]memSession),
		byUser:   make(map[uuid.UUID]string),
	}
}

var _ SessionStore = (*MemSessions)(nil)

func (s *MemSessions) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.byUser[userID]; ok {
		delete(s.sessions, old)
	}
	s.sessions[token] = memSession{userID: userID, expiresAt: time.Now().Add(SessionDuration)}
	s.byUser[userID] = token

	return token, nil
}

func (s *MemSessions) Validate(ctx context.Context, token string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		return uuid.Nil, false, nil
	}
	return sess.userID, true, nil
}

func (s *MemSessions) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		delete(s.byUser, sess.userID)
		delete(s.sessions, token)
	}
	return nil
}
