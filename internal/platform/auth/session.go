package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an issued bearer token.
type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

// SessionStore keeps issued sessions in memory and verifies their tokens.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]Session
}

// SessionOption configures a SessionStore.
type SessionOption func(*SessionStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionStore) {
		s.now = now
	}
}

// NewSessionStore creates a store whose sessions live for ttl.
func NewSessionStore(ttl time.Duration, opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create issues a session for user.
func (s *SessionStore) Create(user User) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	sess := Session{
		Token:     uuid.NewString(),
		User:      user,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[sess.Token] = sess
	return sess
}

// Verify returns the user of a live session.
func (s *SessionStore) Verify(_ context.Context, token string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	if !s.now().Before(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, ErrTokenExpired
	}
	user := sess.User
	return &user, nil
}

// Revoke ends a session. Unknown tokens are ignored.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	for token, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// Compile-time interface check
var _ Verifier = (*SessionStore)(nil)
