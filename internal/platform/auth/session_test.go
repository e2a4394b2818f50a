package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSessionLifecycle(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	store := NewSessionStore(time.Hour, WithClock(clock.Now))
	ctx := context.Background()

	sess := store.Create(User{Username: "admin", Admin: true})
	if want := clock.Now().Add(time.Hour); !sess.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %s, got %s", want, sess.ExpiresAt)
	}

	user, err := store.Verify(ctx, sess.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("expected admin, got %s", user.Username)
	}

	clock.Advance(time.Hour)
	if _, err := store.Verify(ctx, sess.Token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if _, err := store.Verify(ctx, sess.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected expired session to be dropped, got %v", err)
	}
}

func TestSessionRevoke(t *testing.T) {
	store := NewSessionStore(time.Hour)
	sess := store.Create(User{Username: "admin"})

	store.Revoke(sess.Token)
	store.Revoke("unknown")

	if _, err := store.Verify(context.Background(), sess.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after revoke, got %v", err)
	}
}

func TestSessionCreatePrunesExpired(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewSessionStore(time.Minute, WithClock(clock.Now))

	store.Create(User{Username: "a"})
	store.Create(User{Username: "b"})
	clock.Advance(2 * time.Minute)
	store.Create(User{Username: "c"})

	if sessionCount(store) != 1 {
		t.Errorf("expected expired sessions to be pruned, got %d", sessionCount(store))
	}
}

func TestSessionTokensUnique(t *testing.T) {
	store := NewSessionStore(time.Hour)
	seen := make(map[string]bool)
	for range 50 {
		sess := store.Create(User{Username: "admin"})
		if seen[sess.Token] {
			t.Fatalf("duplicate token %s", sess.Token)
		}
		seen[sess.Token] = true
	}
}

func TestSessionVerifyReturnsCopy(t *testing.T) {
	store := NewSessionStore(time.Hour)
	sess := store.Create(User{Username: "admin", Admin: true})

	user, _ := store.Verify(context.Background(), sess.Token)
	user.Admin = false

	again, _ := store.Verify(context.Background(), sess.Token)
	if !again.Admin {
		t.Error("expected stored session to be unaffected by caller mutation")
	}
}

func sessionCount(s *SessionStore) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
