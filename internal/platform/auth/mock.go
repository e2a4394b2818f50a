package auth

import (
	"context"
)

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *User
	Error error
}

// Verify returns the configured user or error.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestAdmin returns a standard admin user.
func TestAdmin() *User {
	return &User{Username: "admin", Admin: true}
}

// TestVisitor returns an authenticated user without admin rights.
func TestVisitor() *User {
	return &User{UID: "visitor-123", Username: "visitor@example.com", Email: "visitor@example.com"}
}

// Compile-time interface check
var _ Verifier = (*MockVerifier)(nil)
