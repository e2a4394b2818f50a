package auth

import (
	"context"
	"errors"
	"strings"
)

// User is an authenticated principal.
type User struct {
	Username string
	UID      string
	Email    string
	Admin    bool
}

// Error types for authentication failures.
var (
	// ErrNoToken indicates missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates an unknown or malformed token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates the token has expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked indicates the token has been revoked.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUserDisabled indicates the user account is disabled.
	ErrUserDisabled = errors.New("user disabled")

	// ErrCertificateFetch indicates a network error fetching public keys.
	// This should result in HTTP 503 (service unavailable).
	ErrCertificateFetch = errors.New("failed to fetch certificates")

	// ErrInvalidCredentials indicates a failed username/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates an authenticated user without admin rights.
	ErrForbidden = errors.New("admin access required")
)

// Verifier validates tokens and returns user information.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// ExtractBearerToken extracts the token from Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidToken
	}
	return token, nil
}

type chain []Verifier

// Chain returns a Verifier that accepts a token when any of verifiers does.
// Verifiers are tried in order; when all reject, the last error is returned.
func Chain(verifiers ...Verifier) Verifier {
	return chain(verifiers)
}

func (c chain) Verify(ctx context.Context, token string) (*User, error) {
	err := ErrInvalidToken
	for _, v := range c {
		var user *User
		if user, err = v.Verify(ctx, token); err == nil {
			return user, nil
		}
	}
	return nil, err
}
