package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the single administrator login injected from configuration.
// Password is either plaintext or a bcrypt hash.
type Credential struct {
	Username string
	Password string
}

// Authenticator checks the admin credential and issues sessions.
type Authenticator struct {
	cred     Credential
	sessions *SessionStore
}

// NewAuthenticator creates an Authenticator issuing sessions from sessions.
func NewAuthenticator(cred Credential, sessions *SessionStore) *Authenticator {
	return &Authenticator{cred: cred, sessions: sessions}
}

// Login returns a new session when username and password match the credential.
func (a *Authenticator) Login(_ context.Context, username, password string) (Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cred.Username)) == 1
	passOK := checkPassword(a.cred.Password, password)
	if !userOK || !passOK {
		return Session{}, ErrInvalidCredentials
	}
	return a.sessions.Create(User{Username: a.cred.Username, Admin: true}), nil
}

// Logout ends the session identified by token. Unknown tokens are ignored.
func (a *Authenticator) Logout(_ context.Context, token string) {
	a.sessions.Revoke(token)
}

func checkPassword(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
