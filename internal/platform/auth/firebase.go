package auth

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
)

// AdminClaim is the Firebase custom claim granting admin rights.
const AdminClaim = "admin"

// FirebaseVerifier implements Verifier using Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a new verifier with the given auth client.
func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify validates a Firebase ID token and checks for revocation.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*User, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, firebaseError(err)
	}
	return userFromClaims(token.UID, token.Claims), nil
}

func firebaseError(err error) error {
	switch {
	case fbauth.IsCertificateFetchFailed(err):
		return ErrCertificateFetch
	case fbauth.IsIDTokenExpired(err):
		return ErrTokenExpired
	case fbauth.IsIDTokenRevoked(err):
		return ErrTokenRevoked
	case fbauth.IsUserDisabled(err):
		return ErrUserDisabled
	default:
		return ErrInvalidToken
	}
}

func userFromClaims(uid string, claims map[string]any) *User {
	email, _ := claims["email"].(string)
	admin, _ := claims[AdminClaim].(bool)
	username := email
	if username == "" {
		username = uid
	}
	return &User{
		Username: username,
		UID:      uid,
		Email:    email,
		Admin:    admin,
	}
}

// Compile-time interface check
var _ Verifier = (*FirebaseVerifier)(nil)
