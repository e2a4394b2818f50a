package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

const (
	AuthEmulatorHost      = "127.0.0.1:7110"
	FirestoreEmulatorHost = "127.0.0.1:7130"
	ProjectID             = "demo-test-project"
	fakeAPIKey            = "fake-api-key" //nolint:gosec // Test-only fake key for emulator
)

func emulatorAvailable(host string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// SkipIfAuthUnavailable skips the test if the Auth emulator is not running.
func SkipIfAuthUnavailable(t *testing.T) {
	t.Helper()
	if !emulatorAvailable(AuthEmulatorHost) {
		t.Skip("Auth emulator not available")
	}
}

// SkipIfFirestoreUnavailable skips the test if the Firestore emulator is not running.
func SkipIfFirestoreUnavailable(t *testing.T) {
	t.Helper()
	if !emulatorAvailable(FirestoreEmulatorHost) {
		t.Skip("Firestore emulator not available")
	}
}

// SetupEmulator points the Firebase SDKs at the local emulators.
func SetupEmulator(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", AuthEmulatorHost)
	t.Setenv("FIRESTORE_EMULATOR_HOST", FirestoreEmulatorHost)
}

// ClearAccounts removes all users from the Auth emulator.
func ClearAccounts(t *testing.T) {
	t.Helper()
	emulatorCall(t, http.MethodDelete,
		fmt.Sprintf("http://%s/emulator/v1/projects/%s/accounts", AuthEmulatorHost, ProjectID), nil, nil)
}

// ClearFirestore removes all documents from the Firestore emulator.
func ClearFirestore(t *testing.T) {
	t.Helper()
	emulatorCall(t, http.MethodDelete,
		fmt.Sprintf("http://%s/emulator/v1/projects/%s/databases/(default)/documents", FirestoreEmulatorHost, ProjectID),
		nil, nil)
}

// AuthTokens is the emulator's sign-up and sign-in response.
type AuthTokens struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
}

// CreateTestUser creates a user in the Auth emulator and returns its tokens.
func CreateTestUser(t *testing.T, email, password string) *AuthTokens {
	t.Helper()
	return passwordCall(t, "accounts:signUp", email, password)
}

// SignIn returns fresh tokens for an existing user, picking up custom claims
// set since the user was created.
func SignIn(t *testing.T, email, password string) *AuthTokens {
	t.Helper()
	return passwordCall(t, "accounts:signInWithPassword", email, password)
}

func passwordCall(t *testing.T, method, email, password string) *AuthTokens {
	t.Helper()
	url := fmt.Sprintf("http://%s/identitytoolkit.googleapis.com/v1/%s?key=%s", AuthEmulatorHost, method, fakeAPIKey)
	var tokens AuthTokens
	emulatorCall(t, http.MethodPost, url, map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &tokens)
	return &tokens
}

func emulatorCall(t *testing.T, method, url string, body, out any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("emulator %s %s: %v", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(resp.Body)
		t.Fatalf("emulator %s %s: %d %s", method, url, resp.StatusCode, msg)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
}
