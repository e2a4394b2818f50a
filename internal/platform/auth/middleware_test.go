package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

type whoamiOutput struct {
	Body struct {
		Username string `json:"username"`
	}
}

func newGuardedRouter(verifier Verifier, secured bool) *chi.Mux {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(NewAuthMiddleware(api, verifier))

	var security []map[string][]string
	if secured {
		security = []map[string][]string{{"bearerAuth": {}}}
	}

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodPut,
		Path:        "/whoami",
		Security:    security,
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		out := &whoamiOutput{}
		if user := UserFromContext(ctx); user != nil {
			out.Body.Username = user.Username
		}
		return out, nil
	})
	return router
}

func TestMiddlewareOpenOperation(t *testing.T) {
	router := newGuardedRouter(&MockVerifier{Error: ErrInvalidToken}, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/whoami", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for open operation, got %d", rec.Code)
	}
}

func TestMiddlewareResponses(t *testing.T) {
	tests := []struct {
		name          string
		verifier      *MockVerifier
		header        string
		wantStatus    int
		wantChallenge bool
		wantRetry     bool
	}{
		{"missing header", &MockVerifier{User: TestAdmin()}, "", http.StatusUnauthorized, true, false},
		{"basic scheme", &MockVerifier{User: TestAdmin()}, "Basic YWRtaW46YWRtaW4=", http.StatusUnauthorized, true, false},
		{"empty bearer", &MockVerifier{User: TestAdmin()}, "Bearer ", http.StatusUnauthorized, true, false},
		{"unknown token", &MockVerifier{Error: ErrInvalidToken}, "Bearer nope", http.StatusUnauthorized, true, false},
		{"expired token", &MockVerifier{Error: ErrTokenExpired}, "Bearer old", http.StatusUnauthorized, true, false},
		{"certificate fetch", &MockVerifier{Error: ErrCertificateFetch}, "Bearer t", http.StatusServiceUnavailable, false, true},
		{"not admin", &MockVerifier{User: TestVisitor()}, "Bearer t", http.StatusForbidden, false, false},
		{"admin", &MockVerifier{User: TestAdmin()}, "bearer t", http.StatusOK, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGuardedRouter(tt.verifier, true)
			req := httptest.NewRequest(http.MethodPut, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("WWW-Authenticate") == "Bearer"; got != tt.wantChallenge {
				t.Errorf("WWW-Authenticate challenge = %v, want %v", got, tt.wantChallenge)
			}
			if got := rec.Header().Get("Retry-After") != ""; got != tt.wantRetry {
				t.Errorf("Retry-After present = %v, want %v", got, tt.wantRetry)
			}
		})
	}
}

func TestMiddlewareStoresUser(t *testing.T) {
	sessions := NewSessionStore(defaultTTL)
	sess := sessions.Create(User{Username: "owner", Admin: true})
	router := newGuardedRouter(sessions, true)

	req := httptest.NewRequest(http.MethodPut, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Username != "owner" {
		t.Errorf("expected owner in context, got %q", body.Username)
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	if user := UserFromContext(context.Background()); user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNoToken, "no_token"},
		{ErrTokenExpired, "token_expired"},
		{ErrTokenRevoked, "token_revoked"},
		{ErrUserDisabled, "user_disabled"},
		{ErrCertificateFetch, "certificate_fetch_failed"},
		{ErrInvalidToken, "invalid_token"},
		{ErrInvalidCredentials, "invalid_credentials"},
		{ErrForbidden, "not_admin"},
		{errors.Join(errors.New("wrapped"), ErrTokenExpired), "token_expired"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		if got := FailureReason(tt.err); got != tt.want {
			t.Errorf("FailureReason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
