package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/portfolio-site/internal/platform/logging"
)

type userContextKey struct{}

// failureReasons maps auth errors to log-safe categories, most specific first.
var failureReasons = []struct {
	err    error
	reason string
}{
	{ErrNoToken, "no_token"},
	{ErrTokenExpired, "token_expired"},
	{ErrTokenRevoked, "token_revoked"},
	{ErrUserDisabled, "user_disabled"},
	{ErrCertificateFetch, "certificate_fetch_failed"},
	{ErrInvalidToken, "invalid_token"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrForbidden, "not_admin"},
}

// NewAuthMiddleware guards operations that declare a Security requirement.
// The bearer token must resolve to an admin user; operations without Security
// pass through untouched.
func NewAuthMiddleware(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		user, err := authorize(ctx, verifier)
		if err != nil {
			reject(api, ctx, err)
			return
		}

		ctx = huma.WithContext(ctx, applog.WithFields(ctx.Context(), zap.String("user", user.Username)))
		ctx = huma.WithValue(ctx, userContextKey{}, user)
		next(ctx)
	}
}

func authorize(ctx huma.Context, verifier Verifier) (*User, error) {
	token, err := ExtractBearerToken(ctx.Header("Authorization"))
	if err != nil {
		return nil, err
	}
	user, err := verifier.Verify(ctx.Context(), token)
	if err != nil {
		return nil, err
	}
	if !user.Admin {
		return user, ErrForbidden
	}
	return user, nil
}

func reject(api huma.API, ctx huma.Context, err error) {
	reason := FailureReason(err)
	applog.LogWarn(ctx.Context(), "request not authorized", zap.String("reason", reason))

	switch {
	case errors.Is(err, ErrForbidden):
		_ = huma.WriteErr(api, ctx, http.StatusForbidden, "admin access required")
	case errors.Is(err, ErrCertificateFetch):
		ctx.SetHeader("Retry-After", "30")
		_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable, "authentication service temporarily unavailable")
	case errors.Is(err, ErrNoToken):
		ctx.SetHeader("WWW-Authenticate", "Bearer")
		_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or invalid authorization header")
	default:
		ctx.SetHeader("WWW-Authenticate", "Bearer")
		_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
	}
}

// FailureReason returns the log-safe category of an authentication error.
func FailureReason(err error) string {
	for _, fr := range failureReasons {
		if errors.Is(err, fr.err) {
			return fr.reason
		}
	}
	return "unknown"
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey{}).(*User)
	return user
}
