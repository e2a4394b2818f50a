package login

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/portfolio-site/internal/platform/auth"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	"github.com/janisto/portfolio-site/internal/platform/timeutil"
)

// Authenticator checks the admin credential and ends sessions.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (auth.Session, error)
	Logout(ctx context.Context, token string)
}

// Register registers the login and logout endpoints.
func Register(api huma.API, authenticator Authenticator) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in as the site admin",
		Description: "Checks the admin username and password and returns a bearer token for admin operations.",
		Tags:        []string{"Auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		username := input.Body.Username
		if username == "" || input.Body.Password == "" {
			return nil, huma.Error400BadRequest("username and password required")
		}

		sess, err := authenticator.Login(ctx, username, input.Body.Password)
		if err != nil {
			applog.LogAuditEvent(ctx, applog.AuditEvent{
				Action:   "login",
				Actor:    username,
				Resource: "session",
				Result:   applog.AuditFailure,
				Details:  auth.FailureReason(err),
			})
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("invalid credentials")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action:   "login",
			Actor:    sess.User.Username,
			Resource: "session",
			Result:   applog.AuditSuccess,
		})
		return &LoginOutput{
			CacheControl: "no-store",
			Body: LoginResponse{
				Success:   true,
				User:      User{Username: sess.User.Username, Admin: sess.User.Admin},
				Token:     sess.Token,
				ExpiresAt: timeutil.NewTime(sess.ExpiresAt),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/api/auth/logout",
		Summary:       "Log out",
		Description:   "Ends the session of the bearer token. Unknown or expired tokens are accepted.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized},
	}, func(ctx context.Context, input *LogoutInput) (*struct{}, error) {
		token, err := auth.ExtractBearerToken(input.Authorization)
		if err != nil {
			return nil, huma.Error401Unauthorized("missing or invalid authorization header")
		}
		authenticator.Logout(ctx, token)
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action:   "logout",
			Resource: "session",
			Result:   applog.AuditSuccess,
		})
		return nil, nil
	})
}
