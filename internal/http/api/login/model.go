package login

import (
	"github.com/janisto/portfolio-site/internal/platform/timeutil"
)

// User is the authenticated admin returned on login.
type User struct {
	Username string `json:"username" doc:"Admin username"             example:"admin"`
	Admin    bool   `json:"admin"    doc:"Whether the user is admin" example:"true"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Success   bool          `json:"success"   doc:"Always true on success"         example:"true"`
	User      User          `json:"user"      doc:"Authenticated user"`
	Token     string        `json:"token"     doc:"Bearer token for admin calls"   example:"0b5c8f2e-3c0a-4a57-9d7e-6f1f0f7d2b11"`
	ExpiresAt timeutil.Time `json:"expiresAt" doc:"Token expiry"                   example:"2024-01-15T22:30:00.000Z"`
}
