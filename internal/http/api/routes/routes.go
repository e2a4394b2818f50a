package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/portfolio-site/internal/http/api/catalog"
	"github.com/janisto/portfolio-site/internal/http/api/images"
	"github.com/janisto/portfolio-site/internal/http/api/login"
	"github.com/janisto/portfolio-site/internal/http/api/siteconfig"
	"github.com/janisto/portfolio-site/internal/http/health"
	"github.com/janisto/portfolio-site/internal/platform/auth"
)

// Deps are the services behind the HTTP routes.
type Deps struct {
	Config        siteconfig.Store
	Catalog       catalog.Store
	Images        images.Store
	Authenticator login.Authenticator
	Verifier      auth.Verifier
	// RequireAuth guards configuration updates and uploads with an admin
	// bearer token.
	RequireAuth bool
}

// Register wires all API operations into the provided API router.
func Register(api huma.API, deps Deps) {
	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, deps.Verifier))

	login.Register(api, deps.Authenticator)
	siteconfig.Register(api, deps.Config, deps.RequireAuth)
	images.Register(api, deps.Images, deps.RequireAuth)
	catalog.Register(api, deps.Catalog)
}

// Mount wires the plain HTTP routes that bypass the API layer.
func Mount(router chi.Router, deps Deps) {
	router.Get("/health", health.Handler(func(ctx context.Context) error {
		_, err := deps.Config.Config(ctx)
		return err
	}))
	images.Mount(router, deps.Images)
}
