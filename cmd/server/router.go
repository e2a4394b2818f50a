package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/portfolio-site/internal/http/api/images"
	"github.com/janisto/portfolio-site/internal/http/api/routes"
	"github.com/janisto/portfolio-site/internal/platform/config"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	appmiddleware "github.com/janisto/portfolio-site/internal/platform/middleware"
	"github.com/janisto/portfolio-site/internal/platform/respond"
	assetsvc "github.com/janisto/portfolio-site/internal/service/asset"
)

// imageCacheMaxAge is the public cache lifetime of served images.
const imageCacheMaxAge = 3600

func newRouter(cfg config.Config, deps routes.Deps) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(appmiddleware.SecurityOptions{
			SkipPrefixes:   []string{"/api-docs"},
			PublicPrefixes: []string{assetsvc.URLPrefix},
			PublicMaxAge:   imageCacheMaxAge,
		}),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		// Uploads carry base64 images; the per-operation limits are tighter.
		chimiddleware.RequestSize(images.MaxUploadBodyBytes),
		images.LimitUploadBody(images.MaxUploadBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteRedirect(w, r, "/api-docs", http.StatusFound)
	})

	api := humachi.New(router, newAPIConfig())
	routes.Register(api, deps)
	routes.Mount(router, deps)
	return router
}

func newAPIConfig() huma.Config {
	cfg := huma.DefaultConfig("Portfolio Site API", Version)
	cfg.DocsPath = "/api-docs"
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:        "http",
			Scheme:      "bearer",
			Description: "Token from POST /api/auth/login, or a Firebase ID token when Firebase auth is enabled.",
		},
	}
	cfg.OnAddOperation = append(cfg.OnAddOperation, addCBORContentTypes)
	return cfg
}

// addCBORContentTypes documents CBOR next to every JSON request and response.
func addCBORContentTypes(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
