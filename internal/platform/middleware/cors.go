package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the admin dashboard and public site to call the API from the
// given origins. An empty list allows any origin.
//
// Credentials are never allowed: the API authenticates with bearer tokens,
// not cookies.
func CORS(allowedOrigins ...string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"If-None-Match",
			"X-Request-Id",
			"traceparent",
		},
		ExposedHeaders: []string{"ETag", "Link", "Location", "X-Request-Id", "X-Total-Count"},
		MaxAge:         300,
	})
}
