package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// SecurityOptions tunes the security headers per path prefix.
type SecurityOptions struct {
	// SkipPrefixes get no security headers at all (e.g. the API docs UI,
	// which loads scripts and frames).
	SkipPrefixes []string
	// PublicPrefixes serve public static content such as uploaded images.
	// Responses may be cached and embedded from other origins.
	PublicPrefixes []string
	// PublicMaxAge is the Cache-Control max-age in seconds for public paths.
	PublicMaxAge int
}

// Security sets OWASP REST recommended headers on every response.
//
// API responses are marked no-store and same-origin only. Public paths keep
// nosniff and the referrer policy but allow caching and cross-origin
// embedding so the site can show uploaded images.
func Security(opts SecurityOptions) func(http.Handler) http.Handler {
	publicCache := "public, max-age=" + strconv.Itoa(max(opts.PublicMaxAge, 0))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if hasAnyPrefix(path, opts.SkipPrefixes) {
				next.ServeHTTP(w, r)
				return
			}
			h := w.Header()
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Content-Type-Options", "nosniff")

			if hasAnyPrefix(path, opts.PublicPrefixes) {
				h.Set("Cache-Control", publicCache)
				h.Set("Cross-Origin-Resource-Policy", "cross-origin")
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Cache-Control", "no-store")
			h.Set("Content-Security-Policy", "frame-ancestors 'none'")
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
			h.Set(
				"Permissions-Policy",
				"accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
			)
			h.Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
