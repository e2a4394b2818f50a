package middleware

import (
	"net/http"
	"strings"
)

// Vary adds Accept to the Vary header, since responses are negotiated
// between JSON and CBOR. Values already present are not repeated.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			AddVary(w.Header(), "Accept")
			next.ServeHTTP(w, r)
		})
	}
}

// AddVary merges values into the Vary header of h without duplicates.
func AddVary(h http.Header, values ...string) {
	present := map[string]bool{}
	for _, line := range h.Values("Vary") {
		for part := range strings.SplitSeq(line, ",") {
			if p := strings.TrimSpace(part); p != "" {
				present[strings.ToLower(p)] = true
			}
		}
	}
	for _, v := range values {
		if present[strings.ToLower(v)] {
			continue
		}
		present[strings.ToLower(v)] = true
		h.Add("Vary", v)
	}
}
