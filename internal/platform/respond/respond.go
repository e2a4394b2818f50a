package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/portfolio-site/internal/platform/logging"
	"github.com/janisto/portfolio-site/internal/platform/middleware"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"
	schemaPath             = "/schemas/ErrorModel.json"
)

// problem is an RFC 9457 problem details document matching huma.ErrorModel,
// so errors raised outside huma look the same as errors from operations.
type problem struct {
	Schema string              `json:"$schema,omitempty"`
	Title  string              `json:"title,omitempty"`
	Status int                 `json:"status,omitempty"`
	Detail string              `json:"detail,omitempty"`
	Errors []*huma.ErrorDetail `json:"errors,omitempty"`
}

// WriteProblem writes a problem details response for handlers that live
// outside huma, such as the image file route. The format follows the
// request's Accept header: CBOR when preferred, JSON otherwise.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string, details ...*huma.ErrorDetail) {
	schema := schemaURL(r)
	body := problem{
		Schema: schema,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Errors: details,
	}

	h := w.Header()
	middleware.AddVary(h, "Origin", "Accept")
	h.Set("Link", "<"+schema+`>; rel="describedBy"`)

	if selectFormat(r.Header.Get("Accept")) {
		data, err := cbor.Marshal(body)
		if err != nil {
			logging.LogError(r.Context(), "failed to encode problem", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.Set("Content-Type", contentTypeProblemCBOR)
		w.WriteHeader(status)
		_, _ = w.Write(data)
		return
	}

	h.Set("Content-Type", contentTypeProblemJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		logging.LogError(r.Context(), "failed to write problem", err)
	}
}

// NotFoundHandler answers unknown routes with a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler answers with a 405 problem and an Allow header
// listing the methods the route does support.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		WriteProblem(w, r, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
	}
}

// WriteRedirect sends a redirect with an empty body.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string, code int) {
	http.Redirect(w, r, location, code)
}

// Recoverer turns panics into a 500 problem and logs the stack trace. If the
// handler already started the response the status line cannot change, so the
// panic is only logged. http.ErrAbortHandler is re-raised for net/http.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logging.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.ByteString("stack", debug.Stack()))
				if rw.wroteHeader {
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// Status304NotModified is returned by conditional GET handlers. Huma writes
// no body for it.
func Status304NotModified() huma.StatusError {
	return &noBodyStatusError{status: http.StatusNotModified}
}

type noBodyStatusError struct {
	status  int
	message string
}

func (e *noBodyStatusError) Error() string {
	if e.message != "" {
		return e.message
	}
	return http.StatusText(e.status)
}

func (e *noBodyStatusError) GetStatus() int {
	return e.status
}

// responseWriter remembers whether the response has started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func schemaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + schemaPath
}

func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	path := rctx.RoutePath
	if path == "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = r.URL.Path
	}
	if path == "" {
		path = "/"
	}

	var allowed []string
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if rctx.Routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

type acceptRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. A bare type is read
// as type/*, and a missing, malformed or out of range q counts as 1.
func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(strings.TrimSpace(part), ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		if mediaType == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mediaType, "/")
		if !ok {
			subtype = "*"
		}
		ar := acceptRange{typ: typ, subtype: subtype, q: 1}
		for _, p := range params[1:] {
			key, val, _ := strings.Cut(strings.TrimSpace(p), "=")
			if !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil || q < 0 || q > 1 {
				q = 1
			}
			ar.q = q
		}
		ranges = append(ranges, ar)
	}
	return ranges
}

// specificity ranks how precisely ar names the problem format with the given
// structured suffix ("json" or "cbor"), or returns -1 when it does not match.
func (ar acceptRange) specificity(suffix string) int {
	switch {
	case ar.typ == "*" && ar.subtype == "*":
		return 0
	case ar.typ != "application":
		return -1
	case ar.subtype == "problem+"+suffix:
		return 4
	case ar.subtype == suffix:
		return 3
	case ar.subtype == "*+"+suffix:
		return 2
	case ar.subtype == "*":
		return 1
	}
	return -1
}

// preference returns the q value of the most specific range matching suffix.
func preference(ranges []acceptRange, suffix string) (q float64, spec int) {
	spec = -1
	for _, ar := range ranges {
		if s := ar.specificity(suffix); s > spec {
			spec, q = s, ar.q
		}
	}
	return q, spec
}

// selectFormat reports whether CBOR should be used for a problem response.
// JSON wins ties and is the default for an empty or unsatisfiable header.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	cborQ, cborSpec := preference(ranges, "cbor")
	jsonQ, jsonSpec := preference(ranges, "json")
	if cborSpec < 0 || cborQ == 0 {
		return false
	}
	if jsonSpec < 0 || jsonQ == 0 {
		return true
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
