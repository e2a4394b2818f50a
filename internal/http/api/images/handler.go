package images

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/portfolio-site/internal/platform/auth"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	"github.com/janisto/portfolio-site/internal/platform/respond"
	assetsvc "github.com/janisto/portfolio-site/internal/service/asset"
)

// MaxUploadBodyBytes bounds the upload request body. It is above the
// payload ceiling so base64 images up to the ceiling fit with their JSON
// envelope. Larger bodies are rejected by LimitUploadBody.
const MaxUploadBodyBytes = 8 << 20

// UploadPath is the image upload endpoint.
const UploadPath = "/api/upload-image"

const msgTooLarge = "image payload exceeds 5 MiB"

// Store saves and opens uploaded images.
type Store interface {
	Save(ctx context.Context, imageData, filename string) (string, error)
	Open(ctx context.Context, name string) (*assetsvc.Image, error)
}

// Register registers the upload endpoint. When requireAuth is set, uploads
// require an admin bearer token.
func Register(api huma.API, store Store, requireAuth bool) {
	var security []map[string][]string
	if requireAuth {
		security = []map[string][]string{{"bearerAuth": {}}}
	}

	huma.Register(api, huma.Operation{
		OperationID:  "upload-image",
		Method:       http.MethodPost,
		Path:         UploadPath,
		Summary:      "Upload an image",
		Description:  "Stores a base64 encoded image and returns its public URL. An existing image with the same file name is replaced.",
		Tags:         []string{"Images"},
		MaxBodyBytes: MaxUploadBodyBytes + 1,
		Security:     security,
		Errors:       []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
		if input.Body.ImageData == "" || input.Body.Filename == "" {
			return nil, huma.Error400BadRequest("image data and filename required")
		}

		url, err := store.Save(ctx, input.Body.ImageData, input.Body.Filename)
		event := applog.AuditEvent{
			Action:     "image.upload",
			Resource:   "image",
			ResourceID: input.Body.Filename,
		}
		if user := auth.UserFromContext(ctx); user != nil {
			event.Actor = user.Username
		}
		if err != nil {
			event.Result = applog.AuditFailure
			event.Details = failureReason(err)
			applog.LogAuditEvent(ctx, event)
			if errors.Is(err, assetsvc.ErrStorageUnavailable) {
				applog.LogError(ctx, "image write failed", err, zap.String("filename", input.Body.Filename))
			}
			return nil, mapServiceError(err)
		}

		event.Result = applog.AuditSuccess
		applog.LogAuditEvent(ctx, event)
		return &UploadOutput{Location: url, Body: UploadResult{URL: url}}, nil
	})
}

// LimitUploadBody buffers upload bodies up to limit bytes and answers larger
// ones with the same 400 problem as an oversized image payload. It must run
// before the upload operation reads the body; other requests pass through.
func LimitUploadBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != UploadPath {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > limit {
				rejectTooLarge(w, r, r.ContentLength)
				return
			}
			body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
			_ = r.Body.Close()
			var maxErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxErr) || int64(len(body)) > limit:
				rejectTooLarge(w, r, int64(len(body)))
				return
			case err != nil:
				applog.LogError(r.Context(), "upload body read failed", err)
				respond.WriteProblem(w, r, http.StatusBadRequest, "cannot read request body")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}

func rejectTooLarge(w http.ResponseWriter, r *http.Request, size int64) {
	applog.LogAuditEvent(r.Context(), applog.AuditEvent{
		Action:   "image.upload",
		Resource: "image",
		Result:   applog.AuditFailure,
		Details:  "payload_too_large",
	})
	applog.LogWarn(r.Context(), "upload body too large", zap.Int64("bytes", size))
	respond.WriteProblem(w, r, http.StatusBadRequest, msgTooLarge)
}

// Mount serves stored images under assetsvc.URLPrefix on a plain chi router.
func Mount(router chi.Router, store Store) {
	router.Get(assetsvc.URLPrefix+"{filename}", ServeImage(store))
}

// ServeImage returns a handler writing the image named by the "filename"
// route parameter.
func ServeImage(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := store.Open(r.Context(), chi.URLParam(r, "filename"))
		if err != nil {
			if errors.Is(err, assetsvc.ErrNotFound) {
				respond.WriteProblem(w, r, http.StatusNotFound, "image not found")
				return
			}
			applog.LogError(r.Context(), "image read failed", err)
			respond.WriteProblem(w, r, http.StatusInternalServerError, "image storage unavailable")
			return
		}
		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write(img.Data)
		}
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, assetsvc.ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, assetsvc.ErrInvalidFilename):
		return "invalid_filename"
	case errors.Is(err, assetsvc.ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, assetsvc.ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "unknown"
	}
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, assetsvc.ErrPayloadTooLarge):
		return huma.Error400BadRequest(msgTooLarge)
	case errors.Is(err, assetsvc.ErrInvalidFilename):
		return huma.Error400BadRequest("invalid filename")
	case errors.Is(err, assetsvc.ErrMalformedPayload):
		return huma.Error400BadRequest("malformed image payload")
	default:
		return huma.Error500InternalServerError("failed to store image")
	}
}
