package siteconfig

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/portfolio-site/internal/platform/auth"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	"github.com/janisto/portfolio-site/internal/platform/respond"
	portfoliosvc "github.com/janisto/portfolio-site/internal/service/portfolio"
)

// maxUpdateBytes bounds a configuration update body.
const maxUpdateBytes = 1 << 20

// Store reads and updates the site configuration.
type Store interface {
	Config(ctx context.Context) (*portfoliosvc.Config, error)
	UpdateConfig(ctx context.Context, patch portfoliosvc.Patch) (*portfoliosvc.Config, error)
}

// Register registers the configuration endpoints. When requireAuth is set,
// updates require an admin bearer token.
func Register(api huma.API, store Store, requireAuth bool) {
	huma.Register(api, huma.Operation{
		OperationID: "get-config",
		Method:      http.MethodGet,
		Path:        "/api/config",
		Summary:     "Get site configuration",
		Description: "Returns the site configuration, or an empty object when it has never been saved.",
		Tags:        []string{"Config"},
	}, func(ctx context.Context, input *ConfigGetInput) (*ConfigGetOutput, error) {
		cfg, err := store.Config(ctx)
		if err != nil {
			applog.LogError(ctx, "config read failed", err)
			return nil, mapServiceError(err)
		}

		var body any = struct{}{}
		if cfg != nil {
			body = toHTTPConfig(cfg)
		}
		etag := computeETag(body)
		if input.IfNoneMatch != "" && etagMatches(input.IfNoneMatch, etag) {
			return nil, huma.ErrorWithHeaders(respond.Status304NotModified(), http.Header{"ETag": {etag}})
		}
		return &ConfigGetOutput{ETag: etag, Body: body}, nil
	})

	var security []map[string][]string
	if requireAuth {
		security = []map[string][]string{{"bearerAuth": {}}}
	}

	huma.Register(api, huma.Operation{
		OperationID:  "update-config",
		Method:       http.MethodPut,
		Path:         "/api/config",
		Summary:      "Update site configuration",
		Description:  "Merges the provided top-level fields into the configuration. Omitted fields are kept; nested objects are replaced as a whole.",
		Tags:         []string{"Config"},
		MaxBodyBytes: maxUpdateBytes,
		Security:     security,
		Errors:       []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *ConfigUpdateInput) (*ConfigUpdateOutput, error) {
		actor := actorName(ctx)
		if len(input.RawBody) == 0 {
			return nil, huma.Error400BadRequest("request body required")
		}

		record, err := decodeRecord(input.ContentType, input.RawBody)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid configuration data", err)
		}

		patch, err := portfoliosvc.ValidatePatch(record)
		if err != nil {
			auditUpdate(ctx, actor, applog.AuditFailure, err.Error())
			return nil, mapServiceError(err)
		}

		cfg, err := store.UpdateConfig(ctx, patch)
		if err != nil {
			applog.LogError(ctx, "config update failed", err, zap.Strings("fields", patch.Fields()))
			auditUpdate(ctx, actor, applog.AuditFailure, "storage_unavailable")
			return nil, mapServiceError(err)
		}

		auditUpdate(ctx, actor, applog.AuditSuccess, strings.Join(patch.Fields(), ","))
		body := toHTTPConfig(cfg)
		return &ConfigUpdateOutput{ETag: computeETag(body), Body: body}, nil
	})
}

func actorName(ctx context.Context) string {
	if user := auth.UserFromContext(ctx); user != nil {
		return user.Username
	}
	return ""
}

func auditUpdate(ctx context.Context, actor, result, details string) {
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:     "config.update",
		Actor:      actor,
		Resource:   "portfolio-config",
		ResourceID: "config",
		Result:     result,
		Details:    details,
	})
}

func mapServiceError(err error) error {
	var verr *portfoliosvc.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Issues))
		for _, issue := range verr.Issues {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + issue.Field,
				Message:  issue.Message,
			})
		}
		return huma.Error400BadRequest("invalid configuration data", details...)
	case errors.Is(err, portfoliosvc.ErrStorageUnavailable):
		return huma.Error500InternalServerError("configuration storage unavailable")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
