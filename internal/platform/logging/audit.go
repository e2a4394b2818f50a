package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditEvent records a security relevant action such as a login attempt or
// a change to the site configuration.
type AuditEvent struct {
	Action     string // e.g. "auth.login", "config.update", "image.upload"
	Actor      string // username, or "anonymous"
	Resource   string
	ResourceID string
	Result     string
	Details    string // failure reason or changed fields
}

// LogAuditEvent writes e with the request-scoped logger. Failures are logged
// at warning level so they stand out in the log viewer.
func LogAuditEvent(ctx context.Context, e AuditEvent) {
	actor := e.Actor
	if actor == "" {
		actor = "anonymous"
	}
	fields := []zap.Field{
		zap.String("audit.action", e.Action),
		zap.String("audit.actor", actor),
		zap.String("audit.resource", e.Resource),
		zap.String("audit.resourceId", e.ResourceID),
		zap.String("audit.result", e.Result),
	}
	if e.Details != "" {
		fields = append(fields, zap.String("audit.details", e.Details))
	}

	logger := LoggerFromContext(ctx)
	if e.Result == AuditFailure {
		logger.Warn("audit event", fields...)
		return
	}
	logger.Info("audit event", fields...)
}
