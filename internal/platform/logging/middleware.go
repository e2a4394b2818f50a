package logging

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger stores a request-scoped logger in the context. The logger
// carries the request id and, when the request arrives with trace headers,
// the Cloud Trace correlation fields.
func RequestLogger() func(http.Handler) http.Handler {
	return requestLogger(resolveProjectID)
}

func requestLogger(projectID func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := chimiddleware.GetReqID(ctx)
			project := projectID()
			sc, traced := parseTraceHeaders(r.Header.Get(traceparentHeader), r.Header.Get(cloudTraceHeader))

			fields := traceFields(sc, traced, project)
			if reqID != "" {
				fields = append(fields, zap.String("requestId", reqID))
			}
			logger := Logger()
			if len(fields) > 0 {
				logger = logger.With(fields...)
			}

			correlation := reqID
			if traced && project != "" {
				correlation = sc.resource(project)
			}
			ctx = contextWithTraceID(ctx, correlation)
			ctx = contextWithLogger(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLogger writes one summary line per request. Server errors are logged
// at error level and client errors at warning level.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := zapcore.InfoLevel
			switch {
			case status >= http.StatusInternalServerError:
				level = zapcore.ErrorLevel
			case status >= http.StatusBadRequest:
				level = zapcore.WarnLevel
			}

			LoggerFromContext(r.Context()).Log(level, "request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int64("requestBytes", r.ContentLength),
				zap.Int("responseBytes", ww.BytesWritten()),
				zap.String("remoteIp", r.RemoteAddr),
				zap.String("userAgent", r.UserAgent()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
