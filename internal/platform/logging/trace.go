package logging

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	traceparentHeader = "traceparent"
	cloudTraceHeader  = "X-Cloud-Trace-Context"
)

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

// Legacy Google header: TRACE_ID/SPAN_ID;o=OPTIONS with a decimal span id.
var cloudTraceRe = regexp.MustCompile(`^([0-9a-fA-F]{32})/([0-9]+)(?:;o=([01]))?$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// spanContext is the trace position of an incoming request.
type spanContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceHeaders prefers traceparent and falls back to X-Cloud-Trace-Context.
func parseTraceHeaders(traceparent, cloudTrace string) (spanContext, bool) {
	if m := traceparentRe.FindStringSubmatch(traceparent); m != nil {
		flags, _ := strconv.ParseUint(m[4], 16, 8)
		return spanContext{
			TraceID: strings.ToLower(m[2]),
			SpanID:  strings.ToLower(m[3]),
			Sampled: flags&0x01 == 1,
		}, true
	}
	if m := cloudTraceRe.FindStringSubmatch(cloudTrace); m != nil {
		span, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return spanContext{}, false
		}
		return spanContext{
			TraceID: strings.ToLower(m[1]),
			SpanID:  fmt.Sprintf("%016x", span),
			Sampled: m[3] == "1",
		}, true
	}
	return spanContext{}, false
}

// resource is the Cloud Trace resource name of sc within projectID.
func (sc spanContext) resource(projectID string) string {
	return fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID)
}

// traceFields returns the Cloud Logging fields correlating entries with a
// trace. Without a project id Cloud Logging cannot link them, so none are
// emitted.
func traceFields(sc spanContext, ok bool, projectID string) []zap.Field {
	if !ok || projectID == "" {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", sc.resource(projectID)),
		zap.String("logging.googleapis.com/spanId", sc.SpanID),
		zap.Bool("logging.googleapis.com/trace_sampled", sc.Sampled),
	}
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		for _, key := range []string{"FIREBASE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT", "PROJECT_ID"} {
			if v := os.Getenv(key); v != "" {
				cachedProjectID = v
				return
			}
		}
	})
	return cachedProjectID
}
