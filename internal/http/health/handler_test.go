package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(h http.Handler) (*httptest.ResponseRecorder, Response) {
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body Response
	_ = json.Unmarshal(resp.Body.Bytes(), &body)
	return resp, body
}

func TestHealthy(t *testing.T) {
	called := false
	resp, body := serve(Handler(func(context.Context) error {
		called = true
		return nil
	}))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	if body.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %s", body.Status)
	}
	if !called {
		t.Error("expected probe to run")
	}
}

func TestHealthyWithoutProbes(t *testing.T) {
	resp, body := serve(Handler())
	if resp.Code != http.StatusOK || body.Status != "healthy" {
		t.Errorf("expected healthy, got %d %s", resp.Code, body.Status)
	}
}

func TestUnhealthy(t *testing.T) {
	second := false
	resp, body := serve(Handler(
		func(context.Context) error { return errors.New("storage down") },
		func(context.Context) error {
			second = true
			return nil
		},
	))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if body.Status != "unhealthy" {
		t.Errorf("expected status 'unhealthy', got %s", body.Status)
	}
	if second {
		t.Error("expected probes to stop at first failure")
	}
}

func TestProbeHasDeadline(t *testing.T) {
	serve(Handler(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected probe context to carry a deadline")
		}
		return nil
	}))
}
