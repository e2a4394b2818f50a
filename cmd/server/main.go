package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/portfolio-site/internal/platform/config"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	if err := run(context.Background(), cfg, stop); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		os.Exit(1)
	}
}

// run serves until a signal arrives on stop or the listener fails.
func run(ctx context.Context, cfg config.Config, stop <-chan os.Signal) error {
	deps, cleanup, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := newHTTPServer(cfg.Port, newRouter(cfg, deps))

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageBackend),
			zap.Bool("requireAuth", cfg.RequireAuth))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		return err
	case <-stop:
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
		return err
	}
	applog.LogInfo(ctx, "server exited")
	return nil
}

func newHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
