package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/janisto/portfolio-site/internal/http/api/routes"
	"github.com/janisto/portfolio-site/internal/platform/auth"
	"github.com/janisto/portfolio-site/internal/platform/config"
	"github.com/janisto/portfolio-site/internal/platform/firebase"
	applog "github.com/janisto/portfolio-site/internal/platform/logging"
	assetsvc "github.com/janisto/portfolio-site/internal/service/asset"
	portfoliosvc "github.com/janisto/portfolio-site/internal/service/portfolio"
)

const defaultAdminPassword = "admin123"

// buildDeps creates the storage backends and auth components selected by
// cfg. The returned cleanup releases external clients.
func buildDeps(ctx context.Context, cfg config.Config) (routes.Deps, func(), error) {
	cleanup := func() {}

	var clients *firebase.Clients
	if cfg.NeedsFirebase() {
		var err error
		clients, err = firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.FirebaseProjectID,
			GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
			EnableAuth:                   cfg.RequireAuth && cfg.AuthProvider == config.ProviderFirebase,
			EnableFirestore:              cfg.StorageBackend == config.BackendFirestore,
		})
		if err != nil {
			return routes.Deps{}, cleanup, fmt.Errorf("firebase init: %w", err)
		}
		cleanup = func() {
			if err := clients.Close(); err != nil {
				applog.LogError(context.Background(), "firebase close error", err)
			}
		}
	}

	store, err := newPortfolioStore(ctx, cfg, clients)
	if err != nil {
		cleanup()
		return routes.Deps{}, func() {}, err
	}

	imageBackend, err := newImageBackend(cfg)
	if err != nil {
		cleanup()
		return routes.Deps{}, func() {}, err
	}

	sessions := auth.NewSessionStore(cfg.SessionTTL)
	var verifier auth.Verifier = sessions
	if clients != nil && clients.Auth != nil {
		verifier = auth.Chain(sessions, auth.NewFirebaseVerifier(clients.Auth))
	}
	if cfg.RequireAuth && cfg.AdminPassword == defaultAdminPassword {
		applog.LogWarn(ctx, "admin password is the default; set ADMIN_PASSWORD")
	}

	return routes.Deps{
		Config:  store,
		Catalog: store,
		Images:  assetsvc.NewStore(imageBackend),
		Authenticator: auth.NewAuthenticator(auth.Credential{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		}, sessions),
		Verifier:    verifier,
		RequireAuth: cfg.RequireAuth,
	}, cleanup, nil
}

func newPortfolioStore(ctx context.Context, cfg config.Config, clients *firebase.Clients) (portfoliosvc.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return portfoliosvc.NewMemoryStore(portfoliosvc.DefaultProjects(), portfoliosvc.DefaultServices()), nil
	case config.BackendFirestore:
		store := portfoliosvc.NewFirestoreStore(clients.Firestore)
		if err := seedFirestoreCatalog(ctx, store); err != nil {
			return nil, err
		}
		return store, nil
	default:
		store, err := portfoliosvc.NewFileStore(cfg.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("file store: %w", err)
		}
		return store, nil
	}
}

// seedFirestoreCatalog writes the sample catalog into an empty project.
func seedFirestoreCatalog(ctx context.Context, store *portfoliosvc.FirestoreStore) error {
	projects, err := store.Projects(ctx)
	if err != nil {
		return fmt.Errorf("firestore catalog: %w", err)
	}
	if len(projects) > 0 {
		return nil
	}
	applog.LogInfo(ctx, "seeding firestore catalog",
		zap.Int("projects", len(portfoliosvc.DefaultProjects())),
		zap.Int("services", len(portfoliosvc.DefaultServices())))
	if err := store.SeedCatalog(ctx, portfoliosvc.DefaultProjects(), portfoliosvc.DefaultServices()); err != nil {
		return fmt.Errorf("firestore seed: %w", err)
	}
	return nil
}

func newImageBackend(cfg config.Config) (assetsvc.Backend, error) {
	if cfg.StorageBackend == config.BackendMemory {
		return assetsvc.NewMemoryBackend(), nil
	}
	backend, err := assetsvc.NewFileBackend(cfg.ImagesDir())
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	return backend, nil
}
