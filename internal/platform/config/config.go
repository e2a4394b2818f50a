package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendFile      = "file"
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
)

// Auth providers.
const (
	ProviderSession  = "session"
	ProviderFirebase = "firebase"
)

// Config is the runtime configuration of the server.
type Config struct {
	Port           string
	StorageBackend string
	ConfigDir      string
	DataDir        string
	AllowedOrigins []string

	AdminUsername string
	AdminPassword string // plaintext or bcrypt hash
	RequireAuth   bool
	AuthProvider  string
	SessionTTL    time.Duration

	FirebaseProjectID            string
	GoogleApplicationCredentials string
}

// ImagesDir is where uploaded images are written.
func (c Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

// NeedsFirebase reports whether Firebase clients must be initialized.
func (c Config) NeedsFirebase() bool {
	return c.StorageBackend == BackendFirestore || (c.RequireAuth && c.AuthProvider == ProviderFirebase)
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence over .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:                         getenv("PORT", "8080"),
		StorageBackend:               strings.ToLower(getenv("STORAGE_BACKEND", BackendFile)),
		ConfigDir:                    getenv("CONFIG_DIR", "config"),
		DataDir:                      getenv("DATA_DIR", "data"),
		AdminUsername:                getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:                getenv("ADMIN_PASSWORD", "admin123"),
		AuthProvider:                 strings.ToLower(getenv("AUTH_PROVIDER", ProviderSession)),
		FirebaseProjectID:            os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	var err error
	if cfg.RequireAuth, err = strconv.ParseBool(getenv("REQUIRE_AUTH", "false")); err != nil {
		return Config{}, fmt.Errorf("REQUIRE_AUTH: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenv("SESSION_TTL", "12h")); err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	switch cfg.StorageBackend {
	case BackendFile, BackendMemory, BackendFirestore:
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", cfg.StorageBackend)
	}
	switch cfg.AuthProvider {
	case ProviderSession, ProviderFirebase:
	default:
		return Config{}, fmt.Errorf("AUTH_PROVIDER: unknown provider %q", cfg.AuthProvider)
	}
	if cfg.NeedsFirebase() && cfg.FirebaseProjectID == "" {
		return Config{}, errors.New("FIREBASE_PROJECT_ID is required for the firestore backend and firebase auth")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
