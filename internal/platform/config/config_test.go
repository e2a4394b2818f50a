package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_BACKEND", "CONFIG_DIR", "DATA_DIR",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "REQUIRE_AUTH", "AUTH_PROVIDER",
		"SESSION_TTL", "CORS_ALLOWED_ORIGINS", "FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}
}

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.StorageBackend != BackendFile {
		t.Errorf("expected file backend, got %s", cfg.StorageBackend)
	}
	if cfg.ConfigDir != "config" {
		t.Errorf("expected config dir 'config', got %s", cfg.ConfigDir)
	}
	if cfg.ImagesDir() != filepath.Join("data", "images") {
		t.Errorf("expected data/images, got %s", cfg.ImagesDir())
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "admin123" {
		t.Errorf("unexpected admin credential %s/%s", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.RequireAuth {
		t.Error("expected auth not required by default")
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("expected 12h session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.NeedsFirebase() {
		t.Error("expected firebase not needed by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "MEMORY")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.StorageBackend)
	}
	if !cfg.RequireAuth {
		t.Error("expected auth required")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.SessionTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("ADMIN_USERNAME")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_USERNAME=owner\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ADMIN_USERNAME") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AdminUsername != "owner" {
		t.Errorf("expected owner from .env, got %s", cfg.AdminUsername)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"backend", map[string]string{"STORAGE_BACKEND": "postgres"}, "STORAGE_BACKEND"},
		{"provider", map[string]string{"AUTH_PROVIDER": "ldap"}, "AUTH_PROVIDER"},
		{"require auth", map[string]string{"REQUIRE_AUTH": "maybe"}, "REQUIRE_AUTH"},
		{"ttl", map[string]string{"SESSION_TTL": "soon"}, "SESSION_TTL"},
		{"negative ttl", map[string]string{"SESSION_TTL": "-1h"}, "SESSION_TTL"},
		{"firestore without project", map[string]string{"STORAGE_BACKEND": "firestore"}, "FIREBASE_PROJECT_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(missingEnvFile(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestNeedsFirebase(t *testing.T) {
	cfg := Config{StorageBackend: BackendFile, RequireAuth: true, AuthProvider: ProviderFirebase}
	if !cfg.NeedsFirebase() {
		t.Error("expected firebase auth to need firebase")
	}
	cfg = Config{StorageBackend: BackendFile, RequireAuth: false, AuthProvider: ProviderFirebase}
	if cfg.NeedsFirebase() {
		t.Error("expected firebase unused when auth is not required")
	}
}
