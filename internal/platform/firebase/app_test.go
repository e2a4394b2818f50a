package firebase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestClientsCloseWithoutFirestore(t *testing.T) {
	c := &Clients{}
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClientOptionsWithoutCredentials(t *testing.T) {
	opts, err := clientOptions(Config{ProjectID: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("expected no options, got %d", len(opts))
	}
}

func TestClientOptionsReadsCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	opts, err := clientOptions(Config{GoogleApplicationCredentials: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 {
		t.Errorf("expected one option, got %d", len(opts))
	}
}

func TestInitializeClientsMissingCredentials(t *testing.T) {
	cfg := Config{
		ProjectID:                    "demo",
		GoogleApplicationCredentials: filepath.Join(t.TempDir(), "missing.json"),
		EnableFirestore:              true,
	}
	if _, err := InitializeClients(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}
