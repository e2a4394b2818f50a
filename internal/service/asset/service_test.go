package asset

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func pngPayload() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

func TestSaveRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	ctx := context.Background()

	ref, err := store.Save(ctx, pngPayload(), "profile-1700000000.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "/data/images/profile-1700000000.png" {
		t.Errorf("expected /data/images/profile-1700000000.png, got %s", ref)
	}

	img, err := store.Open(ctx, strings.TrimPrefix(ref, URLPrefix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(img.Data, pngBytes) {
		t.Errorf("expected identical bytes, got %v", img.Data)
	}
	if img.ContentType != "image/png" {
		t.Errorf("expected image/png, got %s", img.ContentType)
	}
}

func TestSaveWithoutDataPrefix(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	payload := "image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg"))
	if _, err := store.Save(context.Background(), payload, "a.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveTooLargeSkipsDecode(t *testing.T) {
	called := false
	store := NewStore(NewMemoryBackend(), WithDecoder(func(s string) ([]byte, error) {
		called = true
		return base64.StdEncoding.DecodeString(s)
	}))

	payload := "data:image/png;base64," + strings.Repeat("A", 6<<20)
	_, err := store.Save(context.Background(), payload, "big.png")
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if called {
		t.Error("expected decoder not to be invoked for oversized payload")
	}
}

func TestSaveAtCeiling(t *testing.T) {
	prefix := "data:image/x-png;base64," // 24 bytes keeps the data a multiple of 4
	payload := prefix + strings.Repeat("A", MaxPayloadBytes-len(prefix))
	_, err := NewStore(NewMemoryBackend()).Save(context.Background(), payload, "edge.png")
	if err != nil {
		t.Errorf("expected payload at the ceiling to be accepted, got %v", err)
	}
	_, err = NewStore(NewMemoryBackend()).Save(context.Background(), payload+"A", "edge.png")
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("expected ErrPayloadTooLarge one byte over, got %v", err)
	}
}

func TestSaveMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"no separator", "data:image/png;base64"},
		{"not base64 envelope", "data:image/png,rawbytes"},
		{"non-image mime", "data:text/plain;base64,aGVsbG8="},
		{"invalid mime", "data:;base64,aGVsbG8="},
		{"empty data", "data:image/png;base64,"},
		{"bad base64", "data:image/png;base64,!!!not-base64!!!"},
	}

	store := NewStore(NewMemoryBackend())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(context.Background(), tt.payload, "a.png")
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestSaveInvalidFilename(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	for _, name := range []string{"", "../etc/passwd", "dir/a.png", ".hidden", "a..png", `a\b.png`} {
		_, err := store.Save(context.Background(), pngPayload(), name)
		if !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("%q: expected ErrInvalidFilename, got %v", name, err)
		}
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("%q: expected ErrMalformedPayload, got %v", name, err)
		}
	}
}

func TestSaveLastWriteWins(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	ctx := context.Background()

	first := "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("one"))
	second := "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("two"))
	_, _ = store.Save(ctx, first, "a.gif")
	_, _ = store.Save(ctx, second, "a.gif")

	img, err := store.Open(ctx, "a.gif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(img.Data) != "two" {
		t.Errorf("expected last write to win, got %q", img.Data)
	}
}

type failingBackend struct{}

func (failingBackend) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk gone")
}

func TestSaveStorageFailure(t *testing.T) {
	store := NewStore(failingBackend{})
	_, err := store.Save(context.Background(), pngPayload(), "a.png")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
	_, err = store.Open(context.Background(), "a.png")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestOpenNotFound(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	for _, name := range []string{"missing.png", "../secret"} {
		if _, err := store.Open(context.Background(), name); !errors.Is(err, ErrNotFound) {
			t.Errorf("%q: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "images")
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewStore(backend)
	ctx := context.Background()

	if _, err := store.Save(ctx, pngPayload(), "profile-1700000000.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "profile-1700000000.png"))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if !bytes.Equal(onDisk, pngBytes) {
		t.Error("expected file content to equal decoded bytes")
	}

	if _, err := backend.Get(ctx, "missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseEnvelope(t *testing.T) {
	mt, encoded, err := ParseEnvelope("data:image/svg+xml;base64,PHN2Zy8+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mt != "image/svg+xml" {
		t.Errorf("expected image/svg+xml, got %s", mt)
	}
	if encoded != "PHN2Zy8+" {
		t.Errorf("expected PHN2Zy8+, got %s", encoded)
	}
}
