package portfolio

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(_ *testing.T) Store {
		return NewMemoryStore(DefaultProjects(), DefaultServices())
	})
}

func TestMemoryCatalog(t *testing.T) {
	store := NewMemoryStore(DefaultProjects(), DefaultServices())
	ctx := context.Background()

	projects, err := store.Projects(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}

	p, err := store.Project(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Fitness Tracking App" {
		t.Errorf("expected Fitness Tracking App, got %s", p.Title)
	}

	services, err := store.Services(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 6 {
		t.Errorf("expected 6 services, got %d", len(services))
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := NewMemoryStore(nil, nil)
	ctx := context.Background()

	updated, err := store.UpdateConfig(ctx, Patch{SocialLinks: Some([]SocialLink{{Platform: "GitHub"}})})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated.Name = "mutated"
	updated.SocialLinks[0].Platform = "mutated"

	got, _ := store.Config(ctx)
	if got.Name != "" {
		t.Errorf("expected stored name untouched, got %q", got.Name)
	}
	if got.SocialLinks[0].Platform != "GitHub" {
		t.Errorf("expected stored links untouched, got %q", got.SocialLinks[0].Platform)
	}
}

func TestMemoryEmptyCatalog(t *testing.T) {
	store := NewMemoryStore(nil, nil)
	projects, err := store.Projects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected no projects, got %d", len(projects))
	}
}
