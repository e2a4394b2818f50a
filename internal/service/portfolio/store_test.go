package portfolio

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
)

// runStoreTests exercises the behavior every Store backend shares.
func runStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("AbsentBeforeWrite", func(t *testing.T) {
		store := newStore(t)
		cfg, err := store.Config(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg != nil {
			t.Errorf("expected absent config, got %+v", cfg)
		}
	})

	t.Run("SequentialPatchesMerge", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		if _, err := store.UpdateConfig(ctx, Patch{Name: Some("A")}); err != nil {
			t.Fatalf("first update: %v", err)
		}
		got, err := store.UpdateConfig(ctx, Patch{Title: Some("B")})
		if err != nil {
			t.Fatalf("second update: %v", err)
		}

		want := DefaultConfig()
		want.Name = "A"
		want.Title = "B"
		if !reflect.DeepEqual(*got, want) {
			t.Errorf("expected %+v, got %+v", want, *got)
		}
	})

	t.Run("LaterPatchWins", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, _ = store.UpdateConfig(ctx, Patch{Theme: Some(ThemeBlue), About: Some("first")})
		got, err := store.UpdateConfig(ctx, Patch{Theme: Some(ThemeGreen)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Theme != ThemeGreen {
			t.Errorf("expected theme green, got %s", got.Theme)
		}
		if got.About != "first" {
			t.Errorf("expected about preserved, got %q", got.About)
		}
	})

	t.Run("ReadAfterWrite", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		location := "Helsinki"
		updated, err := store.UpdateConfig(ctx, Patch{
			Name:        Some("Ada"),
			Email:       Some("ada@example.com"),
			Location:    Some(location),
			Stats:       Some(Stats{Projects: "120+", Satisfaction: "95%"}),
			SocialLinks: Some([]SocialLink{{Platform: "GitHub", URL: "https://github.com/ada", Icon: "fab fa-github"}}),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		read, err := store.Config(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if read == nil {
			t.Fatal("expected config after write")
		}
		if !reflect.DeepEqual(*read, *updated) {
			t.Errorf("expected read %+v to equal update result %+v", *read, *updated)
		}
	})

	t.Run("ConcurrentUpdatesKeepEveryField", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		patches := []Patch{
			{Name: Some("A")},
			{Title: Some("B")},
			{About: Some("C")},
			{Email: Some("d@example.com")},
		}

		var wg sync.WaitGroup
		for _, p := range patches {
			wg.Add(1)
			go func(p Patch) {
				defer wg.Done()
				if _, err := store.UpdateConfig(ctx, p); err != nil {
					t.Errorf("update: %v", err)
				}
			}(p)
		}
		wg.Wait()

		got, err := store.Config(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "A" || got.Title != "B" || got.About != "C" || got.Email != "d@example.com" {
			t.Errorf("expected every concurrent field to survive, got %+v", got)
		}
	})

	t.Run("UnknownCatalogIDs", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		if _, err := store.Project(ctx, 9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for project, got %v", err)
		}
		if _, err := store.Service(ctx, 9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for service, got %v", err)
		}
	})
}
