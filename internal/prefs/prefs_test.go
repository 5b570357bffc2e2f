package prefs

import (
	"context"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestThemeDefaultsToLight(t *testing.T) {
	s := openTemp(t)
	got, err := s.Theme(context.Background())
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if got != DefaultTheme {
		t.Errorf("Theme = %q, want %q", got, DefaultTheme)
	}
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	for _, name := range []string{"dark", "ocean", "light"} {
		if err := s.SetTheme(ctx, name); err != nil {
			t.Fatalf("SetTheme(%s): %v", name, err)
		}
		got, err := s.Theme(ctx)
		if err != nil || got != name {
			t.Errorf("Theme = %q, %v; want %q", got, err, name)
		}
	}
}

func TestThemePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	_ = s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if got, _ := s.Theme(ctx); got != "dark" {
		t.Errorf("Theme after reopen = %q", got)
	}
}

func TestTakeSelectedIsOneShot(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if _, ok, err := s.TakeSelected(ctx); err != nil || ok {
		t.Fatalf("TakeSelected on empty store = %v, %v", ok, err)
	}

	if err := s.SetSelected(ctx, "quick-sort"); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}
	got, ok, err := s.TakeSelected(ctx)
	if err != nil || !ok || got != "quick-sort" {
		t.Fatalf("TakeSelected = %q, %v, %v", got, ok, err)
	}
	if _, ok, _ := s.TakeSelected(ctx); ok {
		t.Error("selection should be cleared after the first take")
	}
}

func TestSetSelectedOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	_ = s.SetSelected(ctx, "bfs")
	_ = s.SetSelected(ctx, "dfs")
	if got, _, _ := s.TakeSelected(ctx); got != "dfs" {
		t.Errorf("TakeSelected = %q, want dfs", got)
	}
}

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if err := s.SetTheme(ctx, "retro"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got, _ := s.Theme(ctx); got != "retro" {
		t.Errorf("Theme = %q", got)
	}
}
