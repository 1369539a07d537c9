package store

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	if _, ok := s.Get("tasks"); ok {
		t.Fatal("expected missing key to report false")
	}

	if err := s.Set("tasks", `[{"id":"t1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := s.Get("tasks")
	if !ok {
		t.Fatal("expected key to be present after Set")
	}
	if got != `[{"id":"t1"}]` {
		t.Fatalf("got %q", got)
	}

	// Overwrite replaces the previous value
	if err := s.Set("tasks", `[]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, _ = s.Get("tasks")
	if got != `[]` {
		t.Fatalf("expected overwrite, got %q", got)
	}

	if err := s.Remove("tasks"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := s.Get("tasks"); ok {
		t.Fatal("expected key to be gone after Remove")
	}

	// Removing a missing key is not an error
	if err := s.Remove("tasks"); err != nil {
		t.Fatalf("Remove of missing key failed: %v", err)
	}
}

func TestReopenKeepsValues(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := s.Set("property", `{"address":"12 Oak Ln"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.Close()

	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer s2.Close()

	got, ok := s2.Get("property")
	if !ok || got != `{"address":"12 Oak Ln"}` {
		t.Fatalf("value not durable across reopen: %q %v", got, ok)
	}
}
