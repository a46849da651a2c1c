package litekite

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	t.Setenv(sessionFileEnv, filepath.Join(t.TempDir(), "session"))
	return NewSessionStore()
}

func TestSessionStore_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() unexpected error = %v", err)
	}
	got, err := s.Token()
	if err != nil {
		t.Fatalf("Token() unexpected error = %v", err)
	}
	if got != "Bearer abc123" {
		t.Errorf("Token() = %q, want %q", got, "Bearer abc123")
	}
	if !s.Authenticated() {
		t.Error("Authenticated() = false after SetToken")
	}
}

func TestSessionStore_NoDuplicatedScheme(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetToken("Bearer abc123"); err != nil {
		t.Fatalf("SetToken() unexpected error = %v", err)
	}
	got, _ := s.Token()
	if got != "Bearer abc123" {
		t.Errorf("Token() = %q, want scheme exactly once", got)
	}
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Clearing an absent session is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() on empty store unexpected error = %v", err)
	}

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() unexpected error = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() unexpected error = %v", err)
	}
	if _, err := s.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token() after Clear() error = %v, want ErrNoSession", err)
	}
	if s.Authenticated() {
		t.Error("Authenticated() = true after Clear")
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() unexpected error = %v", err)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc123", "Bearer abc123"},
		{"Bearer abc123", "Bearer abc123"},
		{"  abc123  ", "Bearer abc123"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
