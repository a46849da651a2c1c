package litekite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BearerScheme is the canonical scheme prefix of the stored credential.
const BearerScheme = "Bearer "

// sessionFileEnv overrides the session file location, mostly for tests.
const sessionFileEnv = "LITEKITE_SESSION_FILE"

// ErrNoSession is returned when no token is persisted.
var ErrNoSession = errors.New("no session found. Please run 'litekite login' first")

// SessionStore persists the bearer token across invocations. It is the only
// durable client-side state: one token string in one well-known file.
type SessionStore struct {
	path string
}

// NewSessionStore returns a store backed by the default session file,
// or the file named by the LITEKITE_SESSION_FILE environment variable.
func NewSessionStore() *SessionStore {
	if p := os.Getenv(sessionFileEnv); p != "" {
		return &SessionStore{path: p}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &SessionStore{path: filepath.Join(dir, "litekite", "session")}
}

// Token returns the stored credential exactly as persisted, including its
// scheme prefix. It returns ErrNoSession when nothing is stored.
func (s *SessionStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", ErrNoSession
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// SetToken persists the token in canonical form: the Bearer scheme prefix is
// added when missing and never duplicated.
func (s *SessionStore) SetToken(token string) error {
	token = Canonical(token)
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("cannot create session folder: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("cannot save session: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Authenticated reports whether a token is currently persisted.
func (s *SessionStore) Authenticated() bool {
	_, err := s.Token()
	return err == nil
}

// Canonical returns the canonical stored form of a raw credential.
func Canonical(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(token, BearerScheme) {
		return token
	}
	return BearerScheme + token
}
