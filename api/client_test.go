package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/litekite/litekite"
)

// newTestClient returns a client pointed at the stub server, with a fresh
// session store isolated in a temp folder.
func newTestClient(t *testing.T, backend *httptest.Server) (*Client, *litekite.SessionStore) {
	t.Helper()
	t.Setenv("LITEKITE_SESSION_FILE", filepath.Join(t.TempDir(), "session"))
	store := litekite.NewSessionStore()
	base := ""
	if backend != nil {
		base = backend.URL
	}
	return New(base, "", store), store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"balance": 10000}`))
	}))
	defer backend.Close()

	c, store := newTestClient(t, backend)
	if err := store.SetToken("abc123"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Balance(context.Background()); err != nil {
		t.Fatalf("Balance() unexpected error = %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer abc123")
	}
}

func TestClient_UnauthorizedClearsSessionGlobally(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	c, store := newTestClient(t, backend)
	if err := store.SetToken("expired"); err != nil {
		t.Fatal(err)
	}

	// Any endpoint triggering a 401 must deauthenticate the whole session.
	endpoints := []func() error{
		func() error { _, err := c.Portfolio(context.Background(), US); return err },
		func() error { _, err := c.History(context.Background(), India); return err },
		func() error { _, err := c.GetQuote(context.Background(), US, "AAPL"); return err },
	}
	for i, call := range endpoints {
		store.SetToken("expired")
		err := call()
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("call %d error = %v, want ErrUnauthorized", i, err)
		}
		if store.Authenticated() {
			t.Errorf("call %d left the session authenticated", i)
		}
	}
}

func TestClient_ServerMessageVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Insufficient shares to sell"}`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	_, err := c.Sell(context.Background(), US, "AAPL", 5)
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("Sell() error = %v, want *StatusError", err)
	}
	if serr.Error() != "Insufficient shares to sell" {
		t.Errorf("error message = %q, want the server text verbatim", serr.Error())
	}
}

func TestClient_GenericFallbackMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	_, err := c.Portfolio(context.Background(), US)
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("Portfolio() error = %v, want *StatusError", err)
	}
	if serr.Error() == "" {
		t.Error("error message is empty, want a generic fallback")
	}
}

func TestClient_NetworkErrorSurfaces(t *testing.T) {
	c, _ := newTestClient(t, nil)
	c.base = "http://127.0.0.1:1" // nothing listens there
	if _, err := c.Balance(context.Background()); err == nil {
		t.Error("Balance() against unreachable host returned nil error")
	}
}
