package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_StoresCanonicalToken(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "alice" || creds.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"access_token": "abc123"}`))
	}))
	defer backend.Close()

	c, store := newTestClient(t, backend)
	if err := c.Login(context.Background(), "alice", "correct"); err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token() unexpected error = %v", err)
	}
	if token != "Bearer abc123" {
		t.Errorf("stored token = %q, want %q", token, "Bearer abc123")
	}
	if !c.Authenticated() {
		t.Error("Authenticated() = false after successful login")
	}
}

func TestLogin_BadPasswordStaysAnonymous(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	err := c.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("Login() with bad password returned nil error")
	}
	if c.Authenticated() {
		t.Error("Authenticated() = true after failed login")
	}
}

func TestLogin_ValidatesBeforeSending(t *testing.T) {
	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	if err := c.Login(context.Background(), "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("Login(\"\", \"\") error = %v, want ErrValidation", err)
	}
	if hits != 0 {
		t.Errorf("backend hit %d times for empty credentials, want 0", hits)
	}
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	if err := c.Register(context.Background(), "bob", "secret"); err != nil {
		t.Fatalf("Register() unexpected error = %v", err)
	}
	if c.Authenticated() {
		t.Error("Register() authenticated the session, want anonymous until login")
	}
}

func TestRegister_SurfacesServerError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Username already taken"}`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	err := c.Register(context.Background(), "bob", "secret")
	if err == nil || err.Error() != "Username already taken" {
		t.Errorf("Register() error = %v, want the server text verbatim", err)
	}
}

func TestStartOAuthLogin_ReturnsAuthURL(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/google" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"auth_url": "https://accounts.google.com/o/oauth2/auth?state=x"}`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	got, err := c.StartOAuthLogin(context.Background())
	if err != nil {
		t.Fatalf("StartOAuthLogin() unexpected error = %v", err)
	}
	if got != "https://accounts.google.com/o/oauth2/auth?state=x" {
		t.Errorf("auth URL = %q", got)
	}
}

func TestSetAuthToken_LastTokenWins(t *testing.T) {
	c, store := newTestClient(t, nil)
	if err := c.SetAuthToken("first"); err != nil {
		t.Fatal(err)
	}
	// A callback arriving while a session already exists overwrites it.
	if err := c.SetAuthToken("second"); err != nil {
		t.Fatal(err)
	}
	token, _ := store.Token()
	if token != "Bearer second" {
		t.Errorf("stored token = %q, want %q", token, "Bearer second")
	}
}

func TestLogout_Unconditional(t *testing.T) {
	c, store := newTestClient(t, nil)
	store.SetToken("abc")
	if err := c.Logout(); err != nil {
		t.Fatalf("Logout() unexpected error = %v", err)
	}
	if c.Authenticated() {
		t.Error("Authenticated() = true after Logout")
	}
	// Logging out twice is fine.
	if err := c.Logout(); err != nil {
		t.Errorf("second Logout() unexpected error = %v", err)
	}
}
