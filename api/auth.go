package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/litekite/litekite"
)

// Login exchanges credentials for an access token and persists it. On any
// failure the session is left anonymous and the error is returned to the
// caller to present.
func (c *Client) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	var body struct {
		AccessToken string `json:"access_token"`
	}
	creds := map[string]string{"username": username, "password": password}
	if err := c.jwpost(ctx, "/login", creds, &body); err != nil {
		return err
	}
	if body.AccessToken == "" {
		return fmt.Errorf("login response carried no access token")
	}
	return c.SetAuthToken(body.AccessToken)
}

// Register creates an account. It does not authenticate; the caller still
// has to log in afterwards.
func (c *Client) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	creds := map[string]string{"username": username, "password": password}
	return c.jwpost(ctx, "/register", creds, nil)
}

// Logout clears the persisted session unconditionally.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// StartOAuthLogin asks the backend for the Google authorization URL. The
// session is established later, out-of-band: the provider redirects back
// with a token that the user hands to SetAuthToken (login -token).
func (c *Client) StartOAuthLogin(ctx context.Context) (authURL string, err error) {
	var body struct {
		AuthURL string `json:"auth_url"`
	}
	if err := c.jwget(ctx, "/auth/google", &body); err != nil {
		return "", err
	}
	if body.AuthURL == "" {
		return "", fmt.Errorf("backend returned no authorization URL")
	}
	return body.AuthURL, nil
}

// SetAuthToken normalizes and persists an externally-obtained token.
// Last token wins: an existing session is overwritten.
func (c *Client) SetAuthToken(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty token", ErrValidation)
	}
	return c.store.SetToken(litekite.Canonical(raw))
}
