package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const (
	authURL  = "https://ticktick.com/oauth/authorize"
	tokenURL = "https://ticktick.com/oauth/token"
)

// Config returns the OAuth2 configuration for the task service.
// Client credentials come from the environment; the service issues them
// per registered application, so there is nothing sensible to hardcode.
func Config() (*oauth2.Config, error) {
	clientID := os.Getenv("TICKTICK_CLIENT_ID")
	clientSecret := os.Getenv("TICKTICK_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("TICKTICK_CLIENT_ID and TICKTICK_CLIENT_SECRET must be set")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
		RedirectURL: "http://localhost:8080/callback",
		Scopes:      []string{"tasks:read", "tasks:write"},
	}, nil
}

// AuthURL returns the URL the user visits to authorize access.
func AuthURL() (string, error) {
	conf, err := Config()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL("state"), nil
}

// HasToken checks if a cached token exists.
func HasToken() bool {
	path, err := tokenPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// SaveToken exchanges an authorization code for tokens and caches them.
func SaveToken(ctx context.Context, authCode string) error {
	conf, err := Config()
	if err != nil {
		return err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return writeToken(token)
}

// TokenSource returns an auto-refreshing token source backed by the cache.
func TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf, err := Config()
	if err != nil {
		return nil, err
	}

	token, err := readToken()
	if err != nil {
		return nil, fmt.Errorf("no valid token found, run 'tickctl auth login' first: %w", err)
	}
	return conf.TokenSource(ctx, token), nil
}

// HTTPClient returns an HTTP client that attaches the bearer token to
// every request and refreshes it when expired.
func HTTPClient(ctx context.Context) (*http.Client, error) {
	ts, err := TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

func tokenPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache dir: %w", err)
	}
	return filepath.Join(dir, "tickctl", "ticktick.token"), nil
}

func writeToken(token *oauth2.Token) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func readToken() (*oauth2.Token, error) {
	path, err := tokenPath()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", path, err)
	}
	return &token, nil
}
