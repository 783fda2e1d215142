// Package githubauth wraps the GitHub OAuth code exchange and the profile
// lookups the sign-in flow needs. Client credentials never leave the server;
// the browser only ever sees the authorize redirect.
package githubauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	githubep "golang.org/x/oauth2/github"

	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

const (
	defaultUserURL   = "https://api.github.com/user"
	defaultEmailsURL = "https://api.github.com/user/emails"
)

var ErrNoPrimaryEmail = fmt.Errorf("github account has no primary verified email")

// Profile is the subset of the GitHub account the sign-in flow cares about.
type Profile struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string
}

type Client struct {
	oauth      oauth2.Config
	userURL    string
	emailsURL  string
	httpClient *http.Client
}

// New builds a client from the server-held OAuth credentials. The callback
// URL must exactly match the one registered with GitHub.
func New(cfg *config.Config) *Client {
	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.BackendURL + "/api/auth/github/callback",
			Scopes:       []string{"user:email"},
			Endpoint:     githubep.Endpoint,
		},
		userURL:   defaultUserURL,
		emailsURL: defaultEmailsURL,
		// Both provider calls run inside a user-facing request, so a hung
		// provider must not hold the connection open indefinitely.
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthCodeURL returns the GitHub authorize URL the browser is redirected to.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange swaps the callback authorization code for a provider access token.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("github token exchange: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("github token exchange: empty access token")
	}
	return token.AccessToken, nil
}

// FetchProfile loads the GitHub user and resolves the primary verified email.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, c.userURL, accessToken, &profile); err != nil {
		return nil, err
	}

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := c.getJSON(ctx, c.emailsURL, accessToken, &emails); err != nil {
		return nil, err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			profile.Email = e.Email
			return &profile, nil
		}
	}
	return nil, ErrNoPrimaryEmail
}

func (c *Client) getJSON(ctx context.Context, url, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("github api returned %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
