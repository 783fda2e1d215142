package githubauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

func newTestClient(userURL, emailsURL string) *Client {
	c := New(&config.Config{
		GithubClientID:     "client-id",
		GithubClientSecret: "client-secret",
		BackendURL:         "http://localhost:8080",
	})
	c.userURL = userURL
	c.emailsURL = emailsURL
	c.httpClient = &http.Client{Timeout: 2 * time.Second}
	return c
}

func TestAuthCodeURL_CarriesClientAndCallback(t *testing.T) {
	c := New(&config.Config{
		GithubClientID:     "client-id",
		GithubClientSecret: "client-secret",
		BackendURL:         "http://localhost:8080",
	})

	url := c.AuthCodeURL("")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "scope=user%3Aemail")
	assert.Contains(t, url, "github.com")
}

func TestFetchProfile_PicksPrimaryVerifiedEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"octocat","name":"Octo Cat"}`))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"email":"old@example.com","primary":false,"verified":true},
			{"email":"unverified@example.com","primary":true,"verified":false},
			{"email":"main@example.com","primary":true,"verified":true}
		]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL+"/user", srv.URL+"/user/emails")
	profile, err := c.FetchProfile(context.Background(), "gh-token")
	require.NoError(t, err)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "main@example.com", profile.Email)
}

func TestFetchProfile_NoPrimaryVerifiedEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login":"octocat"}`))
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"email":"hidden@example.com","primary":true,"verified":false}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL+"/user", srv.URL+"/user/emails")
	_, err := c.FetchProfile(context.Background(), "gh-token")
	require.ErrorIs(t, err, ErrNoPrimaryEmail)
}

func TestFetchProfile_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/user", srv.URL+"/user/emails")
	_, err := c.FetchProfile(context.Background(), "bad-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
