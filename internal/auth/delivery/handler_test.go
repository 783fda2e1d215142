package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/githubauth"
)

type stubGithub struct {
	profile *githubauth.Profile
	err     error
}

func (s *stubGithub) AuthCodeURL(state string) string { return "https://github.test/authorize" }

func (s *stubGithub) Exchange(ctx context.Context, code string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "gh-token", nil
}

func (s *stubGithub) FetchProfile(ctx context.Context, accessToken string) (*githubauth.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newAuthTestServer(t *testing.T, gh usecase.GithubProvider) (*gin.Engine, usecase.AuthUsecase, repository.UserRepository, repository.DoctorRepository) {
	t.Helper()

	authUC, cfg, userRepo, doctorRepo := newTestAuth(t)
	if gh != nil {
		authUC = usecase.NewAuthUsecase(userRepo, doctorRepo, gh, cfg)
	}

	handler := NewAuthHandler(authUC, cfg)
	r := gin.New()
	r.POST("/api/signin", handler.SignIn)
	r.POST("/api/signup", handler.SignUp)
	r.POST("/api/logout", handler.Logout)
	r.GET("/api/user/me", RequireAuth(authUC), handler.Me)
	r.GET("/api/auth/github/callback", handler.GithubCallback)
	return r, authUC, userRepo, doctorRepo
}

func registerParent(t *testing.T, r *gin.Engine, email string) {
	t.Helper()
	body, _ := json.Marshal(gin.H{
		"email":    email,
		"password": "secret123",
		"role":     "USER",
		"kidName":  "Mia",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSignInHandler_Success(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, nil)
	registerParent(t, r, "parent@example.com")

	body, _ := json.Marshal(gin.H{
		"email":    "parent@example.com",
		"password": "secret123",
		"role":     "USER",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		Success bool   `json:"success"`
		Data    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "USER", resp.Data.Role)

	cookie := authCookie(t, rec)
	require.NotNil(t, cookie, "sign-in must set the token cookie")
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSignInHandler_BadCredentials(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, nil)
	registerParent(t, r, "parent@example.com")

	body, _ := json.Marshal(gin.H{
		"email":    "parent@example.com",
		"password": "wrong-password",
		"role":     "USER",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "incorrect email or password")
	assert.Nil(t, authCookie(t, rec))
}

func TestSignInHandler_MissingFields(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, nil)

	body, _ := json.Marshal(gin.H{"email": "parent@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpHandler_DuplicateEmailConflict(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, nil)
	registerParent(t, r, "parent@example.com")

	body, _ := json.Marshal(gin.H{
		"email":    "parent@example.com",
		"password": "secret123",
		"role":     "USER",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := authCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMeHandler_ReturnsCurrentIdentity(t *testing.T) {
	r, authUC, userRepo, _ := newAuthTestServer(t, nil)
	registerParent(t, r, "parent@example.com")

	user, err := userRepo.FindByEmail("parent@example.com")
	require.NoError(t, err)
	token, err := authUC.IssueToken(user.ID, user.Email, authdomain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "parent@example.com")
	assert.Contains(t, rec.Body.String(), "Mia")
}

func TestGithubCallback_MissingCode(t *testing.T) {
	r, _, _, _ := newAuthTestServer(t, &stubGithub{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/github/callback", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGithubCallback_UnknownEmailRedirectsToRegistration(t *testing.T) {
	gh := &stubGithub{profile: &githubauth.Profile{Login: "stranger", Email: "stranger@example.com"}}
	r, _, _, _ := newAuthTestServer(t, gh)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/github/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:5173/registration", rec.Header().Get("Location"))
	assert.Nil(t, authCookie(t, rec))
}

func TestGithubCallback_KnownEmailSetsCookieAndRedirects(t *testing.T) {
	gh := &stubGithub{profile: &githubauth.Profile{Login: "parent", Email: "parent@example.com"}}
	r, _, _, _ := newAuthTestServer(t, gh)
	registerParent(t, r, "parent@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/github/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:5173/oauth-success", rec.Header().Get("Location"))

	cookie := authCookie(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestGithubCallback_NoVerifiedEmail(t *testing.T) {
	gh := &stubGithub{err: githubauth.ErrNoPrimaryEmail}
	r, _, _, _ := newAuthTestServer(t, gh)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/github/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not verified")
}
