package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAuth(t *testing.T) (usecase.AuthUsecase, *config.Config, repository.UserRepository, repository.DoctorRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.Doctor{}))

	cfg := &config.Config{
		JWTSecret:   "test-token-secret",
		JWTExpiry:   8 * time.Hour,
		FrontendURL: "http://localhost:5173",
	}
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	return usecase.NewAuthUsecase(userRepo, doctorRepo, nil, cfg), cfg, userRepo, doctorRepo
}

func newProtectedRouter(authUC usecase.AuthUsecase) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(authUC), func(c *gin.Context) {
		principal, _ := PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": principal.UserID, "role": principal.Role})
	})
	r.GET("/admin-only", RequireRole(authUC, authdomain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAuth_MissingToken(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please login")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_CookieTransport(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	token, err := authUC.IssueToken("user-1", "parent@example.com", authdomain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireAuth_BearerHeaderTransport(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	token, err := authUC.IssueToken("user-1", "parent@example.com", authdomain.RoleUser)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	token, err := authUC.IssueToken("user-1", "parent@example.com", authdomain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN privileges required")
}

func TestRequireRole_MissingTokenIsUnauthorizedNotForbidden(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	authUC, _, _, _ := newTestAuth(t)
	r := newProtectedRouter(authUC)

	token, err := authUC.IssueToken("admin-1", "admin@example.com", authdomain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
