package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
)

const principalKey = "principal"

// extractToken finds the caller's credential. The cookie set at sign-in is
// the primary transport; an Authorization header (Bearer or raw) is accepted
// for clients that keep the token in local storage.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

// resolvePrincipal is the single authentication path shared by RequireAuth
// and RequireRole.
func resolvePrincipal(c *gin.Context, authUsecase usecase.AuthUsecase) (*authdomain.Principal, bool) {
	raw := extractToken(c)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Authorization token missing. Please login.",
			"success": false,
			"error":   true,
		})
		c.Abort()
		return nil, false
	}

	principal, err := authUsecase.ValidateToken(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid or expired token. Please login again.",
			"success": false,
			"error":   true,
		})
		c.Abort()
		return nil, false
	}

	c.Set(principalKey, principal)
	return principal, true
}

// RequireAuth verifies the credential and attaches the principal to the
// request context. It does not load the full identity record.
func RequireAuth(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := resolvePrincipal(c, authUsecase); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole verifies the credential and additionally gates on the token's
// role. A valid token with the wrong role gets 403, not 401.
func RequireRole(authUsecase usecase.AuthUsecase, role authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := resolvePrincipal(c, authUsecase)
		if !ok {
			return
		}
		if !role.Equals(string(principal.Role)) {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Access denied. " + string(role) + " privileges required.",
				"success": false,
				"error":   true,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the identity attached by RequireAuth or
// RequireRole.
func PrincipalFromContext(c *gin.Context) (*authdomain.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*authdomain.Principal)
	return principal, ok
}
