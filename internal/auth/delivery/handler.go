package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authdto "github.com/suryaprakash0010/InfantCareCompass/internal/auth/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/githubauth"
)

// CookieName is the auth cookie shared by sign-in and the OAuth callback.
const CookieName = "token"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// setTokenCookie applies one cookie policy to every issuance path: HttpOnly,
// Secure in production, SameSite=Lax so the OAuth redirect still carries it.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(h.config.JWTExpiry.Seconds()), "/", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req authdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: email, password, and role are required",
			"success": false,
			"error":   true,
		})
		return
	}

	data, token, err := h.authUsecase.SignIn(&req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid role provided. Please use 'USER', 'PARENTS', or 'DOCTOR'",
				"success": false,
				"error":   true,
			})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": usecase.ErrInvalidCredentials.Error(),
				"success": false,
				"error":   true,
			})
		default:
			log.Printf("[Auth] sign-in error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "An error occurred during sign-in",
				"success": false,
				"error":   true,
			})
		}
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    data,
		"token":   token,
		"success": true,
		"error":   false,
	})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req authdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
			"success": false,
			"error":   true,
		})
		return
	}

	data, err := h.authUsecase.SignUp(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"message": usecase.ErrEmailTaken.Error(),
				"success": false,
				"error":   true,
			})
		case errors.Is(err, authdomain.ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid role provided. Please use 'USER', 'PARENTS', or 'DOCTOR'",
				"success": false,
				"error":   true,
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"message": err.Error(),
				"success": false,
				"error":   true,
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"data":    data,
		"success": true,
		"error":   false,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
		"success": true,
		"error":   false,
	})
}

// Me hydrates client state after page load or the OAuth redirect.
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Authentication failed. Please log in again.",
			"success": false,
			"error":   true,
		})
		return
	}

	data, err := h.authUsecase.CurrentUser(principal)
	if err != nil {
		if errors.Is(err, usecase.ErrIdentityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "User data not found.",
				"success": false,
				"error":   true,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load user data",
			"success": false,
			"error":   true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User session active",
		"data":    data,
		"success": true,
		"error":   false,
	})
}

// GithubLogin redirects the browser to the provider's authorize endpoint.
func (h *AuthHandler) GithubLogin(c *gin.Context) {
	if !h.config.GithubOAuthEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server configuration error",
			"success": false,
			"error":   true,
		})
		return
	}
	c.Redirect(http.StatusFound, h.authUsecase.GithubAuthURL())
}

// GithubCallback finishes the OAuth handshake. An email unknown to both
// stores redirects to registration; OAuth never provisions an account.
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "GitHub authorization code is missing",
			"success": false,
			"error":   true,
		})
		return
	}

	// The redirect cannot carry a JSON body; the front end follows up with
	// GET /user/me to hydrate state.
	_, token, err := h.authUsecase.GithubSignIn(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIdentityNotFound):
			c.Redirect(http.StatusFound, h.config.FrontendURL+"/registration")
		case errors.Is(err, githubauth.ErrNoPrimaryEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "GitHub email not found or not verified",
				"success": false,
				"error":   true,
			})
		default:
			log.Printf("[Auth] github sign-in error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Failed to get GitHub access token",
				"success": false,
				"error":   true,
			})
		}
		return
	}

	h.setTokenCookie(c, token)
	c.Redirect(http.StatusFound, h.config.FrontendURL+"/oauth-success")
}
