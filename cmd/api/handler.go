package api

import (
	"github.com/gin-gonic/gin"

	admindelivery "github.com/suryaprakash0010/InfantCareCompass/internal/admin/delivery"
	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	authusecase "github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
	careldelivery "github.com/suryaprakash0010/InfantCareCompass/internal/carelog/delivery"
	consuldelivery "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/delivery"
	growthdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/growth/delivery"
	notifdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/notification/delivery"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

// Handler bundles every delivery handler the router needs.
type Handler struct {
	authUsecase authusecase.AuthUsecase
	config      *config.Config

	authHandler         *authdelivery.AuthHandler
	signInLimiter       *authdelivery.SignInLimiter
	consultationHandler *consuldelivery.ConsultationHandler
	notificationHandler *notifdelivery.NotificationHandler
	carelogHandler      *careldelivery.CarelogHandler
	growthHandler       *growthdelivery.GrowthHandler
	adminHandler        *admindelivery.AdminHandler
}

func NewHandler(
	authUsecase authusecase.AuthUsecase,
	cfg *config.Config,
	authHandler *authdelivery.AuthHandler,
	signInLimiter *authdelivery.SignInLimiter,
	consultationHandler *consuldelivery.ConsultationHandler,
	notificationHandler *notifdelivery.NotificationHandler,
	carelogHandler *careldelivery.CarelogHandler,
	growthHandler *growthdelivery.GrowthHandler,
	adminHandler *admindelivery.AdminHandler,
) *Handler {
	return &Handler{
		authUsecase:         authUsecase,
		config:              cfg,
		authHandler:         authHandler,
		signInLimiter:       signInLimiter,
		consultationHandler: consultationHandler,
		notificationHandler: notificationHandler,
		carelogHandler:      carelogHandler,
		growthHandler:       growthHandler,
		adminHandler:        adminHandler,
	}
}

// Start configures the gin engine and blocks serving HTTP.
func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware. The front end sends the session cookie, so the
	// allowed origin must be explicit rather than "*".
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && origin == h.config.FrontendURL {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
