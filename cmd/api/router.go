package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
)

// SetupRoutes wires every endpoint. Protected groups share one session
// middleware; the admin group adds the role gate on top of it.
func SetupRoutes(r *gin.Engine, h *Handler) {
	authMW := authdelivery.RequireAuth(h.authUsecase)
	adminMW := authdelivery.RequireRole(h.authUsecase, authdomain.RoleAdmin)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		api.POST("/signin", h.signInLimiter.Middleware(), h.authHandler.SignIn)
		api.POST("/signup", h.authHandler.SignUp)
		api.POST("/logout", h.authHandler.Logout)
		api.GET("/user/me", authMW, h.authHandler.Me)

		// GitHub OAuth routes
		api.GET("/auth/github", h.authHandler.GithubLogin)
		api.GET("/auth/github/callback", h.authHandler.GithubCallback)

		// Doctor and consultation
		api.POST("/consultation", authMW, h.consultationHandler.Book)
		api.GET("/consultation", authMW, h.consultationHandler.MyConsultations)
		api.GET("/doctorinfo", h.consultationHandler.DoctorInfo)

		// Notifications
		api.POST("/notify-doctor", authMW, h.notificationHandler.NotifyDoctor)
		api.POST("/contact-us", h.notificationHandler.ContactUs)

		// FeedLog routes
		feedlogs := api.Group("/feedlogs", authMW)
		{
			feedlogs.POST("", h.carelogHandler.CreateFeedLog)
			feedlogs.GET("", h.carelogHandler.GetFeedLogs)
			feedlogs.PUT("/:id", h.carelogHandler.UpdateFeedLog)
			feedlogs.DELETE("/:id", h.carelogHandler.DeleteFeedLog)
		}

		// SleepLog routes
		sleeplogs := api.Group("/sleeplogs", authMW)
		{
			sleeplogs.POST("", h.carelogHandler.CreateSleepLog)
			sleeplogs.GET("", h.carelogHandler.GetSleepLogs)
			sleeplogs.PUT("/:id", h.carelogHandler.UpdateSleepLog)
			sleeplogs.DELETE("/:id", h.carelogHandler.DeleteSleepLog)
		}

		// Growth tracker routes
		growth := api.Group("/growth-logs", authMW)
		{
			growth.POST("", h.growthHandler.Create)
			growth.GET("", h.growthHandler.List)
			growth.GET("/stats", h.growthHandler.Stats)
			growth.PATCH("/reminder-settings", h.growthHandler.UpdateReminderSettings)
			growth.GET("/:id", h.growthHandler.Get)
			growth.PUT("/:id", h.growthHandler.Update)
			growth.DELETE("/:id", h.growthHandler.Delete)
		}

		// Admin routes
		admin := api.Group("/admin", adminMW)
		{
			admin.GET("/analytics", h.adminHandler.DashboardAnalytics)
			admin.GET("/users", h.adminHandler.ListUsers)
			admin.GET("/doctors", h.adminHandler.ListDoctors)
			admin.PUT("/users/:userId/status", h.adminHandler.UpdateUserStatus)
			admin.PUT("/doctors/:doctorId/review", h.adminHandler.ReviewDoctor)
			// Kept for older front-end builds that still call the short form.
			admin.PATCH("/review/:doctorId", h.adminHandler.ReviewDoctor)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route Not Found", "success": false, "error": true})
	})
}
