package main

import (
	"log"

	api "github.com/suryaprakash0010/InfantCareCompass/cmd/api"
	admindelivery "github.com/suryaprakash0010/InfantCareCompass/internal/admin/delivery"
	adminusecase "github.com/suryaprakash0010/InfantCareCompass/internal/admin/usecase"
	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	authusecase "github.com/suryaprakash0010/InfantCareCompass/internal/auth/usecase"
	careldelivery "github.com/suryaprakash0010/InfantCareCompass/internal/carelog/delivery"
	careldomain "github.com/suryaprakash0010/InfantCareCompass/internal/carelog/domain"
	carelrepo "github.com/suryaprakash0010/InfantCareCompass/internal/carelog/repository"
	carelusecase "github.com/suryaprakash0010/InfantCareCompass/internal/carelog/usecase"
	consuldelivery "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/delivery"
	consuldomain "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/domain"
	consulrepo "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/repository"
	consulusecase "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/usecase"
	growthdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/growth/delivery"
	growthdomain "github.com/suryaprakash0010/InfantCareCompass/internal/growth/domain"
	growthrepo "github.com/suryaprakash0010/InfantCareCompass/internal/growth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/scheduler"
	growthusecase "github.com/suryaprakash0010/InfantCareCompass/internal/growth/usecase"
	"github.com/suryaprakash0010/InfantCareCompass/internal/notification"
	notifdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/notification/delivery"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/database"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/githubauth"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.Doctor{},
		&consuldomain.Consultation{},
		&careldomain.FeedLog{},
		&careldomain.SleepLog{},
		&growthdomain.GrowthLog{},
		&growthdomain.ReminderSettings{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	doctorRepo := authrepo.NewDoctorRepository(db)
	consultationRepo := consulrepo.NewConsultationRepository(db)
	feedLogRepo := carelrepo.NewFeedLogRepository(db)
	sleepLogRepo := carelrepo.NewSleepLogRepository(db)
	growthLogRepo := growthrepo.NewGrowthLogRepository(db)
	reminderRepo := growthrepo.NewReminderRepository(db)

	// Outbound services
	mail := mailer.NewSMTPMailer(cfg)
	github := githubauth.New(cfg)
	if !cfg.GithubOAuthEnabled() {
		log.Println("[Auth] GitHub OAuth credentials not configured, social login disabled")
	}

	// Initialize use cases
	authUC := authusecase.NewAuthUsecase(userRepo, doctorRepo, github, cfg)
	consultationUC := consulusecase.NewConsultationUsecase(consultationRepo, doctorRepo)
	carelogUC := carelusecase.NewCarelogUsecase(feedLogRepo, sleepLogRepo)
	growthUC := growthusecase.NewGrowthUsecase(growthLogRepo, reminderRepo)
	adminUC := adminusecase.NewAdminUsecase(userRepo, doctorRepo, consultationRepo)
	notifService := notification.NewService(doctorRepo, mail, cfg)

	// Start growth reminder scheduler
	reminderScheduler := scheduler.NewReminderScheduler(reminderRepo, userRepo, mail, cfg.FrontendURL)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// Sign-in rate limiter: 10 attempts/min with a burst of 5 per client IP.
	signInLimiter := authdelivery.NewSignInLimiter(10, 5)
	defer signInLimiter.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUC,
		cfg,
		authdelivery.NewAuthHandler(authUC, cfg),
		signInLimiter,
		consuldelivery.NewConsultationHandler(consultationUC),
		notifdelivery.NewNotificationHandler(notifService),
		careldelivery.NewCarelogHandler(carelogUC),
		growthdelivery.NewGrowthHandler(growthUC),
		admindelivery.NewAdminHandler(adminUC),
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
