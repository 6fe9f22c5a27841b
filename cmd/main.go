package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"hifz_keep/internal/config"
	"hifz_keep/internal/handlers"
	"hifz_keep/internal/middleware"
	"hifz_keep/internal/reminder"
	"hifz_keep/internal/repository"
	"hifz_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config tells us how to log for real.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Loading configuration...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := buildLogger(&config.Cfg)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error running database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection.
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	hadithRepo := repository.NewGormHadithRepository()
	planRepo := repository.NewGormPlanRepository()
	progressRepo := repository.NewGormProgressRepository()
	reviewRepo := repository.NewGormReviewRepository()
	streakRepo := repository.NewGormStreakRepository()
	cohortRepo := repository.NewGormCohortRepository()

	mailer, err := buildMailer(&config.Cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, &config.Cfg)
	hadithService := service.NewHadithService(db, hadithRepo)
	planService := service.NewPlanService(db, planRepo, hadithRepo, progressRepo)
	reviewService := service.NewReviewService(db, planRepo, progressRepo, reviewRepo, &config.Cfg)
	streakService := service.NewStreakService(db, streakRepo)
	cohortService := service.NewCohortService(db, cohortRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	hadithHandler := handlers.NewHadithHandler(hadithService, logger)
	planHandler := handlers.NewPlanHandler(planService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, streakService, logger)
	streakHandler := handlers.NewStreakHandler(streakService, logger)
	cohortHandler := handlers.NewCohortHandler(cohortService, authService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/verify", authHandler.Verify)
			r.Post("/login", authHandler.Login)
			r.Post("/password/forgot", authHandler.ForgotPassword)
			r.Post("/password/reset", authHandler.ResetPassword)
		})

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/me", authHandler.Me)

			r.Route("/hadiths", func(r chi.Router) {
				r.Post("/", hadithHandler.CreateHadith)
				r.Get("/", hadithHandler.ListHadiths)
				r.Get("/{hadith_id}", hadithHandler.GetHadith)
				r.Put("/{hadith_id}", hadithHandler.UpdateHadith)
				r.Delete("/{hadith_id}", hadithHandler.DeleteHadith)
			})

			r.Route("/plans", func(r chi.Router) {
				r.Post("/", planHandler.CreatePlan)
				r.Get("/", planHandler.ListPlans)
				r.Get("/{plan_id}", planHandler.GetPlan)
				r.Patch("/{plan_id}", planHandler.PatchPlan)
				r.Delete("/{plan_id}", planHandler.DeletePlan)
				r.Get("/{plan_id}/progress", planHandler.GetPlanProgress)
				r.Post("/{plan_id}/hadiths/{hadith_id}/memorize", reviewHandler.Memorize)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/due", reviewHandler.GetDueReviews)
				r.Post("/{review_id}/complete", reviewHandler.CompleteReview)
			})

			r.Get("/streak", streakHandler.GetStreak)

			r.Route("/cohorts", func(r chi.Router) {
				r.Post("/", cohortHandler.CreateCohort)
				r.Get("/", cohortHandler.ListCohorts)
				r.Get("/mine", cohortHandler.ListMyEnrollments)
				r.Post("/{cohort_id}/enroll", cohortHandler.Enroll)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if config.Cfg.Reminder.Enabled {
		reminderScheduler := reminder.New(db, reviewRepo, userRepo, mailer, &config.Cfg, logger)
		reminderScheduler.Start()
		defer reminderScheduler.Stop()
	}

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", slog.Any("error", err))
			stop()
		}
	}()

	<-serverCtx.Done()
	slog.Info("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", slog.Any("error", err))
	}
	slog.Info("Server stopped.")
}

func buildLogger(cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

func buildMailer(cfg *config.Config) (service.Mailer, error) {
	switch strings.ToLower(cfg.Mail.Provider) {
	case "smtp":
		return service.NewSmtpMailer(&cfg.SMTP), nil
	case "ses":
		return service.NewSESMailer(context.Background(), &cfg.AWS, cfg.Mail.From)
	default:
		return &service.LogMailer{}, nil
	}
}
