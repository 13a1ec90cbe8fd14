// @title Society Portal API
// @version 1.0
// @description Membership and events API for a regional professional medical society.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"societyportal/config"
	"societyportal/internal/adapters/auth"
	"societyportal/internal/adapters/email"
	httpdelivery "societyportal/internal/delivery/http"
	"societyportal/internal/delivery/http/controllers"
	"societyportal/internal/delivery/http/middleware"
	"societyportal/internal/domain"
	"societyportal/internal/repository/memory"
	"societyportal/internal/repository/postgres"
	"societyportal/internal/services"
)

const (
	bcryptCost     = 10
	serviceTimeout = 5 * time.Second
)

type repositories struct {
	users         domain.UserRepository
	sessions      domain.SessionRepository
	events        domain.EventRepository
	registrations domain.RegistrationRepository
	contacts      domain.ContactRepository
	newsletter    domain.NewsletterRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	var db *sql.DB
	if !cfg.UseInMemoryStorage {
		db, err = sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		if err := db.Ping(); err != nil {
			logger.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
	}
	repos := buildRepositories(cfg, db)
	logger.Info("storage backing selected", "in_memory", cfg.UseInMemoryStorage)

	hasher := auth.NewBcryptHasher(bcryptCost)
	credentials, err := auth.NewStaticCredentialProvider(hasher, auth.DemoAccounts)
	if err != nil {
		logger.Error("failed to build credential provider", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to build mailer", "err", err)
		os.Exit(1)
	}

	authService := services.NewAuthService(credentials, hasher, repos.users, repos.sessions, cfg.SessionTTL)
	eventService := services.NewEventService(repos.events, repos.registrations, serviceTimeout)
	contactService := services.NewContactService(repos.contacts, mailer, cfg.ContactInbox, logger)
	newsletterService := services.NewNewsletterService(repos.newsletter, mailer, logger)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := authService.SeedDemoUsers(startupCtx); err != nil {
		logger.Error("failed to seed demo users", "err", err)
		os.Exit(1)
	}
	if err := repos.sessions.DeleteExpired(startupCtx); err != nil {
		logger.Warn("failed to purge expired sessions", "err", err)
	}

	secureCookie := cfg.Environment == "production"
	authController := controllers.NewAuthController(logger, authService, cfg.SessionTTL, secureCookie)
	eventController := controllers.NewEventController(logger, eventService)
	contactController := controllers.NewContactController(logger, contactService, newsletterService)

	mux := httpdelivery.NewRouter(authController, eventController, contactController, authService)
	handler := middleware.Logging(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// buildRepositories selects the storage backing once at startup; the choice
// is fixed for the process lifetime.
func buildRepositories(cfg *config.Config, db *sql.DB) repositories {
	if cfg.UseInMemoryStorage {
		return repositories{
			users:         memory.NewUserRepository(),
			sessions:      memory.NewSessionRepository(),
			events:        memory.NewEventRepository(),
			registrations: memory.NewRegistrationRepository(),
			contacts:      memory.NewContactRepository(),
			newsletter:    memory.NewNewsletterRepository(),
		}
	}
	return repositories{
		users:         postgres.NewUserRepository(db),
		sessions:      postgres.NewSessionRepository(db),
		events:        postgres.NewEventRepository(db),
		registrations: postgres.NewRegistrationRepository(db),
		contacts:      postgres.NewContactRepository(db),
		newsletter:    postgres.NewNewsletterRepository(db),
	}
}
