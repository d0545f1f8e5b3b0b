// Package main is the entry point for the eventdesk API server.
//
// @title EventDesk API
// @version 1.0
// @description REST backend for conference and event management: events, speakers, sessions, participants, and budgets.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token. Browsers authenticate via the access_token cookie instead.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"eventdesk/config"
	_ "eventdesk/docs"
	authadapter "eventdesk/internal/adapters/auth"
	"eventdesk/internal/adapters/email"
	delivery "eventdesk/internal/delivery/http"
	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/repository/postgres"
	"eventdesk/internal/services"
)

const serviceTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("failed to run migrations: %v", err)
	}
	cancel()

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	budgetRepo := postgres.NewBudgetRepository(db)

	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := authadapter.NewJWTTokens(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureTLS,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, tokens)
	userService := services.NewUserService(userRepo, hasher)
	eventService := services.NewEventService(eventRepo, userRepo, serviceTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, serviceTimeout)
	sessionService := services.NewSessionService(sessionRepo, eventRepo, speakerRepo, userRepo, serviceTimeout)
	participantService := services.NewParticipantService(participantRepo, eventRepo, userRepo, emailService, serviceTimeout)
	budgetService := services.NewBudgetService(budgetRepo, eventRepo, userRepo, serviceTimeout)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:        controllers.NewAuthController(logger, authService, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.SecureCookies),
		User:        controllers.NewUserController(logger, userService),
		Event:       controllers.NewEventController(logger, eventService),
		Speaker:     controllers.NewSpeakerController(logger, speakerService),
		Session:     controllers.NewSessionController(logger, sessionService),
		Participant: controllers.NewParticipantController(logger, participantService),
		Budget:      controllers.NewBudgetController(logger, budgetService),
	}, tokens, rate.Limit(cfg.LoginRatePerSec), cfg.LoginBurst)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
