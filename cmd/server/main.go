// Package main boots the HavenBridge home-care back-office API.
//
// @title           HavenBridge Home Care API
// @version         1.0
// @description     Public submission endpoints and the authenticated back-office API for HavenBridge Home Care.
//
// @contact.name    HavenBridge
// @contact.email   admin@havenbridge.com
//
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/havenbridge/homecare-api/internal/api"
	"github.com/havenbridge/homecare-api/internal/api/handler"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
	"github.com/havenbridge/homecare-api/internal/core/domain"
	"github.com/havenbridge/homecare-api/internal/core/ports"
	"github.com/havenbridge/homecare-api/internal/core/service"
	"github.com/havenbridge/homecare-api/internal/infrastructure/config"
	mongodb "github.com/havenbridge/homecare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/havenbridge/homecare-api/internal/infrastructure/db/redis"
	"github.com/havenbridge/homecare-api/internal/infrastructure/mail"
	"github.com/havenbridge/homecare-api/internal/infrastructure/queue"
	"github.com/havenbridge/homecare-api/internal/infrastructure/storage"
	"github.com/havenbridge/homecare-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	adminRepo := mongodb.NewAdminRepository(db)
	appointmentRepo := mongodb.NewRequestRepository[domain.Appointment](db, mongodb.CollectionAppointments, domain.ErrAppointmentNotFound)
	applicationRepo := mongodb.NewRequestRepository[domain.CareerApplication](db, mongodb.CollectionApplications, domain.ErrApplicationNotFound)
	messageRepo := mongodb.NewRequestRepository[domain.ContactMessage](db, mongodb.CollectionMessages, domain.ErrMessageNotFound)
	auditRepo := mongodb.NewAuditRepository(db)

	ensureIndexes(ctx, log, adminRepo, appointmentRepo, applicationRepo, messageRepo)
	seedAdmin(ctx, log, adminRepo, cfg.Seed)

	// --- Outbound notifications ---
	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("smtp mailer init failed")
	}

	dispatcher := queue.NewDispatcher(0, mailer, log)
	dispatcher.Start(ctx)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	audit := service.NewAuditRecorder(auditRepo, log)
	resumes := storage.NewResumeStore(cfg.Upload.Dir, log)

	authService := service.NewAuthService(adminRepo, tokens, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, audit, dispatcher, log)
	applicationService := service.NewApplicationService(applicationRepo, resumes, audit, log)
	messageService := service.NewMessageService(messageRepo, audit, dispatcher, log)
	overviewService := service.NewOverviewService(
		appointmentRepo, applicationRepo, messageRepo,
		auditRepo, redisdb.NewOverviewCache(rdb), log,
	)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Logger:       log,
		Guard:        middleware.NewAuthGuard(tokens, adminRepo),
		Auth:         handler.NewAuthHandler(authService),
		Appointments: handler.NewAppointmentHandler(appointmentService),
		Applications: handler.NewApplicationHandler(applicationService),
		Messages:     handler.NewMessageHandler(messageService),
		Overview:     handler.NewOverviewHandler(overviewService),
		Mongo:        db,
		Redis:        rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("homecare api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, log zerolog.Logger, repos ...indexEnsurer) {
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}
}

// seedAdmin provisions the initial administrator when none exists yet. An
// empty seed password skips seeding entirely.
func seedAdmin(ctx context.Context, log zerolog.Logger, admins ports.AdminRepository, seed config.SeedConfig) {
	if seed.AdminPassword == "" {
		return
	}

	if _, err := admins.FindByEmail(ctx, seed.AdminEmail); err == nil {
		return
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		log.Fatal().Err(err).Msg("admin seed lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("admin seed hash failed")
	}

	created, err := admins.Create(ctx, &domain.Admin{
		Email:        seed.AdminEmail,
		PasswordHash: string(hash),
		FullName:     seed.AdminName,
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return
		}
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	log.Info().Str("admin_id", created.ID).Str("email", created.Email).Msg("seeded initial admin")
}
