// @title        HustleHub API
// @version      1.0
// @description  Job board connecting applicants with employers, plus a financial-literacy catalogue.
// @BasePath     /
//
// @securityDefinitions.apikey  CookieAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>". Browsers send the hustlehub_access_token cookie instead.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hustlehub/hustlehub-api/internal/api"
	"github.com/hustlehub/hustlehub-api/internal/api/handler"
	"github.com/hustlehub/hustlehub-api/internal/api/metrics"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
	"github.com/hustlehub/hustlehub-api/internal/core/service"
	"github.com/hustlehub/hustlehub-api/internal/infrastructure/config"
	mongostore "github.com/hustlehub/hustlehub-api/internal/infrastructure/db/mongo"
	redisstore "github.com/hustlehub/hustlehub-api/internal/infrastructure/db/redis"
	"github.com/hustlehub/hustlehub-api/internal/infrastructure/db/sqlstore"
	"github.com/hustlehub/hustlehub-api/internal/infrastructure/queue"
	"github.com/hustlehub/hustlehub-api/internal/infrastructure/storage"
	"github.com/hustlehub/hustlehub-api/pkg/logger"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "hustlehub-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Relational store ---
	db, err := sqlstore.Open(sqlstore.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.URL, Logger: log})
	if err != nil {
		return err
	}
	defer func() { _ = sqlstore.Close(db) }()
	if err := sqlstore.Migrate(db); err != nil {
		return err
	}

	readiness := map[string]handler.Pinger{
		"database": func(ctx context.Context) error { return sqlstore.Ping(ctx, db) },
	}

	// --- Session revocation (optional) ---
	var revoker ports.SessionRevoker
	if cfg.Redis.Addr != "" {
		revocations, err := redisstore.Dial(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = revocations.Close() }()
		revoker = revocations
		readiness["redis"] = revocations.Ping
	} else {
		log.Warn().Msg("REDIS_ADDR not set, logout only clears the cookie")
	}

	// --- Audit trail ---
	var auditRepo ports.AuditRepository = queue.NewLogSink(log.With().Str("component", "audit").Logger())
	if cfg.Mongo.URI != "" {
		store, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(context.Background()) }()

		repo := store.Audit()
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		auditRepo = repo
		readiness["mongo"] = store.Ping
	}

	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(context.Background())
	defer dispatcher.Close()
	metrics.RegisterAuditDropped(dispatcher.Dropped)

	// --- Resume storage ---
	files, err := newFileStore(ctx, cfg)
	if err != nil {
		return err
	}
	if p, ok := files.(interface{ Ping(context.Context) error }); ok {
		readiness["storage"] = p.Ping
	}

	deps, admin := buildServices(cfg, log, db, revoker, dispatcher, files)
	deps.Readiness = readiness

	if cfg.Admin.Password != "" {
		if _, err := admin.EnsureAdmin(ctx, ports.CreateUserInput{
			Username: cfg.Admin.Username,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		}); err != nil {
			return err
		}
	}

	e := api.NewRouter(deps)
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newFileStore(ctx context.Context, cfg *config.Config) (ports.FileStore, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:          cfg.Storage.S3.Bucket,
			Region:          cfg.Storage.S3.Region,
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
		})
	}
	return storage.NewLocalStore(cfg.Storage.UploadDir)
}

func buildServices(
	cfg *config.Config,
	log zerolog.Logger,
	db *gorm.DB,
	revoker ports.SessionRevoker,
	audit ports.AuditRecorder,
	files ports.FileStore,
) (api.Dependencies, *service.AdminService) {
	users := sqlstore.NewUserRepository(db)
	employers := sqlstore.NewEmployerRepository(db)
	jobs := sqlstore.NewJobRepository(db)
	applications := sqlstore.NewApplicationRepository(db)
	notifications := sqlstore.NewNotificationRepository(db)
	resources := sqlstore.NewResourceRepository(db)

	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	admin := service.NewAdminService(users, jobs, applications, resources, files, hasher, audit, log)

	return api.Dependencies{
		Logger:      log,
		CORSOrigins: cfg.CORS.Origins,
		Cookie: handler.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.IsProduction(),
			TTL:    cfg.Auth.TokenTTL,
		},
		Auth:          service.NewAuthService(users, hasher, tokens, revoker, log),
		Employers:     service.NewEmployerService(employers, log),
		Jobs:          service.NewJobService(jobs, employers, applications, audit, log),
		Applications:  service.NewApplicationService(jobs, applications, notifications, audit, log),
		Profiles:      service.NewProfileService(users, applications, files, hasher, audit, cfg.Storage.MaxResumeBytes, log),
		Admin:         admin,
		Resources:     service.NewResourceService(resources, audit, log),
		Notifications: service.NewNotificationService(notifications, log),
	}, admin
}
