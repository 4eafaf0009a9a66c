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
	"golang.org/x/crypto/bcrypt"

	"github.com/quickaccess/linkdir/internal/api"
	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
	"github.com/quickaccess/linkdir/internal/core/service"
	"github.com/quickaccess/linkdir/internal/infrastructure/config"
	mongodb "github.com/quickaccess/linkdir/internal/infrastructure/db/mongo"
	redisdb "github.com/quickaccess/linkdir/internal/infrastructure/db/redis"
	"github.com/quickaccess/linkdir/internal/infrastructure/queue"
	"github.com/quickaccess/linkdir/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	linkRepo := mongodb.NewLinkRepository(db)
	logRepo := mongodb.NewLogRepository(db)

	// Index creation failures are logged, not fatal: the service still works
	// against an existing collection, just slower and without the unique
	// constraints enforced.
	type indexer interface{ EnsureIndexes(context.Context) error }
	for _, r := range []indexer{userRepo, roleRepo, linkRepo, logRepo} {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("index creation failed")
		}
	}

	// Seed the default role set; the service stays usable with whatever
	// roles already exist.
	roleService := service.NewRoleService(roleRepo, log)
	if err := roleService.SeedDefaults(ctx); err != nil {
		log.Warn().Err(err).Msg("role seeding incomplete")
	}

	if cfg.Admin.Bootstrap() {
		bootstrapAdmin(ctx, userRepo, cfg.Admin, log)
	}

	recorder := queue.NewAuditRecorder(logRepo, log, 0)

	e := api.NewRouter(db, rdb, recorder, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	// Drain buffered audit entries after the server stops accepting requests.
	recorder.Close()
}

// bootstrapAdmin creates the configured admin account when it does not
// exist yet. Failures are logged and ignored: a missing bootstrap admin is
// recoverable through self-registration on a fresh database.
func bootstrapAdmin(ctx context.Context, users ports.UserRepository, cfg config.AdminConfig, log zerolog.Logger) {
	_, err := users.FindByUsername(ctx, cfg.Username)
	if err == nil {
		return
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		log.Warn().Err(err).Msg("admin bootstrap lookup failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("admin bootstrap hash failed")
		return
	}

	if _, err := users.Create(ctx, &domain.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		log.Warn().Err(err).Msg("admin bootstrap failed")
		return
	}
	log.Info().Str("username", cfg.Username).Msg("admin account created")
}
