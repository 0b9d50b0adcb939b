package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideadrop/content-api/internal/api"
	"github.com/ideadrop/content-api/internal/api/handler"
	"github.com/ideadrop/content-api/internal/core/token"
	"github.com/ideadrop/content-api/internal/infrastructure/config"
	mongodb "github.com/ideadrop/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ideadrop/content-api/internal/infrastructure/db/redis"
	"github.com/ideadrop/content-api/internal/infrastructure/media"
	"github.com/ideadrop/content-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{Level: "info"})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	codec, err := token.New(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec setup failed")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mediaStore, err := media.NewS3Store(ctx, media.Config{
		Bucket:        cfg.Media.Bucket,
		Region:        cfg.Media.Region,
		Endpoint:      cfg.Media.Endpoint,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("media store setup failed")
	}

	userRepo := mongodb.NewUserRepository(db)
	ideaRepo := mongodb.NewIdeaRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	// Unique indexes back the conflict errors: concurrent registrations
	// with the same email race past the service pre-check and resolve here.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := ideaRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("idea indexes failed")
	}
	if err := categoryRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("category indexes failed")
	}

	e := api.NewRouter(api.Dependencies{
		Users:         userRepo,
		Ideas:         ideaRepo,
		Books:         bookRepo,
		Categories:    categoryRepo,
		Products:      productRepo,
		Media:         mediaStore,
		Codec:         codec,
		Cookies:       handler.NewCookieSettings(cfg.IsProduction(), codec.RefreshTTL()),
		PasswordMin:   cfg.Auth.PasswordMinLength,
		Limiter:       redisdb.NewRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window),
		EnableMetrics: true,
		Health: map[string]handler.Pinger{
			"mongodb": mongodb.Pinger(db),
			"redis":   redisdb.Pinger(rdb),
		},
		Logger: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
