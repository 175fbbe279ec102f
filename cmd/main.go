package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DaveCybr/ar-backend/config"
	"github.com/DaveCybr/ar-backend/db"
	"github.com/DaveCybr/ar-backend/internal/analytics"
	"github.com/DaveCybr/ar-backend/internal/auth/handler"
	repo "github.com/DaveCybr/ar-backend/internal/auth/repository/postgres"
	"github.com/DaveCybr/ar-backend/internal/auth/service"
	"github.com/DaveCybr/ar-backend/internal/events"
)

func main() {
	logger, err := newLogger(os.Getenv("ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbPool.Close()
	logger.Info("connected to PostgreSQL")

	var metrics analytics.Recorder = analytics.NewNoopRecorder()
	if cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		metrics = analytics.NewRedisRecorder(redisClient)
		logger.Info("connected to Redis")
	}

	var publisher events.Publisher = events.NewNoopPublisher()
	if cfg.NatsURL != "" {
		natsPublisher, err := events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			logger.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info("connected to NATS")
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry(), cfg.RefreshTokenExpiry(),
	)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	policy := service.NewLoginPolicy(cfg.LoginMaxAttempts, cfg.LockoutDuration())
	userService := service.NewUserService(userRepo, tokenService, hasher, policy, publisher, metrics, logger)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
