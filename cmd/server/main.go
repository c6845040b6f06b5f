package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"risorte/internal/cart"
	"risorte/internal/catalog"
	"risorte/internal/checkout"
	"risorte/internal/config"
	"risorte/internal/infrastructure/logger"
	"risorte/internal/infrastructure/redis"
	"risorte/internal/profile"
	"risorte/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	redisClient, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	catalogCtrl, index := catalog.NewModule(cfg.Catalog.Path, zapLogger)
	cartCtrl, cartSvc := cart.NewModule(index, zapLogger)
	profileCtrl, profileSvc := profile.NewModule(redisClient, cfg.Profile.Key, zapLogger)
	checkoutCtrl, _ := checkout.NewModule(cartSvc, profileSvc, index, zapLogger)

	router := server.NewRouter(catalogCtrl, cartCtrl, profileCtrl, checkoutCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
