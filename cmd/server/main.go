package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tableside/internal/commons"
	"tableside/internal/config"
	"tableside/internal/infrastructure/logger"
	"tableside/internal/infrastructure/mysql"
	"tableside/internal/infrastructure/postgres"
	"tableside/internal/menu"
	menurepo "tableside/internal/menu/repository"
	"tableside/internal/notifier"
	"tableside/internal/order"
	orderrepo "tableside/internal/order/repository"
	orderservice "tableside/internal/order/service"
	"tableside/internal/realtime"
	"tableside/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	orderRepo, menuRepo, closeStorage, err := buildStorage(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to storage", zap.Error(err))
	}
	defer closeStorage()

	hub := notifier.NewHub(zapLogger)
	var publisher notifier.Publisher = hub
	if cfg.AMQP.URL != "" {
		bridge, err := notifier.DialAMQP(cfg.AMQP)
		if err != nil {
			zapLogger.Fatal("connecting to broker", zap.Error(err))
		}
		defer bridge.Close()
		publisher = notifier.NewFanout(hub, bridge)
		zapLogger.Info("broker bridge enabled")
	}

	orderCtrl := order.NewModule(orderRepo, publisher, cfg, zapLogger)
	menuCtrl := menu.NewModule(menuRepo, zapLogger)
	realtimeCtrl := realtime.NewController(hub, zapLogger)

	router := server.NewRouter(orderCtrl, menuCtrl, realtimeCtrl, zapLogger)

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

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func buildStorage(cfg *config.Config, zapLogger *zap.Logger) (orderservice.OrderRepository, menu.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case "mysql":
		db, err := mysql.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		zapLogger.Info("mysql storage connected")
		return orderrepo.NewMySQLOrderRepository(db),
			menurepo.NewMySQLMenuRepository(db),
			func() { db.Close() },
			nil

	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.Postgres)
		if err != nil {
			return nil, nil, nil, err
		}
		zapLogger.Info("postgres storage connected")
		return orderrepo.NewPostgresOrderRepository(pool),
			menurepo.NewPostgresMenuRepository(pool),
			pool.Close,
			nil

	default:
		zapLogger.Info("using in-memory storage", zap.String("backend", cfg.Storage.Backend))
		return orderrepo.NewMemoryOrderRepository(),
			menurepo.NewMemoryMenuRepository(menurepo.DefaultCatalog()),
			func() {},
			nil
	}
}
