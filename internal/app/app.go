package app

import (
	"context"
	"errors"

	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// App holds the infrastructure opened by BuildApp.
type App struct {
	redis  *redis.Client
	writer *kafka.Writer
	logger *zap.Logger
}

// BuildApp menyiapkan infrastruktur opsional lalu mendaftarkan semua modul.
// Redis and Kafka are skipped when their address is empty. Background jobs
// stop when ctx is cancelled.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger.Named("app")}

	// 1. Setup Infrastructure
	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		a.logger.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))
	} else {
		a.logger.Warn("REDIS_ADDR not set, idempotency disabled")
	}

	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.MaxRetries)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.writer = writer
		a.logger.Info("Kafka writer ready", zap.String("broker", cfg.Kafka.Broker))
	} else {
		a.logger.Warn("KAFKA_BROKER not set, leave events are not published")
	}

	// 2. Register Modules & Routes
	if err := registerModules(ctx, router, cfg, a.redis, a.writer, logger); err != nil {
		_ = a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Close() error {
	var errs []error
	if a.writer != nil {
		errs = append(errs, a.writer.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	return errors.Join(errs...)
}
