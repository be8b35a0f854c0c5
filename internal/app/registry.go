package app

import (
	"context"
	"net/http"

	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/middleware"
	"go-leave/internal/notification"
	"go-leave/internal/requestboard"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	rdb *redis.Client,
	writer *kafka.Writer,
	logger *zap.Logger,
) error {
	// --- Collaborators ---
	notifier, err := notification.New(ctx, cfg.Notification, logger)
	if err != nil {
		return err
	}

	publisher := requestboard.NewNoopEventPublisher()
	if writer != nil {
		publisher = requestboard.NewKafkaEventPublisher(writer, cfg.Kafka.Topic)
	}
	board := requestboard.NewBoard(publisher, logger)

	// --- Services ---
	leaveService := leave.NewService(board, notifier, leave.Options{
		Total: &leave.Balance{
			Sick:   cfg.Leave.SickDays,
			Casual: cfg.Leave.CasualDays,
		},
		SessionTTL: cfg.Leave.SessionTTL,
	}, logger)
	go leaveService.RunSweeper(ctx, cfg.Leave.SweepInterval)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	pageHandler := leave.NewPageHandler(leaveService, logger)
	boardHandler := requestboard.NewHandler(board)

	var submitMiddleware []gin.HandlerFunc
	if rdb != nil {
		submitMiddleware = append(submitMiddleware, middleware.Idempotency(rdb, cfg.Redis.IdempotencyTTL, logger))
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler, submitMiddleware...)
		requestboard.RegisterRoutes(api, boardHandler)
	}
	leave.RegisterPageRoutes(router, pageHandler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
