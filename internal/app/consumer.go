package app

import (
	"context"
	"fmt"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer membaca event leave requested dan mencatatnya ke audit log
// sampai ctx selesai.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          cfg.Kafka.Topic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	audit := bootstrap.NewStdoutAuditLogger(logger)
	consumer.ConsumeLeaveRequested(ctx, reader, auditLeaveRequested(audit), logger)

	log.Info("consumer shutting down")
	return nil
}

func auditLeaveRequested(audit bootstrap.AuditLogger) consumer.LeaveRequestedHandler {
	return func(ctx context.Context, event events.LeaveRequestedEvent) error {
		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "LEAVE_REQUESTED",
			Message: "leave request submitted",
			Meta: map[string]any{
				"leave_id":    event.LeaveID,
				"leave_type":  event.LeaveType,
				"start_date":  event.StartDate,
				"end_date":    event.EndDate,
				"leave_days":  event.LeaveDays,
				"status":      event.Status,
				"occurred_at": event.OccurredAt,
			},
		})
		return nil
	}
}
