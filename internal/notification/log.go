package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes the message to the logger and always succeeds.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.L()
	}
	return &LogNotifier{logger: logger.Named("notification.log")}
}

func (n *LogNotifier) NotifyLeaveRequest(_ context.Context, msg LeaveRequestMessage) error {
	n.logger.Info("leave request notification",
		zap.String("start_date", msg.StartDate),
		zap.String("end_date", msg.EndDate),
		zap.String("leave_type", msg.LeaveType),
		zap.String("reason", msg.Reason),
		zap.Int("leave_days", msg.LeaveDays),
	)
	return nil
}
