package requestboard

import (
	"context"
	"sync"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leave"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Board is the shared leave request list every form appends to. It only
// grows; records are kept in append order.
type Board struct {
	mu        sync.RWMutex
	records   []leave.Record
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewBoard(publisher EventPublisher, logger ...*zap.Logger) *Board {
	l := zap.L().Named("requestboard")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("requestboard")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &Board{publisher: publisher, logger: l, now: time.Now}
}

// AddLeaveRequest appends rec and announces it. A failed publish is logged
// and does not undo the append.
func (b *Board) AddLeaveRequest(ctx context.Context, rec leave.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	b.records = append(b.records, rec)
	b.mu.Unlock()

	event := events.LeaveRequestedEvent{
		EventType:  "leave.requested",
		LeaveID:    rec.ID.String(),
		LeaveType:  string(rec.LeaveType),
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		LeaveDays:  rec.LeaveDays,
		Status:     string(rec.Status),
		OccurredAt: b.now().UTC(),
	}
	if err := b.publisher.PublishLeaveRequested(ctx, event); err != nil {
		log := contextutil.GetLogger(ctx, b.logger)
		log.Error("publish leave requested event failed",
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
	}
	return nil
}

func (b *Board) List() []leave.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]leave.Record, len(b.records))
	copy(out, b.records)
	return out
}
