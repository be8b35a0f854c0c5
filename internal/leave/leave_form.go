package leave

import (
	"context"
	"sync"
	"time"

	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/notification"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MessageNotificationSent   = "Leave request sent to manager."
	MessageNotificationFailed = "Failed to send leave request email."
)

// RequestSink is the shared request list every form appends to.
type RequestSink interface {
	AddLeaveRequest(ctx context.Context, rec Record) error
}

// SubmitResult is what the user is told after a valid submission.
// NotificationErr is set when the manager could not be notified; the record
// and balance change stay committed in that case.
type SubmitResult struct {
	Record          Record
	NotificationErr error
}

func (r SubmitResult) NotificationSent() bool {
	return r.NotificationErr == nil
}

func (r SubmitResult) Message() string {
	if r.NotificationErr != nil {
		return MessageNotificationFailed
	}
	return MessageNotificationSent
}

// Snapshot is a consistent copy of a form's state for rendering.
type Snapshot struct {
	ID          uuid.UUID
	Draft       Draft
	Total       Balance
	Remaining   Balance
	Requests    []Record
	ShowDetails bool
}

// Form is one leave application form: its draft, the requests submitted from
// it, and the balances they were charged against.
type Form struct {
	mu          sync.Mutex
	id          uuid.UUID
	draft       Draft
	requests    []Record
	total       Balance
	remaining   Balance
	showDetails bool
	lastActive  time.Time

	sink     RequestSink
	notifier notification.Notifier
	metrics  *formMetrics
	logger   *zap.Logger
	now      func() time.Time
}

func newForm(id uuid.UUID, total Balance, sink RequestSink, notifier notification.Notifier, logger *zap.Logger, now func() time.Time) *Form {
	return &Form{
		id:         id,
		total:      total,
		remaining:  total,
		lastActive: now(),
		sink:       sink,
		notifier:   notifier,
		metrics:    defaultMetrics,
		logger:     logger,
		now:        now,
	}
}

func (f *Form) ID() uuid.UUID {
	return f.id
}

// UpdateField sets one draft field without validating its value.
func (f *Form) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "startDate", "start_date":
		f.draft.StartDate = value
	case "endDate", "end_date":
		f.draft.EndDate = value
	case "leaveType", "leave_type":
		f.draft.LeaveType = value
	case "reason":
		f.draft.Reason = value
	default:
		return leaveerrors.ErrUnknownField
	}
	f.lastActive = f.now()
	return nil
}

func (f *Form) ToggleDetailView() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.showDetails = !f.showDetails
	f.lastActive = f.now()
	return f.showDetails
}

// Submit validates the current draft and records it. Validation failures
// return before anything is changed. The shared list append and the notifier
// both run without holding the form lock; the local list and balance are
// only updated once the shared append succeeded. A notification failure is
// reported in the result, never rolled back. The draft is cleared either way.
func (f *Form) Submit(ctx context.Context) (SubmitResult, error) {
	log := contextutil.GetLogger(ctx, f.logger).With(zap.String("form_id", f.id.String()))

	f.mu.Lock()
	draft := f.draft
	rec, err := buildRecord(draft, uuid.New(), f.now())
	f.mu.Unlock()
	if err != nil {
		f.metrics.submissions.WithLabelValues("rejected").Inc()
		log.Warn("leave submission rejected",
			zap.String("start_date", draft.StartDate),
			zap.String("end_date", draft.EndDate),
			zap.Error(err),
		)
		return SubmitResult{}, err
	}

	if err := f.sink.AddLeaveRequest(ctx, rec); err != nil {
		f.metrics.submissions.WithLabelValues("failed").Inc()
		log.Error("append to shared request list failed", zap.Error(err))
		return SubmitResult{}, apperror.Wrap(err,
			leaveerrors.ErrRequestListUnavailable.Code,
			leaveerrors.ErrRequestListUnavailable.Message,
			leaveerrors.ErrRequestListUnavailable.HTTPStatus,
		)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.remaining.Deduct(rec.LeaveType, rec.LeaveDays)
	f.lastActive = f.now()
	f.mu.Unlock()

	f.metrics.submissions.WithLabelValues("accepted").Inc()
	f.metrics.daysRequested.WithLabelValues(string(rec.LeaveType)).Add(float64(rec.LeaveDays))
	log.Info("leave request recorded",
		zap.String("leave_id", rec.ID.String()),
		zap.String("leave_type", string(rec.LeaveType)),
		zap.Int("leave_days", rec.LeaveDays),
	)

	notifyErr := f.notifier.NotifyLeaveRequest(ctx, notification.LeaveRequestMessage{
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		LeaveType: string(rec.LeaveType),
		Reason:    rec.Reason,
		LeaveDays: rec.LeaveDays,
	})
	if notifyErr != nil {
		f.metrics.notifications.WithLabelValues("failed").Inc()
		log.Error("error sending leave request email",
			zap.String("leave_id", rec.ID.String()),
			zap.Error(notifyErr),
		)
	} else {
		f.metrics.notifications.WithLabelValues("sent").Inc()
	}

	f.mu.Lock()
	f.draft = Draft{}
	f.mu.Unlock()

	return SubmitResult{Record: rec, NotificationErr: notifyErr}, nil
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests := make([]Record, len(f.requests))
	copy(requests, f.requests)
	return Snapshot{
		ID:          f.id,
		Draft:       f.draft,
		Total:       f.total,
		Remaining:   f.remaining,
		Requests:    requests,
		ShowDetails: f.showDetails,
	}
}

func (f *Form) idleSince(now time.Time) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return now.Sub(f.lastActive)
}
