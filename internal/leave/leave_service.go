package leave

import (
	"context"
	"sync"
	"time"

	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context) (FormResponse, error)
	Get(ctx context.Context, formID string) (FormResponse, error)
	UpdateField(ctx context.Context, formID, name, value string) (FormResponse, error)
	Submit(ctx context.Context, formID string, req *SubmitLeaveRequest) (SubmitResponse, error)
	ToggleDetails(ctx context.Context, formID string) (FormResponse, error)
	Close(ctx context.Context, formID string) error
	RunSweeper(ctx context.Context, interval time.Duration)
}

// Options tune a Service. A nil Total falls back to DefaultBalance and a
// zero SessionTTL to 30 minutes. A non-nil Total is used as is, zero included.
type Options struct {
	Total      *Balance
	SessionTTL time.Duration
	Now        func() time.Time
}

type service struct {
	sink     RequestSink
	notifier notification.Notifier
	total    Balance
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu    sync.RWMutex
	forms map[uuid.UUID]*Form
}

func NewService(sink RequestSink, notifier notification.Notifier, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	total := DefaultBalance
	if opts.Total != nil {
		total = *opts.Total
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		sink:     sink,
		notifier: notifier,
		total:    total,
		ttl:      opts.SessionTTL,
		now:      opts.Now,
		logger:   l,
		forms:    make(map[uuid.UUID]*Form),
	}
}

func (s *service) Open(ctx context.Context) (FormResponse, error) {
	f := newForm(uuid.New(), s.total, s.sink, s.notifier, s.logger, s.now)

	s.mu.Lock()
	s.forms[f.ID()] = f
	count := len(s.forms)
	s.mu.Unlock()

	defaultMetrics.openForms.Set(float64(count))
	s.logger.Debug("leave form opened", zap.String("form_id", f.ID().String()))
	return mapToFormResponse(f.Snapshot()), nil
}

func (s *service) Get(ctx context.Context, formID string) (FormResponse, error) {
	f, err := s.lookup(formID)
	if err != nil {
		return FormResponse{}, err
	}
	return mapToFormResponse(f.Snapshot()), nil
}

func (s *service) UpdateField(ctx context.Context, formID, name, value string) (FormResponse, error) {
	f, err := s.lookup(formID)
	if err != nil {
		return FormResponse{}, err
	}
	if err := f.UpdateField(name, value); err != nil {
		return FormResponse{}, err
	}
	return mapToFormResponse(f.Snapshot()), nil
}

func (s *service) Submit(ctx context.Context, formID string, req *SubmitLeaveRequest) (SubmitResponse, error) {
	f, err := s.lookup(formID)
	if err != nil {
		return SubmitResponse{}, err
	}

	if req != nil {
		for name, v := range map[string]*string{
			"startDate": req.StartDate,
			"endDate":   req.EndDate,
			"leaveType": req.LeaveType,
			"reason":    req.Reason,
		} {
			if v == nil {
				continue
			}
			if err := f.UpdateField(name, *v); err != nil {
				return SubmitResponse{}, err
			}
		}
	}

	result, err := f.Submit(ctx)
	if err != nil {
		return SubmitResponse{}, err
	}

	return SubmitResponse{
		Leave:            mapToResponse(result.Record),
		NotificationSent: result.NotificationSent(),
		Message:          result.Message(),
		Form:             mapToFormResponse(f.Snapshot()),
	}, nil
}

func (s *service) ToggleDetails(ctx context.Context, formID string) (FormResponse, error) {
	f, err := s.lookup(formID)
	if err != nil {
		return FormResponse{}, err
	}
	f.ToggleDetailView()
	return mapToFormResponse(f.Snapshot()), nil
}

func (s *service) Close(ctx context.Context, formID string) error {
	id, err := uuid.Parse(formID)
	if err != nil {
		return leaveerrors.ErrFormNotFound
	}

	s.mu.Lock()
	_, ok := s.forms[id]
	delete(s.forms, id)
	count := len(s.forms)
	s.mu.Unlock()

	if !ok {
		return leaveerrors.ErrFormNotFound
	}
	defaultMetrics.openForms.Set(float64(count))
	s.logger.Debug("leave form closed", zap.String("form_id", formID))
	return nil
}

// RunSweeper closes forms idle for longer than the session TTL until ctx is
// done.
func (s *service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.logger.Info("expired idle leave forms", zap.Int("count", n))
			}
		}
	}
}

func (s *service) sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, f := range s.forms {
		if f.idleSince(now) > s.ttl {
			delete(s.forms, id)
			expired++
		}
	}
	defaultMetrics.openForms.Set(float64(len(s.forms)))
	return expired
}

func (s *service) lookup(formID string) (*Form, error) {
	id, err := uuid.Parse(formID)
	if err != nil {
		return nil, leaveerrors.ErrFormNotFound
	}

	s.mu.RLock()
	f, ok := s.forms[id]
	s.mu.RUnlock()
	if !ok {
		return nil, leaveerrors.ErrFormNotFound
	}
	return f, nil
}
