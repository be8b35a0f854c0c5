package bootstrap_test

import (
	"context"
	"testing"

	"go-leave/internal/bootstrap"
	"go-leave/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LEAVE_REQUESTED",
		Message: "leave request recorded",
		Meta:    map[string]any{"leave_days": 3},
	})

	entries := logs.FilterMessage("audit event").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "LEAVE_REQUESTED", fields["action"])
		assert.Equal(t, "rid-1", fields["request_id"])
		assert.NotEmpty(t, fields["timestamp"])
	}
}
