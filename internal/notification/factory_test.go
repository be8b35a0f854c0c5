package notification_test

import (
	"context"
	"testing"

	"go-leave/internal/config"
	"go-leave/internal/notification"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("log driver", func(t *testing.T) {
		n, err := notification.New(ctx, config.NotificationConfig{Driver: config.NotifierLog}, zap.NewNop())
		assert.NoError(t, err)
		assert.IsType(t, &notification.LogNotifier{}, n)
		assert.NoError(t, n.NotifyLeaveRequest(ctx, sampleMessage))
	})

	t.Run("emailjs driver", func(t *testing.T) {
		n, err := notification.New(ctx, config.NotificationConfig{
			Driver:  config.NotifierEmailJS,
			EmailJS: config.EmailJSConfig{Endpoint: "http://localhost", ServiceID: "s", TemplateID: "t", PublicKey: "p"},
		}, zap.NewNop())
		assert.NoError(t, err)
		assert.IsType(t, &notification.EmailJSNotifier{}, n)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := notification.New(ctx, config.NotificationConfig{Driver: "fax"}, zap.NewNop())
		assert.Error(t, err)
	})
}
