package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-leave/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Leave.SickDays)
	assert.Equal(t, 10, cfg.Leave.CasualDays)
	assert.Equal(t, 30*time.Minute, cfg.Leave.SessionTTL)
	assert.Equal(t, config.NotifierLog, cfg.Notification.Driver)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "hr.leave.requested.v1", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LEAVE_SICK_DAYS", "12")
	t.Setenv("NOTIFICATION_DRIVER", "emailjs")
	t.Setenv("NOTIFICATION_EMAILJS_SERVICE_ID", "service_x")
	t.Setenv("NOTIFICATION_EMAILJS_TEMPLATE_ID", "template_y")
	t.Setenv("NOTIFICATION_EMAILJS_PUBLIC_KEY", "pk")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Leave.SickDays)
	assert.Equal(t, "service_x", cfg.Notification.EmailJS.ServiceID)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, os.WriteFile(path, []byte("LEAVE_CASUAL_DAYS=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LEAVE_CASUAL_DAYS") })

	cfg, err := config.Load(path)

	assert.NoError(t, err)
	assert.Equal(t, 7, cfg.Leave.CasualDays)
}

func TestLoad_InvalidDriverConfig(t *testing.T) {
	t.Run("emailjs without credentials", func(t *testing.T) {
		t.Setenv("NOTIFICATION_DRIVER", "emailjs")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "notification.emailjs")
	})

	t.Run("sns without topic", func(t *testing.T) {
		t.Setenv("NOTIFICATION_DRIVER", "sns")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "topic_arn")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("NOTIFICATION_DRIVER", "pigeon")

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "pigeon")
	})
}
