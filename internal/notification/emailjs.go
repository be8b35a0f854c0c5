package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const driverEmailJS = "emailjs"

// EmailJSConfig identifies the relay service, template and account.
type EmailJSConfig struct {
	Endpoint    string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	Timeout     time.Duration
}

type emailJSPayload struct {
	ServiceID      string              `json:"service_id"`
	TemplateID     string              `json:"template_id"`
	UserID         string              `json:"user_id"`
	AccessToken    string              `json:"accessToken,omitempty"`
	TemplateParams LeaveRequestMessage `json:"template_params"`
}

// EmailJSNotifier sends the leave request through the EmailJS REST API.
type EmailJSNotifier struct {
	cfg    EmailJSConfig
	client *http.Client
	logger *zap.Logger
}

func NewEmailJSNotifier(cfg EmailJSConfig, logger ...*zap.Logger) *EmailJSNotifier {
	l := zap.L().Named("notification.emailjs")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.emailjs")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &EmailJSNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: l,
	}
}

func (n *EmailJSNotifier) NotifyLeaveRequest(ctx context.Context, msg LeaveRequestMessage) error {
	body, err := json.Marshal(emailJSPayload{
		ServiceID:      n.cfg.ServiceID,
		TemplateID:     n.cfg.TemplateID,
		UserID:         n.cfg.PublicKey,
		AccessToken:    n.cfg.AccessToken,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("marshal emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return &DeliveryError{Driver: driverEmailJS, Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeliveryError{
			Driver:     driverEmailJS,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(respBody))),
		}
	}

	n.logger.Debug("leave request email sent",
		zap.String("template_id", n.cfg.TemplateID),
		zap.String("leave_type", msg.LeaveType),
		zap.Int("leave_days", msg.LeaveDays),
	)
	return nil
}
