package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/notification"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var sampleMessage = notification.LeaveRequestMessage{
	StartDate: "2024-01-01",
	EndDate:   "2024-01-03",
	LeaveType: "sick",
	Reason:    "flu",
	LeaveDays: 3,
}

func TestEmailJSNotifier_NotifyLeaveRequest(t *testing.T) {
	t.Run("success posts template params", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		n := notification.NewEmailJSNotifier(notification.EmailJSConfig{
			Endpoint:   srv.URL,
			ServiceID:  "service_1",
			TemplateID: "template_1",
			PublicKey:  "public_1",
		}, zap.NewNop())

		err := n.NotifyLeaveRequest(context.Background(), sampleMessage)

		assert.NoError(t, err)
		assert.Equal(t, "service_1", got["service_id"])
		assert.Equal(t, "template_1", got["template_id"])
		assert.Equal(t, "public_1", got["user_id"])
		assert.NotContains(t, got, "accessToken")
		params := got["template_params"].(map[string]any)
		assert.Equal(t, "2024-01-01", params["startDate"])
		assert.Equal(t, "2024-01-03", params["endDate"])
		assert.Equal(t, "sick", params["leaveType"])
		assert.Equal(t, "flu", params["reason"])
		assert.Equal(t, float64(3), params["leaveDays"])
	})

	t.Run("non 2xx is a delivery error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("The template ID is invalid"))
		}))
		defer srv.Close()

		n := notification.NewEmailJSNotifier(notification.EmailJSConfig{Endpoint: srv.URL}, zap.NewNop())

		err := n.NotifyLeaveRequest(context.Background(), sampleMessage)

		var deliveryErr *notification.DeliveryError
		assert.True(t, errors.As(err, &deliveryErr))
		assert.Equal(t, http.StatusBadRequest, deliveryErr.StatusCode)
		assert.Contains(t, err.Error(), "The template ID is invalid")
	})

	t.Run("transport failure is a delivery error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		n := notification.NewEmailJSNotifier(notification.EmailJSConfig{Endpoint: url}, zap.NewNop())

		err := n.NotifyLeaveRequest(context.Background(), sampleMessage)

		var deliveryErr *notification.DeliveryError
		assert.True(t, errors.As(err, &deliveryErr))
		assert.Zero(t, deliveryErr.StatusCode)
	})
}
