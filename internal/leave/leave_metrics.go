package leave

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type formMetrics struct {
	submissions   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	daysRequested *prometheus.CounterVec
	openForms     prometheus.Gauge
}

var defaultMetrics = &formMetrics{
	submissions: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leave",
		Subsystem: "form",
		Name:      "submissions_total",
		Help:      "Leave form submissions broken down by result (accepted, rejected, failed).",
	}, []string{"result"}),
	notifications: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leave",
		Subsystem: "form",
		Name:      "notifications_total",
		Help:      "Manager notifications broken down by result (sent, failed).",
	}, []string{"result"}),
	daysRequested: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leave",
		Subsystem: "form",
		Name:      "days_requested_total",
		Help:      "Leave days requested per leave type.",
	}, []string{"leave_type"}),
	openForms: promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "leave",
		Subsystem: "form",
		Name:      "open",
		Help:      "Number of open leave form sessions.",
	}),
}
