package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	invoicesTotal             *prometheus.CounterVec
	invoiceAmount             prometheus.Histogram
	customerCreatedTotal      prometheus.Counter
	customerUpdatedTotal      *prometheus.CounterVec
	customerDeletedTotal      prometheus.Counter
	dashboardViewRequests     *prometheus.CounterVec
	dashboardViewDuration     prometheus.Histogram
	uploadsTotal              *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		invoicesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invoices_total",
				Help: "Total number of invoice mutations",
			},
			[]string{"operation", "status"},
		),
		invoiceAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "invoice_amount_dollars",
				Help:    "Invoice amounts in dollars",
				Buckets: prometheus.ExponentialBuckets(1, 10, 6),
			},
		),
		customerCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customer updates by field",
			},
			[]string{"field"},
		),
		customerDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		dashboardViewRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_view_requests_total",
				Help: "Dashboard view requests by view and cache outcome",
			},
			[]string{"view", "cache"},
		),
		dashboardViewDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_view_duration_seconds",
				Help:    "Time spent assembling uncached dashboard views",
				Buckets: prometheus.DefBuckets,
			},
		),
		uploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uploads_total",
				Help: "Total number of avatar uploads",
			},
			[]string{"status"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "invoice_created":
		m.invoicesTotal.WithLabelValues("create", tags["status"]).Inc()
	case "invoice_updated":
		m.invoicesTotal.WithLabelValues("update", tags["status"]).Inc()
	case "invoice_deleted":
		m.invoicesTotal.WithLabelValues("delete", "").Inc()
	case "customer_created":
		m.customerCreatedTotal.Inc()
	case "customer_updated":
		if field := tags["field"]; field != "" {
			m.customerUpdatedTotal.WithLabelValues(field).Inc()
		}
	case "customer_deleted":
		m.customerDeletedTotal.Inc()
	case "dashboard_view_request":
		m.dashboardViewRequests.WithLabelValues(tags["view"], tags["cache"]).Inc()
	case "upload_completed":
		m.uploadsTotal.WithLabelValues("success").Inc()
	case "upload_rejected":
		m.uploadsTotal.WithLabelValues("rejected").Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_view":
		m.dashboardViewDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "invoice_amount":
		m.invoiceAmount.Observe(value)
	}
}
