package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sculpo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	BookingStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_booking_status_transitions_total",
			Help: "Total number of booking status updates",
		},
		[]string{"status"},
	)

	AvailabilityQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_availability_queries_total",
			Help: "Total number of availability resolution queries",
		},
		[]string{"kind"},
	)

	SlotsComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_slots_computed_total",
			Help: "Total number of slots produced by the resolution engine",
		},
		[]string{"kind"},
	)

	BlockedTimesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sculpo_blocked_times_total",
			Help: "Total number of blocked time slots created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sculpo_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sculpo_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordStatusTransition(status string) {
	BookingStatusTransitionsTotal.WithLabelValues(status).Inc()
}

func RecordAvailabilityQuery(kind string) {
	AvailabilityQueriesTotal.WithLabelValues(kind).Inc()
}

func RecordSlotsComputed(kind string, n int) {
	SlotsComputedTotal.WithLabelValues(kind).Add(float64(n))
}

func RecordBlockedTime() {
	BlockedTimesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
