package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VisitorCount = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "portfolio", Name: "visitor_count", Help: "Last observed visitor counter value."},
	)
	ContactMessages = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_messages_total", Help: "Number of stored contact messages."},
	)
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "notifications_sent_total", Help: "Number of contact notifications delivered."},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "notifications_failed_total", Help: "Number of contact notifications that failed."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(VisitorCount)
	reg.MustRegister(ContactMessages)
	reg.MustRegister(NotificationsSent)
	reg.MustRegister(NotificationsFailed)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
