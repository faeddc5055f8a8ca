package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	ContactMessages = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_messages_total", Help: "Number of contact messages persisted."},
	)
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_notifications_sent_total", Help: "Number of contact notification emails sent."},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_notifications_failed_total", Help: "Number of contact notification emails that failed to send."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(ContactMessages)
	reg.MustRegister(NotificationsSent)
	reg.MustRegister(NotificationsFailed)
}
