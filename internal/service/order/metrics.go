package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of order status transition attempts",
		},
		[]string{"target", "outcome"},
	)

	eventPublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_event_publish_failed_total",
			Help: "Total number of status-changed events that failed to publish after commit",
		},
	)
)
