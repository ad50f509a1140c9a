package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var assignFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "dispatch_assign_failed_total",
		Help: "Total number of rejected rider assignment attempts",
	},
)
