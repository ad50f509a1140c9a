package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var publishDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "event_publish_duration_seconds",
		Help:    "Duration of event publishing to the broker",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"topic", "outcome"},
)
