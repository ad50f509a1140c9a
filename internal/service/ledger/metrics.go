package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_postings_total",
			Help: "Total number of appended ledger entries",
		},
		[]string{"entity_type", "transaction_type"},
	)

	duplicatePostingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_duplicate_postings_total",
			Help: "Total number of postings skipped as idempotent replays",
		},
	)
)
