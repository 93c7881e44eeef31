// Package metrics defines and registers all custom Prometheus metrics for the
// dashboard backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// MutationsTotal counts form mutations by their outcome.
// Labels:
//   - entity: "invoice" or "user"
//   - operation: "create", "update", "delete", "register", "login"
//   - outcome: "success", "validation_error", "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of form mutations, by entity, operation and outcome.",
	},
	[]string{"entity", "operation", "outcome"},
)

// MutationDuration tracks how long a mutation takes end to end, by entity
// and operation.
var MutationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mutation_duration_seconds",
		Help:      "Duration of form mutations in seconds, by entity and operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity", "operation"},
)

// ListingCacheTotal counts invoice-listing reads by cache result.
// Label:
//   - result: "hit" (served from the page cache) or "miss" (queried)
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of invoice listing reads, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)
