// Package metrics defines the Prometheus instrumentation shared across the
// HTTP and storage layers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workboard"

var (
	// DBQueryDuration tracks database query latency by query verb.
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Duration of database queries in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})

	// DBErrorsTotal tracks failed database queries by query verb.
	DBErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "errors_total",
		Help:      "Total number of failed database queries.",
	}, []string{"query"})

	// ProvisionedSectionsTotal counts override rows created by
	// initialization sync.
	ProvisionedSectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "provisioned_sections_total",
		Help:      "Total number of workspace section overrides created by initialization sync.",
	})
)
