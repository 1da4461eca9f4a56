// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportRowsRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_read_total",
			Help: "Total number of vendor export rows read",
		},
		[]string{"restaurant"},
	)

	ImportRowsKept = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_kept_total",
			Help: "Total number of vendor export rows kept after cleaning",
		},
		[]string{"restaurant"},
	)

	ImportRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_dropped_total",
			Help: "Total number of vendor export rows dropped by the cleaner",
		},
		[]string{"restaurant", "reason"},
	)

	ImportFilesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_files_failed_total",
			Help: "Total number of export files that failed to load",
		},
	)

	PlanOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_operations_total",
			Help: "Total number of meal plan operations by kind",
		},
		[]string{"operation"},
	)

	PlanOverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plan_overall_score",
			Help:    "Overall score of scored meal plans",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	CatalogCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_requests_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route", "status"},
	)
)
