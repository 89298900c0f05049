package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capitaluy_http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "capitaluy_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capitaluy_store_operations_total",
			Help: "Document store calls by driver, operation and result.",
		},
		[]string{"driver", "op", "result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "capitaluy_store_operation_duration_seconds",
			Help:    "Document store call latency.",
			Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"driver", "op"},
	)

	// ReadFallbacksTotal counts GETs answered with defaults or the last known value.
	ReadFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capitaluy_read_fallbacks_total",
			Help: "Resource reads served from defaults after a store failure.",
		},
		[]string{"resource"},
	)
)
