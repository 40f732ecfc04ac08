// Package metrics exposes the Prometheus collectors for the execution
// core. Collectors are registered on the default registry; the app serves
// them on the observability port.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NativeDispatches counts dispatcher invocations by function and
	// outcome ("ok", "rejected", "failed").
	NativeDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relaycore_native_dispatch_total",
		Help: "Native function dispatches by qualified name and outcome.",
	}, []string{"function", "outcome"})

	// NativeDispatchDuration observes wall time of successful host
	// invocations, excluding signature validation.
	NativeDispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relaycore_native_dispatch_duration_seconds",
		Help:    "Host invocation latency by qualified function name.",
		Buckets: prometheus.DefBuckets,
	}, []string{"function"})

	// WorkerExecutions counts worker runs by outcome
	// ("completed", "failed").
	WorkerExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relaycore_worker_executions_total",
		Help: "Worker executions by outcome.",
	}, []string{"outcome"})
)
