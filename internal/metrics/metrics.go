package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Invocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lambda_local_invocations_total",
		Help: "Total number of local function invocations, labelled by function and response status.",
	}, []string{"function", "status_code"})

	InvocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lambda_local_invocation_duration_ms",
		Help:    "Local function invocation latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"function"})

	EventTypes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lambda_local_event_types_total",
		Help: "Total number of locally invoked events, labelled by declared event type.",
	}, []string{"event_type"})
)
