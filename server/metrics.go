package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts searches by outcome: found, not_found, rejected, timeout.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iddfs_searches_total",
		Help: "Total searches by result",
	}, []string{"result"})

	// searchDuration tracks trace generation latency.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "iddfs_search_duration_seconds",
		Help:    "Trace generation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})

	// traceSteps tracks the number of steps per generated trace.
	traceSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "iddfs_trace_steps",
		Help:    "Number of steps per generated trace",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
	})
)
