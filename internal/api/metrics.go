package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// navMovesTotal counts moves by unit, direction and outcome
	navMovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docvox_nav_moves_total",
		Help: "Total navigation moves by granularity, direction and result",
	}, []string{"granularity", "direction", "result"}) // result: "text" or "end"

	// navDuration tracks navigation operation latency
	navDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docvox_nav_duration_seconds",
		Help:    "Navigation operation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10us to ~80ms
	}, []string{"op"})

	collectionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "docvox_collection_descriptions",
		Help:    "Number of descriptions returned per collection request",
		Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
	})

	sessionsOpenedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docvox_sessions_opened_total",
		Help: "Documents opened into reading sessions by file type",
	}, []string{"ext"})
)
