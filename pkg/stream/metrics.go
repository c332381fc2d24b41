package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	barsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_bars_processed_total",
			Help: "Total number of bars processed by the engine",
		},
		[]string{"symbol"},
	)

	barsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_bars_rejected_total",
			Help: "Total number of bars rejected by validation",
		},
		[]string{"reason"},
	)

	calculatorsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_calculators_created_total",
			Help: "Total number of calculator instances created",
		},
		[]string{"name"},
	)

	barProcessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ta_bar_process_duration_seconds",
			Help:    "Time spent fanning one bar out to all calculators",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
	)

	trackedSymbols = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ta_tracked_symbols",
			Help: "Number of symbols the engine currently tracks",
		},
	)
)
