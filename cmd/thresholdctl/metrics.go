package main

import "github.com/prometheus/client_golang/prometheus"

var (
	roundsAttempted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thresholdctl",
		Name:      "rounds_attempted_total",
		Help:      "Signing rounds attempted, by scheme.",
	}, []string{"scheme"})

	roundsSucceeded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "thresholdctl",
		Name:      "rounds_succeeded_total",
		Help:      "Signing rounds that produced a verified signature, by scheme.",
	}, []string{"scheme"})

	pairingCheckSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "thresholdctl",
		Name:      "pairing_check_seconds",
		Help:      "Wall-clock time spent on BLS pairing checks of partial signatures.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(roundsAttempted, roundsSucceeded, pairingCheckSeconds)
}
