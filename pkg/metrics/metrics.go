// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

// Package metrics defines the engine's Prometheus collectors. They are
// registered by the metrics server and incremented by the refresh loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// VerdictsTotal counts access evaluations by outcome reason.
	VerdictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_engine_verdicts_total",
			Help: "Total number of access verdicts by reason",
		},
		[]string{"reason"},
	)

	// RefreshesTotal counts snapshot refresh attempts by result.
	RefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_engine_refreshes_total",
			Help: "Total number of snapshot refreshes by result",
		},
		[]string{"result"},
	)

	// VisibleChallenges tracks the size of the last filtered catalog per tab.
	VisibleChallenges = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "challenge_engine_visible_challenges",
			Help: "Number of challenges visible after the last filter pass",
		},
		[]string{"tab"},
	)

	// RefreshDuration measures how long a full snapshot refresh takes.
	RefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "challenge_engine_refresh_duration_seconds",
			Help:    "Duration of snapshot refreshes",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Collectors returns every custom collector for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		VerdictsTotal,
		RefreshesTotal,
		VisibleChallenges,
		RefreshDuration,
	}
}
