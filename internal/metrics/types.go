package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PlayersRegistered  prometheus.Counter
	MatchesReported    *prometheus.CounterVec
	PairingsGenerated  prometheus.Counter
	PairingFailures    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
