package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_players_registered_total",
			Help: "The total number of players registered.",
		}),
		MatchesReported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swiss_matches_reported_total",
			Help: "The total number of match results recorded, by outcome.",
		}, []string{"outcome"}),
		PairingsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_pairings_generated_total",
			Help: "The total number of successful pairing runs.",
		}),
		PairingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_pairing_failures_total",
			Help: "The total number of pairing runs rejected for an odd player count.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "swiss_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersRegistered,
		s.MatchesReported,
		s.PairingsGenerated,
		s.PairingFailures,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersRegistered() {
	s.PlayersRegistered.Inc()
}

func (s *Service) IncMatchesReported(outcome string) {
	s.MatchesReported.WithLabelValues(outcome).Inc()
}

func (s *Service) IncPairingsGenerated() {
	s.PairingsGenerated.Inc()
}

func (s *Service) IncPairingFailures() {
	s.PairingFailures.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
