package http

import (
	"net/http"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/http/handlers"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/processor"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

func NewServer(svc tournament.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Tournament:     svc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(h, paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /players", Chain(handlers.RegisterPlayerHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("GET /players/count", Chain(handlers.CountPlayersHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(handlers.GetPlayerHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("DELETE /players", Chain(handlers.DeletePlayersHandler(s.Tournament), paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(handlers.ReportMatchHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(handlers.ListMatchesHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("DELETE /matches", Chain(handlers.DeleteMatchesHandler(s.Tournament), paramsMiddleware))

	s.Router.Handle("GET /standings", Chain(handlers.StandingsHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("GET /pairings", Chain(handlers.PairingsHandler(s.Tournament), paramsMiddleware))
	s.Router.Handle("POST /standings/announce", Chain(handlers.AnnounceStandingsHandler(s.Tournament, s.Notifier), paramsMiddleware))
	s.Router.Handle("POST /pairings/announce", Chain(handlers.AnnouncePairingsHandler(s.Tournament, s.Notifier), paramsMiddleware))

	s.Router.Handle("POST /pubsub/match-reported", Chain(handlers.MatchReportedHandler(s.Processor, s.pubsub), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
