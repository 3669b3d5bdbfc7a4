package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestTracing)
	r.Use(RequestLogging(logger))
	r.Use(CORS(corsAllowedOrigins))
	r.Use(recoverPanic(logger))

	r.Get("/healthz", handler.Healthz)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/fixtures", func(r chi.Router) {
			r.Post("/warm", handler.WarmFixtureDetails)
			r.Route("/{fixtureID}", func(r chi.Router) {
				r.Get("/", handler.GetFixtureDetail)
				r.Get("/lineups", handler.GetFixtureLineups)
				r.Get("/statistics", handler.GetFixtureStatistics)
				r.Get("/events", handler.GetFixtureEvents)
				r.Get("/stream", handler.StreamFixtureDetail)
			})
		})
		r.Route("/teams/{teamID}", func(r chi.Router) {
			r.Get("/", handler.GetTeamProfile)
			r.Get("/basic", handler.GetBasicTeamProfile)
		})
		r.Get("/leagues/{leagueID}/standings", handler.GetStandings)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, errRouteNotFound)
	})

	return r
}
