package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baro-weather/baro/internal/config"
	"github.com/baro-weather/baro/internal/events"
	"github.com/baro-weather/baro/internal/geocode"
	"github.com/baro-weather/baro/internal/i18n"
	"github.com/baro-weather/baro/internal/observability"
	"github.com/baro-weather/baro/internal/scoring"
	"github.com/baro-weather/baro/internal/store"
)

// Deps carries everything the router hangs handlers off. Events and
// Generator may be nil; the matching endpoints degrade rather than the
// whole service refusing to start.
type Deps struct {
	Store     store.Store
	Geocoder  geocode.Geocoder
	Forecast  Forecaster
	Engine    *scoring.Engine
	Languages *i18n.Bundle
	Events    events.Client
	Generator ReportGenerator
	Metrics   *observability.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(RateLimitMiddleware(d.Config.Server.RateLimit))

	locations := NewLocationsHandler(d.Geocoder, d.Store, d.Metrics)
	weather := NewWeatherHandler(d.Forecast, d.Engine, d.Config.Planner, d.Events, d.Metrics)
	reports := NewReportsHandler(d.Generator, d.Store, d.Config.Planner.MaxDays)
	settings := NewSettingsHandler(d.Store, d.Events, d.Languages)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/locations/search", locations.Search)
		r.Get("/locations/favorites", locations.ListFavorites)
		r.Post("/locations/favorites", locations.CreateFavorite)
		r.Delete("/locations/favorites/{id}", locations.DeleteFavorite)

		r.Get("/forecast", weather.Forecast)
		r.Get("/forecast/history", weather.History)
		r.Post("/scores", weather.Scores)
		r.Get("/planner", weather.Planner)

		r.Post("/reports", reports.Create)
		r.Get("/reports", reports.List)
		r.Get("/reports/{id}", reports.Get)

		r.Get("/settings/{user_id}", settings.Get)
		r.Put("/settings/{user_id}", settings.Put)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(d.Config.Server.AdminToken))
			r.Get("/admin/reports", reports.ListAll)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
