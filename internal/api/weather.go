package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/baro-weather/baro/internal/config"
	"github.com/baro-weather/baro/internal/events"
	"github.com/baro-weather/baro/internal/meteo"
	"github.com/baro-weather/baro/internal/observability"
	"github.com/baro-weather/baro/internal/scoring"
)

// Forecaster is the slice of the weather client the handlers need.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64, days int) ([]meteo.Day, error)
	Historical(ctx context.Context, lat, lon float64, start, end string) ([]meteo.Day, error)
}

type WeatherHandler struct {
	forecaster Forecaster
	engine     *scoring.Engine
	planner    config.PlannerConfig
	events     events.Client
	metrics    *observability.Metrics
}

func NewWeatherHandler(f Forecaster, e *scoring.Engine, p config.PlannerConfig, ev events.Client, m *observability.Metrics) *WeatherHandler {
	return &WeatherHandler{forecaster: f, engine: e, planner: p, events: ev, metrics: m}
}

func parseCoords(r *http.Request) (lat, lon float64, ok bool) {
	var err error
	if lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64); err != nil {
		return 0, 0, false
	}
	if lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64); err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

func (h *WeatherHandler) days(r *http.Request) int {
	days := h.planner.DefaultDays
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	if days > h.planner.MaxDays {
		days = h.planner.MaxDays
	}
	return days
}

func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid lat and lon required")
		return
	}

	start := time.Now()
	days, err := h.forecaster.Forecast(r.Context(), lat, lon, h.days(r))
	h.metrics.MeteoAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ForecastRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadGateway, "forecast fetch failed")
		return
	}
	h.metrics.ForecastRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, days)
}

const dateLayout = "2006-01-02"

func (h *WeatherHandler) History(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid lat and lon required")
		return
	}
	startDate, err := time.Parse(dateLayout, r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		writeError(w, http.StatusBadRequest, "end before start")
		return
	}
	if endDate.Sub(startDate) > 31*24*time.Hour {
		writeError(w, http.StatusBadRequest, "range limited to 31 days")
		return
	}

	start := time.Now()
	days, err := h.forecaster.Historical(r.Context(), lat, lon,
		startDate.Format(dateLayout), endDate.Format(dateLayout))
	h.metrics.MeteoAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ForecastRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadGateway, "history fetch failed")
		return
	}
	h.metrics.ForecastRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, days)
}

type ScoresRequest struct {
	Snapshot   scoring.WeatherSnapshot `json:"snapshot"`
	Activities []string                `json:"activities,omitempty"`
	Language   string                  `json:"language,omitempty"`
}

func (h *WeatherHandler) Scores(w http.ResponseWriter, r *http.Request) {
	var req ScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activities, err := h.resolveActivities(req.Activities)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lang := req.Language
	if lang == "" {
		lang = h.planner.DefaultLanguage
	}

	results := h.engine.ScoreAll(req.Snapshot, activities, lang)
	for _, res := range results {
		h.metrics.ScoresComputed.WithLabelValues(string(res.Activity)).Inc()
	}
	writeJSON(w, http.StatusOK, results)
}

// PlannerDay pairs one forecast day with its activity scores.
type PlannerDay struct {
	Date        string           `json:"date"`
	TempMax     float64          `json:"temp_max"`
	TempMin     float64          `json:"temp_min"`
	Description string           `json:"description"`
	Scores      []scoring.Result `json:"scores"`
}

func (h *WeatherHandler) Planner(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "valid lat and lon required")
		return
	}

	var names []string
	if v := r.URL.Query().Get("activities"); v != "" {
		names = strings.Split(v, ",")
	}
	activities, err := h.resolveActivities(names)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.planner.DefaultLanguage
	}

	start := time.Now()
	days, err := h.forecaster.Forecast(r.Context(), lat, lon, h.days(r))
	h.metrics.MeteoAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ForecastRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadGateway, "forecast fetch failed")
		return
	}
	h.metrics.ForecastRequests.WithLabelValues("success").Inc()

	out := make([]PlannerDay, len(days))
	for i, day := range days {
		results := h.engine.ScoreAll(day.Snapshot, activities, lang)
		for _, res := range results {
			h.metrics.ScoresComputed.WithLabelValues(string(res.Activity)).Inc()
		}
		out[i] = PlannerDay{
			Date:        day.Date,
			TempMax:     day.TempMax,
			TempMin:     day.TempMin,
			Description: day.Description,
			Scores:      results,
		}
	}
	h.metrics.PlannerRequests.Inc()

	if h.events != nil {
		names := make([]string, len(activities))
		for i, a := range activities {
			names[i] = string(a)
		}
		evt := events.PlannerComputedEvent{
			Lat: lat, Lon: lon,
			Days:       len(out),
			Activities: names,
			ComputedAt: time.Now(),
		}
		// Publish failure never fails the request.
		_ = h.events.Publish(events.SubjectPlannerComputed(), evt)
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *WeatherHandler) resolveActivities(names []string) ([]scoring.ActivityType, error) {
	if len(names) == 0 {
		return scoring.AllActivities, nil
	}
	out := make([]scoring.ActivityType, 0, len(names))
	for _, name := range names {
		a, ok := scoring.ParseActivity(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown activity %q", name)
		}
		out = append(out, a)
	}
	return out, nil
}
