package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/baro-weather/baro/internal/events"
	"github.com/baro-weather/baro/internal/meteo"
	"github.com/baro-weather/baro/internal/observability"
	"github.com/baro-weather/baro/internal/scoring"
	"github.com/baro-weather/baro/internal/store"
)

// Forecaster supplies daily aggregates for a coordinate.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64, days int) ([]meteo.Day, error)
}

// Request describes one narrative report to generate.
type Request struct {
	UserID       string
	LocationName string
	Lat          float64
	Lon          float64
	Days         int
	Activities   []scoring.ActivityType
	Language     string
}

// Generator assembles the prompt context for a narrative weather report,
// calls the completion backend, persists the result, and announces it.
type Generator struct {
	forecaster Forecaster
	engine     *scoring.Engine
	completer  Completer
	store      store.Store
	events     events.Client
	model      string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

func NewGenerator(f Forecaster, e *scoring.Engine, c Completer, s store.Store, ev events.Client, model string, m *observability.Metrics, logger *slog.Logger) *Generator {
	return &Generator{
		forecaster: f,
		engine:     e,
		completer:  c,
		store:      s,
		events:     ev,
		model:      model,
		metrics:    m,
		logger:     logger,
	}
}

// Generate produces and stores one report.
func (g *Generator) Generate(ctx context.Context, req Request) (*store.Report, error) {
	start := time.Now()

	if req.Days <= 0 {
		req.Days = 3
	}
	if len(req.Activities) == 0 {
		req.Activities = scoring.AllActivities
	}

	days, err := g.forecaster.Forecast(ctx, req.Lat, req.Lon, req.Days)
	if err != nil {
		g.metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	matrix := make([][]scoring.Result, len(days))
	for i, day := range days {
		matrix[i] = g.engine.ScoreAll(day.Snapshot, req.Activities, req.Language)
	}

	system, user := buildPrompt(req, days, matrix)
	content, err := g.completer.Complete(ctx, g.model, system, user)
	if err != nil {
		g.metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	rep := &store.Report{
		UserID:       req.UserID,
		LocationName: req.LocationName,
		Lat:          req.Lat,
		Lon:          req.Lon,
		Language:     req.Language,
		Model:        g.model,
		Content:      content,
		Scores:       scoresSnapshot(days, matrix),
	}
	if err := g.store.CreateReport(ctx, rep); err != nil {
		g.metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("store report: %w", err)
	}

	if g.events != nil {
		evt := events.ReportGeneratedEvent{
			ReportID:     rep.ID.String(),
			UserID:       rep.UserID,
			LocationName: rep.LocationName,
			Language:     rep.Language,
			Model:        rep.Model,
			GeneratedAt:  rep.CreatedAt,
		}
		if err := g.events.Publish(events.SubjectReportGenerated(rep.ID.String()), evt); err != nil {
			g.logger.Warn("failed to publish report event", "report_id", rep.ID, "error", err)
		}
	}

	g.metrics.ReportsGenerated.WithLabelValues("success").Inc()
	g.metrics.ReportDuration.Observe(time.Since(start).Seconds())
	g.logger.Info("report generated",
		"report_id", rep.ID,
		"location", rep.LocationName,
		"language", rep.Language,
		"days", len(days),
	)
	return rep, nil
}

// scoresSnapshot flattens the matrix into the display snapshot embedded
// with the stored report: per day, per activity decimal scores.
func scoresSnapshot(days []meteo.Day, matrix [][]scoring.Result) map[string]interface{} {
	out := make(map[string]interface{}, len(days))
	for i, day := range days {
		byActivity := make(map[string]interface{}, len(matrix[i]))
		for _, r := range matrix[i] {
			byActivity[string(r.Activity)] = r.Value
		}
		out[day.Date] = byActivity
	}
	return out
}
