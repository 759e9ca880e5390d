package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the weather
// service.
type Metrics struct {
	ScoresComputed  *prometheus.CounterVec // labels: activity
	PlannerRequests prometheus.Counter

	ForecastRequests *prometheus.CounterVec // labels: outcome={success,error}
	MeteoAPIDuration prometheus.Histogram

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}

	ReportsGenerated *prometheus.CounterVec // labels: outcome={success,error}
	ReportDuration   prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ScoresComputed,
		m.PlannerRequests,
		m.ForecastRequests,
		m.MeteoAPIDuration,
		m.GeocodeRequests,
		m.ReportsGenerated,
		m.ReportDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ScoresComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "baro",
			Name:      "scores_computed_total",
			Help:      "Activity suitability scores computed, by activity.",
		}, []string{"activity"}),
		PlannerRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "baro",
			Name:      "planner_requests_total",
			Help:      "Planner matrix requests served.",
		}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "baro",
			Name:      "forecast_requests_total",
			Help:      "Upstream forecast fetches by outcome.",
		}, []string{"outcome"}),
		MeteoAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "baro",
			Name:      "meteo_api_duration_seconds",
			Help:      "Upstream weather API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "baro",
			Name:      "geocode_requests_total",
			Help:      "Location search requests by outcome.",
		}, []string{"outcome"}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "baro",
			Name:      "reports_generated_total",
			Help:      "AI narrative reports by outcome.",
		}, []string{"outcome"}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "baro",
			Name:      "report_duration_seconds",
			Help:      "End-to-end narrative report generation duration.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}),
	}
}
