package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/baro-weather/baro/internal/scoring"
)

// Day is one day of aggregated weather, ready to feed the activity
// scorer and the report generator.
type Day struct {
	Date        string                  `json:"date"` // YYYY-MM-DD
	TempMax     float64                 `json:"temp_max"`
	TempMin     float64                 `json:"temp_min"`
	Description string                  `json:"description"`
	Snapshot    scoring.WeatherSnapshot `json:"snapshot"`
}

// Client fetches daily forecast and historical aggregates from an
// Open-Meteo compatible API.
type Client struct {
	forecastURL string
	archiveURL  string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a forecast client.
func NewClient(forecastURL, archiveURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		forecastURL: forecastURL,
		archiveURL:  archiveURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

const dailyVars = "apparent_temperature_max,apparent_temperature_min," +
	"wind_speed_10m_max,wind_gusts_10m_max,precipitation_sum," +
	"precipitation_probability_max,weather_code,sunshine_duration," +
	"daylight_duration,cloud_cover_mean"

// Forecast returns up to days daily aggregates starting today.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) ([]Day, error) {
	params := url.Values{
		"latitude":      {fmt.Sprintf("%.4f", lat)},
		"longitude":     {fmt.Sprintf("%.4f", lon)},
		"daily":         {dailyVars},
		"hourly":        {"visibility"},
		"forecast_days": {fmt.Sprintf("%d", days)},
		"timezone":      {"auto"},
	}
	return c.fetch(ctx, c.forecastURL+"?"+params.Encode())
}

// Historical returns daily aggregates for the inclusive date range
// start..end (YYYY-MM-DD). The archive API carries no precipitation
// probability; those days score with probability zero.
func (c *Client) Historical(ctx context.Context, lat, lon float64, start, end string) ([]Day, error) {
	params := url.Values{
		"latitude":   {fmt.Sprintf("%.4f", lat)},
		"longitude":  {fmt.Sprintf("%.4f", lon)},
		"daily":      {dailyVars},
		"start_date": {start},
		"end_date":   {end},
		"timezone":   {"auto"},
	}
	return c.fetch(ctx, c.archiveURL+"?"+params.Encode())
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]Day, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meteo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var raw response
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return raw.toDays(), nil
}

// API response types.

type response struct {
	Daily  daily  `json:"daily"`
	Hourly hourly `json:"hourly"`
}

type daily struct {
	Time             []string  `json:"time"`
	TempMax          []float64 `json:"apparent_temperature_max"`
	TempMin          []float64 `json:"apparent_temperature_min"`
	WindMax          []float64 `json:"wind_speed_10m_max"`
	GustsMax         []float64 `json:"wind_gusts_10m_max"`
	PrecipSum        []float64 `json:"precipitation_sum"`
	PrecipProbMax    []float64 `json:"precipitation_probability_max"`
	WeatherCode      []int     `json:"weather_code"`
	SunshineDuration []float64 `json:"sunshine_duration"`
	DaylightDuration []float64 `json:"daylight_duration"`
	CloudCoverMean   []float64 `json:"cloud_cover_mean"`
}

type hourly struct {
	Time       []string  `json:"time"`
	Visibility []float64 `json:"visibility"`
}

const defaultVisibility = 10000

func (r response) toDays() []Day {
	visByDay := r.Hourly.visibilityByDay()

	days := make([]Day, 0, len(r.Daily.Time))
	for i, date := range r.Daily.Time {
		d := Day{
			Date:    date,
			TempMax: at(r.Daily.TempMax, i),
			TempMin: at(r.Daily.TempMin, i),
		}

		code := 0
		if i < len(r.Daily.WeatherCode) {
			code = r.Daily.WeatherCode[i]
		}
		d.Description = CodeDescription(code)

		sunChance := 0.0
		if daylight := at(r.Daily.DaylightDuration, i); daylight > 0 {
			sunChance = at(r.Daily.SunshineDuration, i) / daylight * 100
		}

		vis := float64(defaultVisibility)
		if v, ok := visByDay[date]; ok {
			vis = v
		}

		// Score against the warm half of the day: apparent max is what
		// an afternoon activity actually experiences.
		d.Snapshot = scoring.WeatherSnapshot{
			TempFeelsLike: d.TempMax,
			WindKmh:       at(r.Daily.WindMax, i),
			PrecipMm:      at(r.Daily.PrecipSum, i),
			PrecipProb:    at(r.Daily.PrecipProbMax, i),
			GustsKmh:      at(r.Daily.GustsMax, i),
			WeatherCode:   code,
			SunChance:     sunChance,
			CloudCover:    at(r.Daily.CloudCoverMean, i),
			Visibility:    vis,
		}
		days = append(days, d)
	}
	return days
}

// visibilityByDay averages hourly visibility per calendar day. Hourly
// timestamps are "YYYY-MM-DDTHH:MM".
func (h hourly) visibilityByDay() map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for i, ts := range h.Time {
		if i >= len(h.Visibility) || len(ts) < 10 {
			continue
		}
		day := ts[:10]
		sums[day] += h.Visibility[i]
		counts[day]++
	}
	out := make(map[string]float64, len(sums))
	for day, sum := range sums {
		out[day] = sum / float64(counts[day])
	}
	return out
}

func at(vals []float64, i int) float64 {
	if i < len(vals) {
		return vals[i]
	}
	return 0
}
