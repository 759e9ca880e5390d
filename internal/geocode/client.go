package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Place is one location search candidate.
type Place struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int64   `json:"population,omitempty"`
}

// Geocoder resolves free-text location queries to candidates.
type Geocoder interface {
	Search(ctx context.Context, query, lang string, limit int) ([]Place, error)
}

// Client implements Geocoder against an Open-Meteo compatible geocoding
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a geocoding client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) Search(ctx context.Context, query, lang string, limit int) ([]Place, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{
		"name":     {query},
		"count":    {fmt.Sprintf("%d", limit)},
		"language": {lang},
		"format":   {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("geocode API error: status %d: %s", resp.StatusCode, body)
	}

	var raw response
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	places := make([]Place, 0, len(raw.Results))
	for _, r := range raw.Results {
		places = append(places, Place{
			ID:          r.ID,
			Name:        r.Name,
			Lat:         r.Latitude,
			Lon:         r.Longitude,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Admin1:      r.Admin1,
			Timezone:    r.Timezone,
			Population:  r.Population,
		})
	}
	return places, nil
}

// API response types.

type response struct {
	Results []result `json:"results"`
}

type result struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int64   `json:"population"`
}
