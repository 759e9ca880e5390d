package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserSettings is a user's settings document. Stored as a single row per
// user and replaced wholesale on save, mirroring the document-store model
// the clients expect.
type UserSettings struct {
	UserID            string    `json:"user_id"`
	Language          string    `json:"language"`
	TemperatureUnit   string    `json:"temperature_unit"` // celsius, fahrenheit
	WindUnit          string    `json:"wind_unit"`        // kmh, ms, bft, mph
	DefaultActivities []string  `json:"default_activities"`
	HomeLocationName  string    `json:"home_location_name,omitempty"`
	HomeLat           *float64  `json:"home_lat,omitempty"`
	HomeLon           *float64  `json:"home_lon,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings a user gets before saving any.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:          userID,
		Language:        "en",
		TemperatureUnit: "celsius",
		WindUnit:        "kmh",
	}
}

// FavoriteLocation is a user-pinned place.
type FavoriteLocation struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	CountryCode string    `json:"country_code,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report is a stored AI-generated narrative weather report. The embedded
// scores are a display snapshot of what the report was prompted with; the
// scoring engine output is never treated as persisted source of truth.
type Report struct {
	ID           uuid.UUID              `json:"id"`
	UserID       string                 `json:"user_id"`
	LocationName string                 `json:"location_name"`
	Lat          float64                `json:"lat"`
	Lon          float64                `json:"lon"`
	Language     string                 `json:"language"`
	Model        string                 `json:"model"`
	Content      string                 `json:"content"`
	Scores       map[string]interface{} `json:"scores,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ReportFilter narrows ListReports.
type ReportFilter struct {
	UserID string
	Limit  int
	Offset int
}

type Store interface {
	// Settings
	GetSettings(ctx context.Context, userID string) (*UserSettings, error)
	SaveSettings(ctx context.Context, settings *UserSettings) error

	// Favorites
	ListFavorites(ctx context.Context, userID string) ([]*FavoriteLocation, error)
	CreateFavorite(ctx context.Context, fav *FavoriteLocation) error
	DeleteFavorite(ctx context.Context, userID string, id uuid.UUID) error

	// Reports
	CreateReport(ctx context.Context, report *Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	Close() error
}
