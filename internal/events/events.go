package events

import "time"

const (
	StreamName   = "BARO_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectReportGenerated(reportID string) string { return "baro.report." + reportID + ".generated" }
func SubjectPlannerComputed() string                { return "baro.planner.computed" }
func SubjectSettingsUpdated(userID string) string   { return "baro.settings." + userID + ".updated" }

// ReportGeneratedEvent announces a finished narrative report.
type ReportGeneratedEvent struct {
	ReportID     string    `json:"report_id"`
	UserID       string    `json:"user_id"`
	LocationName string    `json:"location_name"`
	Language     string    `json:"language"`
	Model        string    `json:"model"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// PlannerComputedEvent records one planner request for usage analytics.
type PlannerComputedEvent struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Days       int       `json:"days"`
	Activities []string  `json:"activities"`
	ComputedAt time.Time `json:"computed_at"`
}

// SettingsUpdatedEvent announces a settings document save.
type SettingsUpdatedEvent struct {
	UserID    string    `json:"user_id"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}
