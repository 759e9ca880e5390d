package scoring

import "math"

// ActivityType identifies one of the activities the planner can rate.
type ActivityType string

const (
	ActivityRunning     ActivityType = "running"
	ActivityCycling     ActivityType = "cycling"
	ActivityWalking     ActivityType = "walking"
	ActivityBBQ         ActivityType = "bbq"
	ActivityBeach       ActivityType = "beach"
	ActivitySailing     ActivityType = "sailing"
	ActivityGardening   ActivityType = "gardening"
	ActivityStargazing  ActivityType = "stargazing"
	ActivityGolf        ActivityType = "golf"
	ActivityPadel       ActivityType = "padel"
	ActivityFieldSports ActivityType = "field_sports"
	ActivityTennis      ActivityType = "tennis"
	ActivityHome        ActivityType = "home"
	ActivityWork        ActivityType = "work"
)

// AllActivities lists every known activity in display order.
var AllActivities = []ActivityType{
	ActivityRunning, ActivityCycling, ActivityWalking, ActivityBBQ,
	ActivityBeach, ActivitySailing, ActivityGardening, ActivityStargazing,
	ActivityGolf, ActivityPadel, ActivityFieldSports, ActivityTennis,
	ActivityHome, ActivityWork,
}

// ParseActivity maps a wire string to an ActivityType. The second return
// is false for unknown values; callers that must not fail can still pass
// the raw value to Score, which falls back to a neutral profile.
func ParseActivity(s string) (ActivityType, bool) {
	a := ActivityType(s)
	for _, known := range AllActivities {
		if a == known {
			return a, true
		}
	}
	return a, false
}

// LabelKey returns the i18n key for the activity's display name.
func (a ActivityType) LabelKey() string {
	return "activity." + string(a)
}

// WeatherSnapshot is one day's (or period's) aggregated weather, the
// scorer's sole input. Percentage fields are nominally 0-100 but the
// scorer clamps internally since producers have historically fed
// unclamped values.
type WeatherSnapshot struct {
	TempFeelsLike float64 `json:"temp_feels_like"` // apparent temperature, °C
	WindKmh       float64 `json:"wind_kmh"`        // sustained wind
	PrecipMm      float64 `json:"precip_mm"`       // accumulated precipitation
	PrecipProb    float64 `json:"precip_prob"`     // 0-100
	GustsKmh      float64 `json:"gusts_kmh"`       // peak gusts
	WeatherCode   int     `json:"weather_code"`    // WMO code
	SunChance     float64 `json:"sun_chance"`      // 0-100, share of sunny daylight
	CloudCover    float64 `json:"cloud_cover"`     // 0-100
	Visibility    float64 `json:"visibility_m"`    // meters
}

// sanitized returns a copy with every field forced into its valid range.
// NaN is replaced by a neutral default so a missing producer field can
// never propagate into the final score.
func (ws WeatherSnapshot) sanitized() WeatherSnapshot {
	out := ws
	out.TempFeelsLike = orDefault(ws.TempFeelsLike, 15)
	out.WindKmh = math.Max(0, orDefault(ws.WindKmh, 0))
	out.PrecipMm = math.Max(0, orDefault(ws.PrecipMm, 0))
	out.PrecipProb = clamp(orDefault(ws.PrecipProb, 0), 0, 100)
	out.GustsKmh = math.Max(0, orDefault(ws.GustsKmh, 0))
	out.SunChance = clamp(orDefault(ws.SunChance, 50), 0, 100)
	out.CloudCover = clamp(orDefault(ws.CloudCover, 50), 0, 100)
	out.Visibility = math.Max(0, orDefault(ws.Visibility, 10000))
	if out.GustsKmh < out.WindKmh {
		out.GustsKmh = out.WindKmh
	}
	return out
}

func orDefault(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FactorResult captures one rule's contribution to the score. Delta is in
// score points: negative for deductions, positive for bonuses.
type FactorResult struct {
	Name   string  `json:"name"`
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason,omitempty"`
}

// Result is the scorer's output: a 0-10 value with one decimal of
// precision, its band, and a localized label. Recomputed on every call,
// never persisted as source of truth.
type Result struct {
	Activity ActivityType   `json:"activity"`
	Value    float64        `json:"score"`
	Band     Band           `json:"band"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Factors  []FactorResult `json:"factors,omitempty"`
}
