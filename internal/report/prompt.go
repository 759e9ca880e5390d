package report

import (
	"fmt"
	"strings"

	"github.com/baro-weather/baro/internal/meteo"
	"github.com/baro-weather/baro/internal/scoring"
)

var languageNames = map[string]string{
	"nl": "Dutch",
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
}

// buildPrompt renders the forecast and score matrix into the system and
// user messages for the completion call. The prompt is deterministic for
// a given request so regenerations with the same inputs are comparable.
func buildPrompt(req Request, days []meteo.Day, matrix [][]scoring.Result) (system, user string) {
	langName, ok := languageNames[strings.ToLower(req.Language)]
	if !ok {
		langName = "English"
	}

	system = "You are a friendly weather presenter. Write a short narrative weather " +
		"report in " + langName + " for the location and forecast given. Mention which " +
		"activities suit which days, based on the provided 0-10 suitability scores. " +
		"Keep it under 200 words, conversational, no bullet lists."

	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s (%.4f, %.4f)\n\n", req.LocationName, req.Lat, req.Lon)

	for i, day := range days {
		fmt.Fprintf(&b, "%s: %s, feels like %.0f°C (min %.0f°C), wind %.0f km/h, precipitation %.1f mm (%.0f%% chance)\n",
			day.Date, day.Description, day.TempMax, day.TempMin,
			day.Snapshot.WindKmh, day.Snapshot.PrecipMm, day.Snapshot.PrecipProb)

		parts := make([]string, 0, len(matrix[i]))
		for _, r := range matrix[i] {
			parts = append(parts, fmt.Sprintf("%s %.1f/10", r.Activity, r.Value))
		}
		fmt.Fprintf(&b, "  activity scores: %s\n", strings.Join(parts, ", "))
	}

	return system, b.String()
}
