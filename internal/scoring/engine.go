package scoring

import (
	"math"
)

// Localizer resolves label keys for a language. *i18n.Bundle satisfies
// it; tests can inject a stub. The language only ever affects the label,
// never the numeric score.
type Localizer interface {
	Lookup(lang, key string) string
}

// Engine converts a day's weather snapshot into per-activity suitability
// scores. It is pure and stateless: no I/O, no hidden state, safe to call
// concurrently and in tight per-day loops.
type Engine struct {
	loc Localizer
}

// NewEngine creates an Engine with the given localization provider.
func NewEngine(loc Localizer) *Engine {
	return &Engine{loc: loc}
}

// Score rates one snapshot for one activity. It is total over its input
// domain: out-of-range numbers are clamped, NaN is defaulted, and an
// unknown activity type falls back to a neutral profile.
func (e *Engine) Score(ws WeatherSnapshot, activity ActivityType, lang string) Result {
	s := ws.sanitized()
	p := profileFor(activity)

	factors := []FactorResult{
		rainFactor(p, s),
		temperatureFactor(p, s),
		windFactor(p, s),
		gustFactor(p, s),
		skyFactor(p, s),
		visibilityFactor(p, s),
		conditionFactor(p, s),
	}
	if activity == ActivitySailing {
		factors = append(factors, sailingWindFactor(s))
	}

	total := p.base
	for _, f := range factors {
		total += f.Delta
	}
	total = clamp(total, 0, 10)

	// Gating rules multiply after the additive pass so an unfavorable
	// gate forces the score toward zero regardless of other factors.
	for _, g := range gatesFor(activity, p, s) {
		before := total
		total *= g.multiplier
		factors = append(factors, FactorResult{
			Name:   g.name,
			Delta:  total - before,
			Reason: g.reason,
		})
	}

	value := math.Round(clamp(total, 0, 10)*10) / 10
	band := BandFor(value)

	return Result{
		Activity: activity,
		Value:    value,
		Band:     band,
		Label:    e.loc.Lookup(lang, band.LabelKey()),
		Color:    band.Color(),
		Factors:  factors,
	}
}

// ScoreAll rates one snapshot for every requested activity.
func (e *Engine) ScoreAll(ws WeatherSnapshot, activities []ActivityType, lang string) []Result {
	out := make([]Result, 0, len(activities))
	for _, a := range activities {
		out = append(out, e.Score(ws, a, lang))
	}
	return out
}

// --- Additive rules ---

// rainFactor deducts for precipitation amount (saturating at 20mm) and
// probability. Both weights are non-negative for every profile, so more
// rain can never raise a score.
func rainFactor(p profile, s WeatherSnapshot) FactorResult {
	amount := p.rainAmount * math.Min(s.PrecipMm, 20) / 20
	prob := p.rainProb * s.PrecipProb / 100
	return FactorResult{Name: "rain", Delta: -(amount + prob)}
}

// temperatureFactor deducts per °C outside the activity's ideal band,
// with asymmetric slopes for cold and heat.
func temperatureFactor(p profile, s WeatherSnapshot) FactorResult {
	switch {
	case s.TempFeelsLike < p.tempLo:
		return FactorResult{Name: "temperature", Delta: -p.coldSlope * (p.tempLo - s.TempFeelsLike), Reason: "below ideal band"}
	case s.TempFeelsLike > p.tempHi:
		return FactorResult{Name: "temperature", Delta: -p.heatSlope * (s.TempFeelsLike - p.tempHi), Reason: "above ideal band"}
	default:
		return FactorResult{Name: "temperature", Reason: "in ideal band"}
	}
}

func windFactor(p profile, s WeatherSnapshot) FactorResult {
	if p.windSlope == 0 || s.WindKmh <= p.windFrom {
		return FactorResult{Name: "wind"}
	}
	return FactorResult{Name: "wind", Delta: -p.windSlope * (s.WindKmh - p.windFrom) / 10, Reason: "above threshold"}
}

func gustFactor(p profile, s WeatherSnapshot) FactorResult {
	if p.gustSlope == 0 || s.GustsKmh <= p.gustFrom {
		return FactorResult{Name: "gusts"}
	}
	return FactorResult{Name: "gusts", Delta: -p.gustSlope * (s.GustsKmh - p.gustFrom) / 10, Reason: "above threshold"}
}

// skyFactor deducts for cloud cover and adds back for sun chance. The
// final clamp keeps a sunny bonus from pushing the score past 10.
func skyFactor(p profile, s WeatherSnapshot) FactorResult {
	delta := -p.cloudWeight*s.CloudCover/100 + p.sunBonus*s.SunChance/100
	return FactorResult{Name: "sky", Delta: delta}
}

func visibilityFactor(p profile, s WeatherSnapshot) FactorResult {
	if p.visFloor == 0 || s.Visibility >= p.visFloor {
		return FactorResult{Name: "visibility"}
	}
	// Up to 2 points at zero visibility.
	frac := (p.visFloor - s.Visibility) / p.visFloor
	return FactorResult{Name: "visibility", Delta: -2 * frac, Reason: "below floor"}
}

// conditionFactor deducts for adverse WMO weather codes. Thunderstorms
// are handled by a gate instead, and indoor activities ignore conditions
// entirely.
func conditionFactor(p profile, s WeatherSnapshot) FactorResult {
	if !p.outdoor {
		return FactorResult{Name: "conditions"}
	}
	d, reason := codeDeduction(s.WeatherCode)
	return FactorResult{Name: "conditions", Delta: -d, Reason: reason}
}

func codeDeduction(code int) (float64, string) {
	switch {
	case code == 45 || code == 48:
		return 1.0, "fog"
	case code == 56 || code == 57:
		return 2.5, "freezing drizzle"
	case code >= 51 && code <= 55:
		return 1.0, "drizzle"
	case code == 66 || code == 67:
		return 3.0, "freezing rain"
	case code >= 61 && code <= 65:
		return 1.5, "rain"
	case code >= 71 && code <= 77:
		return 2.5, "snow"
	case code >= 80 && code <= 82:
		return 1.5, "rain showers"
	case code == 85 || code == 86:
		return 2.5, "snow showers"
	default:
		return 0, ""
	}
}

// sailingWindFactor rewards a workable wind window and penalizes both
// becalmed and dangerous conditions; sailing is the only activity where
// more wind can be better.
func sailingWindFactor(s WeatherSnapshot) FactorResult {
	w := s.WindKmh
	switch {
	case w < 5:
		return FactorResult{Name: "wind_window", Delta: -4, Reason: "becalmed"}
	case w < 12:
		// Linearly recover from -4 at 5 km/h to 0 at 12 km/h.
		return FactorResult{Name: "wind_window", Delta: -4 * (12 - w) / 7, Reason: "light air"}
	case w <= 30:
		return FactorResult{Name: "wind_window", Delta: 0.5, Reason: "workable wind"}
	case w <= 45:
		return FactorResult{Name: "wind_window", Delta: -4 * (w - 30) / 15, Reason: "strong wind"}
	default:
		return FactorResult{Name: "wind_window", Delta: -6, Reason: "dangerous wind"}
	}
}

// --- Gating rules ---

type gate struct {
	name       string
	multiplier float64
	reason     string
}

func gatesFor(activity ActivityType, p profile, s WeatherSnapshot) []gate {
	var gates []gate

	if activity == ActivityStargazing {
		// Night is approximated via low sun chance: bright daylight
		// drives the multiplier to zero.
		night := clamp((35-s.SunChance)/35, 0, 1)
		gates = append(gates, gate{name: "night", multiplier: night, reason: "needs darkness"})

		clear := clamp((85-s.CloudCover)/60, 0, 1)
		gates = append(gates, gate{name: "clear_sky", multiplier: clear, reason: "needs low cloud cover"})
	}

	if p.outdoor && s.WeatherCode >= 95 && s.WeatherCode <= 99 {
		gates = append(gates, gate{name: "thunderstorm", multiplier: 0.15, reason: "thunderstorm conditions"})
	}

	return gates
}
