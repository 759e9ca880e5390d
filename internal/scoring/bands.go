package scoring

// Band is a contiguous sub-range of the 0-10 score. Every call site that
// turns a score into a label or a color must go through BandFor so the
// boundaries can never drift apart between views.
type Band string

const (
	BandTerrible  Band = "terrible"
	BandPoor      Band = "poor"
	BandFair      Band = "fair"
	BandGood      Band = "good"
	BandExcellent Band = "excellent"
)

// BandFor buckets a 0-10 score: terrible <2, poor <4, fair <6, good <8,
// excellent >=8.
func BandFor(value float64) Band {
	switch {
	case value < 2:
		return BandTerrible
	case value < 4:
		return BandPoor
	case value < 6:
		return BandFair
	case value < 8:
		return BandGood
	default:
		return BandExcellent
	}
}

// LabelKey returns the i18n key for the band's qualitative label.
func (b Band) LabelKey() string {
	return "score." + string(b)
}

// Color returns the display color for the band.
func (b Band) Color() string {
	switch b {
	case BandTerrible:
		return "#d32f2f"
	case BandPoor:
		return "#f57c00"
	case BandFair:
		return "#fbc02d"
	case BandGood:
		return "#7cb342"
	default:
		return "#2e7d32"
	}
}
