package i18n

// Score band and activity labels. Dutch is the source language of the
// product; English is the lookup fallback.
var tables = map[string]map[string]string{
	"nl": {
		"score.terrible":  "Zeer slecht",
		"score.poor":      "Slecht",
		"score.fair":      "Redelijk",
		"score.good":      "Goed",
		"score.excellent": "Uitstekend",

		"activity.running":      "Hardlopen",
		"activity.cycling":      "Fietsen",
		"activity.walking":      "Wandelen",
		"activity.bbq":          "Barbecue",
		"activity.beach":        "Strand",
		"activity.sailing":      "Zeilen",
		"activity.gardening":    "Tuinieren",
		"activity.stargazing":   "Sterrenkijken",
		"activity.golf":         "Golf",
		"activity.padel":        "Padel",
		"activity.field_sports": "Veldsport",
		"activity.tennis":       "Tennis",
		"activity.home":         "Thuis",
		"activity.work":         "Werk",
	},
	"en": {
		"score.terrible":  "Terrible",
		"score.poor":      "Poor",
		"score.fair":      "Fair",
		"score.good":      "Good",
		"score.excellent": "Excellent",

		"activity.running":      "Running",
		"activity.cycling":      "Cycling",
		"activity.walking":      "Walking",
		"activity.bbq":          "Barbecue",
		"activity.beach":        "Beach",
		"activity.sailing":      "Sailing",
		"activity.gardening":    "Gardening",
		"activity.stargazing":   "Stargazing",
		"activity.golf":         "Golf",
		"activity.padel":        "Padel",
		"activity.field_sports": "Field sports",
		"activity.tennis":       "Tennis",
		"activity.home":         "At home",
		"activity.work":         "Work",
	},
	"de": {
		"score.terrible":  "Sehr schlecht",
		"score.poor":      "Schlecht",
		"score.fair":      "Mäßig",
		"score.good":      "Gut",
		"score.excellent": "Ausgezeichnet",

		"activity.running":      "Laufen",
		"activity.cycling":      "Radfahren",
		"activity.walking":      "Spazieren",
		"activity.bbq":          "Grillen",
		"activity.beach":        "Strand",
		"activity.sailing":      "Segeln",
		"activity.gardening":    "Gartenarbeit",
		"activity.stargazing":   "Sterngucken",
		"activity.golf":         "Golf",
		"activity.padel":        "Padel",
		"activity.field_sports": "Feldsport",
		"activity.tennis":       "Tennis",
		"activity.home":         "Zuhause",
		"activity.work":         "Arbeit",
	},
	"fr": {
		"score.terrible":  "Très mauvais",
		"score.poor":      "Mauvais",
		"score.fair":      "Moyen",
		"score.good":      "Bon",
		"score.excellent": "Excellent",

		"activity.running":      "Course à pied",
		"activity.cycling":      "Vélo",
		"activity.walking":      "Marche",
		"activity.bbq":          "Barbecue",
		"activity.beach":        "Plage",
		"activity.sailing":      "Voile",
		"activity.gardening":    "Jardinage",
		"activity.stargazing":   "Observation des étoiles",
		"activity.golf":         "Golf",
		"activity.padel":        "Padel",
		"activity.field_sports": "Sports de plein air",
		"activity.tennis":       "Tennis",
		"activity.home":         "À la maison",
		"activity.work":         "Travail",
	},
	"es": {
		"score.terrible":  "Muy malo",
		"score.poor":      "Malo",
		"score.fair":      "Regular",
		"score.good":      "Bueno",
		"score.excellent": "Excelente",

		"activity.running":      "Correr",
		"activity.cycling":      "Ciclismo",
		"activity.walking":      "Caminar",
		"activity.bbq":          "Barbacoa",
		"activity.beach":        "Playa",
		"activity.sailing":      "Vela",
		"activity.gardening":    "Jardinería",
		"activity.stargazing":   "Observar estrellas",
		"activity.golf":         "Golf",
		"activity.padel":        "Pádel",
		"activity.field_sports": "Deportes de campo",
		"activity.tennis":       "Tenis",
		"activity.home":         "En casa",
		"activity.work":         "Trabajo",
	},
}
