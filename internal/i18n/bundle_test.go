package i18n

import "testing"

func TestLookup(t *testing.T) {
	b := NewBundle()

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"dutch band", "nl", "score.excellent", "Uitstekend"},
		{"english band", "en", "score.poor", "Poor"},
		{"german activity", "de", "activity.cycling", "Radfahren"},
		{"region subtag stripped", "en-GB", "score.good", "Good"},
		{"underscore subtag stripped", "nl_NL", "score.fair", "Redelijk"},
		{"unknown language falls back to english", "pt", "score.terrible", "Terrible"},
		{"unknown key returned verbatim", "en", "score.unheard_of", "score.unheard_of"},
		{"empty language falls back", "", "activity.beach", "Beach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Lookup(tt.lang, tt.key); got != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestEveryLanguageCoversEnglishKeys(t *testing.T) {
	b := NewBundle()
	en := tables["en"]
	for _, lang := range b.Languages() {
		for key := range en {
			if _, ok := tables[lang][key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	b := NewBundle()
	for _, lang := range []string{"nl", "en", "de", "fr", "es", "EN", "fr-BE"} {
		if !b.Supported(lang) {
			t.Errorf("expected %s to be supported", lang)
		}
	}
	if b.Supported("pt") {
		t.Error("expected pt to be unsupported")
	}
}
