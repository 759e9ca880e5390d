package i18n

import "strings"

// Bundle holds language-keyed string tables. Lookups fall back from the
// requested language to English, then to the key itself, so a missing
// translation never produces an empty label.
type Bundle struct {
	tables   map[string]map[string]string
	fallback string
}

// NewBundle creates a bundle with the built-in tables.
func NewBundle() *Bundle {
	return &Bundle{tables: tables, fallback: "en"}
}

// Languages returns the supported language tags.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.tables))
	for lang := range b.tables {
		out = append(out, lang)
	}
	return out
}

// Supported reports whether lang has a table, after normalization.
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.tables[normalize(lang)]
	return ok
}

// Lookup resolves key in lang. Unknown languages and missing keys fall
// back to English; a key absent everywhere is returned verbatim.
func (b *Bundle) Lookup(lang, key string) string {
	if table, ok := b.tables[normalize(lang)]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if table, ok := b.tables[b.fallback]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	return key
}

// normalize reduces a BCP-47-ish tag to its primary subtag: "en-GB" -> "en".
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
