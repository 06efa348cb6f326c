package main

import "strings"

// Lexicon languages.
const (
	langEnglish  = "en"
	langJapanese = "ja"
)

// localeLanguage picks the lexicon language from the locale variables, in
// gettext order. Only the language part of a value such as ja_JP.UTF-8 is
// considered, and anything that is not Japanese is English.
func localeLanguage(getenv func(string) string) string {
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if key == "LANGUAGE" {
			// Colon-separated priority list
			v, _, _ = strings.Cut(v, ":")
		}
		if v != "" {
			return normalizeLanguage(v)
		}
	}
	return langEnglish
}

// normalizeLanguage maps a locale or language name to a lexicon language.
func normalizeLanguage(v string) string {
	base := strings.ToLower(strings.TrimSpace(v))
	if i := strings.IndexAny(base, "_-.@"); i >= 0 {
		base = base[:i]
	}
	if base == langJapanese {
		return langJapanese
	}
	return langEnglish
}
