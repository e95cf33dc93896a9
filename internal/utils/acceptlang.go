package utils

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported dashboard locales, default first.
var SupportedLocales = []string{"en", "id"}

// DetermineLocale resolves the locale to serve from an explicit query value,
// the Accept-Language header, the supported locales and a default fallback.
// Results are base language codes such as "en" or "id".
func DetermineLocale(queryLang, acceptLang string, supported []string, def string) string {
	if len(supported) == 0 {
		supported = SupportedLocales
	}
	tags := make([]language.Tag, 0, len(supported))
	bases := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		bases = append(bases, strings.ToLower(s))
	}
	if len(tags) == 0 {
		return "en"
	}

	pick := func(lang string) (string, bool) {
		tag, err := language.Parse(strings.TrimSpace(lang))
		if err != nil {
			return "", false
		}
		base, _ := tag.Base()
		for i, t := range tags {
			if b, _ := t.Base(); b == base {
				return bases[i], true
			}
		}
		return "", false
	}

	if v, ok := pick(queryLang); ok {
		return v
	}

	if prefs, _, err := language.ParseAcceptLanguage(acceptLang); err == nil {
		// ParseAcceptLanguage orders by q-value already.
		for _, p := range prefs {
			if v, ok := pick(p.String()); ok {
				return v
			}
		}
	}
	if v, ok := pick(def); ok {
		return v
	}
	return bases[0]
}
