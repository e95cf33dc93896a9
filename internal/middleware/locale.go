package middleware

import (
	"context"
	"net/http"

	"github.com/kelompok10/surveydash/internal/utils"
)

// DefaultLocale is served when neither ?lang nor Accept-Language names a
// supported locale.
const DefaultLocale = "en"

type localeKey struct{}

// Locale resolves the response language once per request. An explicit ?lang
// wins over Accept-Language. The choice is echoed in Content-Language and
// stored for LocaleFromContext. With no supported list the dashboard
// locales are used.
func Locale(def string, supported ...string) func(http.Handler) http.Handler {
	if len(supported) == 0 {
		supported = utils.SupportedLocales
	}
	if def == "" {
		def = DefaultLocale
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := utils.DetermineLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), supported, def)
			h := w.Header()
			h.Set("Content-Language", loc)
			h.Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}

// WithLocale returns a copy of ctx carrying loc.
func WithLocale(ctx context.Context, loc string) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext returns the locale chosen by Locale, or DefaultLocale.
func LocaleFromContext(ctx context.Context) string {
	if loc, ok := ctx.Value(localeKey{}).(string); ok && loc != "" {
		return loc
	}
	return DefaultLocale
}
