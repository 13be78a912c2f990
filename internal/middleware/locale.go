package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ldbiro/ldbiro-web/internal/i18n"
)

// localeContextKey carries the resolved locale on the request context.
const localeContextKey = "locale"

// LocaleResolver decides the effective locale for every page request and
// enforces one canonical URL per page:
//
//   - API, asset and file-extension paths bypass locale logic entirely.
//   - The default locale never appears in a public URL: an explicit /sr
//     prefix is a non-canonical form and redirects to the stripped path.
//   - /en-prefixed paths pass through as the alternate locale.
//   - Everything else resolves to the default locale with the visible URL
//     left untouched.
//
// The resolver is stateless; every path has a defined outcome.
func LocaleResolver() gin.HandlerFunc {
	defaultPrefix := "/" + string(i18n.DefaultLocale)

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if isLocaleExempt(path) {
			c.Next()
			return
		}

		if path == defaultPrefix || strings.HasPrefix(path, defaultPrefix+"/") {
			target := strings.TrimPrefix(path, defaultPrefix)
			if target == "" {
				target = "/"
			}
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		locale := i18n.DefaultLocale
		for _, l := range i18n.Locales() {
			prefix := l.PathPrefix()
			if prefix == "" {
				continue
			}
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				locale = l
				break
			}
		}

		c.Set(localeContextKey, locale)
		c.Next()
	}
}

// isLocaleExempt reports whether a path is outside the locale-routed page
// space: the API surface, static assets, or anything with a file extension.
func isLocaleExempt(path string) bool {
	return strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/assets") ||
		strings.Contains(path, ".")
}

// LocaleFromContext returns the locale resolved for the request, falling
// back to the default locale when the resolver did not run.
func LocaleFromContext(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeContextKey); ok {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
