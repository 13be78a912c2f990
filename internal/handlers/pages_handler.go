package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ldbiro/ldbiro-web/internal/i18n"
	"github.com/ldbiro/ldbiro-web/internal/middleware"
	"github.com/ldbiro/ldbiro-web/pkg/metrics"
)

// PagesHandler renders the server-side pages in the locale the resolver
// picked for the request.
type PagesHandler struct {
	baseURL string
}

func NewPagesHandler(baseURL string) *PagesHandler {
	return &PagesHandler{baseURL: baseURL}
}

// PageData is what templates render from. T gives templates keyed access
// to the active locale's dictionary.
type PageData struct {
	Locale       i18n.Locale
	BaseURL      string
	CanonicalURL string
	// AlternateURLs maps each locale to its canonical URL for hreflang links.
	AlternateURLs map[i18n.Locale]string
}

// T looks up a translated string for the page's locale.
func (p PageData) T(key string) string {
	return i18n.T(p.Locale, key)
}

func (h *PagesHandler) pageData(locale i18n.Locale) PageData {
	alternates := make(map[i18n.Locale]string, len(i18n.Locales()))
	for _, l := range i18n.Locales() {
		alternates[l] = h.baseURL + l.PathPrefix() + "/"
	}
	return PageData{
		Locale:        locale,
		BaseURL:       h.baseURL,
		CanonicalURL:  alternates[locale],
		AlternateURLs: alternates,
	}
}

// Landing renders the long-scroll landing page.
func (h *PagesHandler) Landing(c *gin.Context) {
	locale := middleware.LocaleFromContext(c)
	metrics.PageViews.WithLabelValues(string(locale), "landing").Inc()
	c.HTML(http.StatusOK, "landing.tmpl", h.pageData(locale))
}

// NotFound handles every unmatched route. Unknown page paths fall through
// to default-locale resolution and render a localized 404; unknown API
// paths answer JSON.
func (h *PagesHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	locale := middleware.LocaleFromContext(c)
	metrics.PageViews.WithLabelValues(string(locale), "not_found").Inc()
	c.HTML(http.StatusNotFound, "not_found.tmpl", h.pageData(locale))
}
