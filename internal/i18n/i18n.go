// Package i18n holds the locale model and the static translation
// dictionaries for the site. Translation lookup is a plain keyed
// dictionary with default-locale fallback; exactly one locale is active
// per request.
package i18n

// Locale identifies one of the two supported site languages.
type Locale string

const (
	// LocaleSerbian is the default locale, served at the unprefixed root.
	LocaleSerbian Locale = "sr"
	// LocaleEnglish is the alternate locale, served under /en.
	LocaleEnglish Locale = "en"
)

// DefaultLocale is the locale served when a path carries no prefix.
const DefaultLocale = LocaleSerbian

var dictionaries = map[Locale]map[string]string{
	LocaleSerbian: dictSerbian,
	LocaleEnglish: dictEnglish,
}

// Locales returns all supported locales, default first.
func Locales() []Locale {
	return []Locale{LocaleSerbian, LocaleEnglish}
}

// Parse maps a path segment or language tag to a supported locale.
func Parse(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleSerbian, LocaleEnglish:
		return Locale(s), true
	}
	return "", false
}

// PathPrefix returns the URL prefix the locale is served under. The
// default locale never appears in a public URL so its prefix is empty.
func (l Locale) PathPrefix() string {
	if l == DefaultLocale {
		return ""
	}
	return "/" + string(l)
}

// T looks up a translated string. Missing keys fall back to the default
// locale and finally to the key itself, so a gap in one dictionary never
// renders an empty page element.
func T(locale Locale, key string) string {
	if dict, ok := dictionaries[locale]; ok {
		if s, ok := dict[key]; ok {
			return s
		}
	}
	if s, ok := dictionaries[DefaultLocale][key]; ok {
		return s
	}
	return key
}

// Keys returns every key defined for the given locale. Used by tests to
// assert dictionary parity between locales.
func Keys(locale Locale) []string {
	dict := dictionaries[locale]
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	return keys
}
