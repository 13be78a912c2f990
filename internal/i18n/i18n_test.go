package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldbiro/ldbiro-web/internal/i18n"
)

func TestDictionaryParity(t *testing.T) {
	srKeys := i18n.Keys(i18n.LocaleSerbian)
	assert.NotEmpty(t, srKeys)

	for _, locale := range i18n.Locales() {
		assert.ElementsMatch(t, srKeys, i18n.Keys(locale), "locale %s dictionary diverges from default", locale)
	}
}

func TestT_TranslatesPerLocale(t *testing.T) {
	sr := i18n.T(i18n.LocaleSerbian, "nav.services")
	en := i18n.T(i18n.LocaleEnglish, "nav.services")

	assert.Equal(t, "Usluge", sr)
	assert.Equal(t, "Services", en)
}

func TestT_UnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", i18n.T(i18n.LocaleEnglish, "no.such.key"))
}

func TestT_UnknownLocaleFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Usluge", i18n.T(i18n.Locale("de"), "nav.services"))
}

func TestParse(t *testing.T) {
	locale, ok := i18n.Parse("en")
	assert.True(t, ok)
	assert.Equal(t, i18n.LocaleEnglish, locale)

	_, ok = i18n.Parse("de")
	assert.False(t, ok)
}

func TestPathPrefix(t *testing.T) {
	assert.Equal(t, "", i18n.LocaleSerbian.PathPrefix())
	assert.Equal(t, "/en", i18n.LocaleEnglish.PathPrefix())
}
