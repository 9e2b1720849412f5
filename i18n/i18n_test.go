package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringsFallsBackToDefault(t *testing.T) {
	def := Strings(DefaultLanguage)
	require.NotEmpty(t, def)

	tests := []string{"de", "fr", "", "UK"}
	for _, lang := range tests {
		t.Run("lang="+lang, func(t *testing.T) {
			assert.Equal(t, def["summary"], Strings(lang)["summary"])
		})
	}
}

func TestAllLanguagesShareKeys(t *testing.T) {
	def := Strings(DefaultLanguage)
	for _, lang := range SupportedLanguages {
		table := Strings(lang)
		require.Len(t, table, len(def), "language %s has a different key count", lang)
		for key := range def {
			val, ok := table[key]
			assert.True(t, ok, "language %s missing key %s", lang, key)
			assert.NotEmpty(t, val, "language %s has empty value for %s", lang, key)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupported(lang))
	}
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported(""))
}

func TestLanguagesDiffer(t *testing.T) {
	assert.NotEqual(t, Strings("uk")["passed"], Strings("en")["passed"])
	assert.NotEqual(t, Strings("en")["passed"], Strings("pl")["passed"])
}
