// AngelaMos | 2026
// language_test.go

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeRoundTrip(t *testing.T) {
	for _, lang := range All {
		got, ok := FromCode(lang.Code())
		require.True(t, ok, "code %q", lang.Code())
		assert.Equal(t, lang, got)
	}
}

func TestLocaleRoundTrip(t *testing.T) {
	for _, lang := range All {
		got, ok := FromLocale(lang.Locale())
		require.True(t, ok, "locale %q", lang.Locale())
		assert.Equal(t, lang, got)
	}
}

func TestFromCodeCaseInsensitive(t *testing.T) {
	got, ok := FromCode("ES")
	require.True(t, ok)
	assert.Equal(t, Spanish, got)

	got, ok = FromCode("En-Us")
	require.True(t, ok)
	assert.Equal(t, English, got)
}

func TestFromCodeUnknown(t *testing.T) {
	_, ok := FromCode("fr")
	assert.False(t, ok)

	_, ok = FromCode("")
	assert.False(t, ok)

	// locales are a different string space from codes
	_, ok = FromCode("es-es")
	assert.False(t, ok)
}

func TestFromLocaleUnknown(t *testing.T) {
	_, ok := FromLocale("es")
	assert.False(t, ok)

	_, ok = FromLocale("fr-fr")
	assert.False(t, ok)
}

func TestCodeAndLocaleTablesAreInjective(t *testing.T) {
	seenCodes := map[string]bool{}
	seenLocales := map[string]bool{}
	for _, lang := range All {
		assert.False(t, seenCodes[lang.Code()], "duplicate code %q", lang.Code())
		assert.False(t, seenLocales[lang.Locale()], "duplicate locale %q", lang.Locale())
		seenCodes[lang.Code()] = true
		seenLocales[lang.Locale()] = true
	}
}

func TestAssetPath(t *testing.T) {
	assert.Equal(
		t,
		"/translations/en-US.json?version=1.2.3",
		AssetPath(English, "1.2.3"),
	)
	assert.Equal(
		t,
		"/translations/amh-ETH.json?version=2.0.0",
		AssetPath(Amharic, "2.0.0"),
	)
}

func TestAllCoversEveryLanguage(t *testing.T) {
	assert.Len(t, All, 5)
	assert.Equal(t, English, Default)
}
