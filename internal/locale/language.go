// AngelaMos | 2026
// language.go

package locale

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Language is the closed set of languages the Cambiatus frontend ships
// translations for.
type Language int

const (
	English Language = iota
	Portuguese
	Spanish
	Catalan
	Amharic
)

// Default is the language used when nothing else is known about the
// user.
const Default = English

// All lists every supported language in display order. The order is a
// UI concern, not a semantic one.
var All = []Language{English, Portuguese, Spanish, Catalan, Amharic}

// codes are the short application-internal language tags. They are
// deliberately not the same string space as locales: Spanish is "es"
// here but "es-es" below.
var codes = map[Language]string{
	English:    "en-us",
	Portuguese: "pt-br",
	Spanish:    "es",
	Catalan:    "cat",
	Amharic:    "amh",
}

// locales are the region+language tags used for number and date
// formatting.
var locales = map[Language]string{
	English:    "en-us",
	Portuguese: "pt-br",
	Spanish:    "es-es",
	Catalan:    "ca-es",
	Amharic:    "am-et",
}

// files names the translation bundle shipped per language. The casing
// follows the asset filenames on disk and is independent from both
// tables above.
var files = map[Language]string{
	English:    "en-US.json",
	Portuguese: "pt-BR.json",
	Spanish:    "es-ES.json",
	Catalan:    "cat-CAT.json",
	Amharic:    "amh-ETH.json",
}

// tags are the BCP-47 tags used to key go-i18n localizers.
var tags = map[Language]language.Tag{
	English:    language.AmericanEnglish,
	Portuguese: language.BrazilianPortuguese,
	Spanish:    language.EuropeanSpanish,
	Catalan:    language.Catalan,
	Amharic:    language.Amharic,
}

// FromCode looks a language up by its application code. The match is
// case-insensitive; unknown codes report ok=false, not an error.
func FromCode(code string) (Language, bool) {
	normalized := strings.ToLower(code)
	for lang, c := range codes {
		if c == normalized {
			return lang, true
		}
	}
	return Default, false
}

// FromLocale looks a language up by its formatting locale,
// case-insensitively.
func FromLocale(locale string) (Language, bool) {
	normalized := strings.ToLower(locale)
	for lang, l := range locales {
		if l == normalized {
			return lang, true
		}
	}
	return Default, false
}

// FromFile looks a language up by its translation asset filename.
// Exact match only; the casing is part of the name.
func FromFile(file string) (Language, bool) {
	for lang, f := range files {
		if f == file {
			return lang, true
		}
	}
	return Default, false
}

func (l Language) Code() string {
	return codes[l]
}

func (l Language) Locale() string {
	return locales[l]
}

func (l Language) File() string {
	return files[l]
}

func (l Language) Tag() language.Tag {
	return tags[l]
}

func (l Language) String() string {
	return codes[l]
}

// AssetPath builds the relative URL of the translation bundle for a
// language at a given asset version.
func AssetPath(lang Language, version string) string {
	query := url.Values{}
	query.Set("version", version)
	return "/translations/" + lang.File() + "?" + query.Encode()
}
