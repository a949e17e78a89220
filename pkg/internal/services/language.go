package services

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

var languageDetector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Portuguese,
		lingua.Italian,
		lingua.Dutch,
		lingua.Russian,
		lingua.Japanese,
		lingua.Chinese,
		lingua.Korean,
		lingua.Hindi,
	).
	Build()

// DetectLanguage guesses the language of post content, returning the
// lowercase ISO 639-1 code or "unknown" when the detector has no
// confident answer (short bodies, mixed scripts).
func DetectLanguage(content string) string {
	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return "unknown"
}
