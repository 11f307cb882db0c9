// Package detector gates analysis text by language so a multilingual
// community can be reduced to a single language's words.
package detector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// supported maps ISO 639-1 codes to the languages the filter can gate on.
var supported = map[string]lingua.Language{
	"de": lingua.German,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"it": lingua.Italian,
	"ja": lingua.Japanese,
	"ko": lingua.Korean,
	"nl": lingua.Dutch,
	"pl": lingua.Polish,
	"pt": lingua.Portuguese,
	"ru": lingua.Russian,
	"sv": lingua.Swedish,
	"tr": lingua.Turkish,
	"zh": lingua.Chinese,
}

// LanguageFilter admits text written in one target language.
type LanguageFilter struct {
	target   lingua.Language
	detector lingua.LanguageDetector
}

// NewLanguageFilter builds a filter for an ISO 639-1 code such as "en".
func NewLanguageFilter(code string) (*LanguageFilter, error) {
	target, ok := supported[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("unsupported language code %q (supported: %s)",
			code, strings.Join(Supported(), ", "))
	}

	candidates := make([]lingua.Language, 0, len(supported))
	for _, lang := range supported {
		candidates = append(candidates, lang)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()

	return &LanguageFilter{target: target, detector: detector}, nil
}

// Allow reports whether text reads as the target language. Text too
// short or ambiguous to classify is admitted rather than dropped.
func (f *LanguageFilter) Allow(text string) bool {
	lang, ok := f.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == f.target
}

// Supported returns the ISO 639-1 codes the filter accepts, sorted.
func Supported() []string {
	codes := make([]string, 0, len(supported))
	for code := range supported {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
