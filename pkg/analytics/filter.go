package analytics

import (
	"strings"

	"github.com/kljensen/snowball"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/words"
)

// LanguageGate decides whether a whole text block should be considered.
type LanguageGate interface {
	Allow(text string) bool
}

// TextFilter decides which words from a text block reach the accumulator.
// A word occupying more than MaxThreshold of a single block's tokens is
// dropped from that block only.
type TextFilter struct {
	Common *words.CommonSet
	Opts   *models.Options
	Lang   LanguageGate // optional, nil admits every block
}

// Ingest tokenizes one text block, applies the common-word and threshold
// rules, and adds the surviving words to acc. An empty or all-punctuation
// block contributes nothing.
func (f *TextFilter) Ingest(text string, acc *Accumulator) {
	if f.Lang != nil && !f.Lang.Allow(text) {
		return
	}

	// The ratio denominator counts every surviving token, common words
	// included; exclusion happens at acceptance time below.
	local := make(map[string]int)
	total := 0
	for _, token := range strings.Fields(text) {
		word := words.Normalize(token)
		if word == "" {
			continue
		}
		local[word]++
		total++
	}
	if total == 0 {
		return
	}

	for word, count := range local {
		if f.Common.Contains(word) {
			continue
		}
		if float64(count)/float64(total) > f.Opts.MaxThreshold {
			continue
		}

		if f.Opts.Stem {
			word = stem(word)
		}

		if f.Opts.CountWordFreqs {
			acc.Add(word, count)
		} else {
			acc.Add(word, 1)
		}
	}
}

// stem folds a word to its English snowball stem, keeping the original
// form when the stemmer cannot handle it.
func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
