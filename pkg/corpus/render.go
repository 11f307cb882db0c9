// Package corpus renders accumulated word counts into the repeated-word
// corpus consumed by word cloud tools.
package corpus

import (
	"strconv"
	"strings"

	"github.com/cmcdowell/reddit-analysis/pkg/analytics"
)

// Render serializes the accumulator as a corpus string: every surviving
// word repeated once per accumulated count, each copy followed by a single
// space, words in lexicographic order. A word survives when its count is
// strictly greater than minCount, it contains no excluded substring, and
// it does not parse as an integer.
func Render(acc *analytics.Accumulator, excluded []string, minCount int) string {
	var b strings.Builder

	for _, word := range acc.Words() {
		count := acc.Count(word)
		if count <= minCount {
			continue
		}
		if containsAny(word, excluded) {
			continue
		}
		if _, err := strconv.Atoi(word); err == nil {
			continue
		}
		b.WriteString(strings.Repeat(word+" ", count))
	}

	return b.String()
}

func containsAny(word string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(word, s) {
			return true
		}
	}
	return false
}
