package analytics

import (
	"fmt"
	"sort"
)

// WordCount pairs a word with its accumulated count.
type WordCount struct {
	Word  string
	Count int
}

// String formats the pair as "word:count".
func (wc WordCount) String() string {
	return fmt.Sprintf("%s:%d", wc.Word, wc.Count)
}

// Top returns the n highest-count words, ties broken lexicographically.
func (a *Accumulator) Top(n int) []WordCount {
	ss := make([]WordCount, 0, len(a.counts))
	for w, c := range a.counts {
		ss = append(ss, WordCount{Word: w, Count: c})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})

	if n < len(ss) {
		ss = ss[:n]
	}
	return ss
}
