// Package analytics accumulates word frequencies across text blocks and
// applies the per-block spam threshold.
package analytics

import "sort"

// Accumulator collects word counts across an entire run. Counts only ever
// increase; create a fresh one per run and pass it explicitly.
type Accumulator struct {
	counts map[string]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{counts: make(map[string]int)}
}

// Add increases the count for word by n.
func (a *Accumulator) Add(word string, n int) {
	a.counts[word] += n
}

// Count returns the accumulated count for word, zero if absent.
func (a *Accumulator) Count(word string) int {
	return a.counts[word]
}

// Len returns the number of distinct words accumulated.
func (a *Accumulator) Len() int {
	return len(a.counts)
}

// Words returns all accumulated words in lexicographic order.
func (a *Accumulator) Words() []string {
	words := make([]string, 0, len(a.counts))
	for w := range a.counts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
