package analytics

import (
	"strings"
	"testing"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/words"
)

func testCommonSet(t *testing.T, csv string) *words.CommonSet {
	t.Helper()
	set, err := words.Load(strings.NewReader(csv), strings.NewReader(""))
	if err != nil {
		t.Fatalf("failed to load common set: %v", err)
	}
	return set
}

func testOptions() *models.Options {
	return &models.Options{
		Period:         models.DefaultPeriod,
		MaxThreshold:   models.DefaultMaxThreshold,
		CountWordFreqs: true,
	}
}

func TestIngest_ThresholdBoundaryIncluded(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 0.5
	f := &TextFilter{Common: testCommonSet(t, "the,a\n"), Opts: opts}
	acc := NewAccumulator()

	// Block 1: total 4 tokens, "test" at ratio 0.5, exactly on the boundary.
	f.Ingest("test test the a", acc)
	f.Ingest("test", acc)

	if got := acc.Count("test"); got != 3 {
		t.Errorf("Count(\"test\") = %d, want 3", got)
	}
	if got := acc.Count("the"); got != 0 {
		t.Errorf("Count(\"the\") = %d, want 0 for common word", got)
	}
	if got := acc.Count("a"); got != 0 {
		t.Errorf("Count(\"a\") = %d, want 0 for common word", got)
	}
}

func TestIngest_ThresholdRejectsDominantWord(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 0.49
	f := &TextFilter{Common: testCommonSet(t, "the,a\n"), Opts: opts}
	acc := NewAccumulator()

	// Ratio 0.5 > 0.49 rejects "test" from block 1; block 2 still counts.
	f.Ingest("test test the a", acc)
	f.Ingest("test", acc)

	if got := acc.Count("test"); got != 1 {
		t.Errorf("Count(\"test\") = %d, want 1", got)
	}
}

func TestIngest_DenominatorIncludesCommonWords(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 0.4
	f := &TextFilter{Common: testCommonSet(t, "the\n"), Opts: opts}
	acc := NewAccumulator()

	// "spam" is 2 of 5 tokens (0.4) only because the common "the" tokens
	// stay in the denominator.
	f.Ingest("spam spam the the the", acc)

	if got := acc.Count("spam"); got != 2 {
		t.Errorf("Count(\"spam\") = %d, want 2", got)
	}
}

func TestIngest_OncePerBlock(t *testing.T) {
	opts := testOptions()
	opts.CountWordFreqs = false
	opts.MaxThreshold = 1.0
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: opts}
	acc := NewAccumulator()

	f.Ingest("echo echo echo chamber", acc)
	f.Ingest("echo", acc)

	if got := acc.Count("echo"); got != 2 {
		t.Errorf("Count(\"echo\") = %d, want 2 with once-per-block counting", got)
	}
	if got := acc.Count("chamber"); got != 1 {
		t.Errorf("Count(\"chamber\") = %d, want 1", got)
	}
}

func TestIngest_EmptyAndPunctuationBlocks(t *testing.T) {
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: testOptions()}
	acc := NewAccumulator()

	f.Ingest("", acc)
	f.Ingest("   \n\t  ", acc)
	f.Ingest("... --- !!! ???", acc)

	if got := acc.Len(); got != 0 {
		t.Errorf("Len() = %d after empty blocks, want 0", got)
	}
}

func TestIngest_NormalizesTokens(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 1.0
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: opts}
	acc := NewAccumulator()

	f.Ingest("Gopher gopher, GOPHER!", acc)

	if got := acc.Count("gopher"); got != 3 {
		t.Errorf("Count(\"gopher\") = %d, want 3", got)
	}
	if got := acc.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestIngest_ContributionNeverExceedsBlockTokens(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 1.0
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: opts}
	acc := NewAccumulator()

	text := "one two two three three three"
	f.Ingest(text, acc)

	sum := 0
	for _, w := range acc.Words() {
		sum += acc.Count(w)
	}
	if sum > len(strings.Fields(text)) {
		t.Errorf("total contribution %d exceeds block token count %d", sum, len(strings.Fields(text)))
	}
}

func TestIngest_OrderIndependent(t *testing.T) {
	blocks := []string{"alpha beta beta", "gamma alpha", "beta gamma gamma delta"}

	forward := NewAccumulator()
	backward := NewAccumulator()
	opts := testOptions()
	opts.MaxThreshold = 1.0
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: opts}

	for _, b := range blocks {
		f.Ingest(b, forward)
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		f.Ingest(blocks[i], backward)
	}

	if forward.Len() != backward.Len() {
		t.Fatalf("accumulator sizes differ: %d vs %d", forward.Len(), backward.Len())
	}
	for _, w := range forward.Words() {
		if forward.Count(w) != backward.Count(w) {
			t.Errorf("Count(%q) differs by ingestion order: %d vs %d", w, forward.Count(w), backward.Count(w))
		}
	}
}

func TestIngest_StemFoldsVariants(t *testing.T) {
	opts := testOptions()
	opts.Stem = true
	opts.MaxThreshold = 0.5
	f := &TextFilter{Common: testCommonSet(t, ""), Opts: opts}
	acc := NewAccumulator()

	f.Ingest("running runs", acc)

	if got := acc.Count("run"); got != 2 {
		t.Errorf("Count(\"run\") = %d, want 2 with stemming enabled", got)
	}
	if got := acc.Count("running"); got != 0 {
		t.Errorf("Count(\"running\") = %d, want 0 with stemming enabled", got)
	}
}

type blockListGate struct {
	banned string
}

func (g *blockListGate) Allow(text string) bool {
	return !strings.Contains(text, g.banned)
}

func TestIngest_LanguageGateSkipsBlock(t *testing.T) {
	opts := testOptions()
	opts.MaxThreshold = 1.0
	f := &TextFilter{
		Common: testCommonSet(t, ""),
		Opts:   opts,
		Lang:   &blockListGate{banned: "bonjour"},
	}
	acc := NewAccumulator()

	f.Ingest("bonjour tout le monde", acc)
	f.Ingest("hello everyone", acc)

	if got := acc.Count("bonjour"); got != 0 {
		t.Errorf("Count(\"bonjour\") = %d, want 0 for gated block", got)
	}
	if got := acc.Count("hello"); got != 1 {
		t.Errorf("Count(\"hello\") = %d, want 1", got)
	}
}
