// Package manifest writes a YAML report summarizing one analysis run.
// The report gives a quick overview of what was analyzed and which words
// dominated, without reopening the corpus file.
package manifest

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/analytics"
	"github.com/cmcdowell/reddit-analysis/pkg/storage"
)

// topWordCount bounds how many leading words a report lists.
const topWordCount = 25

// SkipEntry names one content item the run walked past.
type SkipEntry struct {
	Permalink  string `yaml:"permalink"`
	StatusCode int    `yaml:"status_code"`
}

// RunReport is the structure of the report file.
type RunReport struct {
	GeneratedAt   string      `yaml:"generated_at"`
	Target        string      `yaml:"target"`
	Period        string      `yaml:"period"`
	Items         int         `yaml:"items"`
	Skipped       int         `yaml:"skipped,omitempty"`
	Skips         []SkipEntry `yaml:"skips,omitempty"`
	DistinctWords int         `yaml:"distinct_words"`
	OutputFile    string      `yaml:"output_file"`
	TopWords      []string    `yaml:"top_words"`
}

// Build assembles a report from a finished run's accumulator.
func Build(opts *models.Options, acc *analytics.Accumulator, items int, skips []SkipEntry, outputFile string) *RunReport {
	top := acc.Top(topWordCount)
	words := make([]string, len(top))
	for i, wc := range top {
		words[i] = wc.String()
	}

	return &RunReport{
		GeneratedAt:   time.Now().Format(time.RFC3339),
		Target:        opts.Target,
		Period:        opts.Period,
		Items:         items,
		Skipped:       len(skips),
		Skips:         skips,
		DistinctWords: acc.Len(),
		OutputFile:    outputFile,
		TopWords:      words,
	}
}

// Write renders the report as YAML at reportPath.
func Write(report *RunReport, reportPath string, s *storage.Storage) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	if err := s.SaveFile(reportPath, data); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}
	return nil
}
