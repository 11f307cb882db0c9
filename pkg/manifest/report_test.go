package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/analytics"
	"github.com/cmcdowell/reddit-analysis/pkg/storage"
)

func TestBuild(t *testing.T) {
	acc := analytics.NewAccumulator()
	acc.Add("compiler", 40)
	acc.Add("channels", 12)
	acc.Add("generics", 3)

	opts := &models.Options{
		Target:     "/r/golang",
		TargetName: "golang",
		Period:     models.PeriodMonth,
	}

	skips := []SkipEntry{
		{Permalink: "/r/golang/comments/abc/", StatusCode: 503},
		{Permalink: "/r/golang/comments/def/", StatusCode: 403},
	}
	report := Build(opts, acc, 50, skips, "golang.csv")

	if report.Target != "/r/golang" {
		t.Errorf("report.Target = %q, want %q", report.Target, "/r/golang")
	}
	if report.Period != "month" {
		t.Errorf("report.Period = %q, want %q", report.Period, "month")
	}
	if report.Items != 50 {
		t.Errorf("report.Items = %d, want 50", report.Items)
	}
	if report.Skipped != 2 {
		t.Errorf("report.Skipped = %d, want 2", report.Skipped)
	}
	if len(report.Skips) != 2 || report.Skips[0] != skips[0] {
		t.Errorf("report.Skips = %+v, want %+v", report.Skips, skips)
	}
	if report.DistinctWords != 3 {
		t.Errorf("report.DistinctWords = %d, want 3", report.DistinctWords)
	}
	if report.OutputFile != "golang.csv" {
		t.Errorf("report.OutputFile = %q, want %q", report.OutputFile, "golang.csv")
	}
	if report.GeneratedAt == "" {
		t.Error("report.GeneratedAt is empty")
	}

	wantWords := []string{"compiler:40", "channels:12", "generics:3"}
	if len(report.TopWords) != len(wantWords) {
		t.Fatalf("len(TopWords) = %d, want %d", len(report.TopWords), len(wantWords))
	}
	for i, want := range wantWords {
		if report.TopWords[i] != want {
			t.Errorf("TopWords[%d] = %q, want %q", i, report.TopWords[i], want)
		}
	}
}

func TestWrite(t *testing.T) {
	report := &RunReport{
		GeneratedAt:   "2026-08-25T10:00:00Z",
		Target:        "/r/golang",
		Period:        "month",
		Items:         50,
		DistinctWords: 845,
		OutputFile:    "golang.csv",
		TopWords:      []string{"compiler:40"},
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := Write(report, path, &storage.Storage{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var got RunReport
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Target != report.Target {
		t.Errorf("got.Target = %q, want %q", got.Target, report.Target)
	}
	if got.DistinctWords != 845 {
		t.Errorf("got.DistinctWords = %d, want 845", got.DistinctWords)
	}
	if len(got.TopWords) != 1 || got.TopWords[0] != "compiler:40" {
		t.Errorf("got.TopWords = %v, want [compiler:40]", got.TopWords)
	}
}
