// Package traverse walks Reddit content and feeds every text block it
// finds through the analysis filter.
package traverse

import (
	"errors"
	"log/slog"

	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/analytics"
)

// Source yields Reddit content. *reddit.Client is the production
// implementation; tests substitute fakes.
type Source interface {
	TopSubmissions(subreddit, period string, limit int) ([]*models.Submission, error)
	Overview(username string, limit int) ([]models.ActivityItem, error)
	Comments(s *models.Submission) ([]*models.Comment, error)
}

// ArticleFetcher turns an externally linked page into readable text.
type ArticleFetcher interface {
	Text(url string) (string, error)
}

// Observer is notified once per processed listing item.
type Observer interface {
	Tick()
}

// Skip identifies one listing item the walk could not fetch.
type Skip struct {
	Permalink  string
	StatusCode int
}

// Stats records the outcomes of the most recent walk.
type Stats struct {
	Items int
	Skips []Skip
}

// Traverser drives a walk over one analysis target. Articles and
// Progress are optional; Log falls back to the default logger.
type Traverser struct {
	Source   Source
	Filter   *analytics.TextFilter
	Opts     *models.Options
	Articles ArticleFetcher
	Progress Observer
	Log      *slog.Logger

	Stats Stats
}

// Submission feeds one submission into acc: its comment thread when
// includeComments is set, then the title, then the self text or, for
// link posts with an article fetcher wired, the linked page's text.
func (t *Traverser) Submission(acc *analytics.Accumulator, s *models.Submission, includeComments bool) error {
	if includeComments {
		comments, err := t.Source.Comments(s)
		if err != nil {
			return err
		}
		for _, c := range comments {
			t.Filter.Ingest(c.Body, acc)
		}
	}

	t.Filter.Ingest(s.Title, acc)

	if s.IsSelf {
		t.Filter.Ingest(s.SelfText, acc)
	} else if t.Articles != nil && s.URL != "" {
		text, err := t.Articles.Text(s.URL)
		if err != nil {
			t.logger().Warn("failed to extract linked article", "url", s.URL, "error", err)
			return nil
		}
		t.Filter.Ingest(text, acc)
	}
	return nil
}

// Subreddit walks the subreddit's top listing for the configured period.
// Submissions whose fetch fails with an HTTP error are skipped and
// reported; any other error aborts the walk.
func (t *Traverser) Subreddit(acc *analytics.Accumulator, subreddit string) error {
	t.Stats = Stats{}

	subs, err := t.Source.TopSubmissions(subreddit, t.Opts.Period, t.Opts.Limit)
	if err != nil {
		return err
	}

	for _, s := range subs {
		t.tick()
		if err := t.Submission(acc, s, true); err != nil {
			var fetchErr *models.FetchError
			if errors.As(err, &fetchErr) {
				t.Stats.Skips = append(t.Stats.Skips, Skip{Permalink: s.Permalink, StatusCode: fetchErr.StatusCode})
				t.logger().Warn("skipping submission", "url", s.Permalink, "status", fetchErr.StatusCode)
				continue
			}
			return err
		}
	}
	return nil
}

// Redditor walks the user's recent comments and submissions. The user's
// own submissions are processed without their comment threads.
func (t *Traverser) Redditor(acc *analytics.Accumulator, username string) error {
	t.Stats = Stats{}

	items, err := t.Source.Overview(username, t.Opts.Limit)
	if err != nil {
		return err
	}

	for _, item := range items {
		t.tick()
		switch item.Kind {
		case models.ActivityComment:
			t.Filter.Ingest(item.Comment.Body, acc)
		case models.ActivitySubmission:
			if err := t.Submission(acc, item.Submission, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Traverser) tick() {
	t.Stats.Items++
	if t.Progress != nil {
		t.Progress.Tick()
	}
}

func (t *Traverser) logger() *slog.Logger {
	if t.Log != nil {
		return t.Log
	}
	return slog.Default()
}
