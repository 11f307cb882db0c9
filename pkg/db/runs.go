package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one analysis invocation.
type Run struct {
	RunID          int64
	CreatedAt      time.Time
	Target         string
	IsSubreddit    bool
	Period         string
	ItemLimit      int
	MaxThreshold   float64
	CountWordFreqs bool
	ItemCount      int
	SkippedCount   int
	DistinctWords  int
	OutputFile     string
	DurationMS     int64
}

// CreateRun records the start of an analysis run and returns its ID.
func (db *DB) CreateRun(target string, isSubreddit bool, period string, limit int, maxThreshold float64, countWordFreqs bool) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (target, is_subreddit, period, item_limit, max_threshold, count_word_freqs)
		VALUES (?, ?, ?, ?, ?, ?)
	`, target, isSubreddit, period, limit, maxThreshold, countWordFreqs)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun stores the outcome counters for a completed run.
func (db *DB) FinishRun(runID int64, itemCount, skippedCount, distinctWords int, outputFile string, duration time.Duration) error {
	_, err := db.Exec(`
		UPDATE runs
		SET item_count = ?, skipped_count = ?, distinct_words = ?, output_file = ?, duration_ms = ?
		WHERE run_id = ?
	`, itemCount, skippedCount, distinctWords, outputFile, duration.Milliseconds(), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// RecordSkip stores one content item the run had to walk past.
func (db *DB) RecordSkip(runID int64, permalink string, statusCode int) error {
	_, err := db.Exec(`
		INSERT INTO run_skips (run_id, permalink, status_code)
		VALUES (?, ?, ?)
	`, runID, permalink, statusCode)
	if err != nil {
		return fmt.Errorf("failed to record skip: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, created_at, target, is_subreddit, period, item_limit,
		       max_threshold, count_word_freqs, item_count, skipped_count,
		       distinct_words, COALESCE(output_file, ''), duration_ms
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.Target,
		&run.IsSubreddit,
		&run.Period,
		&run.ItemLimit,
		&run.MaxThreshold,
		&run.CountWordFreqs,
		&run.ItemCount,
		&run.SkippedCount,
		&run.DistinctWords,
		&run.OutputFile,
		&run.DurationMS,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, target, is_subreddit, period, item_limit,
		       max_threshold, count_word_freqs, item_count, skipped_count,
		       distinct_words, COALESCE(output_file, ''), duration_ms
		FROM runs
		ORDER BY created_at DESC, run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Target, &r.IsSubreddit,
			&r.Period, &r.ItemLimit, &r.MaxThreshold, &r.CountWordFreqs,
			&r.ItemCount, &r.SkippedCount, &r.DistinctWords, &r.OutputFile,
			&r.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, nil
}

// RunSkip is one recorded skip with the HTTP status that caused it.
type RunSkip struct {
	Permalink  string
	StatusCode int
}

// RunSkips retrieves a run's skipped items in the order they were hit
func (db *DB) RunSkips(runID int64) ([]RunSkip, error) {
	rows, err := db.Query(`
		SELECT permalink, status_code
		FROM run_skips
		WHERE run_id = ?
		ORDER BY skip_id ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run skips: %w", err)
	}
	defer rows.Close()

	var skips []RunSkip
	for rows.Next() {
		var s RunSkip
		if err := rows.Scan(&s.Permalink, &s.StatusCode); err != nil {
			return nil, fmt.Errorf("failed to scan run skip: %w", err)
		}
		skips = append(skips, s)
	}

	return skips, nil
}
