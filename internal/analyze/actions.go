// Package analyze implements the main analysis command: walk a target,
// filter its words, and emit the word-cloud corpus.
package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cmcdowell/reddit-analysis/internal/common"
	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/analytics"
	"github.com/cmcdowell/reddit-analysis/pkg/caching"
	"github.com/cmcdowell/reddit-analysis/pkg/corpus"
	"github.com/cmcdowell/reddit-analysis/pkg/db"
	"github.com/cmcdowell/reddit-analysis/pkg/detector"
	"github.com/cmcdowell/reddit-analysis/pkg/extractor"
	"github.com/cmcdowell/reddit-analysis/pkg/manifest"
	"github.com/cmcdowell/reddit-analysis/pkg/reddit"
	"github.com/cmcdowell/reddit-analysis/pkg/storage"
	"github.com/cmcdowell/reddit-analysis/pkg/traverse"
	"github.com/cmcdowell/reddit-analysis/pkg/words"
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() != 2 {
		return cli.Exit("expected arguments: USERNAME TARGET (e.g. myBotUser /r/programming)", 2)
	}
	username := c.Args().Get(0)
	target := c.Args().Get(1)

	cfg, err := models.LoadFileConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load config: %v", err), 1)
	}

	targetName, isSubreddit, err := common.ParseTarget(target)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	opts := &models.Options{
		Username:       username,
		Target:         target,
		TargetName:     targetName,
		IsSubreddit:    isSubreddit,
		Period:         c.String("period"),
		Limit:          c.Int("limit"),
		MaxThreshold:   c.Float64("maxthresh"),
		CountWordFreqs: !c.Bool("only_one"),
		Stem:           c.Bool("stem"),
		Language:       c.String("lang"),
		FetchLinks:     c.Bool("fetch-links"),
	}
	if err := opts.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	commonSet, err := words.LoadFiles(cfg.CommonWords, cfg.Dictionary)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load word sources: %v", err), 1)
	}
	logger.Debug("loaded common word set", "size", commonSet.Len())

	filter := &analytics.TextFilter{Common: commonSet, Opts: opts}
	if opts.Language != "" {
		gate, err := detector.NewLanguageFilter(opts.Language)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		filter.Lang = gate
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("bot by /u/%s", username)
	}

	client := reddit.New(userAgent, cfg.BaseURL)
	if dir := c.String("cache-dir"); dir != "" {
		cache, err := caching.NewCache(dir, c.Duration("max-age"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to initialize cache: %v", err), 1)
		}
		client = client.WithCache(cache)
	}

	tr := &traverse.Traverser{
		Source: client,
		Filter: filter,
		Opts:   opts,
		Log:    logger,
	}
	if opts.FetchLinks {
		tr.Articles = extractor.NewArticles(userAgent)
	}

	var dots *traverse.DotWriter
	if !c.Bool("no-progress") && !c.Bool("quiet") {
		dots = &traverse.DotWriter{W: os.Stderr}
		tr.Progress = dots
	}

	// Run history is best effort: a missing database never blocks analysis
	var runDB *db.DB
	var runID int64
	if runDB, err = db.Open(cfg.DBPath); err != nil {
		logger.Warn("run history disabled", "error", err)
		runDB = nil
	} else {
		defer runDB.Close()
		logger.Debug("recording run history", "path", runDB.Path())
		if runID, err = runDB.CreateRun(targetName, isSubreddit, opts.Period, opts.Limit, opts.MaxThreshold, opts.CountWordFreqs); err != nil {
			logger.Warn("failed to record run", "error", err)
			runID = 0
		}
	}

	if !c.Bool("quiet") {
		fmt.Fprintf(os.Stderr, "Analyzing %s\n", target)
	}

	start := time.Now()
	acc := analytics.NewAccumulator()
	if isSubreddit {
		err = tr.Subreddit(acc, targetName)
	} else {
		err = tr.Redditor(acc, targetName)
	}
	if dots != nil {
		dots.Finish()
	}
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", target, err)
	}

	text := corpus.Render(acc, cfg.Excluded, cfg.MinCount)

	store := &storage.Storage{}
	outDir := c.String("out-dir")
	if err := store.EnsureDir(outDir); err != nil {
		return err
	}
	outPath := storage.OutputPath(outDir, targetName, isSubreddit)
	if err := store.SaveFile(outPath, []byte(text)); err != nil {
		return err
	}
	fmt.Println(text)

	logger.Info("analysis complete",
		"target", target,
		"items", tr.Stats.Items,
		"skipped", len(tr.Stats.Skips),
		"distinct_words", acc.Len(),
		"output", outPath)

	if reportPath := c.String("report"); reportPath != "" {
		skips := make([]manifest.SkipEntry, len(tr.Stats.Skips))
		for i, s := range tr.Stats.Skips {
			skips[i] = manifest.SkipEntry{Permalink: s.Permalink, StatusCode: s.StatusCode}
		}
		report := manifest.Build(opts, acc, tr.Stats.Items, skips, outPath)
		if err := manifest.Write(report, reportPath, store); err != nil {
			logger.Warn("failed to write report", "path", reportPath, "error", err)
		}
	}

	if runDB != nil && runID != 0 {
		if err := runDB.FinishRun(runID, tr.Stats.Items, len(tr.Stats.Skips), acc.Len(), outPath, time.Since(start)); err != nil {
			logger.Warn("failed to record run outcome", "error", err)
		}
		for _, s := range tr.Stats.Skips {
			if err := runDB.RecordSkip(runID, s.Permalink, s.StatusCode); err != nil {
				logger.Warn("failed to record skip", "permalink", s.Permalink, "error", err)
				break
			}
		}
	}

	return nil
}
