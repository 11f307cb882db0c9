// Package history implements the commands that browse recorded runs.
package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cmcdowell/reddit-analysis/models"
	dbpkg "github.com/cmcdowell/reddit-analysis/pkg/db"
)

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := models.LoadFileConfig(c.String("config"))
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("failed to load config: %v", err), 1)
	}

	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func formatTarget(r dbpkg.Run) string {
	if r.IsSubreddit {
		return "/r/" + r.Target
	}
	return "/u/" + r.Target
}

// ListAction prints past runs, newest first.
func ListAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-24s %-7s %-7s %-8s %-8s %-24s\n",
		"ID", "Created", "Target", "Period", "Items", "Skipped", "Words", "Output")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-24s %-7s %-7d %-8d %-8d %-24s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			formatTarget(r),
			r.Period,
			r.ItemCount,
			r.SkippedCount,
			r.DistinctWords,
			r.OutputFile,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'reddit-analysis history show <id>' to see details\n")

	return nil
}

// ShowAction prints one run with the items it had to skip.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("run ID required (e.g. reddit-analysis history show 3)", 2)
	}
	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid run ID %q", c.Args().First()), 2)
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	skips, err := database.RunSkips(runID)
	if err != nil {
		return err
	}

	counting := "once per occurrence"
	if !run.CountWordFreqs {
		counting = "once per text block"
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:        %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Target:         %s\n", formatTarget(*run))
	fmt.Printf("Period:         %s\n", run.Period)
	fmt.Printf("Counting:       %s\n", counting)
	fmt.Printf("Items:          %d processed (%d skipped)\n", run.ItemCount, run.SkippedCount)
	fmt.Printf("Distinct words: %d\n", run.DistinctWords)
	fmt.Printf("Output:         %s\n", run.OutputFile)
	fmt.Printf("Duration:       %s\n", time.Duration(run.DurationMS)*time.Millisecond)

	if len(skips) > 0 {
		fmt.Printf("\nSkipped items (%d):\n", len(skips))
		fmt.Println(strings.Repeat("-", 60))
		for _, s := range skips {
			fmt.Printf("%4d  %s\n", s.StatusCode, s.Permalink)
		}
	}

	return nil
}
