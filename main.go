package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cmcdowell/reddit-analysis/internal/analyze"
	"github.com/cmcdowell/reddit-analysis/internal/history"
	"github.com/cmcdowell/reddit-analysis/models"
	"github.com/cmcdowell/reddit-analysis/pkg/detector"
	"github.com/cmcdowell/reddit-analysis/pkg/help"
)

func main() {
	app := &cli.App{
		Name:      "reddit-analysis",
		Usage:     "build word-cloud corpora from subreddits and redditors",
		ArgsUsage: "USERNAME TARGET",
		Description: "Counts the words used in a subreddit's top submissions or a\n" +
			"redditor's recent activity and writes a word-cloud corpus to\n" +
			"<target>.csv. TARGET looks like /r/programming or /u/spez;\n" +
			"USERNAME identifies the analysis to the Reddit API.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "period",
				Aliases: []string{"p"},
				Value:   models.DefaultPeriod,
				Usage:   "time `PERIOD` for top submissions (day, week, month, year, all)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "max submissions or activity entries to walk (0 walks everything)",
			},
			&cli.Float64Flag{
				Name:    "maxthresh",
				Aliases: []string{"m"},
				Value:   models.DefaultMaxThreshold,
				Usage:   "max fraction of a text block one word may occupy",
			},
			&cli.BoolFlag{
				Name:    "only_one",
				Aliases: []string{"o"},
				Usage:   "count a word once per text block instead of once per occurrence",
			},
			&cli.BoolFlag{
				Name:  "stem",
				Usage: "fold word variants together with a snowball stemmer",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: fmt.Sprintf("only analyze text in this ISO 639-1 `CODE` (%s)", strings.Join(detector.Supported(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "fetch-links",
				Usage: "fetch and analyze the articles link posts point to",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config `FILE` overriding word sources and defaults",
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "cache API responses under `DIR`",
			},
			&cli.DurationFlag{
				Name:  "max-age",
				Value: time.Hour,
				Usage: "how long cached responses stay fresh",
			},
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "write the corpus file under `DIR`",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "also write a YAML run report to `FILE`",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "suppress the progress dots",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug details",
			},
		},
		Action: analyze.AnalyzeAction,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "list recorded analysis runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "show at most `N` runs",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config `FILE` (for db_path)",
					},
				},
				Action: history.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show one run with its top words",
						ArgsUsage: "RUN_ID",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "config",
								Usage: "YAML config `FILE` (for db_path)",
							},
						},
						Action: history.ShowAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
