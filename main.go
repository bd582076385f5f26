package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/flatgram/internal/flatten"
	"github.com/dtnitsch/flatgram/internal/history"
	"github.com/dtnitsch/flatgram/internal/ngrams"
	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/db"
	"github.com/dtnitsch/flatgram/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		logger.Error("run failed", "error", err, "error_type", models.KindOf(err))
		os.Exit(models.ExitCode(err))
	}
}

func newApp() *cli.App {
	defaults := models.DefaultConfig()

	return &cli.App{
		Name:  "flatgram",
		Usage: "flatten nested JSON documents to CSV and count per-line n-grams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file; flags override its values",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "flatten",
				Usage:  "flatten <root>/<subdir>/*.json into a CSV with a fixed column projection",
				Action: flatten.FlattenAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "root",
						Value: defaults.Flatten.Root,
						Usage: "directory whose immediate subdirectories hold the JSON documents",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   defaults.Flatten.Output,
						Usage:   "CSV file to write (truncated first)",
					},
					&cli.StringFlag{
						Name:  "delimiter",
						Value: defaults.Flatten.Delimiter,
						Usage: "separator between nested key names",
					},
					manifestFlag(),
					historyFlag(),
				},
			},
			{
				Name:   "ngrams",
				Usage:  "print the most frequent unigrams and bigrams of every corpus line",
				Action: ngrams.NgramsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "corpus",
						Value: defaults.Ngrams.Corpus,
						Usage: "text file to read, one report per line",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: defaults.Ngrams.Top,
						Usage: "number of grams per list",
					},
					&cli.BoolFlag{
						Name:  "aggregate",
						Usage: "also print corpus-wide lists after the per-line output",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "detect and log the language of each line",
					},
					manifestFlag(),
					historyFlag(),
				},
			},
			{
				Name:      "history",
				Usage:     "list recorded runs, or show one run's items",
				ArgsUsage: "[run-id]",
				Action:    history.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "history",
						Value: db.DefaultDBName,
						Usage: "SQLite history database",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum runs to list (0 for all)",
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "print a quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}

func manifestFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "manifest",
		Usage: "write a YAML run summary to this file",
	}
}

func historyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "history",
		Usage: "record the run in this SQLite history database",
	}
}
