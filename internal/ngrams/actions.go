package ngrams

import (
	"fmt"
	"os"

	"github.com/dtnitsch/flatgram/internal/common"
	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/db"
	"github.com/dtnitsch/flatgram/pkg/detector"
	"github.com/dtnitsch/flatgram/pkg/manifest"
	"github.com/dtnitsch/flatgram/pkg/ngram"
	"github.com/dtnitsch/flatgram/pkg/storage"
	"github.com/urfave/cli/v2"
)

// NgramsAction prints the top unigrams and bigrams of every corpus line.
func NgramsAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	opts := ngram.RunOptions{
		Logger:    logger,
		Aggregate: c.Bool("aggregate"),
	}
	if c.Bool("detect-language") {
		d, err := detector.NewLingua(cfg.Ngrams.Languages)
		if err != nil {
			return models.NewError(models.KindInvalidConfig, "build language detector", "", err)
		}
		opts.Detector = d
	}

	recorder, err := common.StartRun(c, logger, "ngrams", cfg.Ngrams.Corpus, "")
	if err != nil {
		return err
	}

	result, runErr := ngram.Run(cfg.Ngrams, os.Stdout, opts)

	var items []db.RunItem
	lines := 0
	if result != nil {
		lines = result.Lines
		for _, l := range result.Languages {
			items = append(items, db.RunItem{Position: l.Line, Name: fmt.Sprintf("line %d", l.Line), Value: l.Language})
		}
	}
	recorder.Finish(lines, items, runErr)

	if path := c.String("manifest"); path != "" {
		m := manifest.NewNgramSummary(cfg.Ngrams, result, runErr)
		if err := manifest.Write(path, m, &storage.Storage{}); err != nil {
			logger.Error("Failed to write manifest", "path", path, "error", err)
			if runErr == nil {
				return err
			}
		} else {
			logger.Info("Manifest written", "path", path)
		}
	}

	return runErr
}
