package flatten

import (
	"github.com/dtnitsch/flatgram/internal/common"
	"github.com/dtnitsch/flatgram/pkg/db"
	"github.com/dtnitsch/flatgram/pkg/flatten"
	"github.com/dtnitsch/flatgram/pkg/manifest"
	"github.com/dtnitsch/flatgram/pkg/storage"
	"github.com/urfave/cli/v2"
)

// FlattenAction converts ./data/<subdir>/*.json into output.csv.
func FlattenAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	recorder, err := common.StartRun(c, logger, "flatten", cfg.Flatten.Root, cfg.Flatten.Output)
	if err != nil {
		return err
	}

	result, runErr := flatten.Run(cfg.Flatten, flatten.RunOptions{Logger: logger})

	var items []db.RunItem
	rows := 0
	if result != nil {
		rows = result.RowsWritten
		for i, f := range result.Files {
			items = append(items, db.RunItem{Position: i + 1, Name: f.Path, Value: f.TransactionID})
		}
	}
	recorder.Finish(rows, items, runErr)

	if path := c.String("manifest"); path != "" {
		s := &storage.Storage{}
		m := manifest.NewFlattenSummary(cfg.Flatten, result, runErr, s)
		if err := manifest.Write(path, m, s); err != nil {
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
