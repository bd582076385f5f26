package common

import (
	"log/slog"
	"os"

	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/db"
	"github.com/urfave/cli/v2"
)

// NewLogger returns the JSON stderr logger every command uses. --quiet
// drops everything below Error.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config (if given) and applies the command's flags on
// top of it.
func LoadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("root") {
		cfg.Flatten.Root = c.String("root")
	}
	if c.IsSet("output") {
		cfg.Flatten.Output = c.String("output")
	}
	if c.IsSet("delimiter") {
		cfg.Flatten.Delimiter = c.String("delimiter")
	}
	if c.IsSet("corpus") {
		cfg.Ngrams.Corpus = c.String("corpus")
	}
	if c.IsSet("top") {
		cfg.Ngrams.Top = c.Int("top")
	}

	return cfg, cfg.Validate()
}

// RunRecorder writes one run to the history database when --history is
// set. A zero RunRecorder does nothing.
type RunRecorder struct {
	database *db.DB
	runID    int64
	logger   *slog.Logger
}

// StartRun opens the history database named by --history and inserts a
// running entry. Without the flag it returns a no-op recorder.
func StartRun(c *cli.Context, logger *slog.Logger, command, input, output string) (*RunRecorder, error) {
	if !c.IsSet("history") {
		return &RunRecorder{}, nil
	}

	database, err := db.Open(c.String("history"))
	if err != nil {
		return nil, models.NewError(models.KindOutputWriteFailure, "open history", c.String("history"), err)
	}

	runID, err := database.StartRun(command, input, output)
	if err != nil {
		_ = database.Close()
		return nil, models.NewError(models.KindOutputWriteFailure, "record run", database.Path(), err)
	}
	logger.Info("Recording run", "run_id", runID, "history", database.Path())
	return &RunRecorder{database: database, runID: runID, logger: logger}, nil
}

// Finish stores the items and outcome of the run and closes the database.
// History failures are logged, never returned: they must not mask runErr.
func (r *RunRecorder) Finish(itemCount int, items []db.RunItem, runErr error) {
	if r.database == nil {
		return
	}
	defer r.database.Close()

	if err := r.database.AddRunItems(r.runID, items); err != nil {
		r.logger.Error("Failed to record run items", "run_id", r.runID, "error", err)
	}

	var errType, errMsg string
	if runErr != nil {
		errType = string(models.KindOf(runErr))
		errMsg = runErr.Error()
	}
	if err := r.database.FinishRun(r.runID, itemCount, errType, errMsg); err != nil {
		r.logger.Error("Failed to finish run", "run_id", r.runID, "error", err)
	}
}
