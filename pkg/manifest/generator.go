package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/flatten"
	"github.com/dtnitsch/flatgram/pkg/ngram"
	"github.com/dtnitsch/flatgram/pkg/storage"
	"gopkg.in/yaml.v3"
)

// NewFlattenSummary builds the manifest of a flatten run. runErr is the
// error the run ended with, if any; result may be nil.
func NewFlattenSummary(cfg models.FlattenConfig, result *flatten.Result, runErr error, s *storage.Storage) SummaryManifest {
	summary := &FlattenSummary{
		Root:      cfg.Root,
		Delimiter: cfg.Delimiter,
		Columns:   cfg.Columns,
		Result:    result,
	}
	if stats, err := s.GetFileStats(cfg.Output); err == nil {
		summary.OutputSizeBytes = stats.SizeBytes
	}

	m := newManifest("flatten", runErr)
	m.Flatten = summary
	return m
}

// NewNgramSummary builds the manifest of an ngrams run.
func NewNgramSummary(cfg models.NgramConfig, result *ngram.Result, runErr error) SummaryManifest {
	m := newManifest("ngrams", runErr)
	m.Ngrams = &NgramSummary{
		Top:    cfg.Top,
		Orders: cfg.Orders,
		Result: result,
	}
	return m
}

func newManifest(command string, runErr error) SummaryManifest {
	m := SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Command:     command,
		Status:      "success",
	}
	if runErr != nil {
		m.Status = "error"
		m.Error = models.NewErrorInfo(runErr)
	}
	return m
}

// Write saves the manifest as YAML at path.
func Write(path string, m SummaryManifest, s *storage.Storage) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return models.NewError(models.KindOutputWriteFailure, "write manifest", path, err)
	}
	return nil
}
