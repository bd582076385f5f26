package manifest

import (
	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/flatten"
	"github.com/dtnitsch/flatgram/pkg/ngram"
)

// SummaryManifest is the YAML file written by --manifest. It gives a quick
// overview of a run without re-reading its output.
type SummaryManifest struct {
	GeneratedAt string            `yaml:"generated_at"`
	Command     string            `yaml:"command"`
	Status      string            `yaml:"status"` // "success" or "error"
	Error       *models.ErrorInfo `yaml:"error,omitempty"`
	Flatten     *FlattenSummary   `yaml:"flatten,omitempty"`
	Ngrams      *NgramSummary     `yaml:"ngrams,omitempty"`
}

// FlattenSummary describes a flatten run.
type FlattenSummary struct {
	Root            string          `yaml:"root"`
	Delimiter       string          `yaml:"delimiter"`
	Columns         []string        `yaml:"columns"`
	OutputSizeBytes int64           `yaml:"output_size_bytes"`
	Result          *flatten.Result `yaml:"result,omitempty"`
}

// NgramSummary describes an ngrams run.
type NgramSummary struct {
	Top    int           `yaml:"top"`
	Orders []int         `yaml:"orders"`
	Result *ngram.Result `yaml:"result,omitempty"`
}
