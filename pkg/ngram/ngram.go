// Package ngram prints the most frequent n-grams of every line in a corpus.
package ngram

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/analytics"
	"github.com/dtnitsch/flatgram/pkg/detector"
	"github.com/dtnitsch/flatgram/pkg/mapreduce"
	"github.com/dtnitsch/flatgram/pkg/storage"
)

// Gram is a ranked n-gram.
type Gram struct {
	Text  string
	Count int
}

// TopNGrams returns the k most frequent n-grams of line, ties in first-seen
// order.
func TopNGrams(line string, n, k int) []Gram {
	top := mapreduce.TopK(mapreduce.Map(line, n), k)
	grams := make([]Gram, len(top))
	for i, e := range top {
		grams[i] = Gram{Text: e.Gram, Count: e.Count}
	}
	return grams
}

// RunOptions carries the optional behaviour of Run.
type RunOptions struct {
	Logger *slog.Logger
	// Aggregate adds corpus-wide lists after the per-line output.
	Aggregate bool
	// Detector, when set, tags each line with its language.
	Detector detector.Detector
}

// LineLanguage is the detected language of one corpus line.
type LineLanguage struct {
	Line     int    `yaml:"line"`
	Language string `yaml:"language"`
}

// OrderSummary holds the corpus-wide top list for one gram size.
type OrderSummary struct {
	Order int      `yaml:"order"`
	Top   []string `yaml:"top"`
}

// Result summarises a completed run.
type Result struct {
	Corpus    string         `yaml:"corpus"`
	Lines     int            `yaml:"lines"`
	Aggregate []OrderSummary `yaml:"aggregate,omitempty"`
	Languages []LineLanguage `yaml:"languages,omitempty"`
}

// Run reads cfg.Corpus and writes one "Top K <order> list = [...]" line per
// configured order for every corpus line. Lines are independent; nothing is
// carried between them unless opts.Aggregate is set.
func Run(cfg models.NgramConfig, w io.Writer, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &storage.Storage{}
	lines, err := s.ReadLines(cfg.Corpus)
	if err != nil {
		return nil, models.NewError(models.KindInputNotFound, "read corpus", cfg.Corpus, err)
	}
	logger.Info("Counting n-grams", "corpus", cfg.Corpus, "lines", len(lines), "orders", cfg.Orders, "top", cfg.Top)

	result := &Result{Corpus: cfg.Corpus, Lines: len(lines)}
	perOrder := make([][]*analytics.Frequency, len(cfg.Orders))

	for i, line := range lines {
		tokens := analytics.Tokenize(line)
		for oi, n := range cfg.Orders {
			freq := analytics.NGramFrequency(tokens, n)
			grams := mapreduce.Grams(mapreduce.TopK(freq, cfg.Top))
			if err := mapreduce.PrintTopList(w, cfg.Top, analytics.OrderName(n)+" list", grams); err != nil {
				return result, models.NewError(models.KindOutputWriteFailure, "write report", "", err)
			}
			if opts.Aggregate {
				perOrder[oi] = append(perOrder[oi], freq)
			}
		}

		if opts.Detector != nil {
			lang := opts.Detector.Detect(line)
			result.Languages = append(result.Languages, LineLanguage{Line: i + 1, Language: lang})
			logger.Info("Detected language", "line", i+1, "language", lang)
		}
	}

	if opts.Aggregate {
		for oi, n := range cfg.Orders {
			grams := mapreduce.Grams(mapreduce.TopK(mapreduce.Reduce(perOrder[oi]), cfg.Top))
			label := fmt.Sprintf("%s list (corpus)", analytics.OrderName(n))
			if err := mapreduce.PrintTopList(w, cfg.Top, label, grams); err != nil {
				return result, models.NewError(models.KindOutputWriteFailure, "write report", "", err)
			}
			result.Aggregate = append(result.Aggregate, OrderSummary{Order: n, Top: grams})
		}
	}

	logger.Info("N-gram report complete", "lines", len(lines))
	return result, nil
}
