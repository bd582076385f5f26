package flatten

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/flatgram/models"
	"github.com/dtnitsch/flatgram/pkg/storage"
)

// TransactionIDKey is the column synthesised from the input path.
const TransactionIDKey = "transactionid"

// transactionSegment is the index of the path segment that names the
// transaction. It assumes the <root>/<subdir>/<file> layout with a root of
// the form "./data/", so segment 2 is the subdirectory name.
const transactionSegment = 2

// RunOptions carries the optional collaborators of Run.
type RunOptions struct {
	Logger *slog.Logger
}

// FileResult describes one processed input file.
type FileResult struct {
	Path          string `yaml:"path"`
	TransactionID string `yaml:"transaction_id"`
	Keys          int    `yaml:"keys"`
}

// Result summarises a completed run.
type Result struct {
	Output        string       `yaml:"output"`
	RowsWritten   int          `yaml:"rows_written"`
	HeaderWritten bool         `yaml:"header_written"`
	Files         []FileResult `yaml:"files"`
}

// TransactionID returns the path segment that identifies the transaction.
// The position is fixed; a path with a different shape yields a different
// segment, and one with too few segments is an error.
func TransactionID(path string) (string, error) {
	parts := strings.Split(path, string(os.PathSeparator))
	if len(parts) <= transactionSegment {
		return "", fmt.Errorf("path %q has %d segments, need at least %d", path, len(parts), transactionSegment+1)
	}
	return parts[transactionSegment], nil
}

// Run flattens every <root>/<subdir>/*<suffix> file into one CSV row of
// cfg.Output. The output is truncated first; the header goes in ahead of the
// first row. The first failure aborts the run.
func Run(cfg models.FlattenConfig, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	out := &storage.CSVFile{Path: cfg.Output, CRLF: cfg.CRLF}
	if err := out.Truncate(); err != nil {
		return nil, models.NewError(models.KindOutputWriteFailure, "truncate output", cfg.Output, err)
	}

	result := &Result{Output: cfg.Output}

	files, err := ListInputs(cfg.Root, cfg.Suffix)
	if err != nil {
		return result, err
	}
	logger.Info("Flattening documents", "root", cfg.Root, "files", len(files), "output", cfg.Output)

	for _, path := range files {
		record, err := flattenFile(path, cfg.Delimiter)
		if err != nil {
			return result, err
		}

		txID, err := TransactionID(path)
		if err != nil {
			return result, models.NewError(models.KindMalformedDocument, "derive transaction id", path, err)
		}
		record.Set(TransactionIDKey, txID)

		if !result.HeaderWritten {
			if err := out.AppendRow(cfg.Columns); err != nil {
				return result, models.NewError(models.KindOutputWriteFailure, "write header", cfg.Output, err)
			}
			result.HeaderWritten = true
		}

		if err := out.AppendRow(record.Project(cfg.Columns)); err != nil {
			return result, models.NewError(models.KindOutputWriteFailure, "write row", cfg.Output, err)
		}
		result.RowsWritten++
		result.Files = append(result.Files, FileResult{Path: path, TransactionID: txID, Keys: record.Len()})
		logger.Debug("Wrote row", "path", path, "transaction_id", txID, "keys", record.Len())
	}

	logger.Info("Flatten complete", "rows", result.RowsWritten, "output", cfg.Output)
	return result, nil
}

// ListInputs returns <root>/<subdir>/<file> for every file directly inside an
// immediate subdirectory of root whose name ends in suffix. Paths are built
// by concatenation so the root keeps its exact spelling. Both levels are
// listed in name order.
func ListInputs(root, suffix string) ([]string, error) {
	sep := string(os.PathSeparator)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, inputError("read root", root, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := strings.TrimSuffix(root, sep) + sep + entry.Name()

		children, err := os.ReadDir(dir)
		if err != nil {
			return nil, inputError("read directory", dir, err)
		}
		for _, child := range children {
			if child.IsDir() || !strings.HasSuffix(child.Name(), suffix) {
				continue
			}
			files = append(files, dir+sep+child.Name())
		}
	}
	return files, nil
}

func flattenFile(path, delimiter string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inputError("open document", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, models.NewError(models.KindMalformedDocument, "decode document", path, err)
	}
	return Flatten(doc, delimiter), nil
}

// inputError tags a read failure. Permission and other read errors count as
// missing input too; the run cannot continue either way.
func inputError(op, path string, err error) error {
	return models.NewError(models.KindInputNotFound, op, path, err)
}
