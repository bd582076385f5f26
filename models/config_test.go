package models

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flatgram.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Flatten.Root != "./data/" || cfg.Flatten.Output != "output.csv" || cfg.Flatten.Delimiter != "_" {
		t.Errorf("Flatten defaults = %+v", cfg.Flatten)
	}
	if !reflect.DeepEqual(cfg.Flatten.Columns, DefaultColumns) {
		t.Errorf("Columns = %v, want %v", cfg.Flatten.Columns, DefaultColumns)
	}
	if cfg.Ngrams.Corpus != "corpus.txt" || cfg.Ngrams.Top != 50 || !reflect.DeepEqual(cfg.Ngrams.Orders, []int{1, 2}) {
		t.Errorf("Ngrams defaults = %+v", cfg.Ngrams)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}

	// Callers may mutate their copy without touching the package default.
	cfg.Flatten.Columns[0] = "changed"
	if DefaultColumns[0] != "transactionid" {
		t.Error("DefaultConfig() shares the DefaultColumns backing array")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKind Kind
		check    func(t *testing.T, cfg Config)
	}{
		{
			name:    "partial override keeps other defaults",
			content: "flatten:\n  output: rows.csv\nngrams:\n  top: 10\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Flatten.Output != "rows.csv" {
					t.Errorf("Output = %q, want rows.csv", cfg.Flatten.Output)
				}
				if cfg.Flatten.Root != "./data/" || cfg.Flatten.Delimiter != "_" {
					t.Errorf("untouched flatten keys changed: %+v", cfg.Flatten)
				}
				if cfg.Ngrams.Top != 10 || cfg.Ngrams.Corpus != "corpus.txt" {
					t.Errorf("Ngrams = %+v", cfg.Ngrams)
				}
			},
		},
		{
			name:    "columns replaced wholesale",
			content: "flatten:\n  columns: [transactionid, name]\n",
			check: func(t *testing.T, cfg Config) {
				if !reflect.DeepEqual(cfg.Flatten.Columns, []string{"transactionid", "name"}) {
					t.Errorf("Columns = %v", cfg.Flatten.Columns)
				}
			},
		},
		{
			name:     "invalid yaml",
			content:  "flatten: [unterminated\n",
			wantKind: KindInvalidConfig,
		},
		{
			name:     "empty delimiter rejected",
			content:  "flatten:\n  delimiter: \"\"\n",
			wantKind: KindInvalidConfig,
		},
		{
			name:     "negative top rejected",
			content:  "ngrams:\n  top: -1\n",
			wantKind: KindInvalidConfig,
		},
		{
			name:     "zero order rejected",
			content:  "ngrams:\n  orders: [1, 0]\n",
			wantKind: KindInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantKind != "" {
				if got := KindOf(err); got != tt.wantKind {
					t.Fatalf("LoadConfig() kind = %q (err %v), want %q", got, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if got := KindOf(err); got != KindInputNotFound {
		t.Errorf("KindOf(err) = %q, want %q", got, KindInputNotFound)
	}
}
