package models

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestKindOfAndExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantCode int
	}{
		{name: "nil", err: nil, wantKind: KindUnknown, wantCode: 0},
		{name: "plain error", err: errors.New("boom"), wantKind: KindUnknown, wantCode: 1},
		{name: "invalid config", err: NewError(KindInvalidConfig, "validate", "", errors.New("x")), wantKind: KindInvalidConfig, wantCode: 2},
		{name: "input not found", err: NewError(KindInputNotFound, "read", "data", os.ErrNotExist), wantKind: KindInputNotFound, wantCode: 3},
		{name: "malformed", err: NewError(KindMalformedDocument, "decode", "a.json", errors.New("x")), wantKind: KindMalformedDocument, wantCode: 4},
		{name: "output", err: NewError(KindOutputWriteFailure, "write", "out.csv", errors.New("x")), wantKind: KindOutputWriteFailure, wantCode: 5},
		{
			name:     "wrapped",
			err:      fmt.Errorf("flatten: %w", NewError(KindMalformedDocument, "decode", "a.json", errors.New("x"))),
			wantKind: KindMalformedDocument,
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %q, want %q", got, tt.wantKind)
			}
			if got := ExitCode(tt.err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	err := NewError(KindInputNotFound, "read root", "./data/", os.ErrNotExist)

	if got, want := err.Error(), "read root ./data/: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false")
	}

	noPath := NewError(KindInvalidConfig, "validate config", "", errors.New("bad"))
	if got, want := noPath.Error(), "validate config: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewErrorInfo(t *testing.T) {
	if NewErrorInfo(nil) != nil {
		t.Error("NewErrorInfo(nil) != nil")
	}

	info := NewErrorInfo(NewError(KindMalformedDocument, "decode document", "data/a/x.json", errors.New("bad")))
	if info.Type != "malformed_document" || info.Path != "data/a/x.json" {
		t.Errorf("NewErrorInfo() = %+v", info)
	}
}
