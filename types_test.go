package tiddlersplit

// Notes:
// - Result.OK: success comes from a finished run, not from Failed alone.
// - Options: we test that each option lands in the Splitter and that the
//   last option of a kind wins. Nil fs/logger handling is in splitter_test.go.

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// ---------------------------------------------------------------------------
// TestResultOK - Completion check
// ---------------------------------------------------------------------------

func TestResultOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  Result
		want bool
	}{
		{"completed run", Result{Failed: -1, complete: true}, true},
		{"failed before any record", Result{Failed: -1}, false},
		{"failed at first record", Result{Failed: 0}, false},
		{"failed after some writes", Result{Failed: 3, Written: []string{"a.md"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.res.OK(); got != tt.want {
				t.Errorf("OK() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestOptions - Functional options
// ---------------------------------------------------------------------------

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("values are applied", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		logger := hclog.NewNullLogger()

		s, err := New(
			WithInputPath("wiki.md"),
			WithOutputDir("notes"),
			WithDelimiter("----"),
			WithHTML(true),
			WithFs(fsys),
			WithLogger(logger),
		)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		if s.cfg.inputPath != "wiki.md" {
			t.Errorf("inputPath = %q, want %q", s.cfg.inputPath, "wiki.md")
		}
		if s.cfg.outputDir != "notes" {
			t.Errorf("outputDir = %q, want %q", s.cfg.outputDir, "notes")
		}
		if s.cfg.delimiter != "----" {
			t.Errorf("delimiter = %q, want %q", s.cfg.delimiter, "----")
		}
		if !s.cfg.html || s.htmlConverter == nil {
			t.Error("WithHTML(true) should enable the HTML converter")
		}
		if s.fs != fsys {
			t.Error("WithFs did not set the filesystem")
		}
		if s.logger != logger {
			t.Error("WithLogger did not set the logger")
		}
	})

	t.Run("later option wins", func(t *testing.T) {
		t.Parallel()

		s, err := New(WithOutputDir("first"), WithOutputDir("second"))
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}
		if s.OutputDir() != "second" {
			t.Errorf("OutputDir() = %q, want %q", s.OutputDir(), "second")
		}
	})
}
