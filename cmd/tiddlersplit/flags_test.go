package main

// Notes:
// - parseFlags: we test short and long forms, usage errors, and positional args.
// - mergeFlags: we test that only explicitly given flags override the config,
//   including --html=false over a config that enables previews.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-tiddlersplit/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{"no flags", nil, cliFlags{}},
		{
			"short forms",
			[]string{"-i", "export.md", "-o", "out", "-d", "----", "-c", "work", "-q"},
			cliFlags{input: "export.md", output: "out", delimiter: "----", config: "work", quiet: true},
		},
		{
			"long forms",
			[]string{"--input=export.md", "--output=out", "--delimiter=----", "--config=work", "--verbose"},
			cliFlags{input: "export.md", output: "out", delimiter: "----", config: "work", verbose: true},
		},
		{"html", []string{"--html"}, cliFlags{html: true, htmlSet: true}},
		{"html disabled explicitly", []string{"--html=false"}, cliFlags{htmlSet: true}},
		{"version", []string{"--version"}, cliFlags{version: true}},
		{"help short", []string{"-h"}, cliFlags{help: true}},
		{"help long", []string{"--help"}, cliFlags{help: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			got, err := parseFlags(tt.args, &buf)
			if err != nil {
				t.Fatalf("parseFlags(%v) unexpected error: %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("parseFlags(%v) wrote usage on success: %q", tt.args, buf.String())
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantErr   error
		wantUsage bool
	}{
		{"unknown flag", []string{"--pdf"}, ErrUsage, true},
		{"missing value", []string{"--input"}, ErrUsage, true},
		{"positional argument", []string{"tiddlers.md"}, ErrUnexpectedArgs, false},
		{"positional after flags", []string{"-o", "out", "extra"}, ErrUnexpectedArgs, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			_, err := parseFlags(tt.args, &buf)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
			gotUsage := strings.Contains(buf.String(), "Usage:")
			if gotUsage != tt.wantUsage {
				t.Errorf("usage printed = %v, want %v", gotUsage, tt.wantUsage)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI over config precedence
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("empty flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{}
		cfg.Input.Path = "wiki.md"
		cfg.Output.Dir = "notes"
		cfg.Output.HTML = true
		cfg.Split.Delimiter = "----"

		mergeFlags(&cliFlags{}, cfg)

		if cfg.Input.Path != "wiki.md" || cfg.Output.Dir != "notes" || cfg.Split.Delimiter != "----" || !cfg.Output.HTML {
			t.Errorf("config changed without flags: %+v", cfg)
		}
	})

	t.Run("given flags override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.HTML = true

		mergeFlags(&cliFlags{
			input:     "export.md",
			output:    "out",
			delimiter: "<<<>>>",
			htmlSet:   true,
		}, cfg)

		if cfg.Input.Path != "export.md" {
			t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "export.md")
		}
		if cfg.Output.Dir != "out" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "out")
		}
		if cfg.Split.Delimiter != "<<<>>>" {
			t.Errorf("Split.Delimiter = %q, want %q", cfg.Split.Delimiter, "<<<>>>")
		}
		if cfg.Output.HTML {
			t.Error("Output.HTML = true, want false from --html=false")
		}
	})
}
