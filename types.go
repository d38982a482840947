package tiddlersplit

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/alnah/go-tiddlersplit/internal/config"
)

// Defaults match the file names the export workflow has always used.
const (
	DefaultInputPath = config.DefaultInputPath
	DefaultOutputDir = config.DefaultOutputDir

	// DefaultDelimiter is the literal page-break marker TiddlyWiki's Markdown
	// export places between tiddlers: a backslash followed by "newpage".
	DefaultDelimiter = config.DefaultDelimiter
)

// Output file extensions.
const (
	MarkdownExt = ".md"
	HTMLExt     = ".html"
)

// Record is one tiddler cut out of the document.
type Record struct {
	Index int    // 0-based position in the document
	Text  string // raw text between delimiters, untrimmed
}

// Body returns the record text with outer whitespace removed.
// Inner lines are left as they are.
func (r Record) Body() string {
	return strings.TrimSpace(r.Text)
}

// Result describes the outcome of a run.
// It is returned on failure too, so callers can see which files exist.
type Result struct {
	// Written lists the paths of Markdown files written, in record order.
	Written []string

	// HTML lists the paths of HTML previews written, in record order.
	HTML []string

	// Failed is the index of the record that stopped the run, or -1 when
	// no record failed. A run that fails before the first record (missing
	// input, unusable output folder) also leaves it at -1.
	Failed int

	complete bool
}

// OK reports whether every record was written.
func (r *Result) OK() bool {
	return r.complete
}

// Option configures a Splitter.
type Option func(*Splitter)

// splitterConfig holds internal configuration for Splitter.
type splitterConfig struct {
	inputPath string
	outputDir string
	delimiter string
	html      bool
}

// WithInputPath sets the document read by Run.
func WithInputPath(path string) Option {
	return func(s *Splitter) {
		s.cfg.inputPath = path
	}
}

// WithOutputDir sets the folder tiddler files are written to.
func WithOutputDir(dir string) Option {
	return func(s *Splitter) {
		s.cfg.outputDir = dir
	}
}

// WithDelimiter replaces the literal record separator.
func WithDelimiter(delim string) Option {
	return func(s *Splitter) {
		s.cfg.delimiter = delim
	}
}

// WithHTML enables writing an HTML preview next to every Markdown file.
func WithHTML(enabled bool) Option {
	return func(s *Splitter) {
		s.cfg.html = enabled
	}
}

// WithFs sets the filesystem used for reading and writing.
// Tests pass afero.NewMemMapFs(); the default is the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(s *Splitter) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Splitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}
