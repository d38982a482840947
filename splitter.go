package tiddlersplit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/alnah/go-tiddlersplit/internal/fileutil"
	"github.com/alnah/go-tiddlersplit/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Splitter cuts a concatenated tiddler export into one file per tiddler.
// Create with New, then call Run or Split.
type Splitter struct {
	cfg           splitterConfig
	fs            afero.Fs
	logger        hclog.Logger
	htmlConverter pipeline.HTMLConverter
}

// New creates a Splitter with default configuration.
// Use options to customize behavior (e.g., WithOutputDir, WithFs, WithHTML).
// Returns error if a path or the delimiter is empty.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		cfg: splitterConfig{
			inputPath: DefaultInputPath,
			outputDir: DefaultOutputDir,
			delimiter: DefaultDelimiter,
		},
		fs:     afero.NewOsFs(),
		logger: hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.inputPath == "" {
		return nil, fmt.Errorf("%w: input path", ErrEmptyPath)
	}
	if s.cfg.outputDir == "" {
		return nil, fmt.Errorf("%w: output directory", ErrEmptyPath)
	}
	if s.cfg.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	if s.cfg.html && s.htmlConverter == nil {
		s.htmlConverter = pipeline.NewGoldmarkConverter()
	}

	return s, nil
}

// InputPath returns the document path Run reads.
func (s *Splitter) InputPath() string { return s.cfg.inputPath }

// OutputDir returns the folder files are written to.
func (s *Splitter) OutputDir() string { return s.cfg.outputDir }

// Delimiter returns the record separator.
func (s *Splitter) Delimiter() string { return s.cfg.delimiter }

// Run reads the input document and splits it. See Split.
func (s *Splitter) Run(ctx context.Context) (*Result, error) {
	document, err := fileutil.ReadFile(s.fs, s.cfg.inputPath)
	if err != nil {
		return &Result{Failed: -1}, fmt.Errorf("%w: %s: %w", ErrReadInput, s.cfg.inputPath, err)
	}
	s.logger.Debug("read input", "path", s.cfg.inputPath, "bytes", len(document))
	return s.Split(ctx, document)
}

// Split writes one file per record of document into the output directory.
//
// Records are processed in order; the first record that fails stops the run
// and is reported as a *RecordError. Files written before the failure stay on
// disk and are listed in the returned Result, which is never nil.
func (s *Splitter) Split(ctx context.Context, document string) (*Result, error) {
	res := &Result{Failed: -1}

	if err := fileutil.EnsureDir(s.fs, s.cfg.outputDir); err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrCreateOutputDir, s.cfg.outputDir, err)
	}

	records := SplitRecords(document, s.cfg.delimiter)
	s.logger.Debug("split document", "records", len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			res.Failed = rec.Index
			return res, &RecordError{Index: rec.Index, Err: err}
		}

		if err := s.processRecord(ctx, rec, res); err != nil {
			res.Failed = rec.Index
			return res, err
		}
	}

	res.complete = true
	s.logger.Info("split complete", "tiddlers", len(res.Written), "dir", s.cfg.outputDir)
	return res, nil
}

// processRecord runs extract → sanitize → write for one record and appends
// the written paths to res.
func (s *Splitter) processRecord(ctx context.Context, rec Record, res *Result) error {
	title, err := ExtractTitle(rec.Text)
	if err != nil {
		return &RecordError{Index: rec.Index, Err: err}
	}

	name, err := SanitizeFilename(title)
	if err != nil {
		return &RecordError{Index: rec.Index, Title: title, Err: err}
	}

	body := rec.Body()

	// Render the preview before touching disk so a rendering failure leaves
	// no file behind for this record.
	var page string
	if s.htmlConverter != nil {
		page, err = s.htmlConverter.ToHTML(ctx, title, body)
		if err != nil {
			return &RecordError{Index: rec.Index, Title: title, Err: err}
		}
	}

	mdPath := filepath.Join(s.cfg.outputDir, name+MarkdownExt)
	if err := fileutil.WriteFile(s.fs, mdPath, body); err != nil {
		return &RecordError{Index: rec.Index, Title: title, Err: fmt.Errorf("%w: %s: %w", ErrWriteFile, mdPath, err)}
	}
	res.Written = append(res.Written, mdPath)
	s.logger.Debug("wrote tiddler", "index", rec.Index, "title", title, "path", mdPath)

	if s.htmlConverter == nil {
		return nil
	}

	htmlPath := filepath.Join(s.cfg.outputDir, name+HTMLExt)
	if err := fileutil.WriteFile(s.fs, htmlPath, page); err != nil {
		return &RecordError{Index: rec.Index, Title: title, Err: fmt.Errorf("%w: %s: %w", ErrWriteFile, htmlPath, err)}
	}
	res.HTML = append(res.HTML, htmlPath)
	s.logger.Debug("wrote preview", "index", rec.Index, "path", htmlPath)

	return nil
}
