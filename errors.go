package tiddlersplit

import (
	"errors"
	"fmt"

	"github.com/alnah/go-tiddlersplit/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Record content errors. Either one aborts the run.
	ErrMissingTitle = errors.New("cannot find title for tiddler")
	ErrInvalidTitle = errors.New("title does not yield a usable file name")

	// Option validation errors.
	ErrEmptyDelimiter = errors.New("delimiter cannot be empty")
	ErrEmptyPath      = errors.New("path cannot be empty")

	// I/O errors.
	ErrReadInput       = errors.New("failed to read input document")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteFile       = errors.New("failed to write tiddler file")

	// ErrHTMLConversion is returned when an HTML preview cannot be rendered.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)

// RecordError reports which record stopped a run.
type RecordError struct {
	Index int    // 0-based position of the record in the document
	Title string // extracted title, empty when extraction failed
	Err   error
}

func (e *RecordError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("record %d (%q): %v", e.Index, e.Title, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
