package main

import (
	"errors"
	"os"

	"github.com/alnah/go-tiddlersplit"
	"github.com/alnah/go-tiddlersplit/internal/config"
)

// Exit codes for tiddlersplit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All tiddlers written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or options
	ExitIO      = 3 // Input not found, output not writable
	ExitContent = 4 // A tiddler has no usable title
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, tiddlersplit.ErrMissingTitle) ||
		errors.Is(err, tiddlersplit.ErrInvalidTitle) ||
		errors.Is(err, tiddlersplit.ErrHTMLConversion) {
		return ExitContent
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, tiddlersplit.ErrEmptyDelimiter) ||
		errors.Is(err, tiddlersplit.ErrEmptyPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tiddlersplit.ErrReadInput) ||
		errors.Is(err, tiddlersplit.ErrCreateOutputDir) ||
		errors.Is(err, tiddlersplit.ErrWriteFile) {
		return ExitIO
	}

	return ExitGeneral
}
