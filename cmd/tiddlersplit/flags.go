package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-tiddlersplit/internal/config"
)

// Sentinel errors for CLI usage.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// cliFlags holds every command-line flag.
// Empty strings mean "not given" so config and defaults apply.
type cliFlags struct {
	input     string
	output    string
	delimiter string
	config    string
	html      bool
	htmlSet   bool
	quiet     bool
	verbose   bool
	version   bool
	help      bool
}

// parseFlags parses args (without the program name).
// The usage text goes to w when pflag reports an error.
func parseFlags(args []string, w io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("tiddlersplit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "concatenated export to split (default "+config.DefaultInputPath+")")
	fs.StringVarP(&f.output, "output", "o", "", "folder for tiddler files (default "+config.DefaultOutputDir+")")
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", `literal record separator (default \newpage)`)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview per tiddler")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every file written")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	if err := fs.Parse(args); err != nil {
		printUsage(w)
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	f.htmlSet = fs.Changed("html")
	return f, nil
}

// mergeFlags applies explicitly given flags on top of cfg (CLI wins).
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.input != "" {
		cfg.Input.Path = f.input
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.delimiter != "" {
		cfg.Split.Delimiter = f.delimiter
	}
	if f.htmlSet {
		cfg.Output.HTML = f.html
	}
}
