package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/alnah/go-tiddlersplit"
	"github.com/alnah/go-tiddlersplit/internal/config"
	"github.com/alnah/go-tiddlersplit/internal/fileutil"
	"github.com/alnah/go-tiddlersplit/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "tiddlersplit %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		logger.Error(err.Error() + hintFor(err, flags, nil, env))
		return exitCodeFor(err)
	}

	s, err := tiddlersplit.New(
		tiddlersplit.WithInputPath(cfg.Input.Path),
		tiddlersplit.WithOutputDir(cfg.Output.Dir),
		tiddlersplit.WithDelimiter(cfg.Split.Delimiter),
		tiddlersplit.WithHTML(cfg.Output.HTML),
		tiddlersplit.WithFs(env.Fs),
		tiddlersplit.WithLogger(logger),
	)
	if err != nil {
		logger.Error(err.Error())
		return exitCodeFor(err)
	}

	res, err := s.Run(ctx)
	if err != nil {
		logger.Error(err.Error()+hintFor(err, flags, cfg, env), "written", len(res.Written))
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// newLogger builds the CLI logger: Info by default, Debug with --verbose, Error with --quiet.
func newLogger(w io.Writer, flags *cliFlags) hclog.Logger {
	level := hclog.Info
	switch {
	case flags.quiet:
		level = hclog.Error
	case flags.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tiddlersplit",
		Level:  level,
		Output: w,
	})
}

// resolveConfig loads the config file when one is given and applies flags on top.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loader := &config.Loader{Fs: env.Fs, UserConfigDir: env.UserConfigDir}
		loaded, err := loader.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hintFor returns an actionable hint for err, or the empty string.
// cfg is nil when the failure happened before configuration was resolved.
func hintFor(err error, flags *cliFlags, cfg *config.Config, env *Environment) string {
	var recErr *tiddlersplit.RecordError
	switch {
	case errors.Is(err, tiddlersplit.ErrMissingTitle) && errors.As(err, &recErr) && cfg != nil:
		return hints.ForMissingTitle(recErr.Index, cfg.Split.Delimiter)
	case errors.Is(err, tiddlersplit.ErrInvalidTitle) && errors.As(err, &recErr):
		return hints.ForInvalidTitle(recErr.Title)
	case errors.Is(err, tiddlersplit.ErrReadInput) && errors.Is(err, os.ErrNotExist) && cfg != nil:
		return hints.ForInputNotFound(cfg.Input.Path)
	case errors.Is(err, tiddlersplit.ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(flags.config) {
			return hints.ForConfigNotFound(nil)
		}
		loader := &config.Loader{Fs: env.Fs, UserConfigDir: env.UserConfigDir}
		return hints.ForConfigNotFound(loader.SearchPaths(flags.config))
	}
	return ""
}
