package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"go.uber.org/automaxprocs/maxprocs"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout        io.Writer
	Stderr        io.Writer
	Fs            afero.Fs
	UserConfigDir func() (string, error)

	// SetMaxProcs adjusts GOMAXPROCS once the logger exists. Nil skips it.
	SetMaxProcs func(logger hclog.Logger)
}

// DefaultEnv returns the production environment backed by the OS filesystem.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Fs:            afero.NewOsFs(),
		UserConfigDir: os.UserConfigDir,
		SetMaxProcs:   setMaxProcs,
	}
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// A bad GOMAXPROCS value leaves the runtime default in place.
func setMaxProcs(logger hclog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsPrintf(logger)))
}

// maxprocsPrintf adapts logger to the printf-style logger maxprocs expects.
func maxprocsPrintf(logger hclog.Logger) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}
