package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-tiddlersplit/internal/fileutil"
	"github.com/alnah/go-tiddlersplit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultInputPath = "tiddlers.md"
	DefaultOutputDir = "tiddlers"
	DefaultDelimiter = `\newpage`
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxDelimiterLength = 256
)

// appDir is the directory name used under the user config directory.
const appDir = "go-tiddlersplit"

// Config holds all configuration for a split run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Split  SplitConfig  `yaml:"split"`
}

// InputConfig defines the source document.
type InputConfig struct {
	Path string `yaml:"path"` // Concatenated export (default: tiddlers.md)
}

// OutputConfig defines where tiddler files are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // Destination folder (default: tiddlers)
	HTML bool   `yaml:"html"` // Also write an HTML preview per tiddler
}

// SplitConfig defines how the document is cut into records.
type SplitConfig struct {
	Delimiter string `yaml:"delimiter"` // Literal separator (default: \newpage)
}

// Validate checks required fields and lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("%w: input.path", ErrFieldRequired)
	}
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir", ErrFieldRequired)
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if c.Split.Delimiter == "" {
		return fmt.Errorf("%w: split.delimiter", ErrFieldRequired)
	}
	return validateFieldLength("split.delimiter", c.Split.Delimiter, MaxDelimiterLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{Dir: DefaultOutputDir},
		Split:  SplitConfig{Delimiter: DefaultDelimiter},
	}
}

// Loader reads configuration files from a filesystem.
type Loader struct {
	Fs afero.Fs

	// UserConfigDir returns the per-user config root (os.UserConfigDir in production).
	UserConfigDir func() (string, error)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func (l *Loader) LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = l.resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(l.Fs, configPath)
	if err != nil {
		if exists, _ := afero.Exists(l.Fs, configPath); !exists {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// A blank file selects every default.
	cfg := DefaultConfig()
	if strings.TrimSpace(string(data)) != "" {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
// Tries extensions .yaml then .yml, in the current directory then the user config directory.
func (l *Loader) SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if l.UserConfigDir != nil {
		if dir, err := l.UserConfigDir(); err == nil {
			for _, ext := range extensions {
				paths = append(paths, filepath.Join(dir, appDir, name+ext))
			}
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func (l *Loader) resolveConfigPath(name string) (string, error) {
	tried := l.SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(l.Fs, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
