// Package fileutil provides file and path utility functions over afero.Fs.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
	ErrNotDir    = errors.New("path exists and is not a directory")
)

// EnsureDir creates dir and any missing parents.
// An existing directory is not an error; an existing regular file is.
func EnsureDir(fsys afero.Fs, dir string) error {
	if dir == "" {
		return ErrEmptyPath
	}

	info, err := fsys.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDir, dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking directory: %w", err)
	}

	if err := fsys.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// WriteFile writes content to path, truncating any existing file.
// The handle is closed on every return path and a close failure is reported
// when the write itself succeeded.
func WriteFile(fsys afero.Fs, path, content string) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", closeErr)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// ReadFile returns the content of path as a string.
func ReadFile(fsys afero.Fs, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "tiddlersplit" -> false (name)
//   - "./split.yaml" -> true (relative path)
//   - "/etc/split.yaml" -> true (absolute)
//   - "C:\split.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
