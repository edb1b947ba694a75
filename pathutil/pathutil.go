package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDirName is the directory name Cdd roots data paths under.
const DefaultDataDirName = "Data"

// ErrNotConfirmed indicates a RemoveDir confirmation was declined.
var ErrNotConfirmed = errors.New("pathutil: removal not confirmed")

// Cd returns the current working directory joined with the given path
// elements. It does not touch the filesystem beyond resolving the
// working directory; a failure to resolve it falls back to ".".
func Cd(sub ...string) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(append([]string{wd}, sub...)...)
}

// CdMk is Cd followed by creating the resulting directory (and any
// missing parents).
func CdMk(sub ...string) (string, error) {
	path := Cd(sub...)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("pathutil: create %s: %w", path, err)
	}
	return path, nil
}

// Cdd returns the default data directory ("Data" under the working
// directory) joined with the given path elements.
func Cdd(sub ...string) string {
	return CddIn(DefaultDataDirName, sub...)
}

// CddIn is Cdd with an explicit data directory name.
func CddIn(dataDir string, sub ...string) string {
	return Cd(append([]string{dataDir}, sub...)...)
}

// CddMk is Cdd followed by creating the resulting directory.
func CddMk(sub ...string) (string, error) {
	path := Cdd(sub...)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("pathutil: create %s: %w", path, err)
	}
	return path, nil
}

// IsDirPath reports whether s carries a directory component, i.e.
// whether it looks like a path rather than a bare name.
func IsDirPath(s string) bool {
	return filepath.Dir(s) != "."
}

// RegulateDataDir normalises a user-supplied data directory: an empty
// input falls back to the default data directory, a relative input is
// resolved against the working directory, and an absolute input is
// cleaned. Leading "./" noise is stripped first.
func RegulateDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		return Cdd(), nil
	}
	if filepath.IsAbs(dataDir) {
		abs, err := filepath.Abs(filepath.Clean(dataDir))
		if err != nil {
			return "", fmt.Errorf("pathutil: resolve %s: %w", dataDir, err)
		}
		return abs, nil
	}
	trimmed := strings.TrimLeft(dataDir, "./\\")
	if trimmed == "" {
		return Cdd(), nil
	}
	return Cd(trimmed), nil
}

// RemoveDir deletes the directory tree at path. When the directory is
// non-empty, confirm is consulted with the path first and a nil or
// declining confirm aborts with ErrNotConfirmed. An empty directory is
// removed without confirmation.
func RemoveDir(path string, confirm func(path string) bool) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("pathutil: read %s: %w", path, err)
	}
	if len(entries) > 0 {
		if confirm == nil || !confirm(path) {
			return ErrNotConfirmed
		}
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("pathutil: remove %s: %w", path, err)
	}
	return nil
}
