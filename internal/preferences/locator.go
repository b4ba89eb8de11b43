package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("preferences not found")

// NotFoundError reports a missing preferences directory or an empty search.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Locator finds the preferences file to operate on.
type Locator struct {
	Dir     string
	Pattern string
}

// Find returns the matching file with the newest modification time. Files
// with equal timestamps resolve to the first in lexical order.
func (l Locator) Find() (string, error) {
	info, err := os.Stat(l.Dir)
	if err != nil || !info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat preferences directory: %w", err)
		}
		return "", &NotFoundError{msg: fmt.Sprintf("RuneLite directory not found: %s", l.Dir)}
	}

	candidates, err := filepath.Glob(filepath.Join(l.Dir, l.Pattern))
	if err != nil {
		return "", fmt.Errorf("search preferences: %w", err)
	}

	var newest string
	var newestInfo os.FileInfo
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if newestInfo == nil || info.ModTime().After(newestInfo.ModTime()) {
			newest = candidate
			newestInfo = info
		}
	}
	if newest == "" {
		return "", &NotFoundError{msg: fmt.Sprintf("No preference files found in %s", l.Dir)}
	}
	return newest, nil
}
