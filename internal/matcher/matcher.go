package matcher

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"itemlists/internal/itemname"
	"itemlists/internal/logging"
	"itemlists/internal/reflist"
)

// Options tunes a matcher run.
type Options struct {
	// NormalizeUnicode NFC-composes file names before cleaning.
	NormalizeUnicode bool
	Logger           *slog.Logger
}

// Match is a cleaned name found in the reference list.
type Match struct {
	ID   string
	Name string
	// File is the directory entry the name was derived from.
	File string
}

// Result partitions the cleaned names of one run.
type Result struct {
	Matched   []Match
	Unmatched []string
}

// Total is the number of files considered.
func (r *Result) Total() int {
	return len(r.Matched) + len(r.Unmatched)
}

// ListItems returns the names of regular files directly inside dir. Symlinks
// count when they resolve to a regular file.
func ListItems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list items directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
			continue
		}
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err == nil && info.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// CheckInputs verifies that both inputs exist before anything is read.
func CheckInputs(itemsDir, completeListPath string) error {
	if !exists(itemsDir) {
		return &MissingInputError{Label: "Items directory", Path: itemsDir}
	}
	if !exists(completeListPath) {
		return &MissingInputError{Label: "Complete list file", Path: completeListPath}
	}
	return nil
}

// Process lists itemsDir, cleans every name, and looks each one up in the
// reference list at completeListPath.
func Process(itemsDir, completeListPath string, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "matcher")

	if err := CheckInputs(itemsDir, completeListPath); err != nil {
		return nil, err
	}

	files, err := ListItems(itemsDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("listed items directory",
		logging.String(logging.FieldPath, itemsDir),
		logging.Int("file_count", len(files)))

	list, err := reflist.Load(completeListPath, opts.Logger)
	if err != nil {
		return nil, err
	}

	result := Partition(files, list, opts.NormalizeUnicode)
	logger.Info("matched item files",
		logging.Int("matched", len(result.Matched)),
		logging.Int("unmatched", len(result.Unmatched)))
	return result, nil
}

// Partition cleans files in order and splits them by reference list membership.
func Partition(files []string, list *reflist.List, normalizeUnicode bool) *Result {
	result := &Result{
		Matched:   make([]Match, 0, len(files)),
		Unmatched: make([]string, 0),
	}
	for _, file := range files {
		source := file
		if normalizeUnicode {
			source = itemname.NFC(source)
		}
		name := itemname.CleanFilename(source)
		if id, ok := list.Lookup(name); ok {
			result.Matched = append(result.Matched, Match{ID: id, Name: name, File: file})
			continue
		}
		result.Unmatched = append(result.Unmatched, name)
	}
	return result
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
