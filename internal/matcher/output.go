package matcher

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ModeHeader is the first line of the matched CSV. The plugin's list import
// reads it to decide which list the rows belong to.
const ModeHeader = "# Mode: whitelist"

var matchedColumns = []string{"item_id", "name", "is_filtered"}

// WriteMatched renders matched pairs as a whitelist import CSV.
func WriteMatched(w io.Writer, matched []Match) error {
	if _, err := io.WriteString(w, ModeHeader+"\n"); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(matchedColumns); err != nil {
		return err
	}
	for _, m := range matched {
		if err := writer.Write([]string{m.ID, m.Name, "true"}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteUnmatched writes one name per line.
func WriteUnmatched(w io.Writer, names []string) error {
	buf := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := buf.WriteString(name + "\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteOutputs overwrites both output files with the contents of result.
func WriteOutputs(result *Result, matchedPath, unmatchedPath string) error {
	if err := writeFile(matchedPath, func(w io.Writer) error {
		return WriteMatched(w, result.Matched)
	}); err != nil {
		return fmt.Errorf("write matched items: %w", err)
	}
	if err := writeFile(unmatchedPath, func(w io.Writer) error {
		return WriteUnmatched(w, result.Unmatched)
	}); err != nil {
		return fmt.Errorf("write unmatched items: %w", err)
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
