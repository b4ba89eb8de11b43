package preferences

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// UnknownName fills the name column when no resolver knows the item.
const UnknownName = "Unknown"

// Transfer CSV columns.
const (
	ColumnItemID     = "item_id"
	ColumnName       = "name"
	ColumnIsFiltered = "is_filtered"
)

var transferColumns = []string{ColumnItemID, ColumnName, ColumnIsFiltered}

// NameResolver maps item IDs to display names.
type NameResolver interface {
	NameFor(id int) (string, bool)
}

// ExportCSV writes the active list of doc as transfer CSV and returns the row
// count. Duplicate IDs collapse to their first occurrence. Every row is
// marked filtered; names come from names when given, otherwise "Unknown".
func ExportCSV(w io.Writer, doc *Document, names NameResolver) (int, error) {
	ids, err := doc.ActiveIDs()
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(transferColumns); err != nil {
		return 0, err
	}

	seen := make(map[int]struct{}, len(ids))
	rows := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		name := UnknownName
		if names != nil {
			if resolved, ok := names.NameFor(id); ok {
				name = resolved
			}
		}
		if err := writer.Write([]string{strconv.Itoa(id), name, "True"}); err != nil {
			return rows, err
		}
		rows++
	}
	writer.Flush()
	return rows, writer.Error()
}

// ImportCSV reads transfer CSV and returns, in row order, the IDs of rows whose
// is_filtered column equals "true" ignoring case. Other rows are dropped. An
// ID that does not parse as an integer on a filtered row is an error.
func ImportCSV(r io.Reader) ([]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	ids := []int{}
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ids, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	idCol := indexOf(header, ColumnItemID)
	filteredCol := indexOf(header, ColumnIsFiltered)

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		if filteredCol < 0 {
			return nil, fmt.Errorf("missing column %q", ColumnIsFiltered)
		}
		if filteredCol >= len(record) || strings.ToLower(record[filteredCol]) != "true" {
			continue
		}
		if idCol < 0 {
			return nil, fmt.Errorf("missing column %q", ColumnItemID)
		}
		if idCol >= len(record) {
			return nil, fmt.Errorf("row %d: missing %s", line, ColumnItemID)
		}
		id, err := strconv.Atoi(strings.TrimSpace(record[idCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q", line, ColumnItemID, record[idCol])
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ExportFile writes ExportCSV output to path, replacing any existing file.
func ExportFile(path string, doc *Document, names NameResolver) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	rows, err := ExportCSV(file, doc, names)
	if err != nil {
		file.Close()
		return rows, fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return rows, fmt.Errorf("close %s: %w", path, err)
	}
	return rows, nil
}

// ImportFile reads transfer CSV from path.
func ImportFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ImportCSV(file)
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
