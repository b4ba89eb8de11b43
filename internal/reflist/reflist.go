package reflist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"itemlists/internal/logging"
)

// leadingLines is the count of non-data lines at the top of the file. They
// are skipped as raw lines, blank or not.
const leadingLines = 2

// Entry is one reference row. ID is kept as text exactly as it appears.
type Entry struct {
	ID   string
	Name string
}

// List is an in-memory reference list. Lookups are exact string matches.
type List struct {
	entries []Entry
	byName  map[string]string
	byID    map[string]string
}

// Load reads the reference list at path.
func Load(path string, logger *slog.Logger) (*List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open complete list: %w", err)
	}
	defer file.Close()

	list, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read complete list %s: %w", path, err)
	}

	logging.NewComponentLogger(logger, "reflist").Debug("loaded complete list",
		logging.String(logging.FieldPath, path),
		logging.Int("entry_count", len(list.entries)),
		logging.Int("unique_names", len(list.byName)))
	return list, nil
}

// Read parses a reference list from r. Later rows win when a name repeats.
func Read(r io.Reader) (*List, error) {
	list := &List{
		byName: make(map[string]string),
		byID:   make(map[string]string),
	}

	buffered := bufio.NewReader(r)
	for skipped := 0; skipped < leadingLines; skipped++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return list, nil
			}
			return nil, err
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			continue
		}
		entry := Entry{ID: record[0], Name: record[1]}
		list.entries = append(list.entries, entry)
		list.byName[entry.Name] = entry.ID
		list.byID[strings.TrimSpace(entry.ID)] = entry.Name
	}

	return list, nil
}

// Lookup returns the ID registered for name.
func (l *List) Lookup(name string) (string, bool) {
	if l == nil {
		return "", false
	}
	id, ok := l.byName[name]
	return id, ok
}

// NameFor returns the canonical name registered for a numeric item ID.
func (l *List) NameFor(id int) (string, bool) {
	if l == nil {
		return "", false
	}
	name, ok := l.byID[strconv.Itoa(id)]
	return name, ok
}

// Names returns the name-to-ID mapping. The map is shared; do not modify it.
func (l *List) Names() map[string]string {
	if l == nil {
		return nil
	}
	return l.byName
}

// Entries returns every data row in file order, duplicates included.
func (l *List) Entries() []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of distinct names.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.byName)
}
