package testsupport

import (
	"path/filepath"
	"testing"
	"time"
)

// WritePreferences writes a preferences file named name into dir and stamps
// it with mtime so tests control which file a search picks.
func WritePreferences(t testing.TB, dir, name, body string, mtime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, body)
	SetModTime(t, path, mtime)
	return path
}
