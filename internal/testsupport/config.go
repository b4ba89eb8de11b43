package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"itemlists/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose inputs and outputs all live under a
// unique temp directory. The items and preferences directories are created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Matcher.ItemsDir = filepath.Join(base, "items")
	cfgVal.Matcher.CompleteList = filepath.Join(base, "complete list.csv")
	cfgVal.Matcher.MatchedOutput = filepath.Join(base, "matched_items.csv")
	cfgVal.Matcher.UnmatchedOutput = filepath.Join(base, "unmatched_items.txt")
	cfgVal.Preferences.Dir = filepath.Join(base, "flipping-copilot")
	cfgVal.Preferences.TransferCSV = filepath.Join(base, "tradeable_items.csv")

	for _, dir := range []string{cfgVal.Matcher.ItemsDir, cfgVal.Preferences.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutItemsDir removes the items directory from the generated layout.
func WithoutItemsDir() ConfigOption {
	return func(b *configBuilder) {
		if err := os.RemoveAll(b.cfg.Matcher.ItemsDir); err != nil {
			b.t.Fatalf("remove items dir: %v", err)
		}
	}
}

// WithNamesList points exports at a reference list under the temp directory.
func WithNamesList() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Preferences.NamesList = b.cfg.Matcher.CompleteList
	}
}

// WithUnicodeNormalization enables NFC normalization in the matcher.
func WithUnicodeNormalization() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matcher.NormalizeUnicode = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Matcher.ItemsDir)
}
