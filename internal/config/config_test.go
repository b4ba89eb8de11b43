package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"itemlists/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("ITEMLISTS_PREFERENCES_DIR", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantPrefs := filepath.Join(tempHome, ".runelite", "flipping-copilot")
	if cfg.Preferences.Dir != wantPrefs {
		t.Fatalf("unexpected preferences dir: got %q want %q", cfg.Preferences.Dir, wantPrefs)
	}
	if cfg.Preferences.Pattern != "acc_*_preferences.json" {
		t.Fatalf("unexpected pattern: %q", cfg.Preferences.Pattern)
	}
	if filepath.Base(cfg.Preferences.TransferCSV) != "tradeable_items.csv" {
		t.Fatalf("unexpected transfer csv: %q", cfg.Preferences.TransferCSV)
	}
	if cfg.Preferences.NamesList != "" {
		t.Fatalf("expected names list empty by default, got %q", cfg.Preferences.NamesList)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Matcher.ItemsDir != filepath.Join(cwd, "items") {
		t.Fatalf("unexpected items dir: %q", cfg.Matcher.ItemsDir)
	}
	if cfg.Matcher.CompleteList != filepath.Join(cwd, "complete list.csv") {
		t.Fatalf("unexpected complete list: %q", cfg.Matcher.CompleteList)
	}
	if cfg.Matcher.NormalizeUnicode {
		t.Fatal("expected unicode normalization disabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "itemlists.toml")

	type payload struct {
		Matcher struct {
			ItemsDir         string `toml:"items_dir"`
			NormalizeUnicode bool   `toml:"normalize_unicode"`
		} `toml:"matcher"`
		Preferences struct {
			Dir     string `toml:"dir"`
			Pattern string `toml:"pattern"`
		} `toml:"preferences"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Matcher.ItemsDir = filepath.Join(tempDir, "sprites")
	custom.Matcher.NormalizeUnicode = true
	custom.Preferences.Dir = filepath.Join(tempDir, "prefs")
	custom.Preferences.Pattern = "*.json"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	t.Setenv("ITEMLISTS_PREFERENCES_DIR", "")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Matcher.ItemsDir != custom.Matcher.ItemsDir {
		t.Fatalf("expected items dir override, got %q", cfg.Matcher.ItemsDir)
	}
	if !cfg.Matcher.NormalizeUnicode {
		t.Fatal("expected unicode normalization enabled")
	}
	if cfg.Preferences.Dir != custom.Preferences.Dir {
		t.Fatalf("expected preferences dir override, got %q", cfg.Preferences.Dir)
	}
	if cfg.Preferences.Pattern != "*.json" {
		t.Fatalf("expected pattern override, got %q", cfg.Preferences.Pattern)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging settings, got %+v", cfg.Logging)
	}
	if cfg.Matcher.MatchedOutput == "" || cfg.Matcher.UnmatchedOutput == "" {
		t.Fatal("expected output defaults to survive partial config")
	}
}

func TestEnvVarOverridesPreferencesDir(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ITEMLISTS_PREFERENCES_DIR", envDir)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Preferences.Dir != envDir {
		t.Fatalf("expected preferences dir from env, got %q", cfg.Preferences.Dir)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(configPath, []byte("[matcher\nitems_dir = 3"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Matcher.CompleteList != "complete list.csv" {
		t.Fatalf("unexpected sample complete list: %q", cfg.Matcher.CompleteList)
	}
	if cfg.Preferences.Pattern != "acc_*_preferences.json" {
		t.Fatalf("unexpected sample pattern: %q", cfg.Preferences.Pattern)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Preferences.Pattern = "acc_[_preferences.json"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	cfg = config.Default()
	cfg.Matcher.UnmatchedOutput = cfg.Matcher.MatchedOutput
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when both outputs share a path")
	}

	cfg = config.Default()
	cfg.Preferences.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty preferences dir")
	}
}
