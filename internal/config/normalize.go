package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeMatcher(); err != nil {
		return err
	}
	if err := c.normalizePreferences(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeMatcher() error {
	var err error
	if strings.TrimSpace(c.Matcher.ItemsDir) == "" {
		c.Matcher.ItemsDir = defaultItemsDir
	}
	if c.Matcher.ItemsDir, err = expandPath(c.Matcher.ItemsDir); err != nil {
		return fmt.Errorf("matcher.items_dir: %w", err)
	}
	if strings.TrimSpace(c.Matcher.CompleteList) == "" {
		c.Matcher.CompleteList = defaultCompleteList
	}
	if c.Matcher.CompleteList, err = expandPath(c.Matcher.CompleteList); err != nil {
		return fmt.Errorf("matcher.complete_list: %w", err)
	}
	if strings.TrimSpace(c.Matcher.MatchedOutput) == "" {
		c.Matcher.MatchedOutput = defaultMatchedOutput
	}
	if c.Matcher.MatchedOutput, err = expandPath(c.Matcher.MatchedOutput); err != nil {
		return fmt.Errorf("matcher.matched_output: %w", err)
	}
	if strings.TrimSpace(c.Matcher.UnmatchedOutput) == "" {
		c.Matcher.UnmatchedOutput = defaultUnmatchedOutput
	}
	if c.Matcher.UnmatchedOutput, err = expandPath(c.Matcher.UnmatchedOutput); err != nil {
		return fmt.Errorf("matcher.unmatched_output: %w", err)
	}
	return nil
}

func (c *Config) normalizePreferences() error {
	var err error
	if value, ok := os.LookupEnv("ITEMLISTS_PREFERENCES_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Preferences.Dir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Preferences.Dir) == "" {
		c.Preferences.Dir = defaultPreferencesDir
	}
	if c.Preferences.Dir, err = expandPath(c.Preferences.Dir); err != nil {
		return fmt.Errorf("preferences.dir: %w", err)
	}
	c.Preferences.Pattern = strings.TrimSpace(c.Preferences.Pattern)
	if c.Preferences.Pattern == "" {
		c.Preferences.Pattern = defaultPreferencesPattern
	}
	if strings.TrimSpace(c.Preferences.TransferCSV) == "" {
		c.Preferences.TransferCSV = defaultTransferCSV
	}
	if c.Preferences.TransferCSV, err = expandPath(c.Preferences.TransferCSV); err != nil {
		return fmt.Errorf("preferences.transfer_csv: %w", err)
	}
	if strings.TrimSpace(c.Preferences.NamesList) != "" {
		if c.Preferences.NamesList, err = expandPath(c.Preferences.NamesList); err != nil {
			return fmt.Errorf("preferences.names_list: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
