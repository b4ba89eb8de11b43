package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatcher(); err != nil {
		return err
	}
	if err := c.validatePreferences(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatcher() error {
	if strings.TrimSpace(c.Matcher.ItemsDir) == "" {
		return errors.New("matcher.items_dir must be set")
	}
	if strings.TrimSpace(c.Matcher.CompleteList) == "" {
		return errors.New("matcher.complete_list must be set")
	}
	if c.Matcher.MatchedOutput != "" && c.Matcher.MatchedOutput == c.Matcher.UnmatchedOutput {
		return errors.New("matcher.matched_output and matcher.unmatched_output must differ")
	}
	return nil
}

func (c *Config) validatePreferences() error {
	if strings.TrimSpace(c.Preferences.Dir) == "" {
		return errors.New("preferences.dir must be set")
	}
	if _, err := filepath.Match(c.Preferences.Pattern, ""); err != nil {
		return fmt.Errorf("preferences.pattern %q: %w", c.Preferences.Pattern, err)
	}
	if strings.ContainsRune(c.Preferences.Pattern, filepath.Separator) {
		return fmt.Errorf("preferences.pattern %q must be a file name pattern", c.Preferences.Pattern)
	}
	if strings.TrimSpace(c.Preferences.TransferCSV) == "" {
		return errors.New("preferences.transfer_csv must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}
