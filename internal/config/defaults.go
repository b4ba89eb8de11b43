package config

const (
	defaultItemsDir           = "items"
	defaultCompleteList       = "complete list.csv"
	defaultMatchedOutput      = "matched_items.csv"
	defaultUnmatchedOutput    = "unmatched_items.txt"
	defaultPreferencesDir     = "~/.runelite/flipping-copilot"
	defaultPreferencesPattern = "acc_*_preferences.json"
	defaultTransferCSV        = "tradeable_items.csv"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matcher: Matcher{
			ItemsDir:        defaultItemsDir,
			CompleteList:    defaultCompleteList,
			MatchedOutput:   defaultMatchedOutput,
			UnmatchedOutput: defaultUnmatchedOutput,
		},
		Preferences: Preferences{
			Dir:         defaultPreferencesDir,
			Pattern:     defaultPreferencesPattern,
			TransferCSV: defaultTransferCSV,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
