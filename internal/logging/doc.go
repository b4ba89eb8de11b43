// Package logging assembles structured slog loggers and formatting helpers used
// by the matcher and the preferences converter.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes helpers so command code can tag log lines with the
// component and the run identifier of the current invocation. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Logs default to stderr: stdout belongs to the summaries and messages the
// tools print for the user.
package logging
