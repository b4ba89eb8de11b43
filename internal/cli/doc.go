// Package cli hosts the cobra command graph shared by the matcher, converter,
// and itemlists binaries.
//
// Each binary builds its root from a constructor here and hands it to Main.
// The package centralizes configuration resolution, logger construction, and
// the console wording of both tools so that the thin main packages only choose
// which surface to expose. The heavy lifting lives in internal/matcher and
// internal/preferences.
package cli
