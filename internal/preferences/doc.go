// Package preferences reads and rewrites the trading plugin's per-account
// suggestion preferences and converts their item filter lists to and from CSV.
//
// A preferences file is a JSON object. Only whitelistMode, whitelistedItemIds,
// and blockedItemIds are interpreted; every other key is carried through a
// load/save cycle untouched. whitelistMode selects the active list: the
// whitelist when true, the block list otherwise.
//
// Files are discovered with a Locator (a directory plus a glob pattern, newest
// modification time wins). Store serializes read-modify-write cycles with an
// advisory flock in the preferences directory and writes atomically.
package preferences
