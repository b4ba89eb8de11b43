// Package config loads, normalizes, and validates itemlists configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the ITEMLISTS_PREFERENCES_DIR
// environment fallback. The Config type centralizes every knob the matcher and
// the preferences converter need, so the two tools resolve their input and
// output locations in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
