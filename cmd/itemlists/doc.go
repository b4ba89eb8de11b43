// Package main hosts the itemlists CLI entrypoint.
//
// The command tree combines the filename matcher with the preferences
// converter and adds list maintenance commands (status, toggle, reset, mode)
// plus configuration scaffolding. Business logic lives in the internal
// packages; this binary only selects the combined command surface.
package main
