// Package reflist loads the authoritative "complete list" that maps canonical
// item names to numeric item IDs.
//
// The file is CSV with two leading records that carry no data (a mode marker
// such as "# Mode: whitelist" and a column header); both are skipped without
// inspection. Every following record with at least two fields contributes an
// (id, name) entry. Shorter records are ignored.
package reflist
