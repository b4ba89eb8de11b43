// Package matcher cross-references a directory of item image files against the
// reference list.
//
// Each regular file directly inside the items directory is cleaned with
// itemname.CleanFilename and looked up by exact name. Results are split into
// matched (id, name) pairs and unmatched names, both in directory listing
// order, and written to a whitelist-mode CSV and a plain text file.
package matcher
