// Package itemname turns raw sprite or icon file names into the canonical item
// names used as join keys against the reference list.
//
// CleanFilename is a single left-to-right pass with explicit rules rather than
// a regular expression: strip one extension, turn underscores into spaces,
// drop integers that stand on their own outside parentheses, and collapse
// whitespace. Parenthesized groups such as "(100)" or "(p++)" are copied
// verbatim so dose, charge, and variant suffixes survive.
package itemname
