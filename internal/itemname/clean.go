package itemname

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanFilename normalizes a file name into an item name.
//
//	CleanFilename("Rune_sword_2(100)_.png") == "Rune sword (100)"
func CleanFilename(filename string) string {
	name := StripExtension(filename)
	name = strings.ReplaceAll(name, "_", " ")
	name = removeBareNumbers(name)
	return strings.Join(strings.Fields(name), " ")
}

// StripExtension removes one trailing extension. A dot only starts an
// extension when a non-dot character precedes it, so ".hidden" and "..."
// are returned unchanged.
func StripExtension(filename string) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot <= 0 {
		return filename
	}
	if strings.Trim(filename[:dot], ".") == "" {
		return filename
	}
	return filename[:dot]
}

// NFC returns the canonical composed form of name. Volumes that store names
// decomposed (e.g. "e" + U+0301) otherwise never equal the reference list.
func NFC(name string) string {
	return norm.NFC.String(name)
}

func removeBareNumbers(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '(' {
			if end := closingParen(runes, i+1); end >= 0 {
				b.WriteString(string(runes[i : end+1]))
				i = end + 1
				continue
			}
		}
		if unicode.IsDigit(r) {
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			if !isBareNumber(runes, i, j) {
				b.WriteString(string(runes[i:j]))
			}
			i = j
			continue
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

func closingParen(runes []rune, from int) int {
	for k := from; k < len(runes); k++ {
		if runes[k] == ')' {
			return k
		}
	}
	return -1
}

// isBareNumber reports whether runes[start:end] is a whole word that does not
// touch an opening parenthesis on the left or a closing one on the right.
func isBareNumber(runes []rune, start, end int) bool {
	if start > 0 {
		prev := runes[start-1]
		if isWordRune(prev) || prev == '(' {
			return false
		}
	}
	if end < len(runes) {
		next := runes[end]
		if isWordRune(next) || next == ')' {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
