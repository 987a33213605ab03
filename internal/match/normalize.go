package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. NFKC, so full-width letters compare equal to ASCII ones.
// 2. Unicode case folding.
// 3. Strip separators (_, -, spaces).
//
// "column_a", "Column A", "ColumnA" and "ＣＯＬＵＭＮ＿Ａ" all normalize to "columna".
func NormalizeIdent(s string) string {
	s = norm.NFKC.String(s)
	s = folder.String(s)

	return stripSeparators(s)
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
