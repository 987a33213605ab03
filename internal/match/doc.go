// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to line up CSV headers with record fields and to
// suggest the closest accepted label when an inverse conversion fails.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators for fuzzy matching
//   - Levenshtein: computes edit distance between strings, rune-wise
//   - RankCandidates: ranks known names against an input
//   - Suggest: returns the best candidate above a score threshold
package match
