// Package diagnostic provides structured warnings and errors collected while
// reading records and validating layouts.
//
// Key capabilities:
//   - Unknown and missing column reports with suggestions
//   - Per-row decode failures, located by line and column
//   - Layout validation findings
package diagnostic
