// Package diag defines the diagnostic data model shared by the checker, the
// lints, and the output formatters: severities, notes, replacement
// suggestions with a tri-state applicability, and the Bag collector.
package diag
