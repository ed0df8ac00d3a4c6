// Package diagfmt renders collected diagnostics for people (pretty) and
// tools (json).
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color           bool
	PathMode        PathMode
	ShowNotes       bool
	ShowSuggestions bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions   bool // add line/col next to byte offsets
	PathMode           PathMode
	Max                int // truncate the output, not the Bag
	IncludeNotes       bool
	IncludeSuggestions bool
}
