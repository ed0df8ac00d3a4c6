package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rmscheck/internal/diag"
	"rmscheck/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	suggestColor = color.New(color.FgGreen)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}

func paint(c *color.Color, enabled bool, text string) string {
	if !enabled {
		return text
	}
	return c.Sprint(text)
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// underline draws a ^~~~ marker under the span's columns, clipped to the
// line it starts on.
func underline(line string, startCol, endCol uint32) string {
	if startCol == 0 {
		startCol = 1
	}
	width := int(endCol) - int(startCol)
	if width < 1 {
		width = 1
	}
	lineWidth := len(line) - int(startCol) + 1
	if lineWidth >= 1 && width > lineWidth {
		width = lineWidth
	}
	return strings.Repeat(" ", int(startCol)-1) + "^" + strings.Repeat("~", width-1)
}

func writeSpanContext(w io.Writer, fs *source.FileSet, span source.Span, colorize bool) {
	start, end := fs.Resolve(span)
	line := fs.Get(span.File).GetLine(start.Line)
	if line == "" {
		return
	}
	endCol := end.Col
	if end.Line != start.Line {
		endCol = uint32(len(line)) + 1
	}
	prefix := fmt.Sprintf("  %d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", prefix, line)
	fmt.Fprintf(w, "%s%s\n",
		strings.Repeat(" ", len(prefix)),
		paint(severityColor(diag.SevError), colorize, underline(line, start.Col, endCol)))
}

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic: a location header, the offending source line with an
// underline marker, then notes and suggestions. Callers sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		header := fmt.Sprintf("%s:%d:%d: ", formatPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col)
		label := paint(severityColor(d.Severity), opts.Color, d.Severity.String())
		if d.Code != "" {
			label += " " + d.Code
		}
		fmt.Fprintf(w, "%s%s: %s\n", header, label, d.Message)
		writeSpanContext(w, fs, d.Primary, opts.Color)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				noteStart, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s: %s (%s:%d:%d)\n",
					paint(noteColor, opts.Color, "note"), note.Msg,
					formatPath(fs, note.Span.File, opts.PathMode), noteStart.Line, noteStart.Col)
			}
		}
		if opts.ShowSuggestions {
			for _, s := range d.Suggestions {
				fmt.Fprintf(w, "  %s: %s\n", paint(suggestColor, opts.Color, "suggestion"), s.Message)
				if s.Replacement.Kind != diag.ReplacementNone {
					fmt.Fprintf(w, "    replace with `%s`\n", s.Replacement.Text)
				}
			}
		}
	}

	if bag.Len() > 0 {
		fmt.Fprintf(w, "%d %s\n", bag.Len(), pluralize("problem", bag.Len()))
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
