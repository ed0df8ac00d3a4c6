package diag

import (
	"rmscheck/internal/source"
)

// Note is a secondary message pointing at related source code, e.g. the
// opening brace that an unbalanced `}` fails to match.
type Note struct {
	Span source.Span
	Msg  string
}

// ReplacementKind describes whether a suggestion can be applied automatically.
type ReplacementKind uint8

const (
	// ReplacementNone means the suggestion is advice only.
	ReplacementNone ReplacementKind = iota
	// ReplacementSafe replacements can be applied without user review.
	ReplacementSafe
	// ReplacementUnsafe replacements need manual confirmation.
	ReplacementUnsafe
)

func (k ReplacementKind) String() string {
	switch k {
	case ReplacementNone:
		return "none"
	case ReplacementSafe:
		return "safe"
	case ReplacementUnsafe:
		return "unsafe"
	}
	return "unknown"
}

// Replacement is an optional new text for the suggestion's span.
type Replacement struct {
	Kind ReplacementKind
	Text string
}

// Suggestion proposes a change that may fix a diagnostic. The span is the
// piece of source the replacement text would substitute.
type Suggestion struct {
	Span        source.Span
	Message     string
	Replacement Replacement
}

// NewSuggestion creates a suggestion without a replacement.
func NewSuggestion(span source.Span, message string) Suggestion {
	return Suggestion{Span: span, Message: message}
}

// Replace attaches a safe, auto-applicable replacement.
func (s Suggestion) Replace(text string) Suggestion {
	s.Replacement = Replacement{Kind: ReplacementSafe, Text: text}
	return s
}

// ReplaceUnsafe attaches a replacement that requires manual confirmation.
func (s Suggestion) ReplaceUnsafe(text string) Suggestion {
	s.Replacement = Replacement{Kind: ReplacementUnsafe, Text: text}
	return s
}

// Fixable reports whether the suggestion can be applied automatically.
func (s Suggestion) Fixable() bool {
	return s.Replacement.Kind == ReplacementSafe
}

// Diagnostic is a single advisory finding. Code is the name of the lint that
// produced it ("parse" for parser recovery errors, empty for structural
// checks owned by the checker itself).
type Diagnostic struct {
	Severity    Severity
	Code        string
	Message     string
	Primary     source.Span
	Notes       []Note
	Suggestions []Suggestion
}

// New constructs a diagnostic with the given severity.
func New(sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError constructs an error diagnostic.
func NewError(primary source.Span, msg string) Diagnostic {
	return New(SevError, primary, msg)
}

// NewWarning constructs a warning diagnostic.
func NewWarning(primary source.Span, msg string) Diagnostic {
	return New(SevWarning, primary, msg)
}

// WithCode tags the diagnostic with the producing lint's name.
func (d Diagnostic) WithCode(code string) Diagnostic {
	d.Code = code
	return d
}

// WithNote appends a secondary label.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}

// Suggest appends a suggestion.
func (d Diagnostic) Suggest(s Suggestion) Diagnostic {
	d.Suggestions = append(d.Suggestions, s)
	return d
}

// HasSuggestions reports whether any suggestions were attached.
func (d Diagnostic) HasSuggestions() bool {
	return len(d.Suggestions) > 0
}
