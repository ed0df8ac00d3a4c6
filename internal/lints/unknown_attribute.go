package lints

import (
	"fmt"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/token"
)

// UnknownAttribute flags unrecognised words as misspelled attributes and
// suggests the closest known token. Not part of the default set: words that
// are fine in one section read as attributes in another.
type UnknownAttribute struct{}

// NewUnknownAttribute creates the lint.
func NewUnknownAttribute() *UnknownAttribute {
	return &UnknownAttribute{}
}

// Name implements checker.Lint.
func (*UnknownAttribute) Name() string { return "unknown-attribute" }

// RunInsideComments implements checker.Lint.
func (*UnknownAttribute) RunInsideComments() bool { return false }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LintAtom implements checker.AtomLint.
func (*UnknownAttribute) LintAtom(_ *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomOther || allDigits(atom.Head.Value) {
		return nil
	}
	d := diag.NewError(atom.Head.Span,
		fmt.Sprintf("Unknown attribute `%s`", atom.Head.Value))
	names := make([]string, 0, len(token.All()))
	for name := range token.All() {
		names = append(names, name)
	}
	if similar, ok := meant(atom.Head.Value, names); ok {
		d = d.Suggest(diag.NewSuggestion(atom.Head.Span,
			fmt.Sprintf("Did you mean `%s`?", similar)).Replace(similar))
	}
	return []diag.Diagnostic{d}
}
