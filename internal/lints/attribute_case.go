package lints

import (
	"fmt"
	"strings"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/token"
)

// AttributeCase flags commands written in the wrong case. The game only
// recognises lowercase attribute names; the fix is safe to auto-apply when
// the lowercased name is a known token.
type AttributeCase struct{}

// NewAttributeCase creates the lint.
func NewAttributeCase() *AttributeCase {
	return &AttributeCase{}
}

// Name implements checker.Lint.
func (*AttributeCase) Name() string { return "attribute-case" }

// RunInsideComments implements checker.Lint.
func (*AttributeCase) RunInsideComments() bool { return false }

func fixCase(value string) (string, bool) {
	lower := strings.ToLower(value)
	if lower == value {
		return "", false
	}
	if _, ok := token.Lookup(value); ok {
		return "", false
	}
	if _, ok := token.Lookup(lower); !ok {
		return "", false
	}
	return lower, true
}

// LintAtom implements checker.AtomLint.
func (*AttributeCase) LintAtom(_ *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomCommand {
		return nil
	}
	fixed, ok := fixCase(atom.Head.Value)
	if !ok {
		return nil
	}
	return []diag.Diagnostic{
		diag.NewError(atom.Head.Span, fmt.Sprintf("Unknown attribute `%s`", atom.Head.Value)).
			Suggest(diag.NewSuggestion(atom.Head.Span, "Convert to lowercase").Replace(fixed)),
	}
}
