package lints

import (
	"fmt"
	"strings"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/token"
)

// IncorrectSection flags commands that appear outside the <SECTION> they
// belong to.
type IncorrectSection struct{}

// NewIncorrectSection creates the lint.
func NewIncorrectSection() *IncorrectSection {
	return &IncorrectSection{}
}

// Name implements checker.Lint.
func (*IncorrectSection) Name() string { return "incorrect-section" }

// RunInsideComments implements checker.Lint.
func (*IncorrectSection) RunInsideComments() bool { return false }

// LintAtom implements checker.AtomLint.
func (*IncorrectSection) LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomCommand {
		return nil
	}
	tok, ok := token.Lookup(strings.ToLower(atom.Head.Value))
	if !ok {
		return nil
	}
	if tok.Context.Kind != token.CtxCommand || tok.Context.Scope == "" {
		return nil
	}
	expected := tok.Context.Scope

	section := state.CurrentSection
	if section == nil {
		return []diag.Diagnostic{
			diag.NewError(atom.Span, fmt.Sprintf(
				"Command can only appear in section %s, but no section has been started.", expected)),
		}
	}
	if section.Head.Value == expected {
		return nil
	}
	return []diag.Diagnostic{
		diag.NewError(atom.Span, fmt.Sprintf(
			"Command is invalid in section %s, it can only appear in %s",
			section.Head.Value, expected)).
			WithNote(section.Span, "Section started here"),
	}
}
