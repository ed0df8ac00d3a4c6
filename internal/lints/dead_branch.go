package lints

import (
	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
)

// DeadBranchComment warns about comments inside `start_random` groups. The
// game's parser does not understand comments there and may skip the wrong
// branch.
type DeadBranchComment struct{}

// NewDeadBranchComment creates the lint.
func NewDeadBranchComment() *DeadBranchComment {
	return &DeadBranchComment{}
}

// Name implements checker.Lint.
func (*DeadBranchComment) Name() string { return "dead-branch-comment" }

// RunInsideComments implements checker.Lint.
func (*DeadBranchComment) RunInsideComments() bool { return false }

// LintAtom implements checker.AtomLint.
func (*DeadBranchComment) LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomComment {
		return nil
	}
	var warnings []diag.Diagnostic
	for _, nest := range state.Nesting {
		if nest.Kind != rms.NestStartRandom {
			continue
		}
		warnings = append(warnings,
			diag.NewWarning(atom.Span, "Using comments inside `start_random` groups is potentially dangerous.").
				WithNote(nest.Atom.Span, "`start_random` opened here").
				Suggest(diag.NewSuggestion(atom.Span,
					"Only #define constants in the `start_random` group, and then use `if` branches for the actual code.")))
	}
	return warnings
}
