package checker

import (
	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/wordize"
)

// Lint is one pluggable rule. Implementations additionally implement
// TokenLint, AtomLint, or both.
type Lint interface {
	// Name identifies the lint; it becomes the diagnostic code.
	Name() string
	// RunInsideComments opts the lint into receiving tokens while the
	// token stream is inside a comment.
	RunInsideComments() bool
}

// TokenLint is a lint with a per-token hook. The first lint to return a
// non-nil diagnostic for a token short-circuits the rest.
type TokenLint interface {
	Lint
	LintToken(state *rms.ParseState, word *wordize.Word) *diag.Diagnostic
}

// AtomLint is a lint with a per-atom hook. All atom hooks run and their
// diagnostics concatenate.
type AtomLint interface {
	Lint
	LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic
}
