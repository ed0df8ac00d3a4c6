package lints

import (
	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
)

// Include flags #include and #include_drs, which only work for maps shipped
// inside the game's data files.
type Include struct{}

// NewInclude creates the lint.
func NewInclude() *Include {
	return &Include{}
}

// Name implements checker.Lint.
func (*Include) Name() string { return "include" }

// RunInsideComments implements checker.Lint.
func (*Include) RunInsideComments() bool { return false }

// LintAtom implements checker.AtomLint.
func (*Include) LintAtom(_ *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomCommand {
		return nil
	}
	switch atom.Head.Value {
	case "#include_drs":
		return []diag.Diagnostic{
			diag.NewError(atom.Span, "#include_drs can only be used by builtin maps"),
		}
	case "#include":
		return []diag.Diagnostic{
			diag.NewError(atom.Span, "#include can only be used by builtin maps").
				Suggest(diag.NewSuggestion(atom.Span,
					"If you're trying to make a map pack, use a map pack generator instead.")),
		}
	}
	return nil
}
