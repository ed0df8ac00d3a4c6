package lints

import (
	"fmt"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
)

// CommentContents re-parses comment bodies and warns about contents the
// game's parser is known to choke on: constant names it may interpret as
// tokens, and close markers it may swallow as command arguments.
type CommentContents struct{}

// NewCommentContents creates the lint.
func NewCommentContents() *CommentContents {
	return &CommentContents{}
}

// Name implements checker.Lint.
func (*CommentContents) Name() string { return "comment-contents" }

// RunInsideComments implements checker.Lint.
func (*CommentContents) RunInsideComments() bool { return true }

func expectsMoreArguments(errors []parser.Error) bool {
	for _, err := range errors {
		switch err.Kind {
		case parser.MissingConstName, parser.MissingConstValue, parser.MissingDefineName,
			parser.MissingCommandArgs, parser.MissingIfCondition, parser.MissingPercentChance:
			return true
		}
	}
	return false
}

// LintAtom implements checker.AtomLint.
func (*CommentContents) LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomComment {
		return nil
	}

	hasStartRandom := false
	hasIf := false
	for _, nest := range state.Nesting {
		switch nest.Kind {
		case rms.NestIf, rms.NestElseIf, rms.NestElse:
			hasIf = true
		case rms.NestStartRandom, rms.NestPercentChance:
			hasStartRandom = true
		}
	}
	mayTriggerParsingBug := hasIf && state.Compatibility <= rms.CompatUserPatch14 ||
		hasStartRandom && state.Compatibility <= rms.CompatUserPatch15

	// Parse the comment body at its real file offset so spans line up with
	// the outer source.
	p := parser.NewAt(atom.File(), atom.Content, atom.Head.Span.End)

	var warnings []diag.Diagnostic
	var expectingMore *parser.Atom
	for {
		inner, errors, ok := p.Next()
		if !ok {
			break
		}
		if expectsMoreArguments(errors) {
			cut := inner
			expectingMore = &cut
			continue
		}
		if inner.Kind == parser.AtomOther && mayTriggerParsingBug &&
			(state.HasDefine(inner.Head.Value) || state.HasConst(inner.Head.Value)) {
			warnings = append(warnings,
				diag.NewWarning(inner.Head.Span,
					"Using constant names in comments inside `start_random` or `if` statements can be dangerous, because the game may interpret them as other tokens instead.").
					Suggest(diag.NewSuggestion(inner.Head.Span,
						"Add `backticks` around the name to make the parser ignore it").
						Replace(fmt.Sprintf("`%s`", inner.Head.Value))))
		}
		expectingMore = nil
	}

	if expectingMore != nil && atom.Close != nil {
		warnings = append(warnings,
			diag.NewWarning(atom.Close.Span,
				"This close comment may be ignored because a previous command is expecting more arguments").
				WithNote(expectingMore.Span, "Command started here"))
	}

	return warnings
}
