// Package checker drives lints over the token and atom streams of a map
// script, maintaining the shared parse state between them.
package checker

import (
	"fmt"
	"strings"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/token"
	"rmscheck/internal/wordize"
)

// Checker feeds words and atoms, in file order, through the registered
// lints. Words are finer-grained than atoms: callers pass every word of an
// atom to WriteToken before passing the atom itself to WriteAtom.
type Checker struct {
	state *rms.ParseState
	lints []Lint
}

// New creates a checker for the given compatibility mode.
func New(compat rms.Compatibility, lints ...Lint) *Checker {
	return &Checker{
		state: rms.NewParseState(compat),
		lints: lints,
	}
}

// State exposes the parse state, mainly for tests and the comment-content
// re-check.
func (c *Checker) State() *rms.ParseState {
	return c.state
}

// lintToken runs the token hooks for a word. The first lint to report wins;
// the builtin section and argument checks run only when no lint fired.
func (c *Checker) lintToken(word *wordize.Word) *diag.Diagnostic {
	for _, l := range c.lints {
		tl, ok := l.(TokenLint)
		if !ok {
			continue
		}
		if c.state.IsComment && !l.RunInsideComments() {
			continue
		}
		if d := tl.LintToken(c.state, word); d != nil {
			tagged := d.WithCode(l.Name())
			return &tagged
		}
	}

	if strings.HasPrefix(word.Value, "<") && strings.HasSuffix(word.Value, ">") {
		if _, ok := token.Lookup(word.Value); !ok {
			d := diag.NewError(word.Span, fmt.Sprintf("Invalid section %s", word.Value))
			return &d
		}
	}

	if cur := c.state.CurrentToken; cur != nil && cur.ArgType(c.state.TokenArgIndex) == token.ArgNone {
		d := diag.NewError(word.Span, fmt.Sprintf(
			"Too many arguments (%d) to command `%s`", c.state.TokenArgIndex+1, cur.Name))
		return &d
	}

	return nil
}

// WriteToken checks one word and advances the token-level state: comment
// open/close tracking and the argument cursor of the current command.
func (c *Checker) WriteToken(word *wordize.Word) *diag.Diagnostic {
	if cur := c.state.CurrentToken; cur != nil && c.state.TokenArgIndex >= cur.ArgLen() {
		c.state.CurrentToken = nil
		c.state.TokenArgIndex = 0
	}

	var parseError *diag.Diagnostic
	if strings.HasPrefix(word.Value, "/*") {
		c.state.IsComment = true
		// Comments are only recognised with whitespace around the
		// markers, anything glued to `/*` silently becomes part of the
		// comment.
		if len(word.Value) > len("/*") {
			d := diag.NewError(word.Span,
				"Incorrect comment: there must be a space after the opening /*")
			if strings.HasSuffix(word.Value, "*/") && len(word.Value) >= len("/**/") {
				inner := word.Value[2 : len(word.Value)-2]
				d = d.Suggest(diag.NewSuggestion(word.Span,
					"Add spaces at the start and end of the comment").
					Replace(fmt.Sprintf("/* %s */", inner)))
			} else {
				d = d.Suggest(diag.NewSuggestion(word.Span,
					"Add a space after the /*").
					Replace(fmt.Sprintf("/* %s", word.Value[2:])))
			}
			parseError = &d
		}
	}

	lintWarning := c.lintToken(word)

	if strings.HasSuffix(word.Value, "*/") {
		if !c.state.IsComment {
			d := diag.NewError(word.Span, "Unexpected closing `*/`")
			parseError = &d
		} else {
			c.state.IsComment = false
			if len(word.Value) > len("*/") && parseError == nil {
				head := word.Value[:len(word.Value)-2]
				d := diag.NewError(word.Span,
					"Possibly unclosed comment, */ must be preceded by whitespace").
					Suggest(diag.NewSuggestion(word.Span,
						"Add a space before the */").
						Replace(fmt.Sprintf("%s */", head)))
				parseError = &d
			}
		}
	}

	// Inside a comment only the checks above apply; command state is
	// suspended until the comment closes.
	if c.state.IsComment {
		if parseError != nil {
			return parseError
		}
		return lintWarning
	}

	if c.state.CurrentToken != nil {
		c.state.TokenArgIndex++
	}

	if tok, ok := token.Lookup(word.Value); ok {
		c.state.CurrentToken = tok
		c.state.TokenArgIndex = 0
	}

	if parseError != nil {
		return parseError
	}
	return lintWarning
}

// WriteAtom checks one atom, then folds it into the parse state. Nesting
// errors from the state transition are appended after the lint results.
func (c *Checker) WriteAtom(atom *parser.Atom) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, l := range c.lints {
		al, ok := l.(AtomLint)
		if !ok {
			continue
		}
		for _, d := range al.LintAtom(c.state, atom) {
			out = append(out, d.WithCode(l.Name()))
		}
	}

	c.state.Update(atom)
	if d := c.state.UpdateNesting(atom); d != nil {
		out = append(out, *d)
	}
	return out
}
