package lints

import (
	"fmt"
	"strconv"
	"strings"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/token"
	"rmscheck/internal/wordize"
)

// ArgTypes checks the arguments of every command against the argument types
// the token catalog declares, plus value-range rules for a few attributes
// with known crash or no-op behaviour.
type ArgTypes struct{}

// NewArgTypes creates the lint.
func NewArgTypes() *ArgTypes {
	return &ArgTypes{}
}

// Name implements checker.Lint.
func (*ArgTypes) Name() string { return "arg-types" }

// RunInsideComments implements checker.Lint.
func (*ArgTypes) RunInsideComments() bool { return false }

func isNumeric(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

func parseNumber(w *wordize.Word) (int32, bool) {
	n, err := strconv.ParseInt(w.Value, 10, 32)
	return int32(n), err == nil
}

// isValidRnd checks an `rnd(1,10)` expression. When the expression is only
// invalid because of stray whitespace, the fixed-up text is returned too.
func isValidRnd(s string) (bool, string) {
	if strings.HasPrefix(s, "rnd(") && strings.HasSuffix(s, ")") {
		valid := true
		for _, part := range strings.Split(s[4:len(s)-1], ",") {
			if !isNumeric(part) {
				valid = false
				break
			}
		}
		if valid {
			return true, ""
		}
	}
	if strings.ContainsAny(s, " \t") {
		noWS := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, s)
		if ok, _ := isValidRnd(noWS); ok {
			return false, noWS
		}
	}
	return false, ""
}

// checkEverDefined warns when a #define name has never been seen, not even
// as a game-provided optional define.
func (*ArgTypes) checkEverDefined(state *rms.ParseState, arg *wordize.Word) *diag.Diagnostic {
	if state.MayHaveDefine(arg.Value) {
		return nil
	}
	warn := diag.NewWarning(arg.Span, fmt.Sprintf(
		"Token `%s` is never defined, this condition will always fail", arg.Value))
	if similar, ok := meant(arg.Value, state.Defines()); ok {
		warn = warn.Suggest(diag.NewSuggestion(arg.Span,
			fmt.Sprintf("Did you mean `%s`?", similar)).Replace(similar))
	}
	return &warn
}

// checkDefinedWithValue warns when a name is not a #const: either it is
// missing entirely, or it only exists as a valueless #define.
func (*ArgTypes) checkDefinedWithValue(state *rms.ParseState, arg *wordize.Word) *diag.Diagnostic {
	if state.HasConst(arg.Value) {
		return nil
	}
	if state.HasDefine(arg.Value) {
		warn := diag.NewWarning(arg.Span, fmt.Sprintf(
			"Expected a valued token (defined using #const), got a valueless token `%s` (defined using #define)",
			arg.Value))
		return &warn
	}
	warn := diag.NewWarning(arg.Span, fmt.Sprintf("Token `%s` is never defined", arg.Value))
	if similar, ok := meant(arg.Value, state.Consts()); ok {
		warn = warn.Suggest(diag.NewSuggestion(arg.Span,
			fmt.Sprintf("Did you mean `%s`?", similar)).Replace(similar))
	}
	return &warn
}

func (*ArgTypes) checkNumber(name, arg *wordize.Word) *diag.Diagnostic {
	if isNumeric(arg.Value) {
		return nil
	}
	if ok, _ := isValidRnd(arg.Value); ok {
		return nil
	}
	warn := diag.NewError(arg.Span, fmt.Sprintf(
		"Expected a number argument to %s, but got %s", name.Value, arg.Value))
	if strings.HasPrefix(arg.Value, "(") {
		// `rnd (1,5)` splits into two words, leaving a bare range here.
		replacement := "rnd" + arg.Value
		if _, fixed := isValidRnd(replacement); fixed != "" {
			replacement = fixed
		}
		warn = warn.Suggest(diag.NewSuggestion(arg.Span,
			"Did you forget the `rnd`?").Replace(replacement))
	}
	return &warn
}

func unexpectedNumber(arg *wordize.Word) *diag.Diagnostic {
	if !isNumeric(arg.Value) {
		return nil
	}
	d := diag.NewError(arg.Span, fmt.Sprintf(
		"Expected a const name, but got a number %s", arg.Value))
	return &d
}

func (l *ArgTypes) checkArg(state *rms.ParseState, atom *parser.Atom, argType token.ArgType, arg *wordize.Word) *diag.Diagnostic {
	if arg == nil {
		d := diag.NewError(atom.Span, fmt.Sprintf("Missing arguments to %s", atom.Head.Value))
		return &d
	}

	switch argType {
	case token.ArgNumber:
		return l.checkNumber(&atom.Head, arg)
	case token.ArgWord:
		if d := unexpectedNumber(arg); d != nil {
			return d
		}
		if strings.ContainsFunc(arg.Value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
			d := diag.NewWarning(arg.Span,
				"Using lowercase for constant names may cause confusion with attribute or command names").
				Suggest(diag.NewSuggestion(arg.Span, "Use uppercase for constants").
					Replace(strings.ToUpper(arg.Value)))
			return &d
		}
		return nil
	case token.ArgOptionalToken:
		if d := unexpectedNumber(arg); d != nil {
			return d
		}
		return l.checkEverDefined(state, arg)
	case token.ArgToken:
		if d := unexpectedNumber(arg); d != nil {
			return d
		}
		return l.checkDefinedWithValue(state, arg)
	}
	return nil
}

// checkAssignTo validates the target, number, mode and flags arguments of
// `assign_to`.
func (*ArgTypes) checkAssignTo(args []wordize.Word, warnings *[]diag.Diagnostic) {
	const (
		targetNone = iota
		targetColor
		targetPlayer
		targetTeam
	)
	target := targetNone
	if len(args) > 0 {
		switch args[0].Value {
		case "AT_COLOR":
			target = targetColor
		case "AT_PLAYER":
			target = targetPlayer
		case "AT_TEAM":
			target = targetTeam
		default:
			*warnings = append(*warnings, diag.NewWarning(args[0].Span,
				"`assign_to` Target must be AT_COLOR, AT_PLAYER, AT_TEAM"))
		}
	}

	if len(args) > 1 {
		if number, ok := parseNumber(&args[1]); ok {
			switch target {
			case targetColor, targetPlayer:
				if number < 0 || number > 8 {
					*warnings = append(*warnings, diag.NewWarning(args[1].Span,
						"`assign_to` Number must be 1-8 when targeting AT_COLOR or AT_PLAYER"))
				}
			case targetTeam:
				if (number < -4 || number > 4) && number != -10 {
					*warnings = append(*warnings, diag.NewWarning(args[1].Span,
						"`assign_to` Number must be 1-4 when targeting AT_TEAM"))
				}
			}
		}
	}

	if len(args) > 2 {
		if mode, ok := parseNumber(&args[2]); ok {
			switch target {
			case targetTeam:
				if mode != -1 && mode != 0 {
					*warnings = append(*warnings, diag.NewWarning(args[2].Span,
						"`assign_to` Mode must be 0 (random selection) or -1 (ordered selection) when targeting AT_TEAM"))
				}
			case targetColor, targetPlayer:
				if mode != 0 {
					*warnings = append(*warnings, diag.NewWarning(args[2].Span,
						"`assign_to` Mode should be 0 when targeting AT_COLOR or AT_PLAYER"))
				}
			}
		}
	}

	if len(args) > 3 {
		if flags, ok := parseNumber(&args[3]); ok {
			const mask = 1 | 2
			if flags&mask != flags {
				*warnings = append(*warnings, diag.NewWarning(args[3].Span,
					"`assign_to` Flags must only combine flags 1 and 2"))
			}
		}
	}
}

// LintAtom implements checker.AtomLint.
func (l *ArgTypes) LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomCommand {
		return nil
	}
	tok, ok := token.Lookup(strings.ToLower(atom.Head.Value))
	if !ok {
		return nil
	}

	var warnings []diag.Diagnostic
	for i := 0; i < tok.ArgLen(); i++ {
		var arg *wordize.Word
		if i < len(atom.Args) {
			arg = &atom.Args[i]
		}
		if d := l.checkArg(state, atom, tok.ArgType(i), arg); d != nil {
			warnings = append(warnings, *d)
		}
	}

	switch atom.Head.Value {
	case "base_elevation":
		if len(atom.Args) > 0 {
			if n, ok := parseNumber(&atom.Args[0]); ok && (n < 0 || n > 7) {
				warnings = append(warnings, diag.NewWarning(atom.Args[0].Span,
					"Elevation value out of range (0 or 1-7)"))
			}
		}
	case "land_position":
		if len(atom.Args) > 0 {
			if n, ok := parseNumber(&atom.Args[0]); ok && (n < 0 || n > 100) {
				warnings = append(warnings, diag.NewWarning(atom.Args[0].Span,
					"Land position out of range (0-100)"))
			}
		}
		if len(atom.Args) > 1 {
			if n, ok := parseNumber(&atom.Args[1]); ok && (n < 0 || n > 99) {
				warnings = append(warnings, diag.NewWarning(atom.Args[1].Span,
					"Land position out of range (0-99)"))
			}
		}
	case "zone":
		if len(atom.Args) > 0 && atom.Args[0].Value == "99" {
			warnings = append(warnings, diag.NewWarning(atom.Args[0].Span,
				"`zone 99` crashes the game"))
		}
	case "assign_to":
		l.checkAssignTo(atom.Args, &warnings)
	}

	return warnings
}
