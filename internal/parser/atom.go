package parser

import (
	"fmt"
	"strings"

	"rmscheck/internal/source"
	"rmscheck/internal/wordize"
)

// Kind tags the variant of a parsed Atom.
type Kind uint8

const (
	// AtomOther is an unrecognised word.
	AtomOther Kind = iota
	// AtomConst is a #const definition, possibly missing its value.
	AtomConst
	// AtomDefine is a #define definition.
	AtomDefine
	// AtomUndefine is an #undefine statement.
	AtomUndefine
	// AtomSection is a <SECTION> header.
	AtomSection
	// AtomIf is an if statement with a condition.
	AtomIf
	// AtomElseIf is an elseif statement with a condition.
	AtomElseIf
	// AtomElse is an else statement.
	AtomElse
	// AtomEndIf is an endif statement.
	AtomEndIf
	// AtomStartRandom is a start_random statement.
	AtomStartRandom
	// AtomPercentChance is a percent_chance statement with a chance value.
	AtomPercentChance
	// AtomEndRandom is an end_random statement.
	AtomEndRandom
	// AtomOpenBlock is the start of a block, `{`.
	AtomOpenBlock
	// AtomCloseBlock is the end of a block, `}`.
	AtomCloseBlock
	// AtomCommand is a command with a name and arguments.
	AtomCommand
	// AtomComment is a comment, possibly unclosed.
	AtomComment
)

// Atom is a parsed piece of source code. Kind selects which fields are
// meaningful:
//
//   - Head is always set: the statement keyword, the section name, the
//     command name, the brace, the comment opener, or the unrecognised word.
//   - Name is the defined name for AtomConst, AtomDefine and AtomUndefine.
//   - Value is the #const value, nil when the statement was cut short.
//   - Arg is the if/elseif condition or the percent_chance chance.
//   - Args are the command arguments, in source order.
//   - Content and Close describe a comment's body and its optional closer.
type Atom struct {
	Kind    Kind
	Span    source.Span
	Head    wordize.Word
	Name    wordize.Word
	Value   *wordize.Word
	Arg     wordize.Word
	Args    []wordize.Word
	Content string
	Close   *wordize.Word
}

// File returns the ID of the file this atom was parsed from.
func (a *Atom) File() source.FileID {
	return a.Span.File
}

func fromWord(kind Kind, w wordize.Word) Atom {
	return Atom{Kind: kind, Span: w.Span, Head: w}
}

func other(w wordize.Word) Atom {
	return fromWord(AtomOther, w)
}

// String renders a compact debug form, used by the parse dump command.
func (a *Atom) String() string {
	switch a.Kind {
	case AtomConst:
		value := "()"
		if a.Value != nil {
			value = a.Value.Value
		}
		return fmt.Sprintf("Const<%s, %s>", a.Name.Value, value)
	case AtomDefine:
		return fmt.Sprintf("Define<%s>", a.Name.Value)
	case AtomUndefine:
		return fmt.Sprintf("Undefine<%s>", a.Name.Value)
	case AtomSection:
		return "Section" + a.Head.Value
	case AtomIf:
		return fmt.Sprintf("If<%s>", a.Arg.Value)
	case AtomElseIf:
		return fmt.Sprintf("ElseIf<%s>", a.Arg.Value)
	case AtomElse:
		return "Else"
	case AtomEndIf:
		return "EndIf"
	case AtomStartRandom:
		return "StartRandom"
	case AtomPercentChance:
		return fmt.Sprintf("PercentChance<%s>", a.Arg.Value)
	case AtomEndRandom:
		return "EndRandom"
	case AtomOpenBlock:
		return "OpenBlock"
	case AtomCloseBlock:
		return "CloseBlock"
	case AtomCommand:
		var sb strings.Builder
		sb.WriteString("Command<")
		sb.WriteString(a.Head.Value)
		for _, arg := range a.Args {
			sb.WriteString(", ")
			sb.WriteString(arg.Value)
		}
		sb.WriteString(">")
		return sb.String()
	case AtomComment:
		return fmt.Sprintf("Comment<%q>", a.Content)
	}
	return fmt.Sprintf("Other<%s>", a.Head.Value)
}
