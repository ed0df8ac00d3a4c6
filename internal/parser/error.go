package parser

import (
	"rmscheck/internal/source"
)

// ErrorKind classifies a parse error.
type ErrorKind uint8

const (
	// MissingConstName: a #const token with no constant name after it.
	MissingConstName ErrorKind = iota
	// MissingConstValue: a #const declared without a value.
	MissingConstValue
	// MissingDefineName: a #define or #undefine with no name after it.
	MissingDefineName
	// MissingCommandArgs: a command with too few arguments.
	MissingCommandArgs
	// MissingIfCondition: an if or elseif with no condition after it.
	MissingIfCondition
	// MissingPercentChance: a percent_chance with no number after it.
	MissingPercentChance
	// UnclosedComment: a comment still open at the end of the file.
	UnclosedComment
	// UnknownWord: a word the parser does not recognise.
	UnknownWord
)

// Error is a recoverable parse problem. The parser keeps going after
// reporting one.
type Error struct {
	Kind ErrorKind
	Span source.Span
}

func newError(span source.Span, kind ErrorKind) Error {
	return Error{Kind: kind, Span: span}
}

// Message returns a human-readable description of the error.
func (e Error) Message() string {
	switch e.Kind {
	case MissingConstName:
		return "Missing const name"
	case MissingConstValue:
		return "Missing const value"
	case MissingDefineName:
		return "Missing define name"
	case MissingCommandArgs:
		return "Missing command arguments"
	case MissingIfCondition:
		return "Missing if condition"
	case MissingPercentChance:
		return "Missing percent_chance value"
	case UnclosedComment:
		return "Unclosed comment"
	case UnknownWord:
		return "Unknown word"
	}
	return "Parse error"
}
