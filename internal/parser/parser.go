// Package parser turns a source file into a sequence of parsed units called
// atoms. The parser is forgiving: malformed input produces recoverable parse
// errors next to a best-effort atom, and every word of the input ends up in
// exactly one atom.
package parser

import (
	"strings"

	"rmscheck/internal/source"
	"rmscheck/internal/token"
	"rmscheck/internal/wordize"
)

// Parser reads atoms from a word stream.
type Parser struct {
	file    source.FileID
	content string
	base    uint32
	scan    *wordize.Scanner
	peeked  *wordize.Word
}

// New creates a parser for the given file.
func New(f *source.File) *Parser {
	return &Parser{
		file:    f.ID,
		content: string(f.Content),
		scan:    wordize.NewScanner(f),
	}
}

// NewAt creates a parser over a slice of a file's content starting at byte
// offset base, so atoms get whole-file spans. Used to re-parse comment
// bodies.
func NewAt(file source.FileID, content string, base uint32) *Parser {
	return &Parser{
		file:    file,
		content: content,
		base:    base,
		scan:    wordize.NewScannerAt(file, content, base),
	}
}

func (p *Parser) span(start, end uint32) source.Span {
	return source.Span{File: p.file, Start: start, End: end}
}

// slice returns the source text between two whole-file byte offsets.
func (p *Parser) slice(start, end uint32) string {
	return p.content[start-p.base : end-p.base]
}

// contentEnd is the whole-file offset just past the parsed region.
func (p *Parser) contentEnd() uint32 {
	return p.base + uint32(len(p.content))
}

func (p *Parser) next() (wordize.Word, bool) {
	if p.peeked != nil {
		w := *p.peeked
		p.peeked = nil
		return w, true
	}
	return p.scan.Next()
}

func (p *Parser) peek() (wordize.Word, bool) {
	if p.peeked == nil {
		w, ok := p.scan.Next()
		if !ok {
			return wordize.Word{}, false
		}
		p.peeked = &w
	}
	return *p.peeked, true
}

// peekArg checks whether the next word could be a command argument.
func (p *Parser) peekArg() (wordize.Word, bool) {
	w, ok := p.peek()
	if !ok {
		return wordize.Word{}, false
	}

	// Things that should never be arguments.
	switch w.Value {
	case "/*", "*/", "{", "}":
		return wordize.Word{}, false
	case "if", "elseif", "else", "endif":
		return wordize.Word{}, false
	case "start_random", "percent_chance", "end_random":
		return wordize.Word{}, false
	}
	if _, known := token.Lookup(w.Value); known {
		return wordize.Word{}, false
	}
	// Incorrect comment syntax, but still a comment.
	if strings.HasPrefix(w.Value, "/*") || strings.HasSuffix(w.Value, "*/") {
		return wordize.Word{}, false
	}

	return w, true
}

// readArg consumes the next word if it could be a command argument.
func (p *Parser) readArg() (wordize.Word, bool) {
	if _, ok := p.peekArg(); !ok {
		return wordize.Word{}, false
	}
	return p.next()
}

// readComment consumes words until `*/` or the end of the file.
func (p *Parser) readComment(open wordize.Word) (Atom, []Error) {
	last := open.Span
	for {
		w, ok := p.next()
		if !ok {
			span := p.span(open.Span.Start, last.End)
			return Atom{
				Kind:    AtomComment,
				Span:    span,
				Head:    open,
				Content: p.slice(open.Span.End, p.contentEnd()),
			}, []Error{newError(span, UnclosedComment)}
		}
		if w.Value == "*/" {
			closer := w
			return Atom{
				Kind:    AtomComment,
				Span:    p.span(open.Span.Start, closer.Span.End),
				Head:    open,
				Content: p.slice(open.Span.End, closer.Span.Start),
				Close:   &closer,
			}, nil
		}
		last = w.Span
	}
}

// readCommand reads a known command's arguments, up to its argument count.
func (p *Parser) readCommand(name wordize.Word, lowerName string) (Atom, []Error) {
	tokType, _ := token.Lookup(lowerName)

	var args []wordize.Word
	for i := 0; i < tokType.ArgLen(); i++ {
		arg, ok := p.readArg()
		if !ok {
			break
		}
		args = append(args, arg)
	}

	span := name.Span
	if len(args) > 0 {
		span = p.span(name.Span.Start, args[len(args)-1].Span.End)
	}

	var errs []Error
	if len(args) != tokType.ArgLen() {
		errs = append(errs, newError(span, MissingCommandArgs))
	}
	return Atom{Kind: AtomCommand, Span: span, Head: name, Args: args}, errs
}

// Next returns the next atom along with any parse errors it produced. The
// third result is false when the input is exhausted.
func (p *Parser) Next() (Atom, []Error, bool) {
	word, ok := p.next()
	if !ok {
		return Atom{}, nil, false
	}

	if strings.HasPrefix(word.Value, "<") && strings.HasSuffix(word.Value, ">") {
		if _, known := token.Lookup(word.Value); known {
			return fromWord(AtomSection, word), nil, true
		}
	}

	lower := strings.ToLower(word.Value)
	switch lower {
	case "{":
		return fromWord(AtomOpenBlock, word), nil, true
	case "}":
		return fromWord(AtomCloseBlock, word), nil, true
	case "/*":
		atom, errs := p.readComment(word)
		return atom, errs, true
	case "if", "elseif":
		kind := AtomIf
		if lower == "elseif" {
			kind = AtomElseIf
		}
		condition, ok := p.readArg()
		if !ok {
			return other(word), []Error{newError(word.Span, MissingIfCondition)}, true
		}
		return Atom{
			Kind: kind,
			Span: p.span(word.Span.Start, condition.Span.End),
			Head: word,
			Arg:  condition,
		}, nil, true
	case "else":
		return fromWord(AtomElse, word), nil, true
	case "endif":
		return fromWord(AtomEndIf, word), nil, true
	case "start_random":
		return fromWord(AtomStartRandom, word), nil, true
	case "percent_chance":
		chance, ok := p.readArg()
		if !ok {
			return other(word), []Error{newError(word.Span, MissingPercentChance)}, true
		}
		return Atom{
			Kind: AtomPercentChance,
			Span: p.span(word.Span.Start, chance.Span.End),
			Head: word,
			Arg:  chance,
		}, nil, true
	case "end_random":
		return fromWord(AtomEndRandom, word), nil, true
	case "#define", "#undefine":
		kind := AtomDefine
		if lower == "#undefine" {
			kind = AtomUndefine
		}
		name, ok := p.readArg()
		if !ok {
			return other(word), []Error{newError(word.Span, MissingDefineName)}, true
		}
		return Atom{
			Kind: kind,
			Span: p.span(word.Span.Start, name.Span.End),
			Head: word,
			Name: name,
		}, nil, true
	case "#const":
		return p.readConst(word)
	}

	if _, known := token.Lookup(lower); known {
		atom, errs := p.readCommand(word, lower)
		return atom, errs, true
	}

	// A common mistake is to write /****/ on a line, which is not strictly
	// a comment because of the missing spaces. The game still ignores it,
	// so treat it as a comment.
	if len(word.Value) >= 4 && strings.HasPrefix(lower, "/*") && strings.HasSuffix(lower, "*/") {
		open := wordize.Word{
			File:  word.File,
			Span:  p.span(word.Span.Start, word.Span.Start+2),
			Value: word.Value[:2],
		}
		closer := wordize.Word{
			File:  word.File,
			Span:  p.span(word.Span.End-2, word.Span.End),
			Value: word.Value[len(word.Value)-2:],
		}
		return Atom{
			Kind:    AtomComment,
			Span:    word.Span,
			Head:    open,
			Content: word.Value[2 : len(word.Value)-2],
			Close:   &closer,
		}, nil, true
	}

	return other(word), []Error{newError(word.Span, UnknownWord)}, true
}

func (p *Parser) readConst(head wordize.Word) (Atom, []Error, bool) {
	name, ok := p.readArg()
	if !ok {
		return other(head), []Error{newError(head.Span, MissingConstName)}, true
	}
	if _, ok := p.peekArg(); ok {
		value, _ := p.next()
		return Atom{
			Kind:  AtomConst,
			Span:  p.span(head.Span.Start, value.Span.End),
			Head:  head,
			Name:  name,
			Value: &value,
		}, nil, true
	}
	span := p.span(head.Span.Start, name.Span.End)
	return Atom{
		Kind: AtomConst,
		Span: span,
		Head: head,
		Name: name,
	}, []Error{newError(span, MissingConstValue)}, true
}

// All reads the remaining atoms and collects their parse errors.
func (p *Parser) All() ([]Atom, []Error) {
	var atoms []Atom
	var errs []Error
	for {
		atom, es, ok := p.Next()
		if !ok {
			return atoms, errs
		}
		atoms = append(atoms, atom)
		errs = append(errs, es...)
	}
}
