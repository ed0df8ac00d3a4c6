// Package fold computes folding ranges for editors: multiline comments,
// { } blocks, if/elseif/else branches and start_random groups.
package fold

import (
	"rmscheck/internal/parser"
	"rmscheck/internal/source"
)

// Range is a foldable region. Lines and columns are 1-based; a zero
// StartCol marks a whole-line fold.
type Range struct {
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
}

type builder struct {
	fs      *source.FileSet
	file    source.FileID
	waiting []parser.Atom
	out     []Range
}

// Ranges walks the file and returns its folding ranges, in the order the
// folded constructs close.
func Ranges(fs *source.FileSet, id source.FileID) []Range {
	f := fs.Get(id)
	if f == nil {
		return nil
	}
	b := &builder{fs: fs, file: id}

	p := parser.New(f)
	for {
		atom, _, ok := p.Next()
		if !ok {
			break
		}
		b.atom(atom)
	}
	return b.out
}

func (b *builder) at(offset uint32) source.LineCol {
	pos, _ := b.fs.Resolve(source.Span{File: b.file, Start: offset, End: offset})
	return pos
}

// foldLines queues a whole-line fold covering start..end. endExclusive
// stops the fold one line short, for constructs whose closer should stay
// visible when collapsed.
func (b *builder) foldLines(start, end uint32, endExclusive bool) {
	startLine := b.at(start).Line
	endLine := b.at(end).Line
	if endExclusive {
		endLine--
	}
	if endLine > startLine {
		b.out = append(b.out, Range{StartLine: startLine, EndLine: endLine})
	}
}

// fold queues a character-precise fold from start (inclusive) up to end
// (exclusive).
func (b *builder) fold(start, end uint32) {
	from := b.at(start)
	if end > 0 {
		end--
	}
	to := b.at(end)
	b.out = append(b.out, Range{
		StartLine: from.Line,
		StartCol:  from.Col,
		EndLine:   to.Line,
		EndCol:    to.Col,
	})
}

func (b *builder) pop() (parser.Atom, bool) {
	if len(b.waiting) == 0 {
		return parser.Atom{}, false
	}
	atom := b.waiting[len(b.waiting)-1]
	b.waiting = b.waiting[:len(b.waiting)-1]
	return atom, true
}

func (b *builder) top() (parser.Atom, bool) {
	if len(b.waiting) == 0 {
		return parser.Atom{}, false
	}
	return b.waiting[len(b.waiting)-1], true
}

func (b *builder) atom(atom parser.Atom) {
	switch atom.Kind {
	case parser.AtomComment:
		if atom.Close != nil {
			b.foldLines(atom.Head.Span.Start, atom.Close.Span.Start, false)
		}

	case parser.AtomOpenBlock, parser.AtomIf, parser.AtomStartRandom:
		b.waiting = append(b.waiting, atom)

	case parser.AtomCloseBlock:
		if open, ok := b.pop(); ok && open.Kind == parser.AtomOpenBlock {
			b.fold(open.Span.End, atom.Span.Start)
		}

	case parser.AtomElseIf, parser.AtomElse:
		start, ok := b.pop()
		if !ok || (start.Kind != parser.AtomIf && start.Kind != parser.AtomElseIf) {
			return
		}
		b.foldLines(start.Span.Start, atom.Span.Start, true)
		b.waiting = append(b.waiting, atom)

	case parser.AtomEndIf:
		start, ok := b.pop()
		if !ok {
			return
		}
		switch start.Kind {
		case parser.AtomIf, parser.AtomElseIf, parser.AtomElse:
			b.foldLines(start.Span.Start, atom.Span.Start, false)
		}

	case parser.AtomPercentChance:
		if prev, ok := b.top(); ok && prev.Kind == parser.AtomPercentChance {
			b.foldLines(prev.Span.Start, atom.Span.Start, true)
			b.pop()
		}
		b.waiting = append(b.waiting, atom)

	case parser.AtomEndRandom:
		if prev, ok := b.top(); ok && prev.Kind == parser.AtomPercentChance {
			b.foldLines(prev.Span.Start, atom.Span.Start, true)
			b.pop()
		}
		if prev, ok := b.top(); ok && prev.Kind == parser.AtomStartRandom {
			b.foldLines(prev.Span.Start, atom.Span.Start, false)
			b.pop()
		}
	}
}
