// Package wordize splits source text into whitespace-separated words with
// byte-accurate spans. It is the lowest layer of the pipeline: everything the
// parser sees is a Word produced here.
package wordize

import (
	"rmscheck/internal/source"
)

// Word is a single whitespace-delimited run of characters.
type Word struct {
	// File identifies the file the word came from.
	File source.FileID
	// Span covers the word's bytes in the file content.
	Span source.Span
	// Value is the word's text.
	Value string
}

// Start returns the byte offset of the word's first character.
func (w Word) Start() uint32 {
	return w.Span.Start
}

// End returns the byte offset just past the word.
func (w Word) End() uint32 {
	return w.Span.End
}

// Scanner iterates over the words of a file.
type Scanner struct {
	file    source.FileID
	content string
	base    uint32
	pos     int
}

// NewScanner creates a scanner over the file's content.
func NewScanner(f *source.File) *Scanner {
	return &Scanner{
		file:    f.ID,
		content: string(f.Content),
	}
}

// NewScannerAt creates a scanner over a slice of a file's content starting at
// byte offset base. Word spans are reported relative to the whole file. Used
// for re-scanning pieces of a file, like comment bodies.
func NewScannerAt(file source.FileID, content string, base uint32) *Scanner {
	return &Scanner{
		file:    file,
		content: content,
		base:    base,
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Next returns the next word. The second result is false when the input is
// exhausted.
func (s *Scanner) Next() (Word, bool) {
	for s.pos < len(s.content) && isSpace(s.content[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.content) {
		return Word{}, false
	}

	start := s.pos
	for s.pos < len(s.content) && !isSpace(s.content[s.pos]) {
		s.pos++
	}

	return Word{
		File: s.file,
		Span: source.Span{
			File:  s.file,
			Start: s.base + uint32(start),
			End:   s.base + uint32(s.pos),
		},
		Value: s.content[start:s.pos],
	}, true
}

// All collects the remaining words. Mainly useful in tests and for the
// word-dump debugging command.
func (s *Scanner) All() []Word {
	var words []Word
	for {
		w, ok := s.Next()
		if !ok {
			return words
		}
		words = append(words, w)
	}
}
