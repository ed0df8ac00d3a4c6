package source

import (
	"fmt"
)

// Span identifies a byte range [Start, End) within a single source file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans in different files are left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Slice returns the content covered by the span.
func (s Span) Slice(content []byte) string {
	if int(s.Start) >= len(content) || s.Start >= s.End {
		return ""
	}
	end := s.End
	if int(end) > len(content) {
		end = uint32(len(content))
	}
	return string(content[s.Start:end])
}
