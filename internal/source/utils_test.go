package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		out     string
		changed bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"windows line endings", "a\r\nb\r\n", "a\nb\n", true},
		{"lone carriage return kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.out {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, got, tt.out)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.in, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM() = %q, %v; want \"hi\", true", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM() on plain input = %q, %v", got, had)
	}
}

func TestRestoreFormat(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		flags FileFlags
		out   string
	}{
		{"no flags", "a\nb\n", 0, "a\nb\n"},
		{"crlf restored", "a\nb\n", FileNormalizedCRLF, "a\r\nb\r\n"},
		{"lone carriage return untouched", "a\rb\n", FileNormalizedCRLF, "a\rb\r\n"},
		{"bom restored", "hi", FileHadBOM, "\xEF\xBB\xBFhi"},
		{"bom and crlf", "a\n", FileHadBOM | FileNormalizedCRLF, "\xEF\xBB\xBFa\r\n"},
		{"empty", "", FileNormalizedCRLF, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RestoreFormat([]byte(tt.in), tt.flags); string(got) != tt.out {
				t.Errorf("RestoreFormat(%q, %b) = %q, want %q", tt.in, tt.flags, got, tt.out)
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("first\nsecond\nthird")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{5, LineCol{Line: 1, Col: 6}}, // the newline terminates line 1
		{6, LineCol{Line: 2, Col: 1}},
		{11, LineCol{Line: 2, Col: 6}},
		{13, LineCol{Line: 3, Col: 1}},
		{17, LineCol{Line: 3, Col: 5}},
	}

	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("no newlines here"))
	if got := toLineCol(idx, 3); got != (LineCol{Line: 1, Col: 4}) {
		t.Errorf("toLineCol(3) = %+v, want line 1 col 4", got)
	}
}
