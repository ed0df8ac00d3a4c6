package wordize

import (
	"testing"

	"rmscheck/internal/source"
)

func scan(t *testing.T, content string) []Word {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rms", []byte(content))
	return NewScanner(fs.Get(id)).All()
}

func TestSplitWords(t *testing.T) {
	words := scan(t, "simple test words")

	want := []struct {
		value      string
		start, end uint32
	}{
		{"simple", 0, 6},
		{"test", 7, 11},
		{"words", 12, 17},
	}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i].Value != w.value {
			t.Errorf("words[%d].Value = %q, want %q", i, words[i].Value, w.value)
		}
		if words[i].Start() != w.start || words[i].End() != w.end {
			t.Errorf("words[%d] span = [%d, %d), want [%d, %d)",
				i, words[i].Start(), words[i].End(), w.start, w.end)
		}
	}
}

func TestCommentMarkersStickToWords(t *testing.T) {
	words := scan(t, "n/*ot \n \t  a*/comment")

	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Value != "n/*ot" || words[0].Start() != 0 || words[0].End() != 5 {
		t.Errorf("words[0] = %q [%d, %d)", words[0].Value, words[0].Start(), words[0].End())
	}
	if words[1].Value != "a*/comment" || words[1].Start() != 11 || words[1].End() != 21 {
		t.Errorf("words[1] = %q [%d, %d)", words[1].Value, words[1].Start(), words[1].End())
	}
}

func TestTrailingWord(t *testing.T) {
	words := scan(t, "  base_size 15")
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[1].Value != "15" {
		t.Errorf("words[1].Value = %q", words[1].Value)
	}
	if words[1].End() != 14 {
		t.Errorf("words[1].End() = %d, want end of input", words[1].End())
	}
}

func TestEmptyAndBlankInput(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\r\n"} {
		if words := scan(t, content); len(words) != 0 {
			t.Errorf("scan(%q) = %d words, want 0", content, len(words))
		}
	}
}

func TestScannerAtOffset(t *testing.T) {
	s := NewScannerAt(0, "hello world", 100)
	w, ok := s.Next()
	if !ok {
		t.Fatal("expected a word")
	}
	if w.Start() != 100 || w.End() != 105 {
		t.Errorf("span = [%d, %d), want [100, 105)", w.Start(), w.End())
	}
}

func TestSpansCoverEveryNonSpaceByte(t *testing.T) {
	content := "create_terrain SNOW\n{\n  base_size 15\n}"
	words := scan(t, content)

	covered := make([]bool, len(content))
	for _, w := range words {
		for i := w.Start(); i < w.End(); i++ {
			covered[i] = true
		}
	}
	for i := range content {
		isSpace := content[i] == ' ' || content[i] == '\n' || content[i] == '\t'
		if covered[i] == isSpace {
			t.Errorf("byte %d (%q): covered = %v", i, content[i], covered[i])
		}
	}
}
