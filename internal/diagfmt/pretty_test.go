package diagfmt

import (
	"strings"
	"testing"

	"rmscheck/internal/diag"
	"rmscheck/internal/source"
)

func makeBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rms", []byte("<PLAYER_SETUP>\nCreate_Land { }\n"))

	bag := diag.NewBag(100)
	bag.Add(diag.NewError(source.Span{File: id, Start: 15, End: 26}, "Unknown attribute `Create_Land`").
		WithCode("attribute-case").
		WithNote(source.Span{File: id, Start: 0, End: 14}, "Section started here").
		Suggest(diag.NewSuggestion(source.Span{File: id, Start: 15, End: 26}, "Convert to lowercase").
			Replace("create_land")))
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := makeBag(t)
	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{ShowNotes: true, ShowSuggestions: true})
	text := out.String()

	for _, want := range []string{
		"test.rms:2:1: ERROR attribute-case: Unknown attribute `Create_Land`",
		"  2 | Create_Land { }",
		"^~~~~~~~~~",
		"note: Section started here (test.rms:1:1)",
		"suggestion: Convert to lowercase",
		"replace with `create_land`",
		"1 problem",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPrettyHidesNotesWhenDisabled(t *testing.T) {
	bag, fs := makeBag(t)
	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{})
	text := out.String()
	if strings.Contains(text, "note:") || strings.Contains(text, "suggestion:") {
		t.Errorf("notes or suggestions shown while disabled:\n%s", text)
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		line     string
		startCol uint32
		endCol   uint32
		want     string
	}{
		{"Create_Land { }", 1, 12, "^" + strings.Repeat("~", 10)},
		{"abc", 2, 3, " ^"},
		{"abc", 1, 100, "^~~"},
	}
	for _, tt := range tests {
		if got := underline(tt.line, tt.startCol, tt.endCol); got != tt.want {
			t.Errorf("underline(%q, %d, %d) = %q, want %q", tt.line, tt.startCol, tt.endCol, got, tt.want)
		}
	}
}
