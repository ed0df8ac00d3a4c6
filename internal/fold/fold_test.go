package fold

import (
	"testing"

	"rmscheck/internal/source"
)

func ranges(t *testing.T, script string) []Range {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rms", []byte(script))
	return Ranges(fs, id)
}

func TestFoldComment(t *testing.T) {
	got := ranges(t, "/* first\nsecond\nthird */\n")
	if len(got) != 1 {
		t.Fatalf("got %d ranges, want 1: %+v", len(got), got)
	}
	if got[0].StartLine != 1 || got[0].EndLine != 3 {
		t.Errorf("comment fold = %+v", got[0])
	}
	if got[0].StartCol != 0 {
		t.Errorf("comment fold should cover whole lines: %+v", got[0])
	}
}

func TestUnclosedCommentDoesNotFold(t *testing.T) {
	if got := ranges(t, "/* first\nsecond\n"); len(got) != 0 {
		t.Errorf("got %+v, want none", got)
	}
}

func TestFoldBlock(t *testing.T) {
	got := ranges(t, "create_terrain GRASS {\n  base_terrain DESERT\n}\n")
	if len(got) != 1 {
		t.Fatalf("got %d ranges, want 1: %+v", len(got), got)
	}
	r := got[0]
	if r.StartLine != 1 || r.EndLine != 2 {
		t.Errorf("block fold = %+v", r)
	}
	if r.StartCol == 0 {
		t.Errorf("block folds are character precise: %+v", r)
	}
}

func TestFoldCondition(t *testing.T) {
	script := "if A\n#define X\nelseif B\n#define Y\nelse\n#define Z\nendif\n"
	got := ranges(t, script)
	want := []Range{
		{StartLine: 1, EndLine: 2},
		{StartLine: 3, EndLine: 4},
		{StartLine: 5, EndLine: 7},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].StartLine != want[i].StartLine || got[i].EndLine != want[i].EndLine {
			t.Errorf("fold %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFoldRandom(t *testing.T) {
	script := "start_random\npercent_chance 50\n#define A\npercent_chance 50\n#define B\nend_random\n"
	got := ranges(t, script)
	want := []Range{
		{StartLine: 2, EndLine: 3},
		{StartLine: 4, EndLine: 5},
		{StartLine: 1, EndLine: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].StartLine != want[i].StartLine || got[i].EndLine != want[i].EndLine {
			t.Errorf("fold %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFoldNestedBlocks(t *testing.T) {
	script := "if A\ncreate_object SCOUT {\nnumber_of_objects 5\n}\nendif\n"
	got := ranges(t, script)
	if len(got) != 2 {
		t.Fatalf("got %d ranges, want 2: %+v", len(got), got)
	}
	if got[0].StartLine != 2 || got[0].EndLine != 3 {
		t.Errorf("block fold = %+v", got[0])
	}
	if got[1].StartLine != 1 || got[1].EndLine != 5 {
		t.Errorf("if fold = %+v", got[1])
	}
}
