package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	bag, fs := makeBag(t)
	var out strings.Builder
	err := JSON(&out, bag, fs, JSONOpts{
		IncludePositions:   true,
		IncludeNotes:       true,
		IncludeSuggestions: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Count != 1 || len(decoded.Diagnostics) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	d := decoded.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "attribute-case" {
		t.Errorf("severity/code = %q/%q", d.Severity, d.Code)
	}
	if d.Location.StartByte != 15 || d.Location.EndByte != 26 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("positions = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "Section started here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Suggestions) != 1 || d.Suggestions[0].Replacement != "create_land" {
		t.Errorf("suggestions = %+v", d.Suggestions)
	}
	if d.Suggestions[0].Safety != "safe" {
		t.Errorf("safety = %q", d.Suggestions[0].Safety)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := makeBag(t)
	var out strings.Builder
	if err := JSON(&out, bag, fs, JSONOpts{Max: 0}); err != nil {
		t.Fatal(err)
	}
	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Count != 1 {
		t.Errorf("count = %d", decoded.Count)
	}

	out.Reset()
	if err := JSON(&out, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Count != 1 {
		t.Errorf("count with max = %d", decoded.Count)
	}
}
