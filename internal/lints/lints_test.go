package lints

import (
	"strings"
	"testing"

	"rmscheck/internal/checker"
	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/source"
	"rmscheck/internal/wordize"
)

// runLints checks a script with the given lints, collecting every diagnostic
// in file order.
func runLints(t *testing.T, compat rms.Compatibility, content string, lints ...checker.Lint) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rms", []byte(content))
	f := fs.Get(id)

	c := checker.New(compat, lints...)
	words := wordize.NewScanner(f).All()
	p := parser.New(f)

	var out []diag.Diagnostic
	wi := 0
	for {
		atom, _, ok := p.Next()
		if !ok {
			return out
		}
		for wi < len(words) && words[wi].End() <= atom.Span.End {
			if d := c.WriteToken(&words[wi]); d != nil {
				out = append(out, *d)
			}
			wi++
		}
		out = append(out, c.WriteAtom(&atom)...)
	}
}

func wantMessages(t *testing.T, diags []diag.Diagnostic, want ...string) {
	t.Helper()
	var got []string
	for _, d := range diags {
		got = append(got, d.Message)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAttributeCase(t *testing.T) {
	diags := runLints(t, rms.DefaultCompatibility, "<LAND_GENERATION> Create_Land", NewAttributeCase())
	wantMessages(t, diags, "Unknown attribute `Create_Land`")
	if diags[0].Code != "attribute-case" {
		t.Errorf("code = %q", diags[0].Code)
	}
	if len(diags[0].Suggestions) != 1 || diags[0].Suggestions[0].Replacement.Text != "create_land" {
		t.Errorf("suggestions = %+v", diags[0].Suggestions)
	}
	if !diags[0].Suggestions[0].Fixable() {
		t.Error("case fix must be safe to auto-apply")
	}

	diags = runLints(t, rms.DefaultCompatibility, "<LAND_GENERATION> create_land", NewAttributeCase())
	wantMessages(t, diags)
}

func TestIncorrectSection(t *testing.T) {
	diags := runLints(t, rms.DefaultCompatibility, "<PLAYER_SETUP> create_land", NewIncorrectSection())
	wantMessages(t, diags,
		"Command is invalid in section <PLAYER_SETUP>, it can only appear in <LAND_GENERATION>")
	if len(diags[0].Notes) != 1 || diags[0].Notes[0].Msg != "Section started here" {
		t.Errorf("notes = %+v", diags[0].Notes)
	}
}

func TestCommandOutsideAnySection(t *testing.T) {
	diags := runLints(t, rms.DefaultCompatibility, "create_object GOLD", NewIncorrectSection())
	wantMessages(t, diags,
		"Command can only appear in section <OBJECTS_GENERATION>, but no section has been started.")
}

func TestInclude(t *testing.T) {
	content := "#include_drs resources.drs 54000 #include other-map.rms"
	diags := runLints(t, rms.DefaultCompatibility, content, NewInclude())
	wantMessages(t, diags,
		"#include_drs can only be used by builtin maps",
		"#include can only be used by builtin maps")
	if diags[0].Severity != diag.SevError || diags[1].Severity != diag.SevError {
		t.Error("include diagnostics must be errors")
	}
}

func TestActorAreasMatch(t *testing.T) {
	content := strings.Join([]string{
		"create_object VILLAGER { actor_area 1 }",
		"create_object VILLAGER { actor_area_to_place_in 1 }",
		"create_object VILLAGER { avoid_actor_area 1 }",
		"create_object VILLAGER { actor_area_to_place_in 17 }",
		"create_object VILLAGER { avoid_actor_area 18 }",
	}, "\n")
	diags := runLints(t, rms.CompatDefinitiveEdition, content, NewActorAreasMatch())
	wantMessages(t, diags,
		"Actor area 17 is never defined",
		"Actor area 18 is never defined")
	for _, d := range diags {
		if d.Code != "actor-areas-match" {
			t.Errorf("code = %q", d.Code)
		}
		if d.Severity != diag.SevWarning {
			t.Errorf("severity = %v", d.Severity)
		}
	}
}

func TestDeadBranchComment(t *testing.T) {
	content := "start_random percent_chance 50 /* pick me */ end_random"
	diags := runLints(t, rms.DefaultCompatibility, content, NewDeadBranchComment())
	wantMessages(t, diags, "Using comments inside `start_random` groups is potentially dangerous.")
	d := diags[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "`start_random` opened here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Suggestions) != 1 {
		t.Errorf("suggestions = %+v", d.Suggestions)
	}

	diags = runLints(t, rms.DefaultCompatibility, "/* top comment */ start_random percent_chance 50 end_random", NewDeadBranchComment())
	wantMessages(t, diags)
}

func TestCompatibilityEffects(t *testing.T) {
	content := "<PLAYER_SETUP> effect_amount SET_ATTRIBUTE VILLAGER ATTR_HITPOINTS 10"
	diags := runLints(t, rms.CompatConquerors, content, NewCompatibility())
	wantMessages(t, diags, "RMS Effects require UserPatch 1.5")
	if diags[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v", diags[0].Severity)
	}

	diags = runLints(t, rms.CompatUserPatch15, content, NewCompatibility())
	wantMessages(t, diags)

	guarded := "<PLAYER_SETUP> if UP_EXTENSION effect_amount SET_ATTRIBUTE VILLAGER ATTR_HITPOINTS 10 endif"
	diags = runLints(t, rms.CompatConquerors, guarded, NewCompatibility())
	wantMessages(t, diags)

	// The guard stops counting once its branch closes.
	after := "<PLAYER_SETUP> if UP_EXTENSION endif effect_amount SET_ATTRIBUTE VILLAGER ATTR_HITPOINTS 10"
	diags = runLints(t, rms.CompatConquerors, after, NewCompatibility())
	wantMessages(t, diags, "RMS Effects require UserPatch 1.5")
}

func TestCompatibilityNomadResources(t *testing.T) {
	content := "<PLAYER_SETUP> nomad_resources"
	checks := []struct {
		compat    rms.Compatibility
		supported bool
	}{
		{rms.CompatAll, false},
		{rms.CompatConquerors, false},
		{rms.CompatHDEdition, true},
		{rms.CompatUserPatch14, true},
		{rms.CompatDefinitiveEdition, true},
	}
	for _, check := range checks {
		diags := runLints(t, check.compat, content, NewCompatibility())
		if check.supported {
			wantMessages(t, diags)
		} else {
			wantMessages(t, diags, "Nomad resources requires UserPatch 1.4 or HD Edition")
		}
	}
}

func TestCompatibilityActorAreas(t *testing.T) {
	content := "<OBJECTS_GENERATION> create_object VILLAGER { actor_area 1 }"
	diags := runLints(t, rms.CompatUserPatch15, content, NewCompatibility())
	wantMessages(t, diags, "Actor areas are only supported in the Definitive Edition")

	diags = runLints(t, rms.CompatDefinitiveEdition, content, NewCompatibility())
	wantMessages(t, diags)
}

func TestCommentContentsConstName(t *testing.T) {
	content := "start_random percent_chance 50 /* GRASS */ end_random"
	diags := runLints(t, rms.CompatConquerors, content, NewCommentContents())
	wantMessages(t, diags,
		"Using constant names in comments inside `start_random` or `if` statements can be dangerous, because the game may interpret them as other tokens instead.")
	d := diags[0]
	if len(d.Suggestions) != 1 || d.Suggestions[0].Replacement.Text != "`GRASS`" {
		t.Errorf("suggestions = %+v", d.Suggestions)
	}

	// The Definitive Edition parser handles comments correctly.
	diags = runLints(t, rms.CompatDefinitiveEdition, content, NewCommentContents())
	wantMessages(t, diags)

	// Outside if/start_random the name is harmless.
	diags = runLints(t, rms.CompatConquerors, "/* GRASS */", NewCommentContents())
	wantMessages(t, diags)
}

func TestCommentContentsUnfinishedCommand(t *testing.T) {
	content := "/* base_terrain */"
	diags := runLints(t, rms.CompatConquerors, content, NewCommentContents())
	wantMessages(t, diags,
		"This close comment may be ignored because a previous command is expecting more arguments")
	if len(diags[0].Notes) != 1 || diags[0].Notes[0].Msg != "Command started here" {
		t.Errorf("notes = %+v", diags[0].Notes)
	}
}

func TestCommentContentsSpansAreFileRelative(t *testing.T) {
	content := "start_random percent_chance 50 /* GRASS */ end_random"
	diags := runLints(t, rms.CompatConquerors, content, NewCommentContents())
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	start := diags[0].Primary.Start
	end := diags[0].Primary.End
	if got := content[start:end]; got != "GRASS" {
		t.Errorf("primary span covers %q, want %q", got, "GRASS")
	}
}

func TestUnknownAttribute(t *testing.T) {
	diags := runLints(t, rms.DefaultCompatibility, "<LAND_GENERATION> create_lnad", NewUnknownAttribute())
	wantMessages(t, diags, "Unknown attribute `create_lnad`")
	if len(diags[0].Suggestions) != 1 || diags[0].Suggestions[0].Replacement.Text != "create_land" {
		t.Errorf("suggestions = %+v", diags[0].Suggestions)
	}

	diags = runLints(t, rms.DefaultCompatibility, "42", NewUnknownAttribute())
	wantMessages(t, diags)
}
