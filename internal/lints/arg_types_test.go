package lints

import (
	"testing"

	"rmscheck/internal/diag"
	"rmscheck/internal/rms"
)

func TestIsNumeric(t *testing.T) {
	if !isNumeric("10") || !isNumeric("432543") || !isNumeric("-35") {
		t.Error("expected numeric")
	}
	if isNumeric("rnd(1,3)") || isNumeric("SOMEVAL") {
		t.Error("expected non-numeric")
	}
}

func TestIsValidRnd(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		fixed string
	}{
		{"rnd(1,2)", true, ""},
		{"rnd(4,2)", true, ""},
		{"rnd(4, 2)", false, "rnd(4,2)"},
		{"SOMEVAL", false, ""},
		{"42", false, ""},
	}
	for _, tt := range tests {
		ok, fixed := isValidRnd(tt.value)
		if ok != tt.ok || fixed != tt.fixed {
			t.Errorf("isValidRnd(%q) = %v, %q; want %v, %q", tt.value, ok, fixed, tt.ok, tt.fixed)
		}
	}
}

func TestArgTypesNumberExpected(t *testing.T) {
	content := "create_object GOLD { number_of_objects SOMEVAL }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags,
		"Expected a number argument to number_of_objects, but got SOMEVAL")
	if diags[0].Severity != diag.SevError {
		t.Errorf("severity = %v", diags[0].Severity)
	}
	if diags[0].Code != "arg-types" {
		t.Errorf("code = %q", diags[0].Code)
	}
}

func TestArgTypesConstExpected(t *testing.T) {
	content := "create_object 0"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Expected a const name, but got a number 0")
}

func TestArgTypesMissingArguments(t *testing.T) {
	content := "create_object"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Missing arguments to create_object")
}

func TestArgTypesRndSuggestion(t *testing.T) {
	content := "create_object GOLD { number_of_objects (1,5) }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags,
		"Expected a number argument to number_of_objects, but got (1,5)")
	d := diags[0]
	if len(d.Suggestions) != 1 {
		t.Fatalf("suggestions = %+v", d.Suggestions)
	}
	if d.Suggestions[0].Message != "Did you forget the `rnd`?" {
		t.Errorf("suggestion message = %q", d.Suggestions[0].Message)
	}
	if d.Suggestions[0].Replacement.Text != "rnd(1,5)" {
		t.Errorf("replacement = %q", d.Suggestions[0].Replacement.Text)
	}
}

func TestArgTypesValidRndAccepted(t *testing.T) {
	content := "create_object GOLD { number_of_objects rnd(1,5) }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags)
}

func TestArgTypesNeverDefined(t *testing.T) {
	content := "create_object SOME_UNIT"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Token `SOME_UNIT` is never defined")
}

func TestArgTypesValuelessToken(t *testing.T) {
	content := "#define MY_THING create_object MY_THING"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags,
		"Expected a valued token (defined using #const), got a valueless token `MY_THING` (defined using #define)")
}

func TestArgTypesDidYouMean(t *testing.T) {
	content := "#const MY_TERRAIN 42 create_terrain MY_TERRAIM"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Token `MY_TERRAIM` is never defined")
	d := diags[0]
	if len(d.Suggestions) != 1 || d.Suggestions[0].Replacement.Text != "MY_TERRAIN" {
		t.Errorf("suggestions = %+v", d.Suggestions)
	}
	if d.Suggestions[0].Message != "Did you mean `MY_TERRAIN`?" {
		t.Errorf("suggestion message = %q", d.Suggestions[0].Message)
	}
}

func TestArgTypesIfCondition(t *testing.T) {
	diags := runLints(t, rms.DefaultCompatibility, "if TOTALLY_UNHEARD_OF endif", NewArgTypes())
	// `if` parses as flow control, not a command, so the condition is not
	// checked here.
	wantMessages(t, diags)
}

func TestBaseElevationRange(t *testing.T) {
	content := "create_land { base_elevation 8 }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Elevation value out of range (0 or 1-7)")
	if diags[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v", diags[0].Severity)
	}
}

func TestLandPositionRange(t *testing.T) {
	content := "create_land { land_position 120 99 }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "Land position out of range (0-100)")
}

func TestZone99(t *testing.T) {
	content := "create_land { zone 99 }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags, "`zone 99` crashes the game")
}

func TestAssignToUnknownTarget(t *testing.T) {
	content := "create_land { assign_to X 0 0 0 }"
	diags := runLints(t, rms.DefaultCompatibility, content, NewArgTypes())
	wantMessages(t, diags,
		"Token `X` is never defined",
		"`assign_to` Target must be AT_COLOR, AT_PLAYER, AT_TEAM")
}

func TestAssignToTeamValid(t *testing.T) {
	content := "create_land { assign_to AT_TEAM 0 0 0 }"
	diags := runLints(t, rms.CompatWololoKingdoms, content, NewArgTypes())
	wantMessages(t, diags)
}

func TestAssignToTeamOutOfRange(t *testing.T) {
	content := "create_land { assign_to AT_TEAM 7 -2 4 }"
	diags := runLints(t, rms.CompatWololoKingdoms, content, NewArgTypes())
	wantMessages(t, diags,
		"`assign_to` Number must be 1-4 when targeting AT_TEAM",
		"`assign_to` Mode must be 0 (random selection) or -1 (ordered selection) when targeting AT_TEAM",
		"`assign_to` Flags must only combine flags 1 and 2")
}

func TestMeant(t *testing.T) {
	if got, ok := meant("MY_TERRAIM", []string{"MY_TERRAIN", "GRASS"}); !ok || got != "MY_TERRAIN" {
		t.Errorf("meant = %q, %v", got, ok)
	}
	if _, ok := meant("ZZZZ", []string{"MY_TERRAIN", "GRASS"}); ok {
		t.Error("expected no match for a dissimilar name")
	}
}

func TestJaroWinkler(t *testing.T) {
	if got := jaroWinkler("abc", "abc"); got != 1 {
		t.Errorf("identical strings = %v, want 1", got)
	}
	if got := jaroWinkler("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings = %v, want 0", got)
	}
	if sim := jaroWinkler("create_land", "create_lnad"); sim < 0.8 {
		t.Errorf("transposed strings = %v, want >= 0.8", sim)
	}
}
