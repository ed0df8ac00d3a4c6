package rmscheck

import (
	"strings"
	"testing"

	"rmscheck/internal/rms"
	"rmscheck/internal/source"
)

func messages(r *Result) []string {
	var out []string
	for _, d := range r.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}

func TestCheckCleanScript(t *testing.T) {
	script := "<PLAYER_SETUP>\n" +
		"random_placement\n" +
		"<OBJECTS_GENERATION>\n" +
		"create_object VILLAGER {\n" +
		"  number_of_objects 4\n" +
		"  set_gaia_object_only\n" +
		"}\n"
	result := Check(script, rms.CompatConquerors)
	if result.Len() != 0 {
		t.Errorf("clean script produced diagnostics: %v", messages(result))
	}
	if result.HasErrors() || result.HasWarnings() {
		t.Error("clean script should have no errors or warnings")
	}
}

func TestCheckUndefinedConst(t *testing.T) {
	script := "<OBJECTS_GENERATION>\ncreate_object NOT_A_THING {\n}\n"
	result := Check(script, rms.CompatConquerors)
	if !result.HasErrors() {
		t.Fatalf("expected errors, got %v", messages(result))
	}
	found := false
	for _, d := range result.Diagnostics() {
		if strings.Contains(d.Message, "NOT_A_THING") {
			found = true
		}
	}
	if !found {
		t.Errorf("no diagnostic names the missing const: %v", messages(result))
	}
}

func TestCheckUnbalancedBrace(t *testing.T) {
	result := Check("}", rms.CompatConquerors)
	found := false
	for _, d := range result.Diagnostics() {
		if d.Message == "Unbalanced `}`, nothing is open" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing unbalanced-brace error: %v", messages(result))
	}
}

func TestCheckParseErrorsTagged(t *testing.T) {
	result := Check("#const NAME_ONLY\n", rms.CompatConquerors)
	found := false
	for _, d := range result.Diagnostics() {
		if d.Code == "parse" && d.Message == "Missing const value" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing tagged parse error: %v", messages(result))
	}
}

func TestCheckHeaderCompatibilityOverride(t *testing.T) {
	script := "/* Compatibility: UserPatch 1.5 */\n" +
		"<PLAYER_SETUP>\n" +
		"effect_amount SET_ATTRIBUTE VILLAGER ATTR_HITPOINTS 100\n"
	withHeader := Check(script, rms.CompatConquerors)
	for _, d := range withHeader.Diagnostics() {
		if strings.Contains(d.Message, "UserPatch 1.5") {
			t.Errorf("header override not applied: %v", messages(withHeader))
		}
	}

	noHeader := Check("<PLAYER_SETUP>\neffect_amount SET_ATTRIBUTE VILLAGER ATTR_HITPOINTS 100\n",
		rms.CompatConquerors)
	found := false
	for _, d := range noHeader.Diagnostics() {
		if strings.Contains(d.Message, "UserPatch 1.5") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a compatibility warning: %v", messages(noHeader))
	}
}

func TestCheckDiagnosticsSorted(t *testing.T) {
	script := "}\n<OBJECTS_GENERATION>\ncreate_object NOT_A_THING {\n}\n"
	result := Check(script, rms.CompatConquerors)
	diags := result.Diagnostics()
	for i := 1; i < len(diags); i++ {
		if diags[i].Primary.Start < diags[i-1].Primary.Start {
			t.Errorf("diagnostics not sorted by position: %v", messages(result))
			break
		}
	}
}

func TestCheckerMultipleFiles(t *testing.T) {
	c := NewChecker().
		AddSource("a.rms", "<PLAYER_SETUP>\n#const SHARED 7\n").
		AddSource("b.rms", "<OBJECTS_GENERATION>\ncreate_object SHARED {\n}\n")
	result := c.Check()
	if result.HasErrors() {
		t.Errorf("consts should carry across files: %v", messages(result))
	}
}

func TestParse(t *testing.T) {
	atoms, errors := Parse(source.FileID(1), "create_terrain SNOW { base_size 15 }")
	if len(errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", errors)
	}
	if len(atoms) != 4 {
		t.Fatalf("got %d atoms, want 4", len(atoms))
	}
}

func TestWords(t *testing.T) {
	words := Words(source.FileID(1), "one  two\nthree")
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	if words[2].Value != "three" {
		t.Errorf("words[2] = %q", words[2].Value)
	}
}
