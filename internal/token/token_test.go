package token

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		known   bool
		argLen  int
		ctxKind ContextKind
	}{
		{"#const", true, 2, CtxFlow},
		{"#define", true, 1, CtxFlow},
		{"if", true, 1, CtxFlow},
		{"else", true, 0, CtxFlow},
		{"<PLAYER_SETUP>", true, 0, CtxSection},
		{"create_terrain", true, 1, CtxCommand},
		{"base_size", true, 1, CtxAnyOf},
		{"number_of_objects", true, 1, CtxAttribute},
		{"assign_to", true, 4, CtxAttribute},
		{"effect_amount", true, 4, CtxCommand},
		{"not_a_real_token", false, 0, 0},
		{"BASE_SIZE", false, 0, 0},
	}
	for _, tt := range tests {
		tok, ok := Lookup(tt.name)
		if ok != tt.known {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.known)
			continue
		}
		if !ok {
			continue
		}
		if got := tok.ArgLen(); got != tt.argLen {
			t.Errorf("%s: ArgLen() = %d, want %d", tt.name, got, tt.argLen)
		}
		if tok.Context.Kind != tt.ctxKind {
			t.Errorf("%s: Context.Kind = %v, want %v", tt.name, tok.Context.Kind, tt.ctxKind)
		}
	}
}

func TestArgTypes(t *testing.T) {
	tok, _ := Lookup("#const")
	if tok.ArgType(0) != ArgWord {
		t.Errorf("#const arg 0 = %v, want Word", tok.ArgType(0))
	}
	if tok.ArgType(1) != ArgNumber {
		t.Errorf("#const arg 1 = %v, want Number", tok.ArgType(1))
	}
	if tok.ArgType(2) != ArgNone {
		t.Errorf("#const arg 2 = %v, want None", tok.ArgType(2))
	}
	if tok.ArgType(7) != ArgNone {
		t.Errorf("out-of-range arg = %v, want None", tok.ArgType(7))
	}
}

func TestAttributeScope(t *testing.T) {
	tok, _ := Lookup("number_of_objects")
	if tok.Context.Scope != "create_object" {
		t.Errorf("scope = %q, want create_object", tok.Context.Scope)
	}

	tok, _ = Lookup("base_terrain")
	if tok.Context.Kind != CtxAnyOf || len(tok.Context.Alternatives) != 6 {
		t.Errorf("base_terrain context = %+v, want 6 alternatives", tok.Context)
	}
}

func TestElevationAttributeScope(t *testing.T) {
	for _, name := range []string{"spacing", "enable_balanced_elevation"} {
		tok, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if tok.Context.Kind != CtxAttribute || tok.Context.Scope != "create_elevation" {
			t.Errorf("%s context = %+v, want attribute of create_elevation", name, tok.Context)
		}
	}
}
