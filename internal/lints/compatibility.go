package lints

import (
	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
)

// Compatibility warns about commands that need a newer game version than
// the one the map targets. An `if UP_EXTENSION` or `if UP_AVAILABLE` guard
// around a command counts as support.
type Compatibility struct {
	// conditions mirrors the open if/elseif/else stack, holding the
	// condition name of each level.
	conditions []string
}

// NewCompatibility creates the lint.
func NewCompatibility() *Compatibility {
	return &Compatibility{}
}

// Name implements checker.Lint.
func (*Compatibility) Name() string { return "compatibility" }

// RunInsideComments implements checker.Lint.
func (*Compatibility) RunInsideComments() bool { return false }

func (l *Compatibility) hasUpExtension(state *rms.ParseState) bool {
	if state.Compatibility >= rms.CompatUserPatch15 {
		return true
	}
	for _, cond := range l.conditions {
		if cond == "UP_EXTENSION" {
			return true
		}
	}
	return false
}

func (l *Compatibility) hasUpAvailable(state *rms.ParseState) bool {
	if state.Compatibility >= rms.CompatUserPatch14 {
		return true
	}
	for _, cond := range l.conditions {
		if cond == "UP_AVAILABLE" {
			return true
		}
	}
	return false
}

func (l *Compatibility) popCondition() {
	if len(l.conditions) > 0 {
		l.conditions = l.conditions[:len(l.conditions)-1]
	}
}

const upExtensionHint = "Wrap this command in an `if UP_EXTENSION` statement or add a /* Compatibility: UserPatch 1.5 */ comment at the top of the file"
const deHint = "Add a /* Compatibility: Definitive Edition */ comment at the top of the file"

// LintAtom implements checker.AtomLint.
func (l *Compatibility) LintAtom(state *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	var warnings []diag.Diagnostic

	if atom.Kind == parser.AtomCommand {
		switch atom.Head.Value {
		case "effect_amount", "effect_percent":
			if !l.hasUpExtension(state) {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "RMS Effects require UserPatch 1.5").
						Suggest(diag.NewSuggestion(atom.Span, upExtensionHint)))
			}
		case "direct_placement":
			if !l.hasUpExtension(state) {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "Direct placement requires UserPatch 1.5 or Definitive Edition").
						Suggest(diag.NewSuggestion(atom.Span, upExtensionHint)))
			}
		case "nomad_resources":
			if !l.hasUpAvailable(state) && state.Compatibility != rms.CompatHDEdition {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "Nomad resources requires UserPatch 1.4 or HD Edition").
						Suggest(diag.NewSuggestion(atom.Span,
							"Wrap this command in an `if UP_AVAILABLE` statement or add a /* Compatibility: UserPatch 1.4 */ comment at the top of the file")))
			}
		case "actor_area", "actor_area_to_place_in", "avoid_actor_area",
			"avoid_all_actor_areas", "actor_area_radius":
			if state.Compatibility != rms.CompatDefinitiveEdition {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "Actor areas are only supported in the Definitive Edition").
						Suggest(diag.NewSuggestion(atom.Span, deHint)))
			}
		case "avoid_forest_zone", "place_on_forest_zone", "avoid_cliff_zone":
			if state.Compatibility != rms.CompatDefinitiveEdition {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "Forest and cliff zones are only supported in the Definitive Edition").
						Suggest(diag.NewSuggestion(atom.Span, deHint)))
			}
		case "second_object":
			if state.Compatibility != rms.CompatDefinitiveEdition {
				warnings = append(warnings,
					diag.NewWarning(atom.Span, "second_object is only supported in the Definitive Edition").
						Suggest(diag.NewSuggestion(atom.Span, deHint)))
			}
		}
	}

	switch atom.Kind {
	case parser.AtomIf:
		l.conditions = append(l.conditions, atom.Arg.Value)
	case parser.AtomElseIf:
		l.popCondition()
		l.conditions = append(l.conditions, atom.Arg.Value)
	case parser.AtomElse:
		l.popCondition()
		// Placeholder entry so endif still pops one level.
		l.conditions = append(l.conditions, " ")
	case parser.AtomEndIf:
		l.popCondition()
	}

	return warnings
}
