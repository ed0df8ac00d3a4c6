package lints

import (
	"fmt"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/source"
)

// ActorAreasMatch tracks `actor_area` declarations and warns when a
// placement refers to an area number that was never declared.
type ActorAreasMatch struct {
	areas map[int32]source.Span
}

// NewActorAreasMatch creates the lint.
func NewActorAreasMatch() *ActorAreasMatch {
	return &ActorAreasMatch{areas: make(map[int32]source.Span)}
}

// Name implements checker.Lint.
func (*ActorAreasMatch) Name() string { return "actor-areas-match" }

// RunInsideComments implements checker.Lint.
func (*ActorAreasMatch) RunInsideComments() bool { return false }

// LintAtom implements checker.AtomLint.
func (l *ActorAreasMatch) LintAtom(_ *rms.ParseState, atom *parser.Atom) []diag.Diagnostic {
	if atom.Kind != parser.AtomCommand || len(atom.Args) == 0 {
		return nil
	}
	switch atom.Head.Value {
	case "actor_area":
		if n, ok := parseNumber(&atom.Args[0]); ok {
			l.areas[n] = atom.Args[0].Span
		}
	case "actor_area_to_place_in", "avoid_actor_area":
		if n, ok := parseNumber(&atom.Args[0]); ok {
			if _, declared := l.areas[n]; !declared {
				return []diag.Diagnostic{
					diag.NewWarning(atom.Args[0].Span,
						fmt.Sprintf("Actor area %d is never defined", n)),
				}
			}
		}
	}
	return nil
}
