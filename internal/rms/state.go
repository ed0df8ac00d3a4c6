package rms

import (
	"strings"

	"rmscheck/internal/diag"
	"rmscheck/internal/parser"
	"rmscheck/internal/source"
	"rmscheck/internal/token"
)

// NestingKind tags the construct that opened a nesting level.
type NestingKind uint8

const (
	// NestIf is an opening `if` statement.
	NestIf NestingKind = iota
	// NestElseIf is an `elseif` statement.
	NestElseIf
	// NestElse is an `else` statement.
	NestElse
	// NestStartRandom is an opening `start_random` statement.
	NestStartRandom
	// NestPercentChance is an opening `percent_chance` statement.
	NestPercentChance
	// NestBrace is an opening brace `{`.
	NestBrace
)

func (k NestingKind) matchLabel() string {
	switch k {
	case NestBrace:
		return "Matches this open brace `{`"
	case NestIf:
		return "Matches this `if`"
	case NestElseIf:
		return "Matches this `elseif`"
	case NestElse:
		return "Matches this `else`"
	case NestStartRandom:
		return "Matches this `start_random`"
	case NestPercentChance:
		return "Matches this `percent_chance`"
	}
	return "Matches this statement"
}

// Nesting is one entry of the nesting stack, keeping the opening atom around
// for error back-references.
type Nesting struct {
	Kind NestingKind
	Atom parser.Atom
}

// builtinDefsFile tags spans of atoms parsed from the embedded definition
// sources. Those atoms are discarded after their names are collected, so the
// ID never reaches a diagnostic.
const builtinDefsFile = ^source.FileID(0)

// ParseState is the mutable context of one check run. It is updated atom by
// atom, in file order, and discarded when the run completes.
type ParseState struct {
	// Compatibility is the target compatibility for this map script.
	Compatibility Compatibility
	// Nesting holds the currently open nested statements, innermost last.
	Nesting []Nesting
	// CurrentToken is the token type we are reading arguments for.
	CurrentToken *token.Type
	// TokenArgIndex is the number of arguments read so far.
	TokenArgIndex int
	// CurrentSection is the last seen <SECTION> atom.
	CurrentSection *parser.Atom
	// IsComment reports whether the token stream is inside a comment.
	IsComment bool

	endOfHeaders   bool
	builtinConsts  map[string]struct{}
	builtinDefines map[string]struct{}
	consts         map[string]struct{}
	defines        map[string]struct{}
	optionDefines  map[string]struct{}
}

// NewParseState creates a state for one run and loads the builtin symbols
// for the given compatibility mode.
func NewParseState(compat Compatibility) *ParseState {
	s := &ParseState{
		consts:  make(map[string]struct{}),
		defines: make(map[string]struct{}),
	}
	s.SetCompatibility(compat)
	return s
}

// OptionalDefine tracks that a #define name may or may not exist from this
// point. Such names are valid in `if` statements, but not in commands.
func (s *ParseState) OptionalDefine(name string) {
	s.optionDefines[name] = struct{}{}
}

// Define tracks that a #define name exists.
func (s *ParseState) Define(name string) {
	s.defines[name] = struct{}{}
}

// DefineConst tracks that a #const name exists.
func (s *ParseState) DefineConst(name string) {
	s.consts[name] = struct{}{}
}

// HasDefine reports whether a #define name exists.
func (s *ParseState) HasDefine(name string) bool {
	if _, ok := s.defines[name]; ok {
		return true
	}
	_, ok := s.builtinDefines[name]
	return ok
}

// MayHaveDefine reports whether a #define name could exist at this point.
func (s *ParseState) MayHaveDefine(name string) bool {
	if s.HasDefine(name) {
		return true
	}
	_, ok := s.optionDefines[name]
	return ok
}

// HasConst reports whether a #const name exists.
func (s *ParseState) HasConst(name string) bool {
	if _, ok := s.consts[name]; ok {
		return true
	}
	_, ok := s.builtinConsts[name]
	return ok
}

// Consts lists all #const names currently available.
func (s *ParseState) Consts() []string {
	names := make([]string, 0, len(s.consts)+len(s.builtinConsts))
	for name := range s.consts {
		names = append(names, name)
	}
	for name := range s.builtinConsts {
		names = append(names, name)
	}
	return names
}

// Defines lists all #define names currently available.
func (s *ParseState) Defines() []string {
	names := make([]string, 0, len(s.defines)+len(s.builtinDefines))
	for name := range s.defines {
		names = append(names, name)
	}
	for name := range s.builtinDefines {
		names = append(names, name)
	}
	return names
}

// SetCompatibility switches the target compatibility mode and reloads the
// builtin symbol tables by re-parsing the embedded definition sources.
func (s *ParseState) SetCompatibility(compat Compatibility) {
	s.Compatibility = compat

	s.builtinConsts = make(map[string]struct{})
	s.builtinDefines = make(map[string]struct{})
	for _, src := range definitionSources(compat) {
		p := parser.NewAt(builtinDefsFile, src, 0)
		for {
			atom, _, ok := p.Next()
			if !ok {
				break
			}
			switch atom.Kind {
			case parser.AtomConst:
				s.builtinConsts[atom.Name.Value] = struct{}{}
			case parser.AtomDefine:
				s.builtinDefines[atom.Name.Value] = struct{}{}
			}
		}
	}

	s.optionDefines = make(map[string]struct{})
	for _, name := range aocOptionDefines {
		s.OptionalDefine(name)
	}
	// Only the UserPatch-based targets expose the game-setting defines;
	// Definitive Edition is not UserPatch-derived.
	if compat == CompatUserPatch15 || compat == CompatWololoKingdoms {
		for _, name := range upOptionDefines() {
			s.OptionalDefine(name)
		}
	}
}

// Update tracks symbol and section state for a new atom.
func (s *ParseState) Update(atom *parser.Atom) {
	s.updateHeaders(atom)

	switch atom.Kind {
	case parser.AtomSection:
		section := *atom
		s.CurrentSection = &section
	case parser.AtomDefine:
		s.Define(atom.Name.Value)
	case parser.AtomConst:
		s.DefineConst(atom.Name.Value)
	}
}

// parseHeaderComment scans a header comment for `Key: Value` metadata lines.
func (s *ParseState) parseHeaderComment(content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "* ")

		name, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		if strings.ToLower(strings.TrimSpace(name)) != "compatibility" {
			continue
		}
		if compat, ok := ParseCompatibility(value); ok {
			s.SetCompatibility(compat)
		}
	}
}

// updateHeaders processes header comments. The header region ends for good
// at the first non-comment atom.
func (s *ParseState) updateHeaders(atom *parser.Atom) {
	if s.endOfHeaders {
		return
	}
	if atom.Kind == parser.AtomComment {
		s.parseHeaderComment(atom.Content)
	} else {
		s.endOfHeaders = true
	}
}

func unbalancedError(name string, atom *parser.Atom, top *Nesting) diag.Diagnostic {
	msg := "Unbalanced `" + name + "`"
	if top == nil {
		return diag.NewError(atom.Span, msg+", nothing is open")
	}
	return diag.NewError(atom.Span, msg).WithNote(top.Atom.Span, top.Kind.matchLabel())
}

func (s *ParseState) top() *Nesting {
	if len(s.Nesting) == 0 {
		return nil
	}
	return &s.Nesting[len(s.Nesting)-1]
}

func (s *ParseState) push(kind NestingKind, atom *parser.Atom) {
	s.Nesting = append(s.Nesting, Nesting{Kind: kind, Atom: *atom})
}

func (s *ParseState) pop() {
	s.Nesting = s.Nesting[:len(s.Nesting)-1]
}

// topIs reports whether the innermost nesting entry has one of the given
// kinds.
func (s *ParseState) topIs(kinds ...NestingKind) bool {
	top := s.top()
	if top == nil {
		return false
	}
	for _, kind := range kinds {
		if top.Kind == kind {
			return true
		}
	}
	return false
}

// UpdateNesting transitions the nesting stack for a new atom. A mismatched
// closer produces an error naming the opener it would have to match; the
// stack is left alone so later closers can still succeed.
func (s *ParseState) UpdateNesting(atom *parser.Atom) *diag.Diagnostic {
	switch atom.Kind {
	case parser.AtomOpenBlock:
		s.push(NestBrace, atom)

	case parser.AtomCloseBlock:
		if !s.topIs(NestBrace) {
			d := unbalancedError("}", atom, s.top())
			return &d
		}
		s.pop()

	case parser.AtomIf:
		s.push(NestIf, atom)

	case parser.AtomElseIf:
		if s.topIs(NestIf, NestElseIf) {
			s.pop()
			s.push(NestElseIf, atom)
			return nil
		}
		d := unbalancedError("elseif", atom, s.top())
		s.push(NestElseIf, atom)
		return &d

	case parser.AtomElse:
		if s.topIs(NestIf, NestElseIf) {
			s.pop()
			s.push(NestElse, atom)
			return nil
		}
		d := unbalancedError("else", atom, s.top())
		s.push(NestElse, atom)
		return &d

	case parser.AtomEndIf:
		if !s.topIs(NestIf, NestElseIf, NestElse) {
			d := unbalancedError("endif", atom, s.top())
			return &d
		}
		s.pop()

	case parser.AtomStartRandom:
		s.push(NestStartRandom, atom)

	case parser.AtomPercentChance:
		// percent_chance branches are siblings, not nested: the previous
		// branch closes implicitly.
		if s.topIs(NestPercentChance) {
			s.pop()
		}
		if !s.topIs(NestStartRandom) {
			d := unbalancedError("percent_chance", atom, s.top())
			s.push(NestPercentChance, atom)
			return &d
		}
		s.push(NestPercentChance, atom)

	case parser.AtomEndRandom:
		if s.topIs(NestPercentChance) {
			s.pop()
		}
		if !s.topIs(NestStartRandom) {
			d := unbalancedError("end_random", atom, s.top())
			return &d
		}
		s.pop()
	}

	return nil
}
