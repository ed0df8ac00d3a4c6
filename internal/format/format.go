// Package format pretty-prints map scripts: consistent indentation,
// aligned attribute arguments, Java-style multiline comments. Windows line
// endings, since that is what the game expects.
package format

import (
	"strings"

	"rmscheck/internal/parser"
	"rmscheck/internal/wordize"
)

// Options controls the formatter.
type Options struct {
	// TabSize is the width of one indentation step, in spaces. Only used
	// when UseSpaces is set.
	TabSize int
	// UseSpaces selects spaces instead of tabs for indentation.
	UseSpaces bool
	// AlignArguments lines up the first two argument columns in a block of
	// commands.
	AlignArguments bool
}

// DefaultOptions returns the formatting style used by the CLI.
func DefaultOptions() Options {
	return Options{TabSize: 2, UseSpaces: true, AlignArguments: true}
}

// Format formats a map script source string.
func Format(src string, opts Options) string {
	p := parser.NewAt(0, src, 0)
	atoms, _ := p.All()
	f := &formatter{opts: opts, source: src}
	f.writeAtoms(atoms)
	return string(f.result)
}

// width tracks alignment widths for the commands of one block.
type width struct {
	// command is the width of the widest command name in the block.
	command int
	// arg is the width of the widest first argument in the block.
	arg int
}

type formatter struct {
	opts   Options
	source string
	// indent is the current indentation level.
	indent int
	// needsIndent is set while the current output line is still empty.
	needsIndent bool
	// widths has one entry per open alignment context.
	widths      []width
	insideBlock int
	result      []byte
	// prev is the last atom written.
	prev *parser.Atom
}

func (f *formatter) prevKind() (parser.Kind, bool) {
	if f.prev == nil {
		return 0, false
	}
	return f.prev.Kind, true
}

func (f *formatter) newline() {
	f.result = append(f.result, "\r\n"...)
	f.needsIndent = true
}

func (f *formatter) maybeIndent() {
	if !f.needsIndent {
		return
	}
	if f.opts.UseSpaces {
		for i := 0; i < f.indent*f.opts.TabSize; i++ {
			f.result = append(f.result, ' ')
		}
	} else {
		for i := 0; i < f.indent; i++ {
			f.result = append(f.result, '\t')
		}
	}
	f.needsIndent = false
}

func (f *formatter) text(text string) {
	f.maybeIndent()
	f.result = append(f.result, text...)
}

func (f *formatter) pad(n int) {
	for i := 0; i < n; i++ {
		f.result = append(f.result, ' ')
	}
}

func (f *formatter) topWidth() width {
	if len(f.widths) == 0 {
		return width{}
	}
	return f.widths[len(f.widths)-1]
}

// command writes a command and its arguments, aligning the first two
// argument columns when enabled. Block-opening commands keep the brace on
// the same line.
func (f *formatter) command(name wordize.Word, args []wordize.Word, isBlock bool) {
	f.text(name.Value)
	w := f.topWidth()

	rest := args
	if f.opts.AlignArguments && len(args) > 0 {
		f.pad(w.command - len(name.Value))
		f.result = append(f.result, ' ')
		f.text(args[0].Value)
		if len(args) > 1 {
			f.pad(w.arg - len(args[0].Value))
		}
		rest = args[1:]
	}
	for _, arg := range rest {
		f.result = append(f.result, ' ')
		f.text(arg.Value)
	}

	if isBlock {
		f.result = append(f.result, ' ')
	} else {
		f.newline()
	}
}

func (f *formatter) section(name wordize.Word) {
	if f.prev != nil {
		f.newline()
	}
	f.text(name.Value)
	f.newline()
}

// block writes a { } group. atoms[i] is the open brace; the close brace, if
// present, is consumed too.
func (f *formatter) block(atoms []parser.Atom, i int) int {
	end := i + 1
	for end < len(atoms) && atoms[end].Kind != parser.AtomCloseBlock {
		end++
	}
	commands := atoms[i+1 : end]

	f.insideBlock++

	// Measure the block for argument alignment. Commands nested in `if`
	// branches count with their extra indentation.
	var w width
	nested := 0
	for k := range commands {
		switch commands[k].Kind {
		case parser.AtomCommand:
			nameWidth := len(commands[k].Head.Value) + nested*f.opts.TabSize
			if nameWidth > w.command {
				w.command = nameWidth
			}
			if len(commands[k].Args) > 0 && len(commands[k].Args[0].Value) > w.arg {
				w.arg = len(commands[k].Args[0].Value)
			}
		case parser.AtomIf:
			nested++
		case parser.AtomEndIf:
			nested--
		}
	}

	f.text("{")
	f.newline()
	f.indent++
	f.widths = append(f.widths, w)

	f.writeAtoms(commands)

	f.widths = f.widths[:len(f.widths)-1]

	if kind, ok := f.prevKind(); ok && kind == parser.AtomOther {
		f.newline()
	}

	f.insideBlock--
	f.indent--
	f.text("}")
	f.newline()

	if end < len(atoms) {
		return end + 1
	}
	return end
}

// condition writes an if/elseif/else/endif construct. atoms[i] is the `if`.
func (f *formatter) condition(atoms []parser.Atom, i int) int {
	f.text("if ")
	f.text(atoms[i].Arg.Value)
	f.newline()
	f.indent++

	// Drop the command padding a level so commands inside the branch do
	// not over-indent.
	w := f.topWidth()
	w.command -= f.opts.TabSize
	if w.command < 0 {
		w.command = 0
	}
	f.widths = append(f.widths, w)

	end := i + 1
	depth := 1
	for ; end < len(atoms); end++ {
		switch atoms[end].Kind {
		case parser.AtomIf:
			depth++
		case parser.AtomEndIf:
			depth--
		}
		if depth == 0 {
			break
		}
	}

	body := atoms[i+1 : end]
	k := 0
	for k < len(body) {
		switch body[k].Kind {
		case parser.AtomElseIf, parser.AtomElse:
			f.indent--
			k = f.writeAtom(body, k)
			f.indent++
		default:
			k = f.writeAtom(body, k)
		}
	}

	f.widths = f.widths[:len(f.widths)-1]
	f.indent--

	if end >= len(atoms) {
		return end
	}
	next := f.writeAtom(atoms, end)

	if f.insideBlock == 0 && next < len(atoms) && atoms[next].Kind != parser.AtomOpenBlock {
		// Breathing room after a top-level endif.
		f.newline()
	}
	return next
}

// random writes a start_random group. Branches holding at most one simple
// statement go on one line each, aligned; anything more keeps its own
// indented block.
func (f *formatter) random(atoms []parser.Atom, i int) int {
	type branch struct {
		chance wordize.Word
		body   []parser.Atom
	}
	var leading []parser.Atom
	var branches []branch

	end := i + 1
	depth := 1
scan:
	for ; end < len(atoms); end++ {
		a := atoms[end]
		if a.Kind == parser.AtomPercentChance && depth == 1 {
			branches = append(branches, branch{chance: a.Arg})
			continue
		}
		switch a.Kind {
		case parser.AtomStartRandom:
			depth++
		case parser.AtomEndRandom:
			depth--
			if depth == 0 {
				break scan
			}
		}
		if len(branches) == 0 {
			leading = append(leading, a)
		} else {
			branches[len(branches)-1].body = append(branches[len(branches)-1].body, a)
		}
	}

	f.text("start_random")
	f.newline()
	f.indent++
	f.widths = append(f.widths, width{})

	f.writeAtoms(leading)

	simple := true
	for _, b := range branches {
		if len(b.body) > 1 {
			simple = false
			break
		}
		if len(b.body) == 1 {
			switch b.body[0].Kind {
			case parser.AtomDefine, parser.AtomConst, parser.AtomUndefine, parser.AtomCommand:
			default:
				simple = false
			}
		}
		if !simple {
			break
		}
	}

	if simple {
		longest := 0
		for _, b := range branches {
			if n := len("percent_chance ") + len(b.chance.Value); n > longest {
				longest = n
			}
		}
		for _, b := range branches {
			label := "percent_chance " + b.chance.Value
			f.text(label)
			f.pad(longest - len(label))
			if len(b.body) > 0 {
				f.text(" ")
				f.writeAtom(b.body, 0)
			} else {
				f.newline()
			}
		}
	} else {
		for _, b := range branches {
			f.text("percent_chance " + b.chance.Value)
			f.newline()
			f.indent++
			f.writeAtoms(b.body)
			f.indent--
		}
	}

	f.widths = f.widths[:len(f.widths)-1]
	f.indent--
	f.text("end_random")
	f.newline()

	if end < len(atoms) {
		return end + 1
	}
	return end
}

// comment writes a comment, Java-style for multiline bodies.
func (f *formatter) comment(content string) {
	lines := strings.Split(content, "\n")
	for idx := range lines {
		lines[idx] = strings.TrimSuffix(lines[idx], "\r")
	}

	f.text("/* ")
	f.text(strings.TrimSpace(lines[0]))
	multiline := false
	for _, line := range lines[1:] {
		multiline = true
		f.newline()
		f.text(" * ")
		if strings.HasPrefix(strings.TrimSpace(line), "* ") {
			f.text(strings.TrimLeft(line, " \t"))
		} else {
			f.text(line)
		}
	}
	if multiline {
		f.newline()
	}
	f.text(" */")
	f.newline()
}

// gap returns the raw source between two atoms.
func (f *formatter) gap(prev, next *parser.Atom) string {
	start, end := int(prev.Span.End), int(next.Span.Start)
	if start < 0 || end > len(f.source) || start > end {
		return ""
	}
	return f.source[start:end]
}

func sourceLines(s string) []string {
	if s == "" {
		return nil
	}
	hasTrailing := strings.HasSuffix(s, "\n")
	if hasTrailing {
		s = s[:len(s)-1]
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// hasPaddingLine reports whether the input kept a blank line between two
// atoms. Those are preserved in the output.
func (f *formatter) hasPaddingLine(prev, next *parser.Atom) bool {
	gap := f.gap(prev, next)
	empty := 0
	for _, line := range sourceLines(gap) {
		if strings.TrimSpace(line) == "" {
			empty++
		}
	}
	if strings.HasSuffix(gap, "\n") {
		return empty >= 2
	}
	return empty >= 3
}

// commentOnSameLine reports whether next is a comment the input kept at the
// end of prev's line.
func (f *formatter) commentOnSameLine(prev, next *parser.Atom) bool {
	if next.Kind != parser.AtomComment {
		return false
	}
	return !strings.Contains(f.gap(prev, next), "\n")
}

func (f *formatter) endsWith(suffix string) bool {
	return len(f.result) >= len(suffix) && string(f.result[len(f.result)-len(suffix):]) == suffix
}

func (f *formatter) writeAtoms(atoms []parser.Atom) {
	i := 0
	for i < len(atoms) {
		i = f.writeAtom(atoms, i)
	}
}

// writeAtom writes atoms[i] and whatever construct it opens, returning the
// index of the first unconsumed atom.
func (f *formatter) writeAtom(atoms []parser.Atom, i int) int {
	atom := &atoms[i]

	if kind, ok := f.prevKind(); ok {
		switch {
		case kind == parser.AtomCloseBlock:
			// Blank line after every closed block.
			f.newline()
		case kind == parser.AtomOther && atom.Kind == parser.AtomOther:
		case kind == parser.AtomOther:
			// End the run of unrecognised words.
			f.newline()
		}
	}

	if f.prev != nil {
		if f.hasPaddingLine(f.prev, atom) {
			// The formatter may already have inserted a blank line here,
			// like after a top-level endif.
			if !f.endsWith("\r\n\r\n") {
				f.newline()
			}
		} else if f.commentOnSameLine(f.prev, atom) {
			if f.endsWith("\r\n") {
				f.result = f.result[:len(f.result)-2]
				f.needsIndent = false
			}
			f.text(" ")
		}
	}

	switch atom.Kind {
	case parser.AtomSection:
		f.section(atom.Head)
	case parser.AtomDefine:
		f.text("#define ")
		f.text(atom.Name.Value)
		f.newline()
	case parser.AtomConst:
		f.text("#const ")
		f.text(atom.Name.Value)
		f.text(" ")
		if atom.Value != nil {
			f.text(atom.Value.Value)
		}
		f.newline()
	case parser.AtomUndefine:
		f.text("#undefine ")
		f.text(atom.Name.Value)
		f.newline()
	case parser.AtomCommand:
		isBlock := i+1 < len(atoms) && atoms[i+1].Kind == parser.AtomOpenBlock
		f.command(atom.Head, atom.Args, isBlock)
	case parser.AtomComment:
		f.comment(atom.Content)
	case parser.AtomOther:
		// Some people write `//` comments even though the game ignores
		// them; pass those through untouched.
		if strings.HasPrefix(atom.Head.Value, "//") {
			f.text(atom.Head.Value)
			break
		}
		argLike := atom.Head.Value == strings.ToUpper(atom.Head.Value) || allASCIIDigits(atom.Head.Value)
		if kind, ok := f.prevKind(); ok && kind == parser.AtomOther && argLike {
			f.result = append(f.result, ' ')
			f.text(atom.Head.Value)
		} else {
			f.text(atom.Head.Value)
		}
	case parser.AtomElseIf:
		f.text("elseif ")
		f.text(atom.Arg.Value)
		f.newline()
	case parser.AtomElse:
		f.text("else")
		f.newline()
	case parser.AtomEndIf:
		f.text("endif")
		f.newline()
	case parser.AtomCloseBlock:
		f.text("}")
		f.newline()
	case parser.AtomPercentChance:
		f.text("percent_chance ")
		f.text(atom.Arg.Value)
		f.newline()
	case parser.AtomEndRandom:
		f.text("end_random")
		f.newline()

	case parser.AtomOpenBlock:
		f.prev = atom
		return f.block(atoms, i)
	case parser.AtomIf:
		f.prev = atom
		return f.condition(atoms, i)
	case parser.AtomStartRandom:
		f.prev = atom
		return f.random(atoms, i)
	}

	f.prev = atom
	return i + 1
}

func allASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
