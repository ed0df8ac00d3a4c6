// Package rmscheck finds common mistakes in Age of Empires 2 random map
// scripts: syntax errors, undefined constants, commands in the wrong
// section, and constructs that need a newer game version than the script
// targets.
package rmscheck

import (
	"rmscheck/internal/checker"
	"rmscheck/internal/diag"
	"rmscheck/internal/lints"
	"rmscheck/internal/parser"
	"rmscheck/internal/rms"
	"rmscheck/internal/source"
	"rmscheck/internal/wordize"
)

// defaultMaxDiagnostics caps a single run. Broken scripts tend to cascade;
// past this point more output stops being useful.
const defaultMaxDiagnostics = 1000

// Result holds the diagnostics of one check run, together with the file
// set needed to resolve their spans to line/column positions.
type Result struct {
	fileSet *source.FileSet
	bag     *diag.Bag
}

// FileSet returns the files that were checked.
func (r *Result) FileSet() *source.FileSet {
	return r.fileSet
}

// Diagnostics returns the diagnostics, sorted by file and position.
func (r *Result) Diagnostics() []diag.Diagnostic {
	return r.bag.Items()
}

// Bag returns the underlying diagnostic bag.
func (r *Result) Bag() *diag.Bag {
	return r.bag
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	return r.bag.HasErrors()
}

// HasWarnings reports whether any diagnostic has warning severity.
func (r *Result) HasWarnings() bool {
	return r.bag.HasWarnings()
}

// Len returns the number of diagnostics.
func (r *Result) Len() int {
	return r.bag.Len()
}

// Checker collects the files and settings for a check run. The zero value
// is not usable; start from NewChecker.
type Checker struct {
	fs     *source.FileSet
	files  []source.FileID
	compat rms.Compatibility
	lints  []checker.Lint
	max    int
}

// NewChecker creates a checker with the default lint set and target
// compatibility.
func NewChecker() *Checker {
	return &Checker{
		fs:     source.NewFileSet(),
		compat: rms.DefaultCompatibility,
		lints:  lints.Defaults(),
		max:    defaultMaxDiagnostics,
	}
}

// Compatibility sets the target game version. A `Compatibility:` header
// comment in the script itself takes precedence.
func (c *Checker) Compatibility(compat rms.Compatibility) *Checker {
	c.compat = compat
	return c
}

// WithLint registers an extra lint on top of the default set.
func (c *Checker) WithLint(l checker.Lint) *Checker {
	c.lints = append(c.lints, l)
	return c
}

// WithLints replaces the lint set entirely.
func (c *Checker) WithLints(ls ...checker.Lint) *Checker {
	c.lints = ls
	return c
}

// MaxDiagnostics caps the number of reported diagnostics.
func (c *Checker) MaxDiagnostics(max int) *Checker {
	c.max = max
	return c
}

// AddSource adds an in-memory script under the given name.
func (c *Checker) AddSource(name, src string) *Checker {
	id := c.fs.AddVirtual(name, []byte(src))
	c.files = append(c.files, id)
	return c
}

// AddFile adds a script from disk.
func (c *Checker) AddFile(path string) error {
	id, err := c.fs.Load(path)
	if err != nil {
		return err
	}
	c.files = append(c.files, id)
	return nil
}

// FileSet exposes the file set being built, for span resolution.
func (c *Checker) FileSet() *source.FileSet {
	return c.fs
}

// Check runs the lints over all added files and returns the collected
// diagnostics.
func (c *Checker) Check() *Result {
	bag := diag.NewBag(c.max)
	run := checker.New(c.compat, c.lints...)

	for _, id := range c.files {
		checkFile(run, c.fs.Get(id), bag)
	}

	bag.Sort()
	return &Result{fileSet: c.fs, bag: bag}
}

// checkFile feeds one file through the checker: every word of an atom goes
// to WriteToken before the atom itself goes to WriteAtom, so token-level
// state is current when the atom lints run.
func checkFile(run *checker.Checker, f *source.File, bag *diag.Bag) {
	words := wordize.NewScanner(f).All()
	wi := 0
	flush := func(limit uint32) {
		for wi < len(words) && words[wi].End() <= limit {
			if d := run.WriteToken(&words[wi]); d != nil {
				bag.Add(*d)
			}
			wi++
		}
	}

	p := parser.New(f)
	for {
		atom, errors, ok := p.Next()
		if !ok {
			break
		}
		flush(atom.Span.End)
		bag.AddAll(run.WriteAtom(&atom))
		for _, e := range errors {
			if e.Kind == parser.MissingCommandArgs {
				// The arg-types lint reports these with more context.
				continue
			}
			bag.Add(diag.NewError(e.Span, e.Message()).WithCode("parse"))
		}
	}
	flush(^uint32(0))
}

// Check checks a single script with the default lint set.
func Check(src string, compat rms.Compatibility) *Result {
	return NewChecker().
		Compatibility(compat).
		AddSource("source.rms", src).
		Check()
}

// CheckFile checks a single script loaded from disk.
func CheckFile(path string, compat rms.Compatibility) (*Result, error) {
	c := NewChecker().Compatibility(compat)
	if err := c.AddFile(path); err != nil {
		return nil, err
	}
	return c.Check(), nil
}

// Parse parses a script into its atom sequence without running any lints.
func Parse(file source.FileID, src string) ([]parser.Atom, []parser.Error) {
	return parser.NewAt(file, src, 0).All()
}

// Words splits a script into its whitespace-delimited words.
func Words(file source.FileID, src string) []wordize.Word {
	return wordize.NewScannerAt(file, src, 0).All()
}
