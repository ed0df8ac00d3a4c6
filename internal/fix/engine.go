// Package fix applies the replacement suggestions attached to diagnostics
// back to the source files on disk.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"rmscheck/internal/diag"
	"rmscheck/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options configures fix selection.
type Options struct {
	// Unsafe also applies replacements that normally need manual review.
	Unsafe bool
	// DryRun computes the result without writing any file.
	DryRun bool
}

// Applied records one successfully applied replacement.
type Applied struct {
	Code    string
	Message string
	Path    string
	Span    source.Span
	NewText string
}

// Skipped captures a fix that was not applied, with the reason.
type Skipped struct {
	Message string
	Reason  string
}

// FileChange summarises the modifications performed on one file.
type FileChange struct {
	Path      string
	EditCount int
}

// Result aggregates applied fixes, skipped ones, and file changes.
type Result struct {
	Applied     []Applied
	Skipped     []Skipped
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	span  source.Span
	text  string
	order int
}

// Apply collects fixable suggestions from diagnostics and applies them. Each
// diagnostic contributes at most its first applicable suggestion. Overlapping
// fixes are applied first-come, the rest skipped.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result := &Result{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gather(diagnostics, opts, result)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected := dropConflicts(candidates, result)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	if err := splice(fs, selected, opts, result); err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// gather picks the replacement suggestions that the options allow. Advice-only
// suggestions are not fixes and are passed over silently.
func gather(diagnostics []diag.Diagnostic, opts Options, result *Result) []candidate {
	var candidates []candidate
	order := 0
	for _, d := range diagnostics {
		for _, s := range d.Suggestions {
			switch s.Replacement.Kind {
			case diag.ReplacementNone:
				continue
			case diag.ReplacementUnsafe:
				if !opts.Unsafe {
					result.Skipped = append(result.Skipped, Skipped{
						Message: d.Message,
						Reason:  "replacement needs manual review, rerun with --unsafe to apply",
					})
					continue
				}
			}
			candidates = append(candidates, candidate{
				diag:  d,
				span:  s.Span,
				text:  s.Replacement.Text,
				order: order,
			})
			order++
			break
		}
	}
	return candidates
}

func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.span.File != b.span.File {
			return a.span.File < b.span.File
		}
		if a.span.Start != b.span.Start {
			return a.span.Start < b.span.Start
		}
		if a.span.End != b.span.End {
			return a.span.End < b.span.End
		}
		return a.order < b.order
	})
}

// dropConflicts removes candidates overlapping an earlier one in the same
// file. The input must be sorted.
func dropConflicts(candidates []candidate, result *Result) []candidate {
	var selected []candidate
	lastEnd := map[source.FileID]uint32{}
	for _, cand := range candidates {
		if end, seen := lastEnd[cand.span.File]; seen && cand.span.Start < end {
			result.Skipped = append(result.Skipped, Skipped{
				Message: cand.diag.Message,
				Reason:  "overlaps an earlier fix",
			})
			continue
		}
		lastEnd[cand.span.File] = cand.span.End
		selected = append(selected, cand)
	}
	return selected
}

// splice rewrites the affected files, applying each file's edits back to
// front so earlier spans stay valid.
func splice(fs *source.FileSet, selected []candidate, opts Options, result *Result) error {
	baseDir := fs.BaseDir()
	perFile := map[source.FileID][]candidate{}
	for _, cand := range selected {
		perFile[cand.span.File] = append(perFile[cand.span.File], cand)
	}

	fileIDs := make([]source.FileID, 0, len(perFile))
	for id := range perFile {
		fileIDs = append(fileIDs, id)
	}
	sort.Slice(fileIDs, func(i, j int) bool { return fileIDs[i] < fileIDs[j] })

	for _, fileID := range fileIDs {
		file := fs.Get(fileID)
		edits := perFile[fileID]
		if file.Flags&source.FileVirtual != 0 {
			for _, cand := range edits {
				result.Skipped = append(result.Skipped, Skipped{
					Message: cand.diag.Message,
					Reason:  "target file is virtual",
				})
			}
			continue
		}

		working := append([]byte(nil), file.Content...)
		applied := make([]Applied, 0, len(edits))
		for i := len(edits) - 1; i >= 0; i-- {
			cand := edits[i]
			start, end := int(cand.span.Start), int(cand.span.End)
			if start < 0 || end < start || end > len(working) {
				result.Skipped = append(result.Skipped, Skipped{
					Message: cand.diag.Message,
					Reason:  "edit span out of range",
				})
				continue
			}
			suffix := append([]byte(nil), working[end:]...)
			working = append(append(working[:start], []byte(cand.text)...), suffix...)
			applied = append(applied, Applied{
				Code:    cand.diag.Code,
				Message: cand.diag.Message,
				Path:    file.FormatPath("auto", baseDir),
				Span:    cand.span,
				NewText: cand.text,
			})
		}
		if len(applied) == 0 {
			continue
		}

		if !opts.DryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			// Spans address the normalized buffer; the original line
			// endings and BOM come back on the way out.
			disk := source.RestoreFormat(working, file.Flags)
			if err := os.WriteFile(file.Path, disk, mode); err != nil {
				return fmt.Errorf("write %s: %w", file.Path, err)
			}
		}

		// applied was filled back to front, restore file order.
		for i, j := 0, len(applied)-1; i < j; i, j = i+1, j-1 {
			applied[i], applied[j] = applied[j], applied[i]
		}
		result.Applied = append(result.Applied, applied...)
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.FormatPath("relative", baseDir),
			EditCount: len(applied),
		})
	}

	sort.SliceStable(result.FileChanges, func(i, j int) bool {
		return result.FileChanges[i].Path < result.FileChanges[j].Path
	})
	return nil
}
