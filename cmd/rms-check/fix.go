package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rmscheck"
	"rmscheck/internal/diagfmt"
	"rmscheck/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file>...",
	Short: "Apply suggested fixes to map scripts",
	Long: `Fix reruns the checks and applies the suggested replacements directly
to the files. Only safe replacements are applied unless --unsafe is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().String("compat", "", "target game version (aoc|up 1.4|up 1.5|hd|wk|de|all)")
	fixCmd.Flags().Bool("unsafe", false, "also apply fixes that may change script behavior")
	fixCmd.Flags().Bool("dry-run", false, "report fixes without writing any file")
}

func runFix(cmd *cobra.Command, args []string) error {
	unsafeFixes, _ := cmd.Flags().GetBool("unsafe")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out := os.Stdout
	applied := 0
	for _, path := range args {
		settings, err := resolveSettings(cmd, filepath.Dir(path))
		if err != nil {
			return err
		}
		result, err := checkOne(path, settings)
		if err != nil {
			return err
		}

		fixed, err := fix.Apply(result.FileSet(), result.Diagnostics(), fix.Options{
			Unsafe: unsafeFixes,
			DryRun: dryRun,
		})
		if errors.Is(err, fix.ErrNoFixes) {
			continue
		}
		if err != nil {
			return err
		}

		for _, a := range fixed.Applied {
			start, _ := result.FileSet().Resolve(a.Span)
			fmt.Fprintf(out, "%s:%d:%d: fixed %s: %s\n", a.Path, start.Line, start.Col, a.Code, a.Message)
		}
		for _, s := range fixed.Skipped {
			fmt.Fprintf(out, "skipped: %s (%s)\n", s.Message, s.Reason)
		}
		applied += len(fixed.Applied)

		// Check again so the remaining problems are visible.
		if !dryRun && len(fixed.Applied) > 0 {
			recheck, err := checkOne(path, settings)
			if err != nil {
				return err
			}
			if recheck.Len() > 0 {
				diagfmt.Pretty(out, recheck.Bag(), recheck.FileSet(), diagfmt.PrettyOpts{
					Color:           useColor(cmd, out),
					PathMode:        diagfmt.PathModeRelative,
					ShowNotes:       true,
					ShowSuggestions: true,
				})
			}
		}
	}

	if dryRun {
		fmt.Fprintf(out, "%d %s would be applied\n", applied, pluralFix(applied))
	} else {
		fmt.Fprintf(out, "applied %d %s\n", applied, pluralFix(applied))
	}
	return nil
}

// checkOne runs the checker over a single file with the given settings.
func checkOne(path string, settings runSettings) (*rmscheck.Result, error) {
	c := rmscheck.NewChecker().
		Compatibility(settings.compat).
		WithLints(settings.lints...)
	if err := c.AddFile(path); err != nil {
		return nil, err
	}
	return c.Check(), nil
}

func pluralFix(n int) string {
	if n == 1 {
		return "fix"
	}
	return "fixes"
}
