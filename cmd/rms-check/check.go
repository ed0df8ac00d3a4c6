package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rmscheck"
	"rmscheck/internal/checker"
	"rmscheck/internal/diagfmt"
	"rmscheck/internal/lints"
	"rmscheck/internal/rms"
)

var errProblemsFound = errors.New("")

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|dir>...",
	Short: "Check map scripts for errors",
	Long: `Check runs the lints over one or more map scripts. Directories are
searched recursively for .rms files. With --format json and more than one
file, one JSON document is printed per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("compat", "", "target game version (aoc|up 1.4|up 1.5|hd|wk|de|all)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("quiet", false, "suppress per-file headers and clean-file output")
}

// runSettings are the per-file check settings resolved from flags and the
// nearest rms-check.toml.
type runSettings struct {
	compat rms.Compatibility
	lints  []checker.Lint
}

// resolveSettings picks the target compatibility (--compat wins over
// rms-check.toml, which wins over the default; the script's own header
// comment still overrides all of these) and the active lint set.
func resolveSettings(cmd *cobra.Command, startDir string) (runSettings, error) {
	settings := runSettings{compat: rms.DefaultCompatibility, lints: lints.Defaults()}

	cfg, err := loadConfig(startDir)
	if err != nil {
		return settings, err
	}
	if cfg.Check.Compatibility != "" {
		compat, ok := rms.ParseCompatibility(cfg.Check.Compatibility)
		if !ok {
			return settings, fmt.Errorf("unknown compatibility %q in rms-check.toml", cfg.Check.Compatibility)
		}
		settings.compat = compat
	}
	if flag, _ := cmd.Flags().GetString("compat"); flag != "" {
		compat, ok := rms.ParseCompatibility(flag)
		if !ok {
			return settings, fmt.Errorf("unknown compatibility %q", flag)
		}
		settings.compat = compat
	}

	if len(cfg.Check.Disable) > 0 {
		disabled := make(map[string]bool, len(cfg.Check.Disable))
		for _, name := range cfg.Check.Disable {
			disabled[name] = true
		}
		var active []checker.Lint
		for _, l := range settings.lints {
			if !disabled[l.Name()] {
				active = append(active, l)
			}
		}
		settings.lints = active
	}
	return settings, nil
}

// collectScripts expands directory arguments into the .rms files they
// contain.
func collectScripts(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".rms") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no map scripts found")
	}
	return paths, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	paths, err := collectScripts(args)
	if err != nil {
		return err
	}

	// Every file is an independent script with its own symbol state, so the
	// runs can fan out freely.
	results := make([]*rmscheck.Result, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			settings, err := resolveSettings(cmd, filepath.Dir(path))
			if err != nil {
				return err
			}
			c := rmscheck.NewChecker().
				Compatibility(settings.compat).
				WithLints(settings.lints...).
				MaxDiagnostics(maxDiagnostics)
			if err := c.AddFile(path); err != nil {
				return err
			}
			results[i] = c.Check()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := os.Stdout
	problems := 0
	hasErrors := false
	for i, result := range results {
		problems += result.Len()
		if result.HasErrors() {
			hasErrors = true
		}

		switch format {
		case "json":
			err := diagfmt.JSON(out, result.Bag(), result.FileSet(), diagfmt.JSONOpts{
				IncludePositions:   true,
				IncludeNotes:       true,
				IncludeSuggestions: true,
				PathMode:           diagfmt.PathModeRelative,
				Max:                maxDiagnostics,
			})
			if err != nil {
				return err
			}
		default:
			if !quiet && len(paths) > 1 {
				fmt.Fprintf(out, "== %s\n", paths[i])
			}
			diagfmt.Pretty(out, result.Bag(), result.FileSet(), diagfmt.PrettyOpts{
				Color:           useColor(cmd, out),
				PathMode:        diagfmt.PathModeRelative,
				ShowNotes:       true,
				ShowSuggestions: true,
			})
		}
	}

	if format == "pretty" && problems == 0 && !quiet {
		fmt.Fprintln(out, "No problems found.")
	}
	if hasErrors {
		return errProblemsFound
	}
	return nil
}
