package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"rmscheck/internal/format"
	"rmscheck/internal/source"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] <file>",
	Short: "Reformat a map script",
	Long: `Format reprints a map script with consistent indentation and aligned
attribute arguments. By default the result goes to stdout; use --write to
replace the file in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolP("write", "w", false, "write the result back to the file")
	formatCmd.Flags().Int("tab-size", 0, "indentation width (default from rms-check.toml, or 2)")
	formatCmd.Flags().Bool("tabs", false, "indent with tabs instead of spaces")
	formatCmd.Flags().Bool("no-align", false, "do not align attribute arguments")
}

// formatOptions merges the defaults, the config file and the flags, in
// ascending precedence.
func formatOptions(cmd *cobra.Command, startDir string) (format.Options, error) {
	opts := format.DefaultOptions()

	cfg, err := loadConfig(startDir)
	if err != nil {
		return opts, err
	}
	if cfg.Format.TabSize > 0 {
		size, err := safecast.Conv[int](cfg.Format.TabSize)
		if err != nil {
			return opts, fmt.Errorf("tab_size out of range in rms-check.toml: %w", err)
		}
		opts.TabSize = size
	}
	if cfg.Format.UseSpaces != nil {
		opts.UseSpaces = *cfg.Format.UseSpaces
	}
	if cfg.Format.AlignArguments != nil {
		opts.AlignArguments = *cfg.Format.AlignArguments
	}

	if size, _ := cmd.Flags().GetInt("tab-size"); size > 0 {
		opts.TabSize = size
	}
	if tabs, _ := cmd.Flags().GetBool("tabs"); tabs {
		opts.UseSpaces = false
	}
	if noAlign, _ := cmd.Flags().GetBool("no-align"); noAlign {
		opts.AlignArguments = false
	}
	return opts, nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts, err := formatOptions(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return err
	}
	f := fileSet.Get(id)

	result := format.Format(string(f.Content), opts)

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		_, err := os.Stdout.WriteString(result)
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(result), info.Mode())
}
