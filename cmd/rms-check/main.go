package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rmscheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "rms-check",
	Short:         "Syntax checker for Age of Empires 2 random map scripts",
	Long:          `rms-check finds syntax errors, undefined constants and version pitfalls in AoE2 random map scripts`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 1000, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		if err.Error() != "" {
			rootCmd.PrintErrln("Error:", err.Error())
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch flag {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}
