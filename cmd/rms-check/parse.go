package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rmscheck"
	"rmscheck/internal/parser"
	"rmscheck/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Dump the parsed atoms of a map script",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func atomKindName(kind parser.Kind) string {
	switch kind {
	case parser.AtomConst:
		return "Const"
	case parser.AtomDefine:
		return "Define"
	case parser.AtomUndefine:
		return "Undefine"
	case parser.AtomSection:
		return "Section"
	case parser.AtomIf:
		return "If"
	case parser.AtomElseIf:
		return "ElseIf"
	case parser.AtomElse:
		return "Else"
	case parser.AtomEndIf:
		return "EndIf"
	case parser.AtomStartRandom:
		return "StartRandom"
	case parser.AtomPercentChance:
		return "PercentChance"
	case parser.AtomEndRandom:
		return "EndRandom"
	case parser.AtomOpenBlock:
		return "OpenBlock"
	case parser.AtomCloseBlock:
		return "CloseBlock"
	case parser.AtomCommand:
		return "Command"
	case parser.AtomComment:
		return "Comment"
	}
	return "Other"
}

type atomJSON struct {
	Kind      string   `json:"kind"`
	Head      string   `json:"head"`
	Name      string   `json:"name,omitempty"`
	Value     string   `json:"value,omitempty"`
	Arg       string   `json:"arg,omitempty"`
	Args      []string `json:"args,omitempty"`
	StartByte uint32   `json:"start_byte"`
	EndByte   uint32   `json:"end_byte"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}
	f := fileSet.Get(id)
	atoms, parseErrors := rmscheck.Parse(id, string(f.Content))

	switch format {
	case "json":
		out := make([]atomJSON, 0, len(atoms))
		for _, atom := range atoms {
			entry := atomJSON{
				Kind:      atomKindName(atom.Kind),
				Head:      atom.Head.Value,
				Name:      atom.Name.Value,
				Arg:       atom.Arg.Value,
				StartByte: atom.Span.Start,
				EndByte:   atom.Span.End,
			}
			if atom.Value != nil {
				entry.Value = atom.Value.Value
			}
			for _, arg := range atom.Args {
				entry.Args = append(entry.Args, arg.Value)
			}
			out = append(out, entry)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	case "pretty":
		for _, atom := range atoms {
			pos, _ := fileSet.Resolve(atom.Span)
			fmt.Printf("%4d:%-3d %-13s %s", pos.Line, pos.Col, atomKindName(atom.Kind), atom.Head.Value)
			if atom.Name.Value != "" {
				fmt.Printf(" %s", atom.Name.Value)
			}
			if atom.Value != nil {
				fmt.Printf(" %s", atom.Value.Value)
			}
			if atom.Arg.Value != "" && atom.Kind != parser.AtomOther {
				fmt.Printf(" %s", atom.Arg.Value)
			}
			for _, arg := range atom.Args {
				fmt.Printf(" %s", arg.Value)
			}
			fmt.Println()
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	for _, e := range parseErrors {
		pos, _ := fileSet.Resolve(e.Span)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", args[0], pos.Line, pos.Col, e.Message())
	}
	return nil
}
