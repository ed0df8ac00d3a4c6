package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rmscheck"
	"rmscheck/internal/source"
)

var wordsCmd = &cobra.Command{
	Use:   "words <file>",
	Short: "Dump the whitespace-delimited words of a map script",
	Args:  cobra.ExactArgs(1),
	RunE:  runWords,
}

func runWords(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}
	f := fileSet.Get(id)

	for _, word := range rmscheck.Words(id, string(f.Content)) {
		pos, _ := fileSet.Resolve(word.Span)
		fmt.Printf("%4d:%-3d %d..%d %s\n", pos.Line, pos.Col, word.Start(), word.End(), word.Value)
	}
	return nil
}
