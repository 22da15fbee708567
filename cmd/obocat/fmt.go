package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/goobo/parser"
	"github.com/ha1tch/goobo/serialize"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "parse a file and rewrite it in canonical clause order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file instead of stdout")
	return cmd
}

func runFmt(path string, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("obocat fmt: reading %s: %w", path, err)
	}
	doc, err := parser.ParseDocument(string(data))
	if err != nil {
		return fmt.Errorf("obocat fmt: parsing %s: %w", path, err)
	}
	doc.Sort()

	if write {
		return serialize.WriteFile(path, doc)
	}
	return serialize.Document(os.Stdout, doc)
}
