package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ha1tch/goobo/parser"
	"github.com/ha1tch/goobo/validate"
)

func newValidateCmd(cfg Config) *cobra.Command {
	var glob string
	cmd := &cobra.Command{
		Use:   "validate [glob]",
		Short: "check one or more OBO files for cardinality violations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := glob
			if len(args) == 1 {
				pattern = args[0]
			}
			if pattern == "" {
				pattern = cfg.DefaultGlob
			}
			return runValidate(pattern)
		},
	}
	cmd.Flags().StringVar(&glob, "glob", "", "override the configured default glob")
	return cmd
}

func runValidate(pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("obocat validate: bad glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		slog.Warn("obocat validate: no files matched", "glob", pattern)
		return nil
	}

	var failed bool
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("obocat validate: reading %s: %w", path, err)
		}
		doc, err := parser.ParseDocument(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		for _, verr := range validate.Validate(doc) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, verr)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("obocat validate: one or more files failed validation")
	}
	fmt.Printf("obocat validate: %d file(s) OK\n", len(matches))
	return nil
}
