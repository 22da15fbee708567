// Command obocat reads, validates, reformats, and streams OBO 1.4
// flat-file ontologies.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg, err := loadConfig()
	if err != nil {
		cfg = defaultConfig()
	}
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:           "obocat",
		Short:         "obocat - inspect and reformat OBO 1.4 ontology files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newFmtCmd())
	root.AddCommand(newValidateCmd(cfg))
	root.AddCommand(newStreamCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("obocat: command failed", "error", err)
		os.Exit(1)
	}
}
