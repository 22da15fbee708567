package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/goobo/stream"
)

func newStreamCmd() *cobra.Command {
	var countOnly bool
	cmd := &cobra.Command{
		Use:   "stream <file>",
		Short: "read a file frame by frame without materializing the whole document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(args[0], countOnly)
		},
	}
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the total number of entity frames")
	return cmd
}

func runStream(path string, countOnly bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("obocat stream: opening %s: %w", path, err)
	}
	defer f.Close()

	r := stream.NewReader(f)
	header, err := r.Header()
	if err != nil {
		return fmt.Errorf("obocat stream: reading header: %w", err)
	}
	if !countOnly {
		fmt.Printf("header: %d clause(s)\n", len(header.Clauses))
	}

	var n int
	for {
		frame, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("obocat stream: reading frame: %w", err)
		}
		n++
		if !countOnly {
			fmt.Printf("%s\n", frame.FrameId().String())
		}
	}
	fmt.Printf("total: %d frame(s)\n", n)
	return nil
}
