package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docvox/internal/traverse"
)

var (
	readGranularity string
	readBackward    bool
)

var readCmd = &cobra.Command{
	Use:     "read FILE",
	Short:   "print a document one unit per line",
	Args:    cobra.ExactArgs(1),
	Example: `docvox read report.md --granularity line --line-length 40`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := traverse.ParseGranularity(readGranularity)
		if err != nil {
			return err
		}
		dir := traverse.Forward
		if readBackward {
			dir = traverse.Backward
		}

		nav, err := openFile(args[0])
		if err != nil {
			return err
		}
		chunks, err := nav.Chunks(g, dir)
		if err != nil {
			return err
		}
		for _, c := range chunks {
			fmt.Fprintln(cmd.OutOrStdout(), c.Text)
		}
		return nil
	},
}

func init() {
	readCmd.Flags().StringVar(&readGranularity, "granularity", "sentence", "unit to read by: char, word, sentence, line, paragraph")
	readCmd.Flags().BoolVar(&readBackward, "backward", false, "read from the end of the document")
	rootCmd.AddCommand(readCmd)
}
