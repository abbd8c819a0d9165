package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionXPath string

var collectionCmd = &cobra.Command{
	Use:     "collection FILE",
	Short:   "describe every leaf below a node, summarizing repeated kinds",
	Args:    cobra.ExactArgs(1),
	Example: `docvox collection page.html --xpath "//nav"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := openFile(args[0])
		if err != nil {
			return err
		}
		descs, err := nav.Collection(collectionXPath)
		if err != nil {
			return err
		}
		for _, d := range descs {
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
		}
		return nil
	},
}

func init() {
	collectionCmd.Flags().StringVar(&collectionXPath, "xpath", "", "XPath expression selecting the collection root (default: whole document)")
	rootCmd.AddCommand(collectionCmd)
}
