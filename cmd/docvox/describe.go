package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeXPath string

var describeCmd = &cobra.Command{
	Use:     "describe FILE",
	Short:   "describe the first node matching an XPath expression",
	Args:    cobra.ExactArgs(1),
	Example: `docvox describe page.html --xpath "//form//input"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := openFile(args[0])
		if err != nil {
			return err
		}
		d, err := nav.Describe(describeXPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return nil
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeXPath, "xpath", "", "XPath expression selecting the node")
	_ = describeCmd.MarkFlagRequired("xpath")
	rootCmd.AddCommand(describeCmd)
}
