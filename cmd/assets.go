package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var assetsOutput string

// assetsCmd groups commands inspecting the embedded bundle.
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect the embedded assets",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every embedded asset with its route, size and content type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadBundle()
		if err != nil {
			return err
		}
		entries := bundleEntries(store)

		out := cmd.OutOrStdout()
		if ok, err := writeStructured(out, assetsOutput, entries); ok {
			return err
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ROUTE\tSIZE\tCONTENT TYPE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Route, e.Size, e.ContentType)
		}
		return tw.Flush()
	},
}

func init() {
	assetsListCmd.Flags().StringVarP(&assetsOutput, "output", "o", outputTable, "output format: table, json or yaml")
	assetsCmd.AddCommand(assetsListCmd)
	RootCmd.AddCommand(assetsCmd)
}
