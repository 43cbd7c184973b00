package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/quickstationery/app/catalog"
)

// quickstationery catalog:list — print the product catalog.
var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "List the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tTAG")
		fmt.Fprintln(w, "--\t----\t-----\t--------\t---")
		for _, p := range catalog.All() {
			fmt.Fprintf(w, "%s\t%s\t₹%d\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, p.Tag)
		}
		return w.Flush()
	},
}
