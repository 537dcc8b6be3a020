package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "report {inventory|sales|purchases}",
		Short:     "Print a report and exit",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"inventory", "sales", "purchases"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var report string
			switch args[0] {
			case "inventory":
				report = a.inv.InventoryReport()
			case "sales":
				report = a.inv.SalesReport()
			case "purchases":
				report = a.inv.PurchaseReport()
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}
}
