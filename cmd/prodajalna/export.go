package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erazemk/prodajalna/internal/db"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <sqlite-path>",
		Short: "Copy products and transactions into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			database, err := db.Open(path)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.EnsureSchema(database); err != nil {
				return err
			}
			if err := a.inv.ExportSQL(cmd.Context(), database); err != nil {
				return fmt.Errorf("exporting to %s: %w", path, err)
			}

			products, transactions := len(a.inv.Products()), len(a.inv.Transactions())
			slog.Info("inventory exported", "path", path, "products", products, "transactions", transactions)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products and %d transactions to %s\n", products, transactions, path)
			return nil
		},
	}
}
