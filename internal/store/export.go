package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ExportSQL replaces the products and transactions tables of db with the
// current inventory in a single transaction.
func (s *Inventory) ExportSQL(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clearing transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}

	productStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (id, name, description, price, quantity) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing product insert: %w", err)
	}
	defer productStmt.Close()

	for _, p := range s.Products() {
		_, err := productStmt.ExecContext(ctx, p.ID.String(), p.Name, p.Description, p.Price.String(), p.Quantity)
		if err != nil {
			return fmt.Errorf("exporting product %s: %w", p.ID, err)
		}
	}

	txStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (id, product_id, quantity, price, transaction_type, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing transaction insert: %w", err)
	}
	defer txStmt.Close()

	for _, t := range s.transactions {
		_, err := txStmt.ExecContext(ctx, t.ID.String(), t.ProductID.String(), t.Quantity,
			t.Price.String(), string(t.Type), t.Timestamp.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("exporting transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}
