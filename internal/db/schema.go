package db

import (
	"database/sql"
	"fmt"
)

// schema mirrors the inventory document. Prices are stored as decimal text
// so no precision is lost.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price       TEXT NOT NULL,
    quantity    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id               TEXT PRIMARY KEY,
    product_id       TEXT NOT NULL,
    quantity         INTEGER NOT NULL,
    price            TEXT NOT NULL,
    transaction_type TEXT NOT NULL CHECK (transaction_type IN ('Sale', 'Purchase')),
    timestamp        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_product
    ON transactions(product_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
