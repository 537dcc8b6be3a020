package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType tells sales and purchases apart.
type TransactionType string

// Transaction types.
const (
	TransactionSale     TransactionType = "Sale"
	TransactionPurchase TransactionType = "Purchase"
)

// Transaction is an immutable record of stock leaving (sale) or entering
// (purchase) the inventory. Price is the unit price at the time it was recorded.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Type      TransactionType `json:"transaction_type"`
	Timestamp time.Time       `json:"timestamp"`
}

// Total returns price × quantity.
func (t Transaction) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
