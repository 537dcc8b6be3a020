package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a stocked article with its current unit price and quantity on hand.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// NewProduct returns a product with a fresh ID.
func NewProduct(name, description string, price decimal.Decimal, quantity int) Product {
	return Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}
