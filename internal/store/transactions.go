package store

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erazemk/prodajalna/internal/model"
)

// RecordSale takes quantity units of a product out of stock and records a
// sale at the product's current price.
func (s *Inventory) RecordSale(productID uuid.UUID, quantity int) (model.Transaction, error) {
	p, ok := s.products[productID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("recording sale of %s: %w", productID, model.ErrNotFound)
	}
	if quantity <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: quantity must be positive, got %d", model.ErrInvalidInput, quantity)
	}
	if p.Quantity < quantity {
		return model.Transaction{}, fmt.Errorf("%w: have %d, need %d", model.ErrInsufficientInventory, p.Quantity, quantity)
	}

	p.Quantity -= quantity
	s.products[productID] = p

	t := s.appendTransaction(productID, quantity, p.Price, model.TransactionSale)
	slog.Info("sale recorded", "product", p.Name, "quantity", quantity, "price", p.Price.StringFixed(2))
	return t, nil
}

// RecordPurchase adds quantity units of a product to stock and records a
// purchase at the given unit price.
func (s *Inventory) RecordPurchase(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (model.Transaction, error) {
	p, ok := s.products[productID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("recording purchase of %s: %w", productID, model.ErrNotFound)
	}
	if quantity <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: quantity must be positive, got %d", model.ErrInvalidInput, quantity)
	}
	if unitPrice.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: price must not be negative, got %s", model.ErrInvalidInput, unitPrice)
	}

	p.Quantity += quantity
	s.products[productID] = p

	t := s.appendTransaction(productID, quantity, unitPrice, model.TransactionPurchase)
	slog.Info("purchase recorded", "product", p.Name, "quantity", quantity, "price", unitPrice.StringFixed(2))
	return t, nil
}

func (s *Inventory) appendTransaction(productID uuid.UUID, quantity int, price decimal.Decimal, typ model.TransactionType) model.Transaction {
	t := model.Transaction{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Type:      typ,
		Timestamp: s.now().UTC(),
	}
	s.transactions = append(s.transactions, t)
	return t
}
