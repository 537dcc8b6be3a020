package store

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/prodajalna/internal/model"
)

// Inventory owns the product catalogue and the transaction history.
// It is not safe for concurrent use.
type Inventory struct {
	products     map[uuid.UUID]model.Product
	transactions []model.Transaction

	// now is swapped out in tests.
	now func() time.Time
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{
		products:     make(map[uuid.UUID]model.Product),
		transactions: []model.Transaction{},
		now:          time.Now,
	}
}

// AddProduct inserts a product, overwriting any product with the same ID.
func (s *Inventory) AddProduct(p model.Product) {
	s.products[p.ID] = p
}

// GetProduct returns the product with the given ID.
func (s *Inventory) GetProduct(id uuid.UUID) (model.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// UpdateProduct replaces an existing product.
func (s *Inventory) UpdateProduct(p model.Product) error {
	if _, ok := s.products[p.ID]; !ok {
		return fmt.Errorf("updating product %s: %w", p.ID, model.ErrNotFound)
	}
	s.products[p.ID] = p
	return nil
}

// DeleteProduct removes a product. Transactions referring to it are kept.
func (s *Inventory) DeleteProduct(id uuid.UUID) error {
	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("deleting product %s: %w", id, model.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

// Products returns all products ordered by name, then ID.
func (s *Inventory) Products() []model.Product {
	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	slices.SortFunc(products, func(a, b model.Product) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return products
}

// Transactions returns the transaction history in the order it was recorded.
func (s *Inventory) Transactions() []model.Transaction {
	return slices.Clone(s.transactions)
}
