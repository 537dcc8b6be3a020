package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/prodajalna/internal/model"
)

// InventoryReport lists every product with its stock and price.
func (s *Inventory) InventoryReport() string {
	var b strings.Builder
	b.WriteString("Inventory Report\n================\n\n")
	for _, p := range s.Products() {
		fmt.Fprintf(&b, "Product: %s\nID: %s\nQuantity: %d\nPrice: %s\n\n",
			p.Name, p.ID, p.Quantity, money(p.Price))
	}
	return b.String()
}

// SalesReport lists every sale and the total revenue.
func (s *Inventory) SalesReport() string {
	return s.transactionReport(model.TransactionSale, "Sales Report", "Sale", "Price", "Total Sales")
}

// PurchaseReport lists every purchase and the total cost.
func (s *Inventory) PurchaseReport() string {
	return s.transactionReport(model.TransactionPurchase, "Purchase Report", "Purchase", "Cost", "Total Purchases")
}

func (s *Inventory) transactionReport(typ model.TransactionType, title, label, priceLabel, totalLabel string) string {
	var b strings.Builder
	b.WriteString(title + "\n" + strings.Repeat("=", len(title)) + "\n\n")

	total := decimal.Zero
	for _, t := range s.transactions {
		if t.Type != typ {
			continue
		}
		line := t.Total()
		total = total.Add(line)
		fmt.Fprintf(&b, "%s ID: %s\nProduct ID: %s\nQuantity: %d\n%s: %s\nTotal: %s\n\n",
			label, t.ID, t.ProductID, t.Quantity, priceLabel, money(t.Price), money(line))
	}

	fmt.Fprintf(&b, "%s: %s\n", totalLabel, money(total))
	return b.String()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
