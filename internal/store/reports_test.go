package store

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInventoryReport(t *testing.T) {
	s := New()
	s.AddProduct(testProduct())

	report := s.InventoryReport()
	for _, want := range []string{"Test Product", "5", "$10.00"} {
		if !strings.Contains(report, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, report)
		}
	}
}

func TestSalesAndPurchaseReports(t *testing.T) {
	s := New()
	p := testProduct()
	s.AddProduct(p)

	s.RecordSale(p.ID, 2)
	s.RecordPurchase(p.ID, 3, decimal.RequireFromString("8.00"))

	sales := s.SalesReport()
	if !strings.Contains(sales, "Total Sales: $20.00") {
		t.Errorf("expected sales total $20.00, got:\n%s", sales)
	}
	if strings.Contains(sales, "Purchase ID") {
		t.Errorf("sales report should not list purchases:\n%s", sales)
	}

	purchases := s.PurchaseReport()
	if !strings.Contains(purchases, "Cost: $8.00") {
		t.Errorf("expected supplied cost $8.00, got:\n%s", purchases)
	}
	if !strings.Contains(purchases, "Total Purchases: $24.00") {
		t.Errorf("expected purchase total $24.00, got:\n%s", purchases)
	}
}

func TestEmptyReports(t *testing.T) {
	s := New()

	if got := s.SalesReport(); !strings.HasSuffix(got, "Total Sales: $0.00\n") {
		t.Errorf("unexpected empty sales report:\n%s", got)
	}
	if got := s.PurchaseReport(); !strings.HasPrefix(got, "Purchase Report\n===============\n") {
		t.Errorf("unexpected purchase report header:\n%s", got)
	}
}
