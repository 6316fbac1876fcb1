package builders

import (
	"testing"
	"time"
)

func TestFinancialYear(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-04-01", "24-25"},
		{"2024-03-31", "23-24"},
		{"2025-01-15", "24-25"},
		{"2025-06-10", "25-26"},
		{"2024-12-31", "24-25"},
	}

	for _, tt := range cases {
		at, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := FinancialYear(at); got != tt.want {
			t.Fatalf("FinancialYear(%s)=%q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestInvoiceBuilderIntrastate(t *testing.T) {
	at, _ := time.Parse("2006-01-02", "2024-07-01")

	invoice := NewInvoiceBuilder().
		WithCompany(3).
		WithTaxableValue(10000).
		WithIntrastate(600, 600).
		WithPlaceOfSupply("29").
		WithCreator(1).
		WithSequence(at, 42).
		Build()

	if invoice.InvoiceNo != "INV/24-25/00042" {
		t.Fatalf("invoiceNo=%q, want INV/24-25/00042", invoice.InvoiceNo)
	}
	if invoice.Total != 11200 {
		t.Fatalf("total=%v, want 11200", invoice.Total)
	}
	if invoice.Interstate {
		t.Fatal("interstate=true, want false")
	}
	if invoice.IGST != 0 {
		t.Fatalf("igst=%v, want 0", invoice.IGST)
	}
}

func TestInvoiceBuilderInterstate(t *testing.T) {
	at, _ := time.Parse("2006-01-02", "2025-02-01")

	invoice := NewInvoiceBuilder().
		WithCompany(3).
		WithTaxableValue(15000).
		WithInterstate(2700).
		WithPlaceOfSupply("29").
		WithSequence(at, 1).
		Build()

	if invoice.InvoiceNo != "INV/24-25/00001" {
		t.Fatalf("invoiceNo=%q, want INV/24-25/00001", invoice.InvoiceNo)
	}
	if invoice.Total != 17700 {
		t.Fatalf("total=%v, want 17700", invoice.Total)
	}
	if !invoice.Interstate {
		t.Fatal("interstate=false, want true")
	}
	if invoice.CGST != 0 || invoice.SGST != 0 {
		t.Fatalf("cgst=%v sgst=%v, want 0", invoice.CGST, invoice.SGST)
	}
}
