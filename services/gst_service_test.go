package services

import (
	"testing"

	"pentouz/errors"
	"pentouz/models"
)

func TestRateForTariff(t *testing.T) {
	slabs := DefaultGSTSlabs()

	cases := []struct {
		tariff  float64
		rate    float64
		wantErr bool
	}{
		{0, 12, false},
		{999, 12, false},
		{1000, 12, false},
		{2500, 12, false},
		{7500, 12, false},
		{7501, 18, false},
		{25000, 18, false},
		{-1, 0, true},
	}

	for _, tt := range cases {
		rate, err := RateForTariff(slabs, tt.tariff)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("RateForTariff(%v): expected error", tt.tariff)
			}
			continue
		}
		if err != nil {
			t.Fatalf("RateForTariff(%v): %v", tt.tariff, err)
		}
		if rate != tt.rate {
			t.Fatalf("RateForTariff(%v)=%v, want %v", tt.tariff, rate, tt.rate)
		}
	}
}

func TestRateForTariffSkipsInactiveSlabs(t *testing.T) {
	slabs := []models.GSTSlab{
		{MinTariff: 0, MaxTariff: 1000, Rate: 12, Active: false},
		{MinTariff: 0, MaxTariff: 0, Rate: 18, Active: true},
	}

	rate, err := RateForTariff(slabs, 500)
	if err != nil {
		t.Fatalf("RateForTariff: %v", err)
	}
	if rate != 18 {
		t.Fatalf("rate=%v, want 18 (inactive slab must be skipped)", rate)
	}
}

func TestCalculateGSTIntrastate(t *testing.T) {
	out, err := CalculateGST(5000, 2, 1, 0, 12, false)
	if err != nil {
		t.Fatalf("CalculateGST: %v", err)
	}

	if out.TaxableValue != 10000 {
		t.Fatalf("taxable=%v, want 10000", out.TaxableValue)
	}
	if out.CGST != 600 || out.SGST != 600 {
		t.Fatalf("cgst=%v sgst=%v, want 600 each", out.CGST, out.SGST)
	}
	if out.IGST != 0 {
		t.Fatalf("igst=%v, want 0 for intrastate", out.IGST)
	}
	if out.TotalTax != 1200 {
		t.Fatalf("totalTax=%v, want 1200", out.TotalTax)
	}
	if out.Total != 11200 {
		t.Fatalf("total=%v, want 11200", out.Total)
	}
	if out.Interstate {
		t.Fatal("interstate=true, want false")
	}
}

func TestCalculateGSTInterstate(t *testing.T) {
	out, err := CalculateGST(8000, 1, 2, 1000, 18, true)
	if err != nil {
		t.Fatalf("CalculateGST: %v", err)
	}

	if out.TaxableValue != 15000 {
		t.Fatalf("taxable=%v, want 15000", out.TaxableValue)
	}
	if out.IGST != 2700 {
		t.Fatalf("igst=%v, want 2700", out.IGST)
	}
	if out.CGST != 0 || out.SGST != 0 {
		t.Fatalf("cgst=%v sgst=%v, want 0 for interstate", out.CGST, out.SGST)
	}
	if out.Total != 17700 {
		t.Fatalf("total=%v, want 17700", out.Total)
	}
}

func TestCalculateGSTRounding(t *testing.T) {
	// 3333.33 taxable at 12% intrastate: each half is 199.9998 -> 200.00.
	out, err := CalculateGST(3333.33, 1, 1, 0, 12, false)
	if err != nil {
		t.Fatalf("CalculateGST: %v", err)
	}

	if out.CGST != 200 || out.SGST != 200 {
		t.Fatalf("cgst=%v sgst=%v, want 200 each", out.CGST, out.SGST)
	}
	if out.TotalTax != 400 {
		t.Fatalf("totalTax=%v, want 400", out.TotalTax)
	}
}

func TestCalculateGSTErrors(t *testing.T) {
	cases := []struct {
		name     string
		tariff   float64
		nights   int
		rooms    int
		discount float64
	}{
		{"zero nights", 5000, 0, 1, 0},
		{"zero rooms", 5000, 1, 0, 0},
		{"negative discount", 5000, 1, 1, -10},
		{"discount above gross", 5000, 1, 1, 6000},
	}

	for _, tt := range cases {
		if _, err := CalculateGST(tt.tariff, tt.nights, tt.rooms, tt.discount, 12, false); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		} else if !errors.IsAppError(err) {
			t.Fatalf("%s: expected AppError, got %T", tt.name, err)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{-1.006, -1.01},
		{0, 0},
		{199.9998, 200},
	}

	for _, tt := range cases {
		if got := Round2(tt.in); got != tt.want {
			t.Fatalf("Round2(%v)=%v, want %v", tt.in, got, tt.want)
		}
	}
}
