package services

import (
	"testing"

	"pentouz/dto"
	"pentouz/models"
)

func TestCanCharge(t *testing.T) {
	company := &models.CorporateCompany{CreditLimit: 100000, CreditUsed: 60000}

	cases := []struct {
		amount float64
		want   bool
	}{
		{40000, true},
		{40000.01, false},
		{1, true},
		{0, false},
		{-100, false},
	}

	for _, tt := range cases {
		if got := CanCharge(company, tt.amount); got != tt.want {
			t.Fatalf("CanCharge(%v)=%v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestCreditAvailable(t *testing.T) {
	company := models.CorporateCompany{CreditLimit: 50000, CreditUsed: 12500}
	if got := company.CreditAvailable(); got != 37500 {
		t.Fatalf("CreditAvailable()=%v, want 37500", got)
	}
}

func TestMergeFilters(t *testing.T) {
	status := 1
	old := &dto.GuestSearchFilters{Name: "ravi", City: "delhi", Status: &status}

	next := MergeFilters(old, &dto.GuestSearchFilters{City: "mumbai"})

	if next.Name != "ravi" {
		t.Fatalf("name=%q, want ravi (kept from previous)", next.Name)
	}
	if next.City != "mumbai" {
		t.Fatalf("city=%q, want mumbai (overridden)", next.City)
	}
	if next.Status == nil || *next.Status != 1 {
		t.Fatalf("status=%v, want 1 (kept from previous)", next.Status)
	}
}
