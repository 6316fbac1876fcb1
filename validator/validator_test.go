package validator

import (
	"testing"

	"pentouz/models"
)

func TestIsValidGSTIN(t *testing.T) {
	cases := []struct {
		gstin string
		valid bool
	}{
		{"29ABCDE1234F1Z5", true},
		{"07AAACR5055K1ZD", true},
		{"36AABCU9603R1ZM", true},
		{"00ABCDE1234F1Z5", false}, // state code 00
		{"39ABCDE1234F1Z5", false}, // state code out of range
		{"29ABCDE1234F1X5", false}, // missing literal Z
		{"29abcde1234F1Z5", false}, // lowercase PAN letters
		{"29ABCDE1234F0Z5", false}, // entity digit 0
		{"29ABCDE1234F1Z", false},  // too short
		{"29ABCDE1234F1Z55", false},
		{"", false},
	}

	for _, tt := range cases {
		if got := IsValidGSTIN(tt.gstin); got != tt.valid {
			t.Fatalf("IsValidGSTIN(%q)=%v, want %v", tt.gstin, got, tt.valid)
		}
	}
}

func TestIsValidStateCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"01", true},
		{"29", true},
		{"38", true},
		{"00", false},
		{"39", false},
		{"1", false},
		{"AB", false},
		{"", false},
	}

	for _, tt := range cases {
		if got := IsValidStateCode(tt.code); got != tt.valid {
			t.Fatalf("IsValidStateCode(%q)=%v, want %v", tt.code, got, tt.valid)
		}
	}
}

func TestValidateCompany(t *testing.T) {
	company := models.CorporateCompany{
		Name:        "Acme Travels",
		GSTIN:       "29ABCDE1234F1Z5",
		StateCode:   "29",
		CreditLimit: 100000,
	}

	if err := ValidateCompany(&company); err != nil {
		t.Fatalf("ValidateCompany: %v", err)
	}
}

func TestValidateCompanyStateMismatch(t *testing.T) {
	company := models.CorporateCompany{
		Name:      "Acme Travels",
		GSTIN:     "29ABCDE1234F1Z5",
		StateCode: "07",
	}

	if err := ValidateCompany(&company); err == nil {
		t.Fatal("expected GSTIN/state mismatch error")
	}
}

func TestValidateTask(t *testing.T) {
	task := models.HousekeepingTask{RoomID: 1, Type: "cleaning", Priority: 2}
	if err := ValidateTask(&task); err != nil {
		t.Fatalf("ValidateTask: %v", err)
	}

	bad := models.HousekeepingTask{RoomID: 1, Type: "painting", Priority: 2}
	if err := ValidateTask(&bad); err == nil {
		t.Fatal("expected invalid type error")
	}

	noRoom := models.HousekeepingTask{Type: "cleaning", Priority: 2}
	if err := ValidateTask(&noRoom); err == nil {
		t.Fatal("expected missing room error")
	}

	badPriority := models.HousekeepingTask{RoomID: 1, Type: "cleaning", Priority: 4}
	if err := ValidateTask(&badPriority); err == nil {
		t.Fatal("expected priority error")
	}
}

func TestValidateGuest(t *testing.T) {
	guest := models.Guest{Name: "Ravi Kumar", Phone: "9876543210", Status: 1}
	if err := ValidateGuest(&guest); err != nil {
		t.Fatalf("ValidateGuest: %v", err)
	}

	badPhone := models.Guest{Name: "Ravi Kumar", Phone: "98765", Status: 1}
	if err := ValidateGuest(&badPhone); err == nil {
		t.Fatal("expected phone error")
	}

	badEmail := models.Guest{Name: "Ravi Kumar", Phone: "9876543210", Email: "not-an-email", Status: 1}
	if err := ValidateGuest(&badEmail); err == nil {
		t.Fatal("expected email error")
	}
}

func TestValidateWidgetEvent(t *testing.T) {
	for _, event := range []string{"impression", "click", "conversion"} {
		if err := ValidateWidgetEvent(event); err != nil {
			t.Fatalf("ValidateWidgetEvent(%q): %v", event, err)
		}
	}
	if err := ValidateWidgetEvent("hover"); err == nil {
		t.Fatal("expected invalid event error")
	}
}
