package services

import (
	"testing"

	"pentouz/models"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Ravi Kumar ", "ravi kumar"},
		{"Café", "cafe"},
		{"DELHI", "delhi"},
		{"", ""},
	}

	for _, tt := range cases {
		if got := NormalizeInput(tt.in); got != tt.want {
			t.Fatalf("NormalizeInput(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("kumar", "kumar"); got != 1 {
		t.Fatalf("identical strings: %v, want 1", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Fatalf("empty strings: %v, want 1", got)
	}
	if got := Similarity("kumar", "kumra"); got <= 0.5 {
		t.Fatalf("transposed strings: %v, want > 0.5", got)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings: %v, want 0", got)
	}
}

func TestSearchGuests(t *testing.T) {
	guests := []models.Guest{
		{ID: 1, Name: "Ravi Kumar", Phone: "9876543210", City: "Bengaluru"},
		{ID: 2, Name: "Priya Sharma", Email: "priya@example.com", City: "Delhi"},
		{ID: 3, Name: "John Smith", City: "Mumbai"},
	}

	scored := SearchGuests("ravi", guests)
	if len(scored) == 0 {
		t.Fatal("expected at least one match for 'ravi'")
	}
	if scored[0].Guest.ID != 1 {
		t.Fatalf("top match id=%d, want 1", scored[0].Guest.ID)
	}

	// Scores come back sorted highest first.
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Fatalf("results not sorted by score: %v", scored)
		}
	}
}

func TestSearchGuestsByPhone(t *testing.T) {
	guests := []models.Guest{
		{ID: 1, Name: "Ravi Kumar", Phone: "9876543210"},
		{ID: 2, Name: "Priya Sharma", Phone: "9123456789"},
	}

	scored := SearchGuests("9876543210", guests)
	if len(scored) != 1 {
		t.Fatalf("got %d matches, want 1", len(scored))
	}
	if scored[0].Guest.ID != 1 {
		t.Fatalf("match id=%d, want 1", scored[0].Guest.ID)
	}
}

func TestSearchGuestsNoMatch(t *testing.T) {
	guests := []models.Guest{
		{ID: 1, Name: "Ravi Kumar"},
	}

	if scored := SearchGuests("zzzzzz", guests); len(scored) != 0 {
		t.Fatalf("got %d matches, want 0", len(scored))
	}
}
