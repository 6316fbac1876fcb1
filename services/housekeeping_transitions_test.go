package services

import "testing"

func TestValidTaskTransition(t *testing.T) {
	cases := []struct {
		action string
		from   string
		valid  bool
	}{
		{"assign", "pending", true},
		{"assign", "assigned", true},
		{"assign", "in_progress", false},
		{"start", "assigned", true},
		{"start", "pending", false},
		{"complete", "in_progress", true},
		{"complete", "assigned", false},
		{"cancel", "pending", true},
		{"cancel", "assigned", true},
		{"cancel", "in_progress", false},
		{"cancel", "completed", false},
		{"reopen", "completed", true},
		{"reopen", "cancelled", true},
		{"reopen", "pending", false},
		{"unknown", "pending", false},
	}

	for _, tt := range cases {
		if got := ValidTaskTransition(tt.action, tt.from); got != tt.valid {
			t.Fatalf("ValidTaskTransition(%q, %q)=%v, want %v", tt.action, tt.from, got, tt.valid)
		}
	}
}

func TestNextTaskStatus(t *testing.T) {
	cases := []struct {
		action string
		next   string
	}{
		{"assign", "assigned"},
		{"start", "in_progress"},
		{"complete", "completed"},
		{"cancel", "cancelled"},
		{"reopen", "pending"},
		{"unknown", ""},
	}

	for _, tt := range cases {
		if got := NextTaskStatus(tt.action); got != tt.next {
			t.Fatalf("NextTaskStatus(%q)=%q, want %q", tt.action, got, tt.next)
		}
	}
}
