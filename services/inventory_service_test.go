package services

import (
	"testing"

	"pentouz/errors"
)

func TestNextStock(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		txnType string
		qty     float64
		want    float64
		errCode errors.ErrorCode
	}{
		{"consume", 10, "consumption", 4, 6, ""},
		{"consume all", 10, "consumption", 10, 0, ""},
		{"consume too much", 10, "consumption", 11, 0, errors.ErrCodeInsufficientStock},
		{"consume zero", 10, "consumption", 0, 0, errors.ErrCodeInvalidAmount},
		{"consume negative", 10, "consumption", -1, 0, errors.ErrCodeInvalidAmount},
		{"restock", 10, "restock", 5, 15, ""},
		{"restock zero", 10, "restock", 0, 0, errors.ErrCodeInvalidAmount},
		{"adjust up", 10, "adjustment", 2.5, 12.5, ""},
		{"adjust down", 10, "adjustment", -3, 7, ""},
		{"adjust below zero", 10, "adjustment", -11, 0, errors.ErrCodeInsufficientStock},
		{"unknown type", 10, "transfer", 1, 0, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range cases {
		got, err := NextStock(tt.current, tt.txnType, tt.qty)
		if tt.errCode != "" {
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tt.errCode {
				t.Fatalf("%s: got %v, want %s", tt.name, err, tt.errCode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: NextStock=%v, want %v", tt.name, got, tt.want)
		}
	}
}
