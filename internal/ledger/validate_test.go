package ledger

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  *float64
		wantErr bool
	}{
		{"positive", f(100), false},
		{"fractional", f(0.5), false},
		{"missing", nil, true},
		{"zero", f(0), true},
		{"negative", f(-10), true},
		{"nan", f(math.NaN()), true},
		{"inf", f(math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAmount() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2025-06-01", false},
		{"empty", "", true},
		{"wrong order", "01-06-2025", true},
		{"month out of range", "2025-13-01", true},
		{"not a date", "yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    *float64
		wantErr bool
	}{
		{"ten percent", f(10), false},
		{"full", f(100), false},
		{"missing", nil, true},
		{"zero", f(0), true},
		{"negative", f(-1), true},
		{"above hundred", f(101), true},
		{"nan", f(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRate(tt.rate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
