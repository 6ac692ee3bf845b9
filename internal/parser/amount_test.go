package parser

import (
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"1.234,56", 1234.56, false},
		{"1,234.56", 1234.56, false},
		{"148.78", 148.78, false},
		{"2.025,00", 2025.00, false},
		{"32.990,60", 32990.60, false},
		{"1234", 1234, false},
		{"752.98", 752.98, false},
		// Trailing digit count other than two: thousands artifact, integer.
		{"1.234", 1234, false},
		{"12,5", 125, false},
		{"1.234.567", 1234567, false},
		{"1.234,", 1234, false},
		// Currency suffix and noise characters are stripped.
		{"148,78 TL", 148.78, false},
		{"-25.99", 25.99, false},
		{"", 0, true},
		{"TL", 0, true},
		{".", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %f", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestNormalizeAmountSameHeuristicAsTotal(t *testing.T) {
	// The statement-total figure runs through the identical logic, so the
	// locale-ambiguous forms must agree.
	a, err := normalizeAmount("1.500,00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := normalizeAmount("1,500.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b || a != 1500.00 {
		t.Errorf("got %f and %f, want both 1500.00", a, b)
	}
}
