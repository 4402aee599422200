package money

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1.00},
		{1.005, 1.01},
		{2224.444768, 2224.44},
		{-1.005, -1.01},
		{100000, 100000},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEqual2(t *testing.T) {
	if !Equal2(10.001, 10.004) {
		t.Error("amounts agreeing at 2 decimals reported unequal")
	}
	if Equal2(10.00, 10.01) {
		t.Error("differing amounts reported equal")
	}
}

func TestFormatINR(t *testing.T) {
	if got := FormatINR(2224.444768); got != "₹2224.44" {
		t.Errorf("FormatINR = %q, want ₹2224.44", got)
	}
}
