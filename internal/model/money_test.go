package model

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"99.00", 99},
		{"1234.56", 1234.56},
		{"0.00", 0},
		{"3", 3},
		{"-5.25", -5.25},
		{"", 0},          // empty input
		{"abc", 0},       // unparseable input
		{"12.34.56", 0},  // malformed decimal
		{"0.1", 0.1},     // exact binary-unfriendly value
		{"19.99", 19.99}, // typical unit price
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
