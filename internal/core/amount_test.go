package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestToAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		out  float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"negative float", -3.25, -3.25},
		{"int", 7, 7},
		{"int64", int64(42), 42},
		{"numeric string", "12.5", 12.5},
		{"padded string", " 2.50 ", 2.5},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"json number", json.Number("99.9"), 99.9},
		{"bad json number", json.Number("x"), 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"unsupported type", struct{}{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToAmount(tc.in); got != tc.out {
				t.Errorf("ToAmount(%v) = %v, want %v", tc.in, got, tc.out)
			}
		})
	}
}
