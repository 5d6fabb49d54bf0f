package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1e9, 1e9+1e-4, 1e-12) {
		t.Fatal("expected relative tolerance for large magnitudes")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "zero", x: 0, want: true},
		{name: "negative", x: -3.5, want: true},
		{name: "nan", x: math.NaN(), want: false},
		{name: "+inf", x: math.Inf(1), want: false},
		{name: "-inf", x: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.x); got != tt.want {
				t.Fatalf("IsFinite(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name   string
		t, lo  float64
		hi     float64
		expect float64
	}{
		{name: "start", t: 0, lo: 50, hi: 100, expect: 50},
		{name: "mid", t: 0.5, lo: 50, hi: 100, expect: 75},
		{name: "end", t: 1, lo: 50, hi: 100, expect: 100},
		{name: "inverted", t: 0.25, lo: 100, hi: 0, expect: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.t, tt.lo, tt.hi)
			if !NearlyEqual(got, tt.expect, 1e-12) {
				t.Fatalf("Lerp() = %v, want %v", got, tt.expect)
			}
		})
	}
}
