package testutil

import "testing"

func TestNormalizedDeterministic(t *testing.T) {
	a := Normalized(7, 16)
	b := Normalized(7, 16)
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < 0 || v >= 1 {
			t.Fatalf("index %d: %v outside [0,1)", i, v)
		}
	}
}

func TestAffine(t *testing.T) {
	got := Affine([]float64{0, 0.5, 1}, 50, 100)
	RequireSliceNearlyEqual(t, got, []float64{50, 75, 100}, 1e-12)
}
