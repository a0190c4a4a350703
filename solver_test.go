package glyphrast

import (
	"math"
	"sort"
	"testing"
)

func verifyRoots(t *testing.T, roots, want []float64) {
	t.Helper()
	if len(roots) != len(want) {
		t.Fatalf("got %d roots %v, want %d %v", len(roots), roots, len(want), want)
	}
	sorted := append([]float64(nil), roots...)
	sort.Float64s(sorted)
	for i := range sorted {
		if math.Abs(sorted[i]-want[i]) > 1e-10 {
			t.Errorf("root[%d] = %v, want %v", i, sorted[i], want[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -5, 6, []float64{2, 3}},
		{"scaled coefficients", 2, -10, 12, []float64{2, 3}},
		{"no real roots", 1, 0, 5, nil},
		{"double root", 1, 2, 1, []float64{-1}},
		{"linear", 0, 1, 5, []float64{-5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifyRoots(t, roots, tt.want)
			for _, r := range roots {
				if v := tt.a*r*r + tt.b*r + tt.c; math.Abs(v) > 1e-8 {
					t.Errorf("f(%v) = %v, want 0", r, v)
				}
			}
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	// Roots at 0.25 and 2 - only the first is a curve parameter.
	roots := SolveQuadraticInUnitInterval(1, -2.25, 0.5)
	verifyRoots(t, roots, []float64{0.25})

	if got := SolveQuadraticInUnitInterval(1, -5, 6); got != nil {
		t.Errorf("roots outside [0,1] leaked through: %v", got)
	}
}
