package glyphrast

import "math"

// Quadratic root solver, used as the floating-point reference for the
// integer-sign intersection tests and for diagnostics.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust: if a is zero or nearly zero the
// equation is treated as linear, and overflow in the discriminant falls
// back to a stable split.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveQuadraticLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		return solveQuadraticOverflow(sc0, sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable split avoiding cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticOverflow handles discriminant overflow.
func solveQuadraticOverflow(sc0, sc1 float64) []float64 {
	root1 := -sc1
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticLinear handles the case when a is zero or very small.
func solveQuadraticLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 that
// lie in [0, 1]. Useful for parameter values on Bézier curves.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	roots := SolveQuadratic(a, b, c)
	result := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
