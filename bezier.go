package glyphrast

// PackedBezier is a quadratic Bézier curve with all three control points
// stored as 16-bit unsigned integers, laid out as two coordinate triples
// for density, plus a precomputed 32-bit sign-lookup word. A contiguous
// slice of PackedBezier is iterated linearly during both construction and
// queries; no per-curve indirection.
//
// Invariants maintained by ingestion:
//   - all six coordinates lie in [1, 32766]; coordinate 0 is reserved as
//     the half-open-box sentinel
//   - the three y-coordinates are not all equal (y-degenerate curves
//     cannot affect a horizontal ray and are dropped)
//
// A line segment is represented as the degenerate quadratic with P1 = P0.
type PackedBezier struct {
	P0x, P1x, P2x uint16
	P0y, P1y, P2y uint16

	// Lookup holds, in its low byte, four 2-bit slots indexed by
	// (C >= 0) + 2*(K >= 0) where C = P0y - rayY and K = P2y - rayY.
	// The low bit of a slot reports that the curve's "minus" parametric
	// root yields a crossing (contributing +1), the high bit that the
	// "plus" root does (contributing -1). See buildLookup.
	Lookup uint32
}

// MinX returns the minimum x over the three control points.
func (b PackedBezier) MinX() int32 {
	return int32(min(b.P0x, b.P1x, b.P2x))
}

// MaxX returns the maximum x over the three control points.
func (b PackedBezier) MaxX() int32 {
	return int32(max(b.P0x, b.P1x, b.P2x))
}

// MinY returns the minimum y over the three control points.
func (b PackedBezier) MinY() int32 {
	return int32(min(b.P0y, b.P1y, b.P2y))
}

// MaxY returns the maximum y over the three control points.
func (b PackedBezier) MaxY() int32 {
	return int32(max(b.P0y, b.P1y, b.P2y))
}

// yDegenerate reports whether all three y-coordinates are equal.
func (b PackedBezier) yDegenerate() bool {
	return b.P0y == b.P1y && b.P1y == b.P2y
}

// xDegenerate reports whether all three x-coordinates are equal,
// i.e. the curve is a vertical segment.
func (b PackedBezier) xDegenerate() bool {
	return b.P0x == b.P1x && b.P1x == b.P2x
}

// transposed returns the curve with x and y swapped. Used for the
// column sweep during coarse bitmap construction; the lookup word is
// rebuilt for the swapped coordinates.
func (b PackedBezier) transposed() PackedBezier {
	t := PackedBezier{
		P0x: b.P0y, P1x: b.P1y, P2x: b.P2y,
		P0y: b.P0x, P1y: b.P1x, P2y: b.P2x,
	}
	t.buildLookup()
	return t
}

// At evaluates the curve at parameter t. Intended for tests and
// diagnostics; queries never evaluate the full parametric form.
func (b PackedBezier) At(t float64) (x, y float64) {
	u := 1 - t
	x = u*u*float64(b.P0x) + 2*u*t*float64(b.P1x) + t*t*float64(b.P2x)
	y = u*u*float64(b.P0y) + 2*u*t*float64(b.P1y) + t*t*float64(b.P2y)
	return x, y
}

// buildLookup fills in the sign-lookup word from the y-coordinates.
//
// With B = P1y-P0y, A = 2*P1y-P0y-P2y and a ray at height yr, the
// crossing parameters are t = (B ± √(B²+A·C))/A, C = P0y-yr. Which of
// the two roots lies in [0,1) — and therefore contributes to the signed
// crossing count — depends only on the signs of C, K = P2y-yr, and the
// curve's shape constants A, B and M = A-B. The truth table over
// (C >= 0, K >= 0) is fixed per curve, so it is evaluated here once;
// a query reduces to one shift, one mask and two comparisons.
func (b *PackedBezier) buildLookup() {
	B := int32(b.P1y) - int32(b.P0y)
	A := B + int32(b.P1y) - int32(b.P2y)
	M := A - B

	bgz := B > 0
	agz := A > 0
	mgz := M > 0

	var lut uint32
	set := func(cond bool, mask uint32) {
		if cond {
			lut |= mask
		}
	}
	// Lower bit of each slot: the minus root contributes (+1).
	// Higher bit: the plus root contributes (-1).
	// Slots indexed with (C >= 0) + 2*(K >= 0).
	set(pick(bgz, agz, false) && pick(mgz, true, !agz), 0x01)
	set(pick(bgz, true, !agz) && pick(mgz, agz, false), 0x02)
	set(pick(bgz, agz, true) && pick(mgz, true, !agz), 0x04)
	set(pick(bgz, false, !agz) && pick(mgz, agz, false), 0x08)
	set(pick(bgz, agz, false) && pick(mgz, false, !agz), 0x10)
	set(pick(bgz, true, !agz) && pick(mgz, agz, true), 0x20)
	set(pick(bgz, agz, true) && pick(mgz, false, !agz), 0x40)
	set(pick(bgz, false, !agz) && pick(mgz, agz, true), 0x80)
	b.Lookup = lut
}

func pick(c, t, f bool) bool {
	if c {
		return t
	}
	return f
}

// packBezier builds a PackedBezier from three translated control points,
// which must already lie in [1, 32766].
func packBezier(p0, p1, p2 Point) PackedBezier {
	b := PackedBezier{
		P0x: uint16(p0.X), P1x: uint16(p1.X), P2x: uint16(p2.X),
		P0y: uint16(p0.Y), P1y: uint16(p1.Y), P2y: uint16(p2.Y),
	}
	b.buildLookup()
	return b
}
