package glyphrast

import "math"

// Intersect returns the signed number of crossings between the horizontal
// rightward ray from q and the packed curve b: each crossing where the
// curve's y is decreasing contributes +1, each where it is increasing
// contributes -1, so summing over a glyph's curves yields the winding
// number used by the non-zero fill rule. The result is in {-1, 0, +1}:
// the two roots of one curve always cross in opposite directions.
//
// The sign tests on the y-axis (including the discriminant) run in
// integer arithmetic so that two curves sharing an endpoint see exactly
// the same signs and a ray through the shared point is counted once.
// Only the square root and the x-image evaluation use floating point; a
// root sitting exactly on the ray origin may classify either way, which
// is sub-pixel.
func Intersect(q Point, b PackedBezier) int {
	n, _, _, _ := intersectRoots(q, b)
	return n
}

// intersectRoots is Intersect plus the glyph-space x-images of the two
// candidate roots and the 2-bit lookup slot that selected them; the
// coarse bitmap construction uses the x-images to locate boundary
// crossings. minusX and plusX are meaningful only for the roots whose
// slot bit is set; slot is 0 when there is no real crossing.
func intersectRoots(q Point, b PackedBezier) (n int, minusX, plusX float32, outSlot uint32) {
	B := int32(b.P1y) - int32(b.P0y)
	A := B + int32(b.P1y) - int32(b.P2y)
	C := int32(b.P0y) - q.Y
	K := int32(b.P2y) - q.Y

	var shift uint
	if C >= 0 {
		shift += 2
	}
	if K >= 0 {
		shift += 4
	}
	slot := (b.Lookup >> shift) & 3
	if slot == 0 {
		return 0, 0, 0, 0
	}

	// The "minus" slot bit refers to the root taken with +√, the "plus"
	// bit to the root taken with -√: for positive A the plus root is the
	// smaller parameter, for negative A the larger, which keeps upward
	// crossings in the plus bit regardless of orientation.
	var tMinus, tPlus float32
	if A == 0 {
		// Stored curves never have A == 0 and B == 0 at once; that would
		// mean all three y-coordinates are equal, which ingestion drops.
		t := float32(C) / float32(-2*B)
		tMinus, tPlus = t, t
	} else {
		disc := int64(B)*int64(B) + int64(A)*int64(C)
		if disc < 0 {
			return 0, 0, 0, 0
		}
		sq := float32(math.Sqrt(float64(disc)))
		tMinus = (float32(B) + sq) / float32(A)
		tPlus = (float32(B) - sq) / float32(A)
	}

	E := float32(int32(b.P0x) - 2*int32(b.P1x) + int32(b.P2x))
	F := float32(2 * (int32(b.P1x) - int32(b.P0x)))
	p0x := float32(b.P0x)
	minusX = tMinus*(E*tMinus+F) + p0x
	plusX = tPlus*(E*tPlus+F) + p0x

	x := float32(q.X)
	if slot&1 != 0 && minusX >= x {
		n++
	}
	if slot&2 != 0 && plusX >= x {
		n--
	}
	return n, minusX, plusX, slot
}
