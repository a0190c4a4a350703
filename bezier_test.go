package glyphrast

import (
	"math"
	"math/rand"
	"testing"
)

func quad(p0x, p0y, p1x, p1y, p2x, p2y int32) PackedBezier {
	return packBezier(Pt(p0x, p0y), Pt(p1x, p1y), Pt(p2x, p2y))
}

func TestPackedBezierExtents(t *testing.T) {
	b := quad(10, 10, 10, 20, 20, 20)
	if b.MinX() != 10 || b.MaxX() != 20 || b.MinY() != 10 || b.MaxY() != 20 {
		t.Errorf("extents = (%d..%d, %d..%d), want (10..20, 10..20)",
			b.MinX(), b.MaxX(), b.MinY(), b.MaxY())
	}
	if b.xDegenerate() || b.yDegenerate() {
		t.Error("curve reported degenerate")
	}
	v := quad(10, 10, 10, 10, 10, 20)
	if !v.xDegenerate() {
		t.Error("vertical segment not xDegenerate")
	}

	if x, y := b.At(0); x != 10 || y != 10 {
		t.Errorf("At(0) = (%v, %v), want curve start", x, y)
	}
	if x, y := b.At(1); x != 20 || y != 20 {
		t.Errorf("At(1) = (%v, %v), want curve end", x, y)
	}
}

func TestIntersectMicroCases(t *testing.T) {
	tests := []struct {
		name  string
		curve PackedBezier
		ray   Point
		want  int
	}{
		{
			name:  "L-shape quadratic, one upward crossing",
			curve: quad(10, 10, 10, 20, 20, 20),
			ray:   Pt(0, 15),
			want:  -1,
		},
		{
			name:  "vertical segment ascending",
			curve: quad(10, 10, 10, 10, 10, 20),
			ray:   Pt(5, 15),
			want:  -1,
		},
		{
			name:  "vertical segment descending",
			curve: quad(10, 20, 10, 20, 10, 10),
			ray:   Pt(5, 15),
			want:  1,
		},
		{
			name:  "ray behind the curve",
			curve: quad(10, 10, 10, 10, 10, 20),
			ray:   Pt(50, 15),
			want:  0,
		},
		{
			name:  "ray above the curve",
			curve: quad(10, 10, 10, 20, 20, 20),
			ray:   Pt(0, 25),
			want:  0,
		},
		{
			name:  "ray below the curve",
			curve: quad(10, 10, 10, 20, 20, 20),
			ray:   Pt(0, 5),
			want:  0,
		},
		{
			name:  "arch crossed twice nets zero",
			curve: quad(1, 10, 11, 30, 21, 10),
			ray:   Pt(0, 15),
			want:  0,
		},
		{
			name:  "arch from between the crossings",
			curve: quad(1, 10, 11, 30, 21, 10),
			ray:   Pt(11, 15),
			want:  1,
		},
		{
			name:  "arch grazing its base",
			curve: quad(1, 10, 11, 30, 21, 10),
			ray:   Pt(0, 10),
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersect(tt.ray, tt.curve); got != tt.want {
				t.Errorf("Intersect(%v) = %d, want %d", tt.ray, got, tt.want)
			}
		})
	}
}

// A ray through a shared curve endpoint must be counted exactly once by
// the pair of curves meeting there.
func TestIntersectSharedEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 PackedBezier
		ray    Point
	}{
		{
			name: "two ascending segments",
			c1:   quad(10, 10, 10, 10, 10, 20),
			c2:   quad(10, 20, 10, 20, 10, 30),
			ray:  Pt(5, 20),
		},
		{
			name: "two descending segments",
			c1:   quad(10, 30, 10, 30, 10, 20),
			c2:   quad(10, 20, 10, 20, 10, 10),
			ray:  Pt(5, 20),
		},
		{
			name: "quad into quad",
			c1:   quad(20, 1, 1, 1, 1, 20),
			c2:   quad(1, 20, 1, 39, 20, 39),
			ray:  Pt(0, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Intersect(tt.ray, tt.c1) + Intersect(tt.ray, tt.c2)
			if sum != 1 && sum != -1 {
				t.Errorf("signed count through shared endpoint = %d, want ±1", sum)
			}
		})
	}
}

// referenceCrossings recomputes the signed crossing count with the
// floating-point quadratic solver, with no lookup involved. ok is false
// when the configuration is numerically borderline (roots near the
// parameter endpoints, tangencies, crossings near the ray origin) and
// the comparison should be skipped.
func referenceCrossings(q Point, b PackedBezier) (int, bool) {
	const eps = 1e-4
	a := float64(int32(b.P0y) - 2*int32(b.P1y) + int32(b.P2y))
	bb := float64(2 * (int32(b.P1y) - int32(b.P0y)))
	c := float64(int32(b.P0y) - q.Y)

	if math.Abs(a) > eps {
		if disc := bb*bb - 4*a*c; math.Abs(disc) < 1 {
			return 0, false
		}
	}

	ex := float64(int32(b.P0x) - 2*int32(b.P1x) + int32(b.P2x))
	fx := float64(2 * (int32(b.P1x) - int32(b.P0x)))

	sum := 0
	for _, tv := range SolveQuadratic(a, bb, c) {
		if tv < -eps || tv > 1+eps {
			continue
		}
		if tv < eps || tv > 1-eps {
			return 0, false
		}
		x := ex*tv*tv + fx*tv + float64(b.P0x)
		if math.Abs(x-float64(q.X)) < 0.5 {
			return 0, false
		}
		if x < float64(q.X) {
			continue
		}
		dy := 2*a*tv + bb
		if math.Abs(dy) < eps {
			return 0, false
		}
		if dy > 0 {
			sum--
		} else {
			sum++
		}
	}
	return sum, true
}

// The integer-sign lookup must agree with a plain floating-point root
// finder on every non-borderline configuration.
func TestIntersectMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coord := func() int32 { return int32(rng.Intn(200)) + 1 }

	checked := 0
	for i := 0; i < 2000; i++ {
		b := quad(coord(), coord(), coord(), coord(), coord(), coord())
		if b.yDegenerate() {
			continue
		}
		for _, q := range []Point{
			Pt(0, int32(rng.Intn(210))),
			Pt(int32(rng.Intn(210)), int32(rng.Intn(210))),
		} {
			want, ok := referenceCrossings(q, b)
			if !ok {
				continue
			}
			if got := Intersect(q, b); got != want {
				t.Fatalf("Intersect(%v, %+v) = %d, reference = %d", q, b, got, want)
			}
			checked++
		}
	}
	if checked < 1000 {
		t.Fatalf("only %d configurations checked, generator too narrow", checked)
	}
}

func TestLookupSegmentTable(t *testing.T) {
	asc := quad(10, 10, 10, 10, 10, 20)
	desc := quad(10, 20, 10, 20, 10, 10)

	// Ascending crossings are reported through the plus bit, descending
	// through the minus bit; both contribute from the slot selected by
	// the signs of C and K.
	if got := Intersect(Pt(0, 15), asc); got != -1 {
		t.Errorf("ascending segment contribution = %d, want -1", got)
	}
	if got := Intersect(Pt(0, 15), desc); got != 1 {
		t.Errorf("descending segment contribution = %d, want 1", got)
	}
	if asc.Lookup == desc.Lookup {
		t.Error("ascending and descending segments share a lookup word")
	}
}
