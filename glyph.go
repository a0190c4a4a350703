package glyphrast

import "sort"

// Glyph is a single glyph outline prepared for point-in-glyph queries:
// the packed curve array sorted by minimum y, the per-row start index,
// and the coarse classification bitmap. A Glyph is immutable after
// construction and safe for concurrent reads.
type Glyph struct {
	curves    []PackedBezier
	rowIndex  []int32
	coarse    coarseBitmap
	boxLength int32
	metrics   Metrics
}

// NewGlyph builds a Glyph from a raw outline and its metrics.
//
// Construction normalises the outline (implicit on-curve insertion,
// curve emission, translation to the strictly positive frame, dropping
// y-degenerate curves), sorts the curves, and fills in the row index and
// the coarse bitmap. The bearing fields of the returned glyph's metrics
// are shifted into the translated frame.
//
// Errors: ErrEmptyGlyph, ErrUnsupportedCurveOrder, ErrMalformedOutline.
// On error no partially constructed glyph is returned.
func NewGlyph(o Outline, m Metrics) (*Glyph, error) {
	curves, offset, err := buildCurves(o)
	if err != nil {
		return nil, err
	}
	m.HBearingX += offset.X
	m.HBearingY += offset.Y
	m.VBearingX += offset.X
	m.VBearingY += offset.Y

	sort.Slice(curves, func(i, j int) bool {
		return curves[i].MinY() < curves[j].MinY()
	})

	g := &Glyph{curves: curves, metrics: m}
	g.coarse = newCoarseBitmap(coarseLog(m.Width, m.Height))
	g.boxLength = ceilDiv(max(m.Width+1, m.Height+1), int32(1)<<g.coarse.log)
	if g.boxLength < 1 {
		g.boxLength = 1
	}
	g.buildRowIndex()
	g.buildCoarse()

	Logger().Debug("glyph constructed",
		"curves", len(curves),
		"coarseLog", g.coarse.log,
		"boxLength", g.boxLength)
	return g, nil
}

// Metrics returns the glyph metrics, with bearings in the translated
// coordinate frame.
func (g *Glyph) Metrics() Metrics {
	return g.metrics
}

// Curves returns the packed curve array, sorted by minimum y.
// The returned slice is shared and must not be modified.
func (g *Glyph) Curves() []PackedBezier {
	return g.curves
}

// buildRowIndex fills rowIndex so that rowIndex[r] is the first curve
// whose maximum y reaches the lower edge of coarse row r. A query in
// row r starts its scan there; everything before cannot span down to
// the row.
func (g *Glyph) buildRowIndex() {
	rows := 1 << g.coarse.log
	g.rowIndex = make([]int32, rows+1)
	idx := int32(0)
	for r := 0; r <= rows; r++ {
		thresh := int32(r) * g.boxLength
		for idx < int32(len(g.curves)) && g.curves[idx].MaxY() < thresh {
			idx++
		}
		g.rowIndex[r] = idx
	}
}

// IsInside reports whether p lies inside the filled region of the glyph
// under the non-zero fill rule. Uniform coarse cells answer directly;
// mixed cells and points outside the coarse region fall through to the
// exact signed ray cast.
func (g *Glyph) IsInside(p Point) bool {
	dx := p.X - g.metrics.HBearingX
	if dx >= 0 && p.Y >= 0 {
		n := int32(1) << g.coarse.log
		cx, cy := dx/g.boxLength, p.Y/g.boxLength
		if cx < n && cy < n {
			switch g.coarse.at(int(cx), int(cy)) {
			case cellOutside:
				return false
			case cellInside:
				return true
			}
		}
	}
	return g.winding(p) != 0
}

// winding returns the signed crossing count of the rightward horizontal
// ray from p against all candidate curves. Non-zero means inside.
func (g *Glyph) winding(p Point) int {
	row := int32(0)
	if p.Y > 0 {
		row = p.Y / g.boxLength
	}
	if int(row) >= len(g.rowIndex) {
		row = int32(len(g.rowIndex) - 1)
	}
	sum := 0
	for i := g.rowIndex[row]; i < int32(len(g.curves)); i++ {
		c := &g.curves[i]
		if c.MinY() > p.Y {
			break
		}
		if c.MaxY() < p.Y {
			continue
		}
		if c.MaxX() < p.X {
			// Entirely left of the ray origin; unreachable by the
			// rightward ray. Curves entirely to the right still
			// contribute sign and must be visited.
			continue
		}
		sum += Intersect(p, *c)
	}
	return sum
}

// ceilDiv divides positive integers, rounding up.
func ceilDiv(a, b int32) int32 {
	return (a + b - 1) / b
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
