package glyphrast

import (
	"fmt"
	"math"
)

// Tag bits describing an outline point, matching the upstream loader's
// per-point flags.
const (
	// TagOnCurve marks a point lying on the outline; points without it
	// are off-curve Bézier control points.
	TagOnCurve uint8 = 1 << 0

	// TagThirdOrder marks a third-order (cubic) control point. Outlines
	// containing it are rejected with ErrUnsupportedCurveOrder.
	TagThirdOrder uint8 = 1 << 1
)

// Outline is the raw glyph outline as delivered by a font loader:
// a flat point array cut into closed contours, with one tag byte per
// point. Coordinates are in integer glyph grid units.
type Outline struct {
	// ContourEnds holds, per contour, the index one past its last point.
	// Entries are strictly increasing; the last equals len(Points).
	ContourEnds []int

	Points []Point
	Tags   []uint8
}

// Metrics carries a glyph's bounding box dimensions and cursor offsets
// for horizontal and vertical layout, in integer grid units. The bearing
// fields are shifted during glyph construction so that they address the
// translated, strictly positive coordinate frame.
type Metrics struct {
	Width  int32
	Height int32

	// Horizontal layout: cursor-to-bounding-box offsets and advance.
	HBearingX int32
	HBearingY int32
	HAdvance  int32

	// Vertical layout.
	VBearingX int32
	VBearingY int32
	VAdvance  int32
}

// maxPackedCoord is the largest coordinate representable after
// translation; 0 is reserved as the half-open-box sentinel and 32767 is
// kept free so a cell boundary one past the maximum still fits.
const maxPackedCoord = 32766

type bezier3 struct {
	p0, p1, p2 Point
}

// buildCurves converts a raw outline into the packed, translated,
// degeneracy-filtered curve array. It returns the translation offset
// that was added to every coordinate so the caller can shift the glyph
// metrics by the same amount.
func buildCurves(o Outline) ([]PackedBezier, Point, error) {
	if len(o.ContourEnds) == 0 || len(o.Points) == 0 {
		return nil, Point{}, ErrEmptyGlyph
	}
	if len(o.Tags) != len(o.Points) {
		return nil, Point{}, fmt.Errorf("%w: %d points but %d tags",
			ErrMalformedOutline, len(o.Points), len(o.Tags))
	}
	for _, t := range o.Tags {
		if t&TagThirdOrder != 0 {
			return nil, Point{}, ErrUnsupportedCurveOrder
		}
	}
	prev := 0
	for i, end := range o.ContourEnds {
		if end <= prev || end > len(o.Points) {
			return nil, Point{}, fmt.Errorf("%w: contour end %d at index %d",
				ErrMalformedOutline, end, i)
		}
		prev = end
	}

	var raw []bezier3
	begin := 0
	dropped := 0
	for _, end := range o.ContourEnds {
		pts, tags := expandImplicit(o.Points[begin:end], o.Tags[begin:end])
		begin = end
		if len(pts) < 3 {
			dropped++
			continue
		}
		n := len(pts)
		for i := 0; i < n; i++ {
			prevIdx := (i + n - 1) % n
			if tags[i]&TagOnCurve == 0 {
				// Off-curve control point: its neighbours are on-curve
				// after implicit insertion.
				raw = append(raw, bezier3{pts[prevIdx], pts[i], pts[(i+1)%n]})
			} else if tags[prevIdx]&TagOnCurve != 0 {
				// Two consecutive on-curve points form a line segment,
				// stored as the degenerate quadratic with p1 = p0.
				raw = append(raw, bezier3{pts[prevIdx], pts[prevIdx], pts[i]})
			}
		}
	}
	if dropped > 0 {
		Logger().Warn("dropped short contours", "count", dropped)
	}
	if len(raw) == 0 {
		return nil, Point{}, nil
	}

	minP := Pt(math.MaxInt32, math.MaxInt32)
	for _, c := range raw {
		minP = minP.Min(c.p0).Min(c.p1).Min(c.p2)
	}
	offset := Pt(1-minP.X, 1-minP.Y)

	curves := make([]PackedBezier, 0, len(raw))
	for _, c := range raw {
		p0 := c.p0.Add(offset)
		p1 := c.p1.Add(offset)
		p2 := c.p2.Add(offset)
		if hi := p0.Max(p1).Max(p2); hi.X > maxPackedCoord || hi.Y > maxPackedCoord {
			return nil, Point{}, fmt.Errorf("%w: coordinates exceed %d after translation",
				ErrMalformedOutline, maxPackedCoord)
		}
		if p0.Y == p1.Y && p1.Y == p2.Y {
			// Cannot affect a horizontal ray; x-degenerate curves are
			// kept, vertical extents matter.
			continue
		}
		curves = append(curves, packBezier(p0, p1, p2))
	}
	return curves, offset, nil
}

// expandImplicit inserts the TrueType implicit on-curve midpoints:
// whenever two cyclically consecutive points are both off-curve, their
// midpoint joins the contour as an on-curve point.
func expandImplicit(pts []Point, tags []uint8) ([]Point, []uint8) {
	n := len(pts)
	out := make([]Point, 0, n+2)
	outTags := make([]uint8, 0, n+2)
	for i := 0; i < n; i++ {
		out = append(out, pts[i])
		outTags = append(outTags, tags[i])
		next := (i + 1) % n
		if tags[i]&TagOnCurve == 0 && tags[next]&TagOnCurve == 0 {
			out = append(out, mid(pts[i], pts[next]))
			outTags = append(outTags, TagOnCurve)
		}
	}
	return out, outTags
}
