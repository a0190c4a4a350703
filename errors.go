package glyphrast

import "errors"

var (
	// ErrEmptyGlyph is returned when an outline has no contours or no points.
	ErrEmptyGlyph = errors.New("glyphrast: empty glyph outline")

	// ErrUnsupportedCurveOrder is returned when an outline contains
	// third-order (cubic) Bézier control points.
	ErrUnsupportedCurveOrder = errors.New("glyphrast: third order Bézier curves unsupported")

	// ErrMalformedOutline is returned when contour indices are inconsistent
	// or coordinates do not fit the packed representation.
	ErrMalformedOutline = errors.New("glyphrast: malformed outline")

	// ErrBadRenderSize is returned when neither target dimension is positive,
	// or the glyph has a degenerate bounding box.
	ErrBadRenderSize = errors.New("glyphrast: bad render size")
)
