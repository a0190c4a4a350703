// Package glyphrast rasterises single glyph outlines into monochrome images.
//
// A glyph outline arrives as raw TrueType-style contour data (point
// coordinates plus on-curve/off-curve flags) and is normalised during
// construction into an ordered array of packed quadratic Bézier curves,
// each carrying a precomputed sign-lookup word. Two acceleration
// structures are built alongside: a per-row curve index for vertical
// culling, and a low-resolution "coarse bitmap" that classifies whole
// sub-rectangles of the glyph as fully inside, fully outside, or mixed.
//
// The central operation is the point-in-glyph test: a horizontal
// rightward ray is cast from the query point and signed crossings are
// summed over the candidate curves, so self-intersecting outlines
// (composite glyphs, ligatures) render correctly under the non-zero
// fill rule. Rendering maps every pixel of the target image to a
// glyph-space sample point and asks the oracle.
//
// A Glyph is immutable after construction and safe for concurrent
// queries. Font parsing lives in the fontload subpackage; the
// cmd/glyphrast driver renders whole fonts and validates output
// checksums.
package glyphrast
