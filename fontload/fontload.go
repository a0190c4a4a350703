// Package fontload parses TrueType/OpenType font files and extracts the
// raw glyph outlines and metrics consumed by glyphrast.
//
// Parsing uses golang.org/x/image/font/sfnt; outlines are delivered at
// ppem = unitsPerEm so coordinates are exact integer font units, flipped
// from sfnt's y-down frame into the y-up glyph frame. Text-to-glyph
// resolution (including ligatures) is available through the optional
// HarfBuzz shaper in shaper.go.
package fontload

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphrast"
)

// GlyphID identifies a glyph within a font face. Glyph IDs are assigned
// by the font file and are font-specific.
type GlyphID uint16

// Face is a loaded font face.
//
// Face is safe for concurrent use; the shared sfnt working buffer is
// guarded internally.
type Face struct {
	data []byte
	font *sfnt.Font
	name string
	upem int32

	// mu guards buf; sfnt.Buffer is not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer

	shaperOnce sync.Once
	shaper     *shaper
	shaperErr  error
}

// Load parses font data (TTF or OTF). The data slice is copied
// internally and can be reused after this call.
func Load(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("fontload: parse font: %w", err)
	}
	face := &Face{
		data: dataCopy,
		font: f,
		upem: int32(f.UnitsPerEm()),
	}
	if name, err := f.Name(&face.buf, sfnt.NameIDFamily); err == nil {
		face.name = name
	}
	return face, nil
}

// LoadFile loads a Face from a font file path.
func LoadFile(path string) (*Face, error) {
	// #nosec G304 -- the font file path is provided by the user.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontload: read font file: %w", err)
	}
	return Load(data)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm returns the size of the EM square in font units.
func (f *Face) UnitsPerEm() int32 {
	return f.upem
}

// Name returns the font family name, if present.
func (f *Face) Name() string {
	return f.name
}

func (f *Face) ppem() fixed.Int26_6 {
	return fixed.I(int(f.upem))
}

// GlyphIndex returns the glyph ID for a rune; 0 (.notdef) when the font
// has no mapping.
func (f *Face) GlyphIndex(r rune) (GlyphID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("fontload: glyph index for %q: %w", r, err)
	}
	return GlyphID(gi), nil
}

// Info returns the face-level metrics in grid units, flipped into the
// y-up glyph frame.
func (f *Face) Info() (glyphrast.FontInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var info glyphrast.FontInfo
	bounds, err := f.font.Bounds(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return info, fmt.Errorf("fontload: font bounds: %w", err)
	}
	info.BBoxMin = glyphrast.Pt(i26(bounds.Min.X), -i26(bounds.Max.Y))
	info.BBoxMax = glyphrast.Pt(i26(bounds.Max.X), -i26(bounds.Min.Y))
	info.EmSize = f.upem

	met, err := f.font.Metrics(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return info, fmt.Errorf("fontload: font metrics: %w", err)
	}
	info.Ascender = i26(met.Ascent)
	info.Descender = -i26(met.Descent)
	info.LineHeight = i26(met.Height)
	info.MaxAdvanceWidth = info.BBoxMax.X - info.BBoxMin.X
	info.MaxAdvanceHeight = info.LineHeight
	// Underline metrics are not exposed by sfnt and stay zero.
	return info, nil
}

// GlyphOutline returns the raw outline and metrics for a glyph.
// Coordinates are integer font units in the y-up frame; quadratic
// control points are tagged off-curve, cubic control points carry
// TagThirdOrder so that glyph construction rejects them.
func (f *Face) GlyphOutline(gid GlyphID) (glyphrast.Outline, glyphrast.Metrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var o glyphrast.Outline
	var m glyphrast.Metrics

	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem(), nil)
	if err != nil {
		return o, m, fmt.Errorf("fontload: load glyph %d: %w", gid, err)
	}

	flush := func() {
		n := len(o.Points)
		start := 0
		if k := len(o.ContourEnds); k > 0 {
			start = o.ContourEnds[k-1]
		}
		// Drop an explicit closing point duplicating the contour start;
		// contours are implicitly closed.
		if n-start >= 2 && o.Points[n-1] == o.Points[start] &&
			o.Tags[n-1]&glyphrast.TagOnCurve != 0 {
			o.Points = o.Points[:n-1]
			o.Tags = o.Tags[:n-1]
			n--
		}
		if n > start {
			o.ContourEnds = append(o.ContourEnds, n)
		}
	}
	add := func(p fixed.Point26_6, tag uint8) {
		o.Points = append(o.Points, segPoint(p))
		o.Tags = append(o.Tags, tag)
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			add(seg.Args[0], glyphrast.TagOnCurve)
		case sfnt.SegmentOpLineTo:
			add(seg.Args[0], glyphrast.TagOnCurve)
		case sfnt.SegmentOpQuadTo:
			add(seg.Args[0], 0)
			add(seg.Args[1], glyphrast.TagOnCurve)
		case sfnt.SegmentOpCubeTo:
			add(seg.Args[0], glyphrast.TagThirdOrder)
			add(seg.Args[1], glyphrast.TagThirdOrder)
			add(seg.Args[2], glyphrast.TagOnCurve)
		}
	}
	flush()

	bounds, advance, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.ppem(), font.HintingNone)
	if err != nil {
		return o, m, fmt.Errorf("fontload: glyph bounds %d: %w", gid, err)
	}
	minX, maxX := i26(bounds.Min.X), i26(bounds.Max.X)
	top, bottom := -i26(bounds.Min.Y), -i26(bounds.Max.Y)
	m.Width = maxX - minX
	m.Height = top - bottom
	m.HBearingX = minX
	m.HBearingY = top
	m.HAdvance = i26(advance)

	// Vertical layout metrics are synthesised the way FreeType does for
	// fonts without vertical tables.
	met, err := f.font.Metrics(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return o, m, fmt.Errorf("fontload: font metrics: %w", err)
	}
	m.VAdvance = i26(met.Ascent) + i26(met.Descent)
	m.VBearingX = -m.Width / 2
	m.VBearingY = (m.VAdvance - m.Height) / 2
	return o, m, nil
}

// segPoint converts a fixed 26.6 point from sfnt's y-down frame into an
// integer y-up glyph point. At ppem = unitsPerEm all values are whole
// font units.
func segPoint(p fixed.Point26_6) glyphrast.Point {
	return glyphrast.Pt(int32(p.X>>6), -int32(p.Y>>6))
}

// i26 truncates a fixed 26.6 value to integer font units.
func i26(v fixed.Int26_6) int32 {
	return int32(v >> 6)
}
