package glyphrast

import "fmt"

// FontInfo carries face-level metrics shared by all glyphs of a font,
// in grid units. BBox is large enough to contain every glyph in the
// font (not at once, of course).
type FontInfo struct {
	BBoxMin Point // bottom left
	BBoxMax Point // top right

	// EmSize is the size of the EM square in grid units.
	EmSize int32

	Ascender   int32
	Descender  int32 // negative if below the baseline
	LineHeight int32

	MaxAdvanceWidth  int32
	MaxAdvanceHeight int32

	// UnderlinePosition is the centre of the underline relative to the
	// baseline, negative if below.
	UnderlinePosition  int32
	UnderlineThickness int32
}

// Render rasterises the glyph into a new image.
//
// Exactly one of width and height should be positive: it is the pixel
// size of the font's EM-scaled bounding box along that axis, and the
// other dimension is derived from the glyph's aspect ratio. Each pixel
// is mapped to a glyph-space sample point (pixel y grows downward,
// glyph y grows upward) and coloured by the point-in-glyph oracle.
//
// Returns ErrBadRenderSize when both dimensions are non-positive or the
// glyph's bounding box is degenerate.
func Render(info FontInfo, g *Glyph, width, height int32, opts ...RenderOption) (*Image, error) {
	cfg := defaultRenderOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := g.Metrics()
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%w: glyph box %dx%d", ErrBadRenderSize, m.Width, m.Height)
	}
	if info.EmSize <= 0 {
		return nil, fmt.Errorf("%w: em size %d", ErrBadRenderSize, info.EmSize)
	}

	var pw, ph int32
	switch {
	case width > 0:
		pw = width * (info.BBoxMax.X - info.BBoxMin.X) / info.EmSize
		if pw < 2 {
			pw = 2
		}
		ph = pw * m.Height / m.Width
	case height > 0:
		ph = height * (info.BBoxMax.Y - info.BBoxMin.Y) / info.EmSize
		if ph < 2 {
			ph = 2
		}
		pw = ph * m.Width / m.Height
	default:
		return nil, fmt.Errorf("%w: %dx%d", ErrBadRenderSize, width, height)
	}

	img := NewImage(int(pw), int(ph))
	denW, denH := pw-1, ph-1
	if denW < 1 {
		denW = 1
	}
	if denH < 1 {
		denH = 1
	}
	for py := int32(0); py < ph; py++ {
		gy := m.HBearingY - int32(int64(py)*int64(m.Height)/int64(denH))
		for px := int32(0); px < pw; px++ {
			gx := m.HBearingX + int32(int64(px)*int64(m.Width)/int64(denW))
			if g.IsInside(Pt(gx, gy)) {
				img.SetPixel(int(px), int(py), cfg.inside)
			} else {
				img.SetPixel(int(px), int(py), cfg.outside)
			}
		}
	}
	return img, nil
}
