package glyphrast

import "image/color"

// RenderOption configures a Render call.
//
// Example:
//
//	// Black glyph on a white page:
//	img, err := glyphrast.Render(info, glyph, 0, 64,
//	    glyphrast.WithInsideColor(color.RGBA{A: 255}),
//	    glyphrast.WithOutsideColor(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for rendering.
type renderOptions struct {
	inside  color.RGBA
	outside color.RGBA
}

// defaultRenderOptions returns the defaults: white inside, black outside.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		inside:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		outside: color.RGBA{A: 255},
	}
}

// WithInsideColor sets the colour written for samples inside the glyph.
func WithInsideColor(c color.RGBA) RenderOption {
	return func(o *renderOptions) {
		o.inside = c
	}
}

// WithOutsideColor sets the colour written for samples outside the glyph.
func WithOutsideColor(c color.RGBA) RenderOption {
	return func(o *renderOptions) {
		o.outside = c
	}
}
