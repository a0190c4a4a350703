package glyphrast

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"
)

// Image is a rectangular RGBA pixel buffer, row-major from the top
// left, with an optional name used by the driver when writing files.
type Image struct {
	Name string

	width  int
	height int
	data   []uint8
}

// NewImage creates an image with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.height
}

// Data returns the raw pixel data (RGBA, 4 bytes per pixel).
func (m *Image) Data() []uint8 {
	return m.data
}

// SetPixel sets the colour of a single pixel.
func (m *Image) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * 4
	m.data[i+0] = c.R
	m.data[i+1] = c.G
	m.data[i+2] = c.B
	m.data[i+3] = c.A
}

// Pixel returns the colour of a single pixel.
func (m *Image) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return color.RGBA{}
	}
	i := (y*m.width + x) * 4
	return color.RGBA{R: m.data[i+0], G: m.data[i+1], B: m.data[i+2], A: m.data[i+3]}
}

// ToImage converts to an image.RGBA sharing no storage.
func (m *Image) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	copy(img.Pix, m.data)
	return img
}

// WritePNM writes the image as a binary PNM (P6), dropping the alpha
// channel.
func (m *Image) WritePNM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", m.width, m.height); err != nil {
		return err
	}
	for i := 0; i < len(m.data); i += 4 {
		if _, err := bw.Write(m.data[i : i+3]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePNM writes the image to path as a binary PNM, appending the .pnm
// extension when missing.
func (m *Image) SavePNM(path string) error {
	if !strings.HasSuffix(path, ".pnm") {
		path += ".pnm"
	}
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return m.WritePNM(f)
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, m.ToImage())
}
