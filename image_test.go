package glyphrast

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestImagePixelRoundTrip(t *testing.T) {
	img := NewImage(3, 2)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img.SetPixel(2, 1, c)
	if got := img.Pixel(2, 1); got != c {
		t.Errorf("Pixel(2,1) = %v, want %v", got, c)
	}
	// Out-of-range access is a no-op, not a panic.
	img.SetPixel(-1, 0, c)
	img.SetPixel(3, 0, c)
	if got := img.Pixel(5, 5); got != (color.RGBA{}) {
		t.Errorf("out-of-range Pixel = %v, want zero", got)
	}
}

func TestImageWritePNM(t *testing.T) {
	img := NewImage(2, 1)
	img.SetPixel(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetPixel(1, 0, color.RGBA{A: 255})

	var buf bytes.Buffer
	if err := img.WritePNM(&buf); err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n2 1\n255\n"), 255, 255, 255, 0, 0, 0)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("PNM bytes = %q, want %q", buf.Bytes(), want)
	}
}

func TestImageSavePNMAppendsExtension(t *testing.T) {
	img := NewImage(1, 1)
	dir := t.TempDir()
	path := filepath.Join(dir, "glyph")
	if err := img.SavePNM(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".pnm"); err != nil {
		t.Errorf("expected %s.pnm to exist: %v", path, err)
	}
}

func TestImageToImage(t *testing.T) {
	img := NewImage(2, 2)
	img.SetPixel(1, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	std := img.ToImage()
	if got := std.RGBAAt(1, 1); got != (color.RGBA{R: 7, G: 8, B: 9, A: 255}) {
		t.Errorf("RGBAAt(1,1) = %v", got)
	}
	// The conversion must copy, not alias.
	std.Pix[0] = 99
	if img.Data()[0] == 99 {
		t.Error("ToImage aliases the pixel buffer")
	}
}
