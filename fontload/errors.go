package fontload

import "errors"

var (
	// ErrEmptyFontData is returned when loading an empty byte slice.
	ErrEmptyFontData = errors.New("fontload: empty font data")
)
