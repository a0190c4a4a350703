package fontload

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper maps text clusters to glyph IDs through go-text/typesetting's
// HarfBuzz implementation, applying the font's substitution rules
// (ligatures, contextual alternates) the way a layout engine would.
//
// The parsed tsfont.Font is read-only and safe for concurrent use; the
// HarfbuzzShaper instances are not, so they are pooled and a lightweight
// tsfont.Face is created per shape call.
type shaper struct {
	font *tsfont.Font
	pool sync.Pool
}

func newShaper(data []byte) (*shaper, error) {
	face, err := tsfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontload: shaper parse: %w", err)
	}
	return &shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

func (s *shaper) shape(text string, upem int32) []GlyphID {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      tsfont.NewFace(s.font),
		Size:      fixed.I(int(upem)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	gids := make([]GlyphID, len(out.Glyphs))
	for i, g := range out.Glyphs {
		gids[i] = GlyphID(uint16(g.GlyphID)) //nolint:gosec // glyph IDs are uint16 by design
	}
	return gids
}

// detectScript returns the script of the first non-space rune. Mixed
// script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func (f *Face) ensureShaper() (*shaper, error) {
	f.shaperOnce.Do(func() {
		f.shaper, f.shaperErr = newShaper(f.data)
	})
	return f.shaper, f.shaperErr
}

// ShapeGIDs shapes text with the font's substitution rules and returns
// the resulting glyph IDs in visual order.
func (f *Face) ShapeGIDs(text string) ([]GlyphID, error) {
	s, err := f.ensureShaper()
	if err != nil {
		return nil, err
	}
	return s.shape(text, f.upem), nil
}

// LigatureGlyph reports the single glyph that the whole text cluster
// shapes to, when the font substitutes one (e.g. "ffl" in fonts with an
// ffl ligature). ok is false when shaping yields more than one glyph or
// fails.
func (f *Face) LigatureGlyph(text string) (GlyphID, bool) {
	gids, err := f.ShapeGIDs(text)
	if err != nil || len(gids) != 1 {
		return 0, false
	}
	return gids[0], true
}
