package fontload

import "testing"

func TestShapeGIDs(t *testing.T) {
	face := loadRegular(t)

	gids, err := face.ShapeGIDs("on")
	if err != nil {
		t.Fatal(err)
	}
	if len(gids) != 2 {
		t.Fatalf("ShapeGIDs(\"on\") = %d glyphs, want 2", len(gids))
	}
	want, err := face.GlyphIndex('o')
	if err != nil {
		t.Fatal(err)
	}
	if gids[0] != want {
		t.Errorf("shaped 'o' = glyph %d, cmap says %d", gids[0], want)
	}

	if gids, err := face.ShapeGIDs(""); err != nil || len(gids) != 0 {
		t.Errorf("ShapeGIDs(\"\") = %v, %v; want empty", gids, err)
	}
}

// Ligature resolution goes through the font's substitution rules: when
// the face carries an "ffl" ligature the cluster shapes to one glyph,
// otherwise it shapes to two or three glyphs and LigatureGlyph reports
// ok=false.
func TestLigatureGlyph(t *testing.T) {
	face := loadRegular(t)

	gid, ok := face.LigatureGlyph("ffl")
	if ok {
		if gid == 0 {
			t.Error("ligature resolved to .notdef")
		}
		return
	}
	gids, err := face.ShapeGIDs("ffl")
	if err != nil {
		t.Fatal(err)
	}
	if len(gids) == 0 || len(gids) > 3 {
		t.Errorf("unligated \"ffl\" shaped to %d glyphs", len(gids))
	}
}
