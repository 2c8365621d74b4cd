package gtxt

import "testing"
import "math"

func TestLayoutParagraph(t *testing.T) {
	font := (&testFont{}).Scaled(Scale{X: 10, Y: 10})

	// ascent 8, advance 5
	glyphs := LayoutParagraph(font, Point{X: 5, Y: 7}, "abc", nil)
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
	expectedXs := []float64{5, 10, 15}
	for i, glyph := range glyphs {
		if glyph.Index != GlyphIndex("abc"[i]) {
			t.Fatalf("glyph #%d: unexpected index %d", i, glyph.Index)
		}
		if glyph.Position.X != expectedXs[i] || glyph.Position.Y != 15 {
			t.Fatalf("glyph #%d: expected position (%f, 15), got %v", i, expectedXs[i], glyph.Position)
		}
		if glyph.Scale != (Scale{X: 10, Y: 10}) {
			t.Fatalf("glyph #%d: unexpected scale %v", i, glyph.Scale)
		}
	}
}

func TestLayoutParagraphKern(t *testing.T) {
	font := (&testFont{}).kernPair('a', 'v', -0.2).Scaled(Scale{X: 10, Y: 10})

	glyphs := LayoutParagraph(font, Point{}, "av", nil)
	if len(glyphs) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(glyphs)) }
	if glyphs[1].Position.X != 3 { // 0 + advance 5 + kern -2
		t.Fatalf("expected kerned position 3, got %f", glyphs[1].Position.X)
	}

	// kerning doesn't apply to the first glyph of a line
	glyphs = LayoutParagraph(font, Point{}, "v", nil)
	if glyphs[0].Position.X != 0 {
		t.Fatalf("expected position 0, got %f", glyphs[0].Position.X)
	}
}

func TestLayoutParagraphNewline(t *testing.T) {
	font := (&testFont{}).kernPair('a', 'b', -0.2).Scaled(Scale{X: 10, Y: 10})

	glyphs := LayoutParagraph(font, Point{X: 5, Y: 0}, "a\nb", nil)
	if len(glyphs) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(glyphs)) }

	// both lines start at the same x (no kerning carried across
	// the line break), and y advances by height + line gap = 12
	if glyphs[0].Position.X != glyphs[1].Position.X {
		t.Fatalf("line start positions differ: %f vs %f", glyphs[0].Position.X, glyphs[1].Position.X)
	}
	yDelta := glyphs[1].Position.Y - glyphs[0].Position.Y
	if math.Abs(yDelta - 12) > 1e-9 {
		t.Fatalf("expected y delta 12, got %f", yDelta)
	}
}

func TestLayoutParagraphControlChars(t *testing.T) {
	font := (&testFont{}).Scaled(Scale{X: 10, Y: 10})

	// control characters other than '\n' are skipped entirely:
	// no glyph, no advance
	withControls := LayoutParagraph(font, Point{}, "a\tb\rc", nil)
	plain := LayoutParagraph(font, Point{}, "abc", nil)
	if len(withControls) != len(plain) {
		t.Fatalf("expected %d glyphs, got %d", len(plain), len(withControls))
	}
	for i := range plain {
		if withControls[i].Position != plain[i].Position {
			t.Fatalf("glyph #%d: %v != %v", i, withControls[i].Position, plain[i].Position)
		}
	}

	// control-only text produces nothing
	if len(LayoutParagraph(font, Point{}, "\t\r\x1b", nil)) != 0 {
		t.Fatal("expected no glyphs for control-only text")
	}
}

func TestLayoutParagraphAppends(t *testing.T) {
	font := (&testFont{}).Scaled(Scale{X: 10, Y: 10})

	preexisting := Glyph{Index: 1234}
	glyphs := LayoutParagraph(font, Point{}, "ab", []Glyph{preexisting})
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
	if glyphs[0] != preexisting {
		t.Fatal("preexisting glyph was not preserved")
	}
}

func TestLayoutParagraphDeterministic(t *testing.T) {
	font := (&testFont{}).kernPair('l', 'o', -0.1).Scaled(Scale{X: 12.6, Y: 8.2})

	first := LayoutParagraph(font, Point{X: 1.5, Y: 2.5}, "hello\nworld", nil)
	second := LayoutParagraph(font, Point{X: 1.5, Y: 2.5}, "hello\nworld", nil)
	if len(first) != len(second) { t.Fatal("layout lengths differ") }
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("glyph #%d differs: %v vs %v", i, first[i], second[i])
		}
	}

	// x positions never decrease within a line
	prevX := math.Inf(-1)
	for i, glyph := range first {
		if glyph.Position.Y != first[0].Position.Y { break } // second line
		if glyph.Position.X < prevX {
			t.Fatalf("glyph #%d: x position went backwards", i)
		}
		prevX = glyph.Position.X
	}
}
