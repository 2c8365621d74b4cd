package gtxt

import "image"
import "math"

// A synthetic font for testing. Glyph indices are the code points
// themselves, every glyph advances half an em, and outlines are
// fully covered rectangles of half an em per axis sitting on the
// baseline. Vertical metrics are fixed fractions of the em size:
// ascent 0.8, height 1.0, line gap 0.2. Spaces have no outline.
//
// Everything is exact and position-independent, which makes layout
// and blending results easy to predict by hand.
type testFont struct {
	kerns map[[2]GlyphIndex]float64 // in em units of scale.X
}

func (self *testFont) kernPair(prev, curr rune, ems float64) *testFont {
	if self.kerns == nil { self.kerns = make(map[[2]GlyphIndex]float64) }
	self.kerns[[2]GlyphIndex{GlyphIndex(prev), GlyphIndex(curr)}] = ems
	return self
}

func (self *testFont) Scaled(scale Scale) ScaledFont {
	return &testFontView{font: self, scale: scale}
}

func (self *testFont) Outline(glyph Glyph) OutlinedGlyph {
	if glyph.Index == GlyphIndex(' ') { return nil }
	width  := int(math.Round(glyph.Scale.X/2))
	height := int(math.Round(glyph.Scale.Y/2))
	if width  < 1 { width  = 1 }
	if height < 1 { height = 1 }

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range mask.Pix { mask.Pix[i] = 255 }
	x := int(math.Round(glyph.Position.X))
	y := int(math.Round(glyph.Position.Y))
	mask.Rect = mask.Rect.Add(image.Pt(x, y - height))
	return NewAlphaOutline(mask)
}

type testFontView struct {
	font  *testFont
	scale Scale
}

func (self *testFontView) Scale() Scale     { return self.scale }
func (self *testFontView) Ascent() float64  { return 0.8*self.scale.Y }
func (self *testFontView) Height() float64  { return self.scale.Y }
func (self *testFontView) LineGap() float64 { return 0.2*self.scale.Y }

func (self *testFontView) GlyphIndex(codePoint rune) GlyphIndex {
	return GlyphIndex(codePoint)
}

func (self *testFontView) Advance(index GlyphIndex) float64 {
	return self.scale.X/2
}

func (self *testFontView) Kern(prev, curr GlyphIndex) float64 {
	return self.font.kerns[[2]GlyphIndex{prev, curr}]*self.scale.X
}
