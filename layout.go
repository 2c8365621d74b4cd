package gtxt

import "unicode"

// Lays out the given text as a kerned, single-line-aware paragraph and
// appends the resulting glyphs to the given slice, which is returned.
// The slice is never cleared; pass nil or an empty slice for a fresh
// layout.
//
// The caret starts at position plus the font's ascent, advances left
// to right, and only goes back on '\n', which resets the x coordinate
// to position.X and moves down by height + line gap. Control characters
// other than '\n' are skipped without emitting a glyph. The output is
// deterministic for identical (font, position, text) inputs.
func LayoutParagraph(font ScaledFont, position Point, text string, glyphs []Glyph) []Glyph {
	scale := font.Scale()
	lineAdvance := font.Height() + font.LineGap()
	caret := Point{X: position.X, Y: position.Y + font.Ascent()}

	var prevIndex GlyphIndex
	hasPrev := false
	for _, codePoint := range text {
		if unicode.IsControl(codePoint) {
			if codePoint == '\n' {
				caret = Point{X: position.X, Y: caret.Y + lineAdvance}
				hasPrev = false
			}
			continue
		}

		index := font.GlyphIndex(codePoint)
		if hasPrev {
			caret.X += font.Kern(prevIndex, index)
		}
		glyphs = append(glyphs, Glyph{Index: index, Scale: scale, Position: caret})
		prevIndex, hasPrev = index, true
		caret.X += font.Advance(index)
	}
	return glyphs
}
