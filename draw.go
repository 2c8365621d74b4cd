package gtxt

import "image"
import "image/color"
import "image/draw"

// Draws the given text into the canvas, in place. The text is laid out
// with [LayoutParagraph]() starting at (x, y); if the resulting width
// exceeds maxWidth, the layout is discarded and recomputed once with a
// proportionally reduced horizontal scale (the vertical scale is left
// untouched, so glyphs get narrower, not shorter). Each glyph is then
// rasterized and its coverage blended against the current canvas
// content using the given color.
//
// The rendered width is measured as the last glyph's position plus its
// horizontal scale, which is a layout-box approximation rather than a
// true ink extent. If the shrunk layout still overflows, no further
// correction is attempted.
//
// Returns [ErrNoRenderableText] if no character in the text produces
// a glyph. Panics on nil canvas or font.
func DrawTextMut(canvas Canvas, clr color.Color, x, y int, scale Scale, maxWidth int, font Font, text string) error {
	if canvas == nil { panic("can't draw on a nil Canvas") }
	if font == nil { panic("can't draw text with a nil Font") }

	position := Point{X: float64(x), Y: float64(y)}
	scaledFont := font.Scaled(scale)
	glyphs := LayoutParagraph(scaledFont, position, text, nil)
	if len(glyphs) == 0 { return ErrNoRenderableText }

	lastGlyph := glyphs[len(glyphs) - 1]
	actualWidth := lastGlyph.Position.X + lastGlyph.Scale.X
	if actualWidth > float64(maxWidth) {
		shrinkFactor := actualWidth/float64(maxWidth)
		newScale := Scale{X: scale.X/shrinkFactor, Y: scale.Y}
		scaledFont = font.Scaled(newScale)
		glyphs = LayoutParagraph(scaledFont, position, text, glyphs[ : 0])
	}

	for _, glyph := range glyphs {
		outlined := font.Outline(glyph)
		if outlined == nil { continue } // spaces and empty glyphs
		bounds := outlined.Bounds()
		outlined.EachPixel(func(x, y int, coverage float64) {
			pixelX, pixelY := x + bounds.Min.X, y + bounds.Min.Y
			currPixel := canvas.GetPixel(pixelX, pixelY)
			canvas.DrawPixel(pixelX, pixelY, blendPixels(currPixel, clr, coverage))
		})
	}
	return nil
}

// Same as [DrawTextMut](), but the text is drawn on a copy of the
// given image, which is returned. The input image is left unmodified.
func DrawText(img image.Image, clr color.Color, x, y int, scale Scale, maxWidth int, font Font, text string) (*image.RGBA, error) {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	err := DrawTextMut(NewImageCanvas(out), clr, x, y, scale, maxWidth, font, text)
	if err != nil { return nil, err }
	return out, nil
}

// Returns the natural rendered width of the given text at the given
// scale, without drawing anything. This is the same width that
// [DrawTextMut]() compares against maxWidth (last glyph's position
// plus horizontal scale). Returns zero if the text produces no glyphs.
func Measure(font Font, scale Scale, text string) float64 {
	glyphs := LayoutParagraph(font.Scaled(scale), Point{}, text, nil)
	if len(glyphs) == 0 { return 0 }
	lastGlyph := glyphs[len(glyphs) - 1]
	return lastGlyph.Position.X + lastGlyph.Scale.X
}
