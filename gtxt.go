package gtxt

import "image"
import "errors"

// Returned by [DrawTextMut]() and [DrawText]() when the given text
// doesn't produce any glyph at all (e.g., an empty string or a string
// consisting only of control characters). Without at least one glyph
// there's no width to measure, so the operation can't proceed.
var ErrNoRenderableText = errors.New("text has no renderable characters")

// A per-axis pixel scale. Y is the em height of the text in pixels;
// X may differ from Y to condense or expand the glyphs horizontally.
type Scale struct {
	X float64
	Y float64
}

// Utility function to create a uniform [Scale].
func NewScale(pixels float64) Scale {
	return Scale{X: pixels, Y: pixels}
}

// A position in the target image, in floating point pixel coordinates.
// The fractional part matters: glyph masks are rasterized at subpixel
// offsets.
type Point struct {
	X float64
	Y float64
}

// Glyph indices are font-specific identifiers for glyphs. Index zero
// conventionally maps to the font's "notdef" glyph.
type GlyphIndex uint16

// A single positioned glyph, as produced by [LayoutParagraph](). Glyphs
// are transient: created during layout, consumed by [Font.Outline]()
// during drawing, and discarded afterwards.
type Glyph struct {
	Index    GlyphIndex
	Scale    Scale
	Position Point
}

// ScaledFont is the view of a font at a concrete [Scale]. All returned
// values are in pixel units at that scale. Implementations don't need
// to be concurrent-safe; layout operations are fully synchronous.
//
// See [github.com/tinne26/gtxt/font.Face] for the standard sfnt-backed
// implementation.
type ScaledFont interface {
	// Returns the scale of this view.
	Scale() Scale

	// Distance from the baseline to the top of the tallest glyphs.
	Ascent() float64

	// Ascent plus descent.
	Height() float64

	// Recommended additional spacing between lines.
	LineGap() float64

	// Returns the glyph index for the given code point. Missing code
	// points map to index zero and simply rasterize to empty outlines
	// downstream.
	GlyphIndex(codePoint rune) GlyphIndex

	// Horizontal advance for the given glyph.
	Advance(index GlyphIndex) float64

	// Horizontal kerning adjustment for the given glyph pair. Zero
	// when the font defines none. May be negative.
	Kern(prev, curr GlyphIndex) float64
}

// Font is the main font capability consumed by this package: it can
// produce [ScaledFont] views and rasterize positioned glyphs.
type Font interface {
	// Returns the view of the font at the given scale.
	Scaled(scale Scale) ScaledFont

	// Rasterizes the given glyph at its own embedded scale and
	// position. Returns nil if the glyph has no visible ink (e.g.,
	// spaces or missing glyphs).
	Outline(glyph Glyph) OutlinedGlyph
}

// The rasterized form of a [Glyph]: an integer pixel bounding box plus
// an anti-aliased coverage value for each pixel inside it.
type OutlinedGlyph interface {
	// The bounding box of the outline, in target image coordinates.
	Bounds() image.Rectangle

	// Calls fn for each covered pixel. The x, y arguments are local
	// offsets within [OutlinedGlyph.Bounds]() (add bounds.Min to get
	// target coordinates); coverage is in [0, 1]. Pixels with zero
	// coverage may be skipped.
	EachPixel(fn func(x, y int, coverage float64))
}
