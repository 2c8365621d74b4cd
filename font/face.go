package font

import "image"
import "math"
import "strconv"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/gtxt"
import "github.com/tinne26/gtxt/mask"
import "github.com/tinne26/gtxt/cache"

const hintingNone = 0

var _ gtxt.Font = (*Face)(nil)

// Face adapts a parsed [sfnt.Font] to the [gtxt.Font] interface.
//
// Faces are stateful (they own an sfnt working buffer) and can't be
// used concurrently, which is consistent with the synchronous model
// of the gtxt drawing functions. The underlying sfnt font, on the
// other hand, can be shared between multiple faces.
type Face struct {
	font      *sfnt.Font
	buffer    sfnt.Buffer
	maskCache *cache.Cache
}

// Creates a new [Face] for the given font. Panics if the font is nil.
func NewFace(sfntFont *sfnt.Font) *Face {
	if sfntFont == nil { panic("can't create a Face from a nil font") }
	return &Face{font: sfntFont}
}

// Returns the underlying sfnt font.
func (self *Face) Font() *sfnt.Font { return self.font }

// Sets the glyph mask cache for this face. Pass nil to disable
// caching again.
func (self *Face) SetCache(maskCache *cache.Cache) {
	self.maskCache = maskCache
}

// Satisfies the [gtxt.Font] interface. Panics if any scale axis is
// not strictly positive.
func (self *Face) Scaled(scale gtxt.Scale) gtxt.ScaledFont {
	if scale.X <= 0 || scale.Y <= 0 {
		panic("invalid scale " + scaleToString(scale))
	}

	metrics, err := self.font.Metrics(&self.buffer, floatToFixed(scale.Y), hintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	return &faceView{
		face: self,
		scale: scale,
		ascent: fixedToFloat64(metrics.Ascent),
		height: fixedToFloat64(metrics.Ascent + metrics.Descent),
		lineGap: fixedToFloat64(metrics.Height - metrics.Ascent - metrics.Descent),
	}
}

// Satisfies the [gtxt.Font] interface. The glyph is rasterized at its
// own embedded scale; the vertical scale sets the ppem and the
// horizontal scale is applied as a stretch ratio on top of it. Masks
// are reused from the cache when one is set and the glyph has been
// rasterized before at the same scale and subpixel offset.
func (self *Face) Outline(glyph gtxt.Glyph) gtxt.OutlinedGlyph {
	if glyph.Scale.X <= 0 || glyph.Scale.Y <= 0 { return nil }

	floorX, fractX := math.Modf(glyph.Position.X)
	floorY, fractY := math.Modf(glyph.Position.Y)
	if fractX < 0 { floorX -= 1; fractX += 1 }
	if fractY < 0 { floorY -= 1; fractY += 1 }
	wholeOffset := image.Pt(int(floorX), int(floorY))

	// consult the cache first, if any
	var key cache.MaskKey
	if self.maskCache != nil {
		key = maskKeyFor(glyph.Index, fractX, fractY, glyph.Scale)
		alphaMask, found := self.maskCache.GetMask(key)
		if found { return outlineAt(alphaMask, wholeOffset) }
	}

	// load the outline segments and rasterize them at the
	// fractional position only (the whole offset is applied
	// afterwards, so masks stay position-independent)
	segments, err := self.font.LoadGlyph(&self.buffer, sfnt.GlyphIndex(glyph.Index), floatToFixed(glyph.Scale.Y), nil)
	if err == sfnt.ErrNotFound { return nil } // malformed or missing glyph
	if err != nil {
		panic("font.LoadGlyph(index = " + strconv.Itoa(int(glyph.Index)) + ") error: " + err.Error())
	}
	xRatio := glyph.Scale.X/glyph.Scale.Y
	alphaMask := mask.Rasterize(segments, xRatio, fractX, fractY)

	if self.maskCache != nil {
		self.maskCache.PassMask(key, alphaMask)
	}
	return outlineAt(alphaMask, wholeOffset)
}

// Wraps a mask rasterized at the subpixel origin into an outline at
// its final position. The mask itself is not mutated; cached masks
// are shared.
func outlineAt(alphaMask *image.Alpha, wholeOffset image.Point) gtxt.OutlinedGlyph {
	if alphaMask == nil { return nil }
	shifted := *alphaMask
	shifted.Rect = shifted.Rect.Add(wholeOffset)
	return gtxt.NewAlphaOutline(&shifted)
}

func maskKeyFor(index gtxt.GlyphIndex, fractX, fractY float64, scale gtxt.Scale) cache.MaskKey {
	// quantize subpixel offsets to 1/64ths of a pixel
	qx := uint64(fractX*64) & 0x3F
	qy := uint64(fractY*64) & 0x3F
	return cache.MaskKey{
		uint64(index) | (qx << 16) | (qy << 22),
		math.Float64bits(scale.X),
		math.Float64bits(scale.Y),
	}
}

// ---- scaled view ----

var _ gtxt.ScaledFont = (*faceView)(nil)

// The view of a [Face] at a concrete scale. Vertical metrics are
// computed once at creation; advances and kerning query the sfnt
// font at the view's ppem and are stretched by scale.X/scale.Y.
type faceView struct {
	face    *Face
	scale   gtxt.Scale
	ascent  float64
	height  float64
	lineGap float64
}

// Satisfies the [gtxt.ScaledFont] interface.
func (self *faceView) Scale() gtxt.Scale { return self.scale }

// Satisfies the [gtxt.ScaledFont] interface.
func (self *faceView) Ascent() float64 { return self.ascent }

// Satisfies the [gtxt.ScaledFont] interface.
func (self *faceView) Height() float64 { return self.height }

// Satisfies the [gtxt.ScaledFont] interface.
func (self *faceView) LineGap() float64 { return self.lineGap }

// Satisfies the [gtxt.ScaledFont] interface. Code points missing
// from the font map to index zero.
func (self *faceView) GlyphIndex(codePoint rune) gtxt.GlyphIndex {
	index, err := self.face.font.GlyphIndex(&self.face.buffer, codePoint)
	if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
	return gtxt.GlyphIndex(index)
}

// Satisfies the [gtxt.ScaledFont] interface.
func (self *faceView) Advance(index gtxt.GlyphIndex) float64 {
	advance, err := self.face.font.GlyphAdvance(&self.face.buffer, sfnt.GlyphIndex(index), self.ppem(), hintingNone)
	if err == sfnt.ErrNotFound { return 0 }
	if err != nil {
		panic("font.GlyphAdvance(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	return fixedToFloat64(advance)*self.xRatio()
}

// Satisfies the [gtxt.ScaledFont] interface. Glyph pairs without
// kerning information return zero.
func (self *faceView) Kern(prev, curr gtxt.GlyphIndex) float64 {
	kern, err := self.face.font.Kern(&self.face.buffer, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(curr), self.ppem(), hintingNone)
	if err == sfnt.ErrNotFound { return 0 }
	if err != nil {
		msg := "font.Kern failed for glyphs with indices "
		msg += strconv.Itoa(int(prev)) + " and "
		msg += strconv.Itoa(int(curr)) + ": " + err.Error()
		panic(msg)
	}
	return fixedToFloat64(kern)*self.xRatio()
}

func (self *faceView) ppem() fixed.Int26_6 { return floatToFixed(self.scale.Y) }
func (self *faceView) xRatio() float64 { return self.scale.X/self.scale.Y }

// ---- conversions ----

func floatToFixed(value float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(value*64))
}

func fixedToFloat64(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}

func scaleToString(scale gtxt.Scale) string {
	xStr := strconv.FormatFloat(scale.X, 'f', -1, 64)
	yStr := strconv.FormatFloat(scale.Y, 'f', -1, 64)
	return "{" + xStr + ", " + yStr + "}"
}
