package gtxt

import "image"

// Wraps an alpha mask into an [OutlinedGlyph]. The mask's Rect is
// taken as the glyph bounding box in target coordinates, and each
// alpha value is exposed as a coverage level in [0, 1]. Returns nil
// for nil masks, so it can be chained directly after rasterization.
//
// This is mostly useful when implementing the [Font] interface for
// custom glyph sources; the standard font package already returns
// its outlines in this form.
func NewAlphaOutline(mask *image.Alpha) OutlinedGlyph {
	if mask == nil { return nil }
	return alphaOutline{mask: mask}
}

type alphaOutline struct {
	mask *image.Alpha
}

func (self alphaOutline) Bounds() image.Rectangle { return self.mask.Rect }

// Iterates the mask pixels in local coordinates. Pixels with zero
// coverage are skipped, as blending them is always a no-op.
func (self alphaOutline) EachPixel(fn func(x, y int, coverage float64)) {
	width, height := self.mask.Rect.Dx(), self.mask.Rect.Dy()
	for y := 0; y < height; y++ {
		rowOffset := y*self.mask.Stride
		for x := 0; x < width; x++ {
			alpha := self.mask.Pix[rowOffset + x]
			if alpha == 0 { continue }
			fn(x, y, float64(alpha)/255.0)
		}
	}
}
