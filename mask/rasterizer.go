package mask

import "image"
import "image/draw"
import "math"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizes the given glyph outline to an alpha mask through
// [golang.org/x/image/vector.Rasterizer].
//
// The outline coordinates are expected as returned by sfnt.LoadGlyph:
// 26.6 fixed point pixel values, y axis growing down, relative to the
// glyph origin on the baseline. Horizontal coordinates are multiplied
// by xRatio before rasterizing, which is how non-uniform scales are
// applied (xRatio must be positive). The mask's Rect is set so that
// drawing it at its own bounds places the glyph at (originX, originY).
//
// The returned mask is nil if the outline contains no lines or curves
// (e.g. space glyphs).
func Rasterize(outline sfnt.Segments, xRatio float64, originX, originY float64) *image.Alpha {
	if emptyOutline(outline) { return nil }

	// compute the integer pixel bounding box of the scaled
	// and translated outline
	fixedBounds := outline.Bounds()
	minX := math.Floor(originX + fixedToFloat64(fixedBounds.Min.X)*xRatio)
	minY := math.Floor(originY + fixedToFloat64(fixedBounds.Min.Y))
	maxX := math.Ceil(originX + fixedToFloat64(fixedBounds.Max.X)*xRatio)
	maxY := math.Ceil(originY + fixedToFloat64(fixedBounds.Max.Y))
	width, height := int(maxX - minX), int(maxY - minY)
	if width <= 0 || height <= 0 { return nil }

	// trace the outline into the rasterizer, normalized to
	// the positive quadrant
	rasterizer := vector.NewRasterizer(width, height)
	rasterizer.DrawOp = draw.Src
	offsetX, offsetY := originX - minX, originY - minY
	traceOutline(rasterizer, outline, xRatio, offsetX, offsetY)

	// accumulate the coverage into the alpha mask and translate
	// it to its final position
	alphaMask := image.NewAlpha(rasterizer.Bounds())
	rasterizer.Draw(alphaMask, alphaMask.Bounds(), image.Opaque, image.Point{})
	alphaMask.Rect = alphaMask.Rect.Add(image.Pt(int(minX), int(minY)))
	return alphaMask
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() on the rasterizer,
// as corresponding, for each segment in the glyph outline.
func traceOutline(rasterizer *vector.Rasterizer, outline sfnt.Segments, xRatio, offsetX, offsetY float64) {
	adapt := func(point fixed.Point26_6) (float32, float32) {
		x := fixedToFloat64(point.X)*xRatio + offsetX
		y := fixedToFloat64(point.Y) + offsetY
		return float32(x), float32(y)
	}

	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := adapt(segment.Args[0])
			rasterizer.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := adapt(segment.Args[0])
			rasterizer.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := adapt(segment.Args[0])
			x, y := adapt(segment.Args[1])
			rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cax, cay := adapt(segment.Args[0])
			cbx, cby := adapt(segment.Args[1])
			x, y := adapt(segment.Args[2])
			rasterizer.CubeTo(cax, cay, cbx, cby, x, y)
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Whether the outline includes no active lines or curves.
func emptyOutline(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return false }
	}
	return true
}

func fixedToFloat64(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}
