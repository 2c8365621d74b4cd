package gtxt

import "image"
import "image/color"
import "image/draw"

// Canvas is the pixel store that text is drawn into. The drawing
// functions only touch pixels inside glyph bounding boxes, but they
// don't validate coordinates on their own: it's up to the Canvas
// implementation to decide whether out-of-range writes are clipped
// or cause a panic. [ImageCanvas], the standard implementation,
// clips them.
type Canvas interface {
	// The drawable area of the canvas.
	Bounds() image.Rectangle

	// Returns the current pixel value at the given coordinates.
	GetPixel(x, y int) color.Color

	// Sets the pixel value at the given coordinates.
	DrawPixel(x, y int, pixel color.Color)
}

var _ Canvas = ImageCanvas{}

// ImageCanvas adapts any mutable standard library image to the
// [Canvas] interface. Writes outside the image bounds are silently
// discarded.
type ImageCanvas struct {
	image draw.Image
}

// Wraps the given image into an [ImageCanvas]. Panics if the image
// is nil.
func NewImageCanvas(img draw.Image) ImageCanvas {
	if img == nil { panic("can't create an ImageCanvas from a nil image") }
	return ImageCanvas{image: img}
}

// Returns the underlying image.
func (self ImageCanvas) Image() draw.Image { return self.image }

// Satisfies the [Canvas] interface.
func (self ImageCanvas) Bounds() image.Rectangle { return self.image.Bounds() }

// Satisfies the [Canvas] interface.
func (self ImageCanvas) GetPixel(x, y int) color.Color {
	return self.image.At(x, y)
}

// Satisfies the [Canvas] interface. Out-of-bounds writes are ignored.
func (self ImageCanvas) DrawPixel(x, y int, pixel color.Color) {
	if !(image.Point{x, y}.In(self.image.Bounds())) { return }
	self.image.Set(x, y, pixel)
}
