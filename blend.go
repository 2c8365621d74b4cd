package gtxt

import "image/color"

// Linearly interpolates between the current pixel and the main drawing
// color, weighting them by (1 - coverage) and coverage respectively.
// This is straight per-channel interpolation on the 16-bit channel
// values, not gamma-correct compositing; it matches what you'd expect
// from a plain anti-aliasing blend.
func blendPixels(curr, main color.Color, coverage float64) color.Color {
	if coverage <= 0 { return curr }
	if coverage >= 1 { return main }

	cr, cg, cb, ca := curr.RGBA()
	mr, mg, mb, ma := main.RGBA()
	currWeight := 1.0 - coverage
	return color.RGBA64{
		R: clampUint16(float64(cr)*currWeight + float64(mr)*coverage),
		G: clampUint16(float64(cg)*currWeight + float64(mg)*coverage),
		B: clampUint16(float64(cb)*currWeight + float64(mb)*coverage),
		A: clampUint16(float64(ca)*currWeight + float64(ma)*coverage),
	}
}

func clampUint16(value float64) uint16 {
	if value >= 65535 { return 65535 }
	if value <= 0 { return 0 }
	return uint16(value)
}
