// gtxt is a small package for drawing single runs of text onto Go images.
//
// The package takes a string, a font, a per-axis pixel scale and a maximum
// pixel width, lays out the glyphs with kerning, shrinks them horizontally
// if they wouldn't fit, and blends the rasterized glyph masks into the
// target pixels.
//
// Common usage only requires a font and a target image:
//   sfntFont, _, err := font.ParseFromPath("path/to/font.ttf")
//   if err != nil { ... }
//   face := font.NewFace(sfntFont)
//
//   canvas := gtxt.NewImageCanvas(img)
//   err = gtxt.DrawTextMut(canvas, color.RGBA{0, 0, 255, 255},
//       0, 0, gtxt.Scale{X: 24.8, Y: 12.4}, 200, face, "Hello, world!")
//
// If you need multi-line wrapping, right-to-left text or full shaping,
// this is not the package you are looking for; layout here advances
// strictly left to right and only reacts to '\n'.
package gtxt
