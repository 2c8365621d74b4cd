// font implements the gtxt font interfaces on top of
// [golang.org/x/image/font/sfnt], and offers helpers to parse .ttf
// and .otf files individually or in bulk through a [Library].
//
// The main type is [Face], which adapts a parsed sfnt font to
// [github.com/tinne26/gtxt.Font]:
//   sfntFont, name, err := font.ParseFromPath("DejaVuSans.ttf")
//   if err != nil { ... }
//   face := font.NewFace(sfntFont)
//
// Faces rasterize glyphs on demand; if you draw the same text
// repeatedly, attach a [github.com/tinne26/gtxt/cache.Cache] with
// [Face.SetCache]().
package font
