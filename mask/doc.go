// mask converts glyph outline segments into anti-aliased alpha masks.
//
// This is a low level package: most users only deal with it indirectly,
// through [github.com/tinne26/gtxt/font.Face]. The only reason to come
// here directly is rasterizing glyph outlines obtained from
// [golang.org/x/image/font/sfnt] on your own.
package mask
