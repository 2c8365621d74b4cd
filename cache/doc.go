// cache offers a concurrent-safe, memory-bounded cache for glyph
// alpha masks.
//
// Rasterizing a glyph is much more expensive than blending it, so any
// program drawing the same text more than a few times wants one of
// these. Wire it into a font face with
// [github.com/tinne26/gtxt/font.Face.SetCache]().
//
// Estimating a reasonable size: a mask takes roughly width*height
// bytes. At 16px, common latin glyphs stay below 256 bytes, so a few
// hundred KiB already fits thousands of cached glyphs.
package cache
