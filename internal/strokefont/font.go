// Package strokefont rasterises the fixed ASCII glyph set this
// emulator needs (the printable characters) from
// vector stroke paths, using oksvg/rasterx rather than a bitmap font
// atlas. Glyphs are cached per (character, scale) since the path data
// never changes at runtime.
package strokefont

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// CellWidth and CellHeight are the fixed unscaled cell metrics this
// emulator's window surface is built from.
const (
	CellWidth  = 15
	CellHeight = 20
)

// glyphPaths holds a stroke path per ASCII printable character,
// expressed as an SVG path string (one or more M/L subpaths, optionally
// closed with Z) in a CellWidth x CellHeight viewBox. Each letter,
// digit, and common punctuation mark has its own distinct stroke shape,
// built from straight line segments only — no curves — matching the
// sparse, legible style of a vector terminal font rather than a fully
// hinted typeface. Lowercase letters reuse their uppercase stroke; any
// other character without a dedicated stroke falls back to a centered
// dot.
var glyphPaths = map[byte]string{
	'|': "M7 2 L7 18",
	'_': "M2 18 L13 18",
	'-': "M2 10 L13 10",
	'.': "M6 16 L9 16 L9 19 L6 19 Z",
	',': "M6 16 L9 16 L9 19 L6 19 L5 21 Z",
	';': "M6 8 L9 8 L9 11 L6 11 Z M6 16 L9 16 L9 19 L5 21 L6 19 Z",
	':': "M6 6 L9 6 L9 9 L6 9 Z M6 13 L9 13 L9 16 L6 16 Z",
	'\'': "M7 2 L6 6",
	'"': "M5 2 L4 6 M9 2 L8 6",
	'`': "M6 2 L8 5",
	'~': "M2 11 L4 8 L7 12 L10 9 L12 11",
	'!': "M7 2 L7 13 M7 16 L7 18",
	'?': "M3 5 L5 3 L9 3 L11 5 L11 8 L7 11 L7 13 M7 16 L7 18",
	'@': "M11 13 L9 15 L6 15 L4 13 L4 7 L6 5 L9 5 L11 7 L11 11 L9 12 L8 11 L8 7",
	'#': "M5 2 L4 18 M10 2 L9 18 M2 7 L13 7 M2 13 L13 13",
	'$': "M7 1 L7 19 M11 5 L9 3 L5 3 L3 5 L3 8 L11 12 L11 15 L9 17 L5 17 L3 15",
	'%': "M3 17 L12 3 M4 3 L6 3 L6 6 L4 6 Z M9 14 L11 14 L11 17 L9 17 Z",
	'^': "M4 8 L7 3 L10 8",
	'&': "M11 17 L5 9 L5 5 L7 3 L9 5 L9 7 L3 13 L3 15 L5 17 L8 17 L11 14",
	'*': "M7 5 L7 15 M3 7 L11 13 M11 7 L3 13",
	'(': "M9 2 L6 6 L6 14 L9 18",
	')': "M5 2 L8 6 L8 14 L5 18",
	'[': "M9 2 L5 2 L5 18 L9 18",
	']': "M5 2 L9 2 L9 18 L5 18",
	'{': "M10 2 L8 4 L8 9 L6 10 L8 11 L8 16 L10 18",
	'}': "M4 2 L6 4 L6 9 L8 10 L6 11 L6 16 L4 18",
	'<': "M11 3 L3 10 L11 17",
	'>': "M3 3 L11 10 L3 17",
	'=': "M2 8 L13 8 M2 12 L13 12",
	'+': "M7 4 L7 16 M2 10 L12 10",
	'/': "M3 18 L11 2",
	'\\': "M3 2 L11 18",

	'A': "M3 17 L3 9 L7 3 L11 9 L11 17 M3 11 L11 11",
	'B': "M3 3 L3 17 M3 3 L9 3 L9 9 L3 9 M3 9 L10 9 L10 17 L3 17",
	'C': "M11 5 L8 3 L5 3 L3 6 L3 14 L5 17 L8 17 L11 15",
	'D': "M3 3 L3 17 M3 3 L8 3 L11 6 L11 14 L8 17 L3 17",
	'E': "M11 3 L3 3 L3 17 L11 17 M3 10 L9 10",
	'F': "M11 3 L3 3 L3 17 M3 10 L9 10",
	'G': "M11 5 L8 3 L5 3 L3 6 L3 14 L5 17 L9 17 L11 14 L11 10 L7 10",
	'H': "M3 3 L3 17 M11 3 L11 17 M3 10 L11 10",
	'I': "M7 3 L7 17 M3 3 L11 3 M3 17 L11 17",
	'J': "M11 3 L11 14 L9 17 L5 17 L3 14",
	'K': "M3 3 L3 17 M11 3 L3 10 L11 17",
	'L': "M3 3 L3 17 L11 17",
	'M': "M3 17 L3 3 L7 10 L11 3 L11 17",
	'N': "M3 17 L3 3 L11 17 L11 3",
	'O': "M5 3 L9 3 L11 6 L11 14 L9 17 L5 17 L3 14 L3 6 Z",
	'P': "M3 17 L3 3 L9 3 L11 6 L9 9 L3 9",
	'Q': "M5 3 L9 3 L11 6 L11 14 L9 17 L5 17 L3 14 L3 6 Z M8 13 L12 18",
	'R': "M3 17 L3 3 L9 3 L11 6 L9 9 L3 9 M6 9 L11 17",
	'S': "M11 5 L9 3 L5 3 L3 5 L3 8 L11 12 L11 15 L9 17 L5 17 L3 15",
	'T': "M3 3 L11 3 M7 3 L7 17",
	'U': "M3 3 L3 14 L5 17 L9 17 L11 14 L11 3",
	'V': "M3 3 L7 17 L11 3",
	'W': "M3 3 L5 17 L7 10 L9 17 L11 3",
	'X': "M3 3 L11 17 M11 3 L3 17",
	'Y': "M3 3 L7 10 L11 3 M7 10 L7 17",
	'Z': "M3 3 L11 3 L3 17 L11 17",

	'0': "M5 3 L9 3 L11 6 L11 14 L9 17 L5 17 L3 14 L3 6 Z M4 15 L10 5",
	'1': "M5 6 L7 3 L7 17 M4 17 L10 17",
	'2': "M3 6 L5 3 L9 3 L11 6 L11 9 L3 17 L11 17",
	'3': "M3 4 L6 3 L9 3 L11 6 L9 9 L6 9 M9 9 L11 12 L9 16 L6 17 L3 15",
	'4': "M9 3 L3 12 L11 12 M9 3 L9 17",
	'5': "M11 3 L3 3 L3 9 L9 9 L11 12 L11 15 L9 17 L3 17",
	'6': "M9 3 L5 3 L3 7 L3 14 L5 17 L9 17 L11 14 L11 11 L9 9 L3 9",
	'7': "M3 3 L11 3 L5 17",
	'8': "M5 3 L9 3 L11 5 L9 9 L5 9 L3 11 L3 15 L5 17 L9 17 L11 15 L11 11 L9 9 M5 9 L3 5 L5 3",
	'9': "M3 9 L5 11 L9 11 L11 9 L11 6 L9 3 L5 3 L3 6 L3 9 L5 12 L9 14",
}

// Cache rasterises and memoizes glyph images.
type Cache struct {
	mu     sync.Mutex
	images map[glyphKey]*image.RGBA
}

type glyphKey struct {
	ch    byte
	scale float64
}

// NewCache returns an empty glyph cache.
func NewCache() *Cache {
	return &Cache{images: make(map[glyphKey]*image.RGBA)}
}

// Glyph returns the rasterised image for ch at the given scale,
// rendering and caching it on first use.
func (c *Cache) Glyph(ch byte, scale float64) *image.RGBA {
	key := glyphKey{ch, scale}

	c.mu.Lock()
	if img, ok := c.images[key]; ok {
		c.mu.Unlock()
		return img
	}
	c.mu.Unlock()

	img := rasterize(ch, scale)

	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()
	return img
}

func rasterize(ch byte, scale float64) *image.RGBA {
	// scale multiplies the fixed cell metrics directly: at scale==20
	// a cell is exactly CellWidth x CellHeight pixels, matching the
	// window-surface contract.
	w := int(float64(CellWidth) * scale / 20)
	h := int(float64(CellHeight) * scale / 20)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	path, ok := glyphPaths[ch]
	if !ok && ch >= 'a' && ch <= 'z' {
		// Lowercase letters reuse their uppercase stroke; this font has
		// no separate lowercase forms.
		path, ok = glyphPaths[ch-('a'-'A')]
	}
	if !ok {
		path = strokePathForPrintable(ch)
	}

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	raster.SetColor(color.White)

	svgPath, err := oksvg.ReadIconStream(strings.NewReader(svgWrap(path)))
	if err == nil && svgPath != nil {
		svgPath.Draw(raster, 1.0)
	}

	return img
}

// strokePathForPrintable synthesizes a simple centered-dot glyph for
// any byte without a dedicated stroke path (every printable punctuation
// mark, letter and digit has one), so the cache never renders a blank
// cell for a nonspace character.
func strokePathForPrintable(ch byte) string {
	return fmt.Sprintf("M%d %d L%d %d", CellWidth/2, CellHeight/2, CellWidth/2+1, CellHeight/2+1)
}

func svgWrap(path string) string {
	return fmt.Sprintf(
		`<svg viewBox="0 0 %d %d"><path d="%s" stroke="white" stroke-width="1" fill="none"/></svg>`,
		CellWidth, CellHeight, path,
	)
}
