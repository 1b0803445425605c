package color

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a pen color: an opaque 8-bit RGB triple.
//
// Colors are compared by Euclidean distance in RGB space. Only the ordering
// of distances matters anywhere in this module, so the squared distance is
// used for comparisons and the square root is taken only on request.
type Color struct {
	R, G, B uint8
}

// White is the paper color. It is used to show background pixels.
var White = Color{R: 0xff, G: 0xff, B: 0xff}

// RGBA implements image/color.Color. Pen colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String formats the color the way the drawing front end expects it.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// IsBackground reports whether r, g and b are all brighter than threshold.
// Such pixels are treated as paper and never inked.
func IsBackground(r, g, b, threshold uint8) bool {
	return r > threshold && g > threshold && b > threshold
}

// FromImageColor converts any image/color.Color to a Color, dropping alpha.
func FromImageColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Palette is an ordered set of pen colors. A color's index is its cluster id.
type Palette []Color

// Nearest returns the index of the palette color closest to c. Ties go to
// the lowest index. It returns -1 for an empty palette.
func (p Palette) Nearest(c Color) int {
	best := -1
	bestDist := math.MaxInt
	for i, pc := range p {
		d := DistanceSq(c, pc)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// ImagePalette converts the palette to an image/color.Palette with White
// appended at index len(p), so background cells have an index of their own.
func (p Palette) ImagePalette() color.Palette {
	pal := make(color.Palette, 0, len(p)+1)
	for _, c := range p {
		pal = append(pal, c)
	}
	return append(pal, White)
}
