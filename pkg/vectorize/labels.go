package vectorize

import (
	"image"
	imgcolor "image/color"

	"pentrace/pkg/color"
)

// Background is the label of paper pixels.
const Background = -1

// LabelMap holds, for each pixel, the index of its palette color or
// Background. It is built once from a finished palette and not changed after.
//
// LabelMap implements image.PalettedImage, so it can be encoded as a preview
// of the quantized image. Background shows as white.
type LabelMap struct {
	Width   int
	Height  int
	Labels  []int
	Palette color.Palette
}

// BuildLabelMap labels every pixel of img with its nearest palette index,
// lowest index on ties, or Background when the pixel is paper.
func BuildLabelMap(img *Image, palette color.Palette, opts Options) *LabelMap {
	lm := &LabelMap{
		Width:   img.Width,
		Height:  img.Height,
		Labels:  make([]int, img.Width*img.Height),
		Palette: palette,
	}
	forRows(img.Height, opts.Workers, func(_, y0, y1 int) {
		for i := y0 * img.Width; i < y1*img.Width; i++ {
			if img.isBackground(i, opts.BackgroundThreshold) {
				lm.Labels[i] = Background
				continue
			}
			lm.Labels[i] = palette.Nearest(img.at(i))
		}
	})
	return lm
}

// Label returns the label at x, y.
func (lm *LabelMap) Label(x, y int) int {
	return lm.Labels[x+y*lm.Width]
}

func (lm *LabelMap) ColorModel() imgcolor.Model {
	return lm.Palette.ImagePalette()
}

func (lm *LabelMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, lm.Width, lm.Height)
}

func (lm *LabelMap) At(x, y int) imgcolor.Color {
	label := lm.Label(x, y)
	if label == Background {
		return color.White
	}
	return lm.Palette[label]
}

// ColorIndexAt returns the label at x, y, with Background mapped to
// len(Palette), the white entry of ColorModel.
func (lm *LabelMap) ColorIndexAt(x, y int) uint8 {
	label := lm.Label(x, y)
	if label == Background {
		return uint8(len(lm.Palette))
	}
	return uint8(label)
}
