package vectorize_test

import (
	"unicode/utf8"

	"pentrace/pkg/color"
	"pentrace/pkg/vectorize"
)

var (
	red   = color.Color{R: 255}
	blue  = color.Color{B: 255}
	black = color.Color{}
)

// makeImage builds an image from rows of runes: '◻' is white paper, 'r' red,
// 'b' blue and '◼' black.
func makeImage(rows ...string) *vectorize.Image {
	img := &vectorize.Image{
		Width:  utf8.RuneCountInString(rows[0]),
		Height: len(rows),
	}
	img.Pix = make([]byte, img.Width*img.Height*4)
	i := 0
	for _, row := range rows {
		for _, ch := range row {
			c := color.White
			switch ch {
			case 'r':
				c = red
			case 'b':
				c = blue
			case '◼':
				c = black
			}
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 0xff
			i += 4
		}
	}
	return img
}

// makeLabels builds a label map from rows of runes: '.' is background and a
// digit is a palette index.
func makeLabels(palette color.Palette, rows ...string) *vectorize.LabelMap {
	lm := &vectorize.LabelMap{
		Width:   len(rows[0]),
		Height:  len(rows),
		Palette: palette,
	}
	for _, row := range rows {
		for _, ch := range row {
			if ch == '.' {
				lm.Labels = append(lm.Labels, vectorize.Background)
			} else {
				lm.Labels = append(lm.Labels, int(ch-'0'))
			}
		}
	}
	return lm
}

func testOptions(k, partners int, seed int64) vectorize.Options {
	opts := vectorize.DefaultOptions()
	opts.PaletteSize = k
	opts.Partners = partners
	opts.Seed = seed
	return opts
}
