package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fitToPage scales src to fit inside a width x height page, keeping its
// aspect ratio, and centers it on white paper. This is how the drawing
// front end places an upload on its A4 canvas before tracing.
func fitToPage(src image.Image, width, height int) *image.RGBA {
	page := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return page
	}

	srcAspect := float64(sb.Dx()) / float64(sb.Dy())
	pageAspect := float64(width) / float64(height)
	var w, h int
	if srcAspect > pageAspect {
		w = width
		h = int(float64(width)/srcAspect + 0.5)
	} else {
		h = height
		w = int(float64(height)*srcAspect + 0.5)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x0 := (width - w) / 2
	y0 := (height - h) / 2
	draw.BiLinear.Scale(page, image.Rect(x0, y0, x0+w, y0+h), src, sb, draw.Over, nil)
	return page
}
