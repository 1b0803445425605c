package vectorize

import (
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"math"

	"pentrace/pkg/color"

	"golang.org/x/image/draw"
)

// ErrInvalidInput is returned for malformed buffers and out-of-range options.
// Callers must not trace an image that fails validation.
var ErrInvalidInput = errors.New("vectorize: invalid input")

// Image is a row-major RGBA pixel buffer, four bytes per pixel, as handed
// over by a canvas or a decoder. The pipeline only ever reads Pix.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage wraps pix without copying it and validates its dimensions.
func NewImage(pix []byte, width, height int) (*Image, error) {
	img := &Image{Width: width, Height: height, Pix: pix}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks that the buffer holds at least Width*Height pixels.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, img.Width, img.Height)
	}
	if img.Width > math.MaxInt/4/img.Height {
		return fmt.Errorf("%w: dimensions %dx%d too large", ErrInvalidInput, img.Width, img.Height)
	}
	if need := img.Width * img.Height * 4; len(img.Pix) < need {
		return fmt.Errorf("%w: buffer has %d bytes, %dx%d needs %d", ErrInvalidInput, len(img.Pix), img.Width, img.Height, need)
	}
	return nil
}

// FromImage copies src into a new Image. Transparent areas are composited
// onto white paper, the way a browser canvas shows them.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(imgcolor.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
	}
}

// Clone returns a copy that shares no memory with img.
func (img *Image) Clone() *Image {
	pix := make([]byte, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// at returns the color of the pixel with row-major index i. Alpha is ignored.
func (img *Image) at(i int) color.Color {
	o := i * 4
	return color.Color{R: img.Pix[o], G: img.Pix[o+1], B: img.Pix[o+2]}
}

func (img *Image) isBackground(i int, threshold uint8) bool {
	o := i * 4
	return color.IsBackground(img.Pix[o], img.Pix[o+1], img.Pix[o+2], threshold)
}
