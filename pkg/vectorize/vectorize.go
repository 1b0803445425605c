package vectorize

import (
	"time"

	"pentrace/pkg/color"
)

// Result is everything one run produced. Nothing in it is shared with other
// runs.
type Result struct {
	Palette    color.Palette
	Labels     *LabelMap
	Strokes    []Stroke
	Partitions [][]Stroke
}

// Empty reports whether there is nothing to draw, which happens when the
// image is too uniform to trace. It is not an error.
func (r *Result) Empty() bool {
	return len(r.Strokes) == 0
}

// Vectorize runs the whole pipeline over img: palette reduction, labeling,
// tracing and distribution. It reads img.Pix without modifying it and runs to
// completion once started.
func Vectorize(img *Image, opts Options) (*Result, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := Logger().With("width", img.Width, "height", img.Height)

	t0 := time.Now()
	palette := ReducePalette(img, opts, opts.rand())
	t1 := time.Now()
	log.Debug("palette reduced", "colors", len(palette), "iterations", opts.Iterations, "elapsed", t1.Sub(t0))

	labels := BuildLabelMap(img, palette, opts)
	t2 := time.Now()
	log.Debug("label map built", "elapsed", t2.Sub(t1))

	strokes := Trace(labels)
	t3 := time.Now()
	log.Debug("strokes traced", "strokes", len(strokes), "elapsed", t3.Sub(t2))

	partitions, err := Distribute(strokes, opts.Partners)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Palette:    palette,
		Labels:     labels,
		Strokes:    strokes,
		Partitions: partitions,
	}
	if result.Empty() {
		log.Info("nothing to draw; image too uniform to trace")
	}
	return result, nil
}
