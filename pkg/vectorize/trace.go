package vectorize

import (
	"pentrace/pkg/color"
	"pentrace/pkg/geometry"
)

// MinStrokeInk is the number of real points a stroke needs to leave a mark.
const MinStrokeInk = 2

// Stroke is one pen-down walk in a single color. Points may end with, or
// contain, geometry.PenUp.
type Stroke struct {
	Color  color.Color
	Points geometry.Polyline
}

// directions is the neighbor search order used when extending a walk:
// down, right, up, left, down-right, down-left, up-right, up-left.
// Changing it changes the drawn shapes.
var directions = [8]geometry.Vector2{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// tracer owns the visited set of one run.
type tracer struct {
	lm      *LabelMap
	visited []bool
}

// Trace walks the label map and returns the stroke set.
//
// Colors are handled in palette order and seeds in row-major order. From
// each unvisited seed the walk repeatedly steps to the first unvisited
// same-label neighbor in directions order, and ends with a PenUp once it is
// stuck. This threads a single-pixel greedy path through a region; it does
// not trace the region's outline. Walks with fewer than MinStrokeInk real
// points are dropped.
func Trace(lm *LabelMap) []Stroke {
	t := &tracer{
		lm:      lm,
		visited: make([]bool, len(lm.Labels)),
	}
	var strokes []Stroke
	for label, c := range lm.Palette {
		i := 0
		for y := 0; y < lm.Height; y++ {
			for x := 0; x < lm.Width; x++ {
				if lm.Labels[i] == label && !t.visited[i] {
					points := t.walk(geometry.Point{X: x, Y: y}, label)
					if points.Ink() >= MinStrokeInk {
						strokes = append(strokes, Stroke{Color: c, Points: points})
					}
				}
				i++
			}
		}
	}
	return strokes
}

func (t *tracer) walk(seed geometry.Point, label int) geometry.Polyline {
	t.visited[seed.X+seed.Y*t.lm.Width] = true
	points := geometry.Polyline{seed}
	current := seed
	for {
		next, ok := t.step(current, label)
		if !ok {
			return append(points, geometry.PenUp)
		}
		points = append(points, next)
		current = next
	}
}

// step finds, marks and returns the next point of a walk.
func (t *tracer) step(from geometry.Point, label int) (geometry.Point, bool) {
	for _, d := range directions {
		p := from.Add(d)
		if !p.In(t.lm.Width, t.lm.Height) {
			continue
		}
		i := p.X + p.Y*t.lm.Width
		if !t.visited[i] && t.lm.Labels[i] == label {
			t.visited[i] = true
			return p, true
		}
	}
	return geometry.PenUp, false
}
