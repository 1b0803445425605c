package travel

import (
	"pentrace/pkg/geometry"
	"pentrace/pkg/vectorize"
)

// Distance returns the total pen-up travel needed to draw strokes in order,
// starting from home. Moves inside a stroke across a PenUp marker count as
// travel too; inked moves do not.
func Distance(home geometry.Point, strokes []vectorize.Stroke) float64 {
	total := 0.0
	pos := home
	for _, s := range strokes {
		for _, seg := range s.Points.Segments() {
			total += pos.Distance(seg[0])
			pos = seg[len(seg)-1]
		}
	}
	return total
}

// Ink returns the total pen-down length of strokes.
func Ink(strokes []vectorize.Stroke) float64 {
	total := 0.0
	for _, s := range strokes {
		total += s.Points.Length()
	}
	return total
}

// Order returns strokes rearranged to cut pen-up travel: starting from home,
// it repeatedly draws the not yet drawn stroke whose start is nearest to where
// the pen is. Strokes are never reversed or split. Strokes with no real
// points keep their relative order at the end.
//
// Order changes the drawing order, so it must only be applied on request.
func Order(home geometry.Point, strokes []vectorize.Stroke) []vectorize.Stroke {
	bounds := geometry.EmptyRect
	for _, s := range strokes {
		if p, ok := s.Points.Start(); ok {
			bounds = bounds.Union(p)
		}
	}
	ordered := make([]vectorize.Stroke, 0, len(strokes))
	if bounds.Empty() {
		return append(ordered, strokes...)
	}

	tree := newStartTree(bounds.Union(home))
	var blank []vectorize.Stroke
	for i, s := range strokes {
		if p, ok := s.Points.Start(); ok {
			tree.add(p, i)
		} else {
			blank = append(blank, s)
		}
	}

	pos := home
	for {
		start, i, ok := tree.nearest(pos)
		if !ok {
			break
		}
		tree.remove(start)
		ordered = append(ordered, strokes[i])
		pos, _ = strokes[i].Points.End()
	}
	return append(ordered, blank...)
}

// OrderPartitions applies Order to every partition separately, so each pen
// keeps its own strokes.
func OrderPartitions(home geometry.Point, partitions [][]vectorize.Stroke) [][]vectorize.Stroke {
	out := make([][]vectorize.Stroke, len(partitions))
	for i, p := range partitions {
		out[i] = Order(home, p)
	}
	return out
}
