package geometry

import (
	"math"
)

// Point is a pixel position. X grows to the right and Y grows down.
type Point struct {
	X int
	Y int
}

// PenUp marks a break in a stroke: the pen lifts and the next real point
// starts a new sub-segment. It is never a valid pixel position.
var PenUp = Point{X: -1, Y: -1}

type Vector2 = Point

type Rectangle struct {
	Min Point
	Max Point
}

// Polyline is an ordered point sequence that may contain PenUp markers.
type Polyline []Point

func (p Point) IsPenUp() bool {
	return p == PenUp
}

// In reports whether p lies on a width x height pixel grid.
func (p Point) In(width, height int) bool {
	return 0 <= p.X && p.X < width && 0 <= p.Y && p.Y < height
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Empty reports whether the rectangle contains no points.
func (r Rectangle) Empty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// Union returns the smallest rectangle containing r and p. Both bounds are
// inclusive.
func (r Rectangle) Union(p Point) Rectangle {
	if r.Empty() {
		return Rectangle{Min: p, Max: p}
	}
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// EmptyRect has Max < Min so that the first Union replaces it.
var EmptyRect = Rectangle{Min: Point{X: 0, Y: 0}, Max: Point{X: -1, Y: -1}}

// Ink returns the number of real (non PenUp) points in the line.
func (line Polyline) Ink() int {
	n := 0
	for _, p := range line {
		if !p.IsPenUp() {
			n++
		}
	}
	return n
}

// Start returns the first real point of the line.
func (line Polyline) Start() (Point, bool) {
	for _, p := range line {
		if !p.IsPenUp() {
			return p, true
		}
	}
	return PenUp, false
}

// End returns the last real point of the line.
func (line Polyline) End() (Point, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if !line[i].IsPenUp() {
			return line[i], true
		}
	}
	return PenUp, false
}

// Segments splits the line at PenUp markers. Empty segments are skipped.
func (line Polyline) Segments() []Polyline {
	var segments []Polyline
	start := 0
	for i, p := range line {
		if p.IsPenUp() {
			if i > start {
				segments = append(segments, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		segments = append(segments, line[start:])
	}
	return segments
}

// Bounds returns the inclusive bounding box of the real points in the line.
func (line Polyline) Bounds() Rectangle {
	r := EmptyRect
	for _, p := range line {
		if !p.IsPenUp() {
			r = r.Union(p)
		}
	}
	return r
}

// Length returns the inked length of the line; pen-up moves are not counted.
func (line Polyline) Length() float64 {
	total := 0.0
	for _, seg := range line.Segments() {
		for i := 1; i < len(seg); i++ {
			total += seg[i-1].Distance(seg[i])
		}
	}
	return total
}
