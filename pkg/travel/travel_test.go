package travel

import (
	"math"
	"math/rand"
	"testing"

	"pentrace/pkg/color"
	"pentrace/pkg/geometry"
	"pentrace/pkg/vectorize"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(points ...geometry.Point) vectorize.Stroke {
	return vectorize.Stroke{Color: color.Color{R: uint8(len(points))}, Points: append(geometry.Polyline(points), geometry.PenUp)}
}

func TestDistance(t *testing.T) {
	strokes := []vectorize.Stroke{
		stroke(geometry.Point{X: 3, Y: 4}, geometry.Point{X: 3, Y: 10}),
		stroke(geometry.Point{X: 3, Y: 12}, geometry.Point{X: 4, Y: 12}),
	}
	assert.InDelta(t, 5.0+2.0, Distance(geometry.Point{}, strokes), 1e-9)
	assert.Equal(t, 0.0, Distance(geometry.Point{}, nil))

	// A pen-up inside a stroke is travel as well.
	split := vectorize.Stroke{Points: geometry.Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, geometry.PenUp, {X: 1, Y: 3}, {X: 2, Y: 3}}}
	assert.InDelta(t, 3.0, Distance(geometry.Point{}, []vectorize.Stroke{split}), 1e-9)
}

func TestInk(t *testing.T) {
	strokes := []vectorize.Stroke{
		stroke(geometry.Point{X: 3, Y: 4}, geometry.Point{X: 3, Y: 10}),
		stroke(geometry.Point{X: 3, Y: 12}, geometry.Point{X: 4, Y: 13}),
		{Points: geometry.Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, geometry.PenUp, {X: 1, Y: 3}, {X: 2, Y: 3}}},
	}
	assert.InDelta(t, 6.0+math.Sqrt2+2.0, Ink(strokes), 1e-9)
	assert.Equal(t, 0.0, Ink(nil))
}

func TestOrderNearestFirst(t *testing.T) {
	a := stroke(geometry.Point{X: 50, Y: 50}, geometry.Point{X: 51, Y: 50})
	b := stroke(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 2, Y: 2})
	c := stroke(geometry.Point{X: 3, Y: 3}, geometry.Point{X: 40, Y: 40})
	got := Order(geometry.Point{}, []vectorize.Stroke{a, b, c})
	if diff := cmp.Diff([]vectorize.Stroke{b, c, a}, got); diff != "" {
		t.Errorf("incorrect order: %s", diff)
	}
}

func TestOrderTiesKeepInputOrder(t *testing.T) {
	a := stroke(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 6, Y: 5})
	b := stroke(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 5, Y: 6})
	c := stroke(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 4, Y: 5})
	got := Order(geometry.Point{}, []vectorize.Stroke{a, b, c})
	if diff := cmp.Diff([]vectorize.Stroke{a, b, c}, got); diff != "" {
		t.Errorf("incorrect order: %s", diff)
	}
}

func TestOrderEmpty(t *testing.T) {
	assert.Empty(t, Order(geometry.Point{}, nil))
	blank := vectorize.Stroke{Points: geometry.Polyline{geometry.PenUp}}
	assert.Equal(t, []vectorize.Stroke{blank}, Order(geometry.Point{}, []vectorize.Stroke{blank}))
}

// bruteOrder is the quadratic reference for Order.
func bruteOrder(home geometry.Point, strokes []vectorize.Stroke) []vectorize.Stroke {
	used := make([]bool, len(strokes))
	var out []vectorize.Stroke
	pos := home
	for range strokes {
		best := -1
		bestDist := math.Inf(1)
		for i, s := range strokes {
			start, _ := s.Points.Start()
			if d := pos.Distance(start); !used[i] && d < bestDist {
				best, bestDist = i, d
			}
		}
		used[best] = true
		out = append(out, strokes[best])
		pos, _ = strokes[best].Points.End()
	}
	return out
}

func TestOrderMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for run := 0; run < 20; run++ {
		n := 1 + rng.Intn(60)
		strokes := make([]vectorize.Stroke, n)
		for i := range strokes {
			p := geometry.Point{X: rng.Intn(300), Y: rng.Intn(200)}
			q := geometry.Point{X: rng.Intn(300), Y: rng.Intn(200)}
			strokes[i] = stroke(p, q)
			strokes[i].Color = color.Color{R: uint8(i)}
		}
		home := geometry.Point{X: 0, Y: 200}
		got := Order(home, strokes)
		require.Len(t, got, n)
		if diff := cmp.Diff(bruteOrder(home, strokes), got); diff != "" {
			t.Fatalf("run %d: quadtree order differs from brute force: %s", run, diff)
		}
	}
}

func TestOrderPartitions(t *testing.T) {
	a := stroke(geometry.Point{X: 9, Y: 9}, geometry.Point{X: 9, Y: 8})
	b := stroke(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 1, Y: 2})
	got := OrderPartitions(geometry.Point{}, [][]vectorize.Stroke{{a, b}, {}})
	require.Len(t, got, 2)
	assert.Equal(t, []vectorize.Stroke{b, a}, got[0])
	assert.Empty(t, got[1])
}
