package travel

import (
	"math"

	"pentrace/pkg/geometry"

	"github.com/asim/quadtree"
)

// startTree indexes strokes by their first real point. Strokes that start on
// the same pixel share one quadtree point, whose data is the list of their
// indices in ascending order.
type startTree struct {
	quadTree *quadtree.QuadTree
	nodes    map[geometry.Point]*startNode
	span     float64

	// lost counts points the quadtree refused. While it is non-zero,
	// searches fall back to scanning every node.
	lost int
}

type startNode struct {
	point   *quadtree.Point
	strokes []int
	lost    bool
}

func newStartTree(bounds geometry.Rectangle) *startTree {
	midX := float64(bounds.Max.X+bounds.Min.X) / 2
	midY := float64(bounds.Max.Y+bounds.Min.Y) / 2
	halfWidth := float64(bounds.Max.X) - midX

	halfHeight := float64(bounds.Max.Y) - midY

	// Add a small margin to avoid dropping objects at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &startTree{
		quadTree: quadtree.New(aabb, 0, nil),
		nodes:    map[geometry.Point]*startNode{},
		span:     2 * (halfWidth + halfHeight),
	}
}

func (t *startTree) add(p geometry.Point, stroke int) {
	if node, ok := t.nodes[p]; ok {
		node.strokes = append(node.strokes, stroke)
		return
	}
	node := &startNode{strokes: []int{stroke}}
	node.point = quadtree.NewPoint(float64(p.X), float64(p.Y), node)
	if !t.quadTree.Insert(node.point) {
		node.lost = true
		t.lost++
	}
	t.nodes[p] = node
}

// remove takes the lowest stroke index off the node at p.
func (t *startTree) remove(p geometry.Point) {
	node := t.nodes[p]
	node.strokes = node.strokes[1:]
	if len(node.strokes) == 0 {
		if node.lost {
			t.lost--
		} else {
			t.quadTree.Remove(node.point)
		}
		delete(t.nodes, p)
	}
}

// search returns the nodes within a square of the given half size around p.
func (t *startTree) search(p geometry.Point, half float64) []*startNode {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(float64(p.X), float64(p.Y), nil),
		quadtree.NewPoint(half, half, nil),
	)
	var nodes []*startNode
	for _, point := range t.quadTree.Search(aabb) {
		nodes = append(nodes, point.Data().(*startNode))
	}
	return nodes
}

// nearest returns the start position closest to p and the lowest stroke index
// starting there. Equal distances go to the lower stroke index.
func (t *startTree) nearest(p geometry.Point) (geometry.Point, int, bool) {
	if len(t.nodes) == 0 {
		return geometry.PenUp, -1, false
	}
	if t.lost > 0 {
		best := pick(p, t.all())
		return nodePoint(best), best.strokes[0], true
	}

	// Grow a search square until it catches something. The closest point
	// found bounds the true nearest distance, so one more search with that
	// radius is exact.
	var candidates []*startNode
	for half := 1.0; len(candidates) == 0; half *= 2 {
		candidates = t.search(p, half)
		if half > t.span+p.Distance(geometry.Point{}) {
			candidates = t.all()
			break
		}
	}
	best := pick(p, candidates)
	candidates = t.search(p, math.Ceil(nodePoint(best).Distance(p))+1)
	best = pick(p, append(candidates, best))

	return nodePoint(best), best.strokes[0], true
}

func (t *startTree) all() []*startNode {
	var nodes []*startNode
	for _, node := range t.nodes {
		nodes = append(nodes, node)
	}
	return nodes
}

func nodePoint(n *startNode) geometry.Point {
	x, y := n.point.Coordinates()
	return geometry.Point{X: int(x), Y: int(y)}
}

func pick(p geometry.Point, nodes []*startNode) *startNode {
	var best *startNode
	bestDist := math.Inf(1)
	for _, n := range nodes {
		d := nodePoint(n).Distance(p)
		if d < bestDist || (d == bestDist && n.strokes[0] < best.strokes[0]) {
			best = n
			bestDist = d
		}
	}
	return best
}
