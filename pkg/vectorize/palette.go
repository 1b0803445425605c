package vectorize

import (
	"math/rand"

	"pentrace/pkg/color"
)

// clusterSums accumulates the pixels assigned to each centroid in one pass.
type clusterSums struct {
	r, g, b []int
	count   []int
}

func newClusterSums(k int) *clusterSums {
	return &clusterSums{
		r:     make([]int, k),
		g:     make([]int, k),
		b:     make([]int, k),
		count: make([]int, k),
	}
}

func (s *clusterSums) add(i int, c color.Color) {
	s.r[i] += int(c.R)
	s.g[i] += int(c.G)
	s.b[i] += int(c.B)
	s.count[i]++
}

func (s *clusterSums) merge(o *clusterSums) {
	for i := range s.count {
		s.r[i] += o.r[i]
		s.g[i] += o.g[i]
		s.b[i] += o.b[i]
		s.count[i] += o.count[i]
	}
}

// roundMean returns sum/n rounded half up. sum and n are never negative.
func roundMean(sum, n int) uint8 {
	return uint8((2*sum + n) / (2 * n))
}

// ReducePalette clusters the foreground colors of img into exactly
// opts.PaletteSize colors.
//
// Centroids start as the colors of uniformly random pixels (background
// included, duplicates allowed). Each iteration assigns every foreground
// pixel to its nearest centroid, lowest index on ties, then moves every
// centroid to the rounded mean of its pixels. A centroid with no pixels keeps
// its color unless opts.ReseedEmpty is set.
//
// The result depends only on img, opts and the state of rng.
func ReducePalette(img *Image, opts Options, rng *rand.Rand) color.Palette {
	k := opts.PaletteSize
	n := img.Width * img.Height
	centroids := make(color.Palette, k)
	for i := range centroids {
		centroids[i] = img.at(rng.Intn(n))
	}

	var assigned []int
	if opts.ReseedEmpty {
		assigned = make([]int, n)
	}

	workers := numWorkers(img.Height, opts.Workers)
	partial := make([]*clusterSums, workers)
	for iter := 0; iter < opts.Iterations; iter++ {
		forRows(img.Height, opts.Workers, func(w, y0, y1 int) {
			sums := newClusterSums(k)
			for i := y0 * img.Width; i < y1*img.Width; i++ {
				if img.isBackground(i, opts.BackgroundThreshold) {
					if assigned != nil {
						assigned[i] = Background
					}
					continue
				}
				c := img.at(i)
				nearest := centroids.Nearest(c)
				sums.add(nearest, c)
				if assigned != nil {
					assigned[i] = nearest
				}
			}
			partial[w] = sums
		})

		total := partial[0]
		for _, p := range partial[1:] {
			total.merge(p)
		}
		for i, count := range total.count {
			if count == 0 {
				continue
			}
			centroids[i] = color.Color{
				R: roundMean(total.r[i], count),
				G: roundMean(total.g[i], count),
				B: roundMean(total.b[i], count),
			}
		}
		if opts.ReseedEmpty {
			reseedEmpty(img, centroids, total.count, assigned, rng)
		}
	}
	return centroids
}

// reseedEmpty moves every centroid that attracted no pixels onto the color
// of a random pixel from the largest cluster of this iteration. It does
// nothing when every cluster is empty.
func reseedEmpty(img *Image, centroids color.Palette, counts, assigned []int, rng *rand.Rand) {
	largest := 0
	for i, count := range counts {
		if count > counts[largest] {
			largest = i
		}
	}
	if counts[largest] == 0 {
		return
	}

	var members []int
	for i, count := range counts {
		if count != 0 {
			continue
		}
		if members == nil {
			members = make([]int, 0, counts[largest])
			for p, a := range assigned {
				if a == largest {
					members = append(members, p)
				}
			}
		}
		centroids[i] = img.at(members[rng.Intn(len(members))])
	}
}
