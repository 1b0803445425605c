package vectorize

import "sync"

// forRows calls fn over disjoint row ranges [y0, y1) covering [0, height),
// one range per worker, and returns once every call has finished. The
// return is the barrier between an assignment pass and whatever reads its
// results.
func forRows(height, workers int, fn func(worker, y0, y1 int)) {
	if workers < 2 || height < 2 {
		fn(0, 0, height)
		return
	}
	if workers > height {
		workers = height
	}
	rows := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w*rows < height; w++ {
		y0 := w * rows
		y1 := y0 + rows
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(w, y0, y1 int) {
			defer wg.Done()
			fn(w, y0, y1)
		}(w, y0, y1)
	}
	wg.Wait()
}

// numWorkers is the number of ranges forRows will use.
func numWorkers(height, workers int) int {
	if workers < 2 || height < 2 {
		return 1
	}
	if workers > height {
		workers = height
	}
	rows := (height + workers - 1) / workers
	return (height + rows - 1) / rows
}
