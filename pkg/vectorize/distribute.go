package vectorize

import "fmt"

// Distribute deals strokes round-robin into exactly partners partitions:
// stroke i goes to partition i mod partners, keeping relative order. Extra
// partitions stay empty.
func Distribute(strokes []Stroke, partners int) ([][]Stroke, error) {
	if partners < 1 {
		return nil, fmt.Errorf("%w: partner count %d", ErrInvalidInput, partners)
	}
	partitions := make([][]Stroke, partners)
	for p := range partitions {
		partitions[p] = make([]Stroke, 0, len(strokes)/partners+1)
	}
	for i, s := range strokes {
		p := i % partners
		partitions[p] = append(partitions[p], s)
	}
	return partitions, nil
}
