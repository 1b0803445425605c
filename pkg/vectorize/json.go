package vectorize

import (
	"encoding/json"
	"io"
)

// The wire shape is the one the drawing front end consumes: a list of
// partitions, each a list of {color, path} objects. Pen-up markers are
// written as {"x":-1,"y":-1}.
type jsonPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type jsonStroke struct {
	Color string      `json:"color"`
	Path  []jsonPoint `json:"path"`
}

func toJSON(partitions [][]Stroke) [][]jsonStroke {
	out := make([][]jsonStroke, len(partitions))
	for i, strokes := range partitions {
		out[i] = make([]jsonStroke, 0, len(strokes))
		for _, s := range strokes {
			path := make([]jsonPoint, len(s.Points))
			for j, p := range s.Points {
				path[j] = jsonPoint{X: p.X, Y: p.Y}
			}
			out[i] = append(out[i], jsonStroke{Color: s.Color.String(), Path: path})
		}
	}
	return out
}

// MarshalPartitions encodes a partition assignment as JSON.
func MarshalPartitions(partitions [][]Stroke) ([]byte, error) {
	return json.Marshal(toJSON(partitions))
}

// WritePartitions writes the JSON form of partitions to w, newline terminated.
func WritePartitions(w io.Writer, partitions [][]Stroke) error {
	return json.NewEncoder(w).Encode(toJSON(partitions))
}
