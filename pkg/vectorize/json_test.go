package vectorize_test

import (
	"bytes"
	"testing"

	"pentrace/pkg/color"
	"pentrace/pkg/geometry"
	"pentrace/pkg/vectorize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPartitions(t *testing.T) {
	partitions := [][]vectorize.Stroke{
		{{
			Color:  color.Color{R: 12, G: 34, B: 56},
			Points: geometry.Polyline{{X: 1, Y: 2}, {X: 1, Y: 3}, geometry.PenUp},
		}},
		{},
	}

	data, err := vectorize.MarshalPartitions(partitions)
	require.NoError(t, err)
	assert.Equal(t,
		`[[{"color":"rgb(12, 34, 56)","path":[{"x":1,"y":2},{"x":1,"y":3},{"x":-1,"y":-1}]}],[]]`,
		string(data))

	var buf bytes.Buffer
	require.NoError(t, vectorize.WritePartitions(&buf, partitions))
	assert.Equal(t, string(data)+"\n", buf.String())
}

func TestMarshalPartitionsEmpty(t *testing.T) {
	parts, err := vectorize.Distribute(nil, 2)
	require.NoError(t, err)

	data, err := vectorize.MarshalPartitions(parts)
	require.NoError(t, err)
	assert.Equal(t, `[[],[]]`, string(data))
}
