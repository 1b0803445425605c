package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverlaysDefaults(t *testing.T) {
	c := Default()
	err := Decode([]byte(`
palette_size = 8
partners = 3
reseed_empty = true
seed = 42
`), &c)
	require.NoError(t, err)

	want := Default()
	want.PaletteSize = 8
	want.Partners = 3
	want.ReseedEmpty = true
	want.Seed = 42
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("incorrect config: %s", diff)
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	tests := []string{
		"palette_size = 300",
		"partners = -2",
		"iterations = -1",
		"workers = -4",
		"palette_size = \"many\"",
	}
	for _, doc := range tests {
		c := Default()
		assert.Error(t, Decode([]byte(doc), &c), doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentrace.toml")
	require.NoError(t, os.WriteFile(path, []byte("iterations = 9\npage_width = 100\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Iterations)
	assert.Equal(t, 100, c.PageWidth)
	assert.Equal(t, PageHeight, c.PageHeight)
	assert.Equal(t, PaletteSize, c.PaletteSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDecodeExplicitZero(t *testing.T) {
	c := Default()
	c.ReseedEmpty = true
	err := Decode([]byte(`
iterations = 0
background_threshold = 0
reseed_empty = false
`), &c)
	require.NoError(t, err)

	want := Default()
	want.Iterations = 0
	want.BackgroundThreshold = 0
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("incorrect config: %s", diff)
	}
}

func TestDecodeKeepsConfigOnError(t *testing.T) {
	c := Default()
	assert.Error(t, Decode([]byte("iterations = 3\npartners = 0\n"), &c))
	assert.Equal(t, Default(), c)
}
