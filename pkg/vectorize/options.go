package vectorize

import (
	"fmt"
	"math/rand"
	"time"

	"pentrace/pkg/cfg"
)

// Options controls one pipeline run.
type Options struct {
	// PaletteSize is K, the number of pen colors. Must be in [1, 255].
	PaletteSize int

	// Iterations is the number of palette refinement rounds.
	Iterations int

	// BackgroundThreshold is shared by every stage; see color.IsBackground.
	BackgroundThreshold uint8

	// Partners is P, the number of output partitions.
	Partners int

	// ReseedEmpty reseeds a centroid that attracted no pixels from a random
	// member of the largest cluster. Off by default: dead centroids keep
	// their initial color.
	ReseedEmpty bool

	// Workers splits the per-pixel passes across goroutines. Values below 2
	// run sequentially. The result does not depend on it.
	Workers int

	// Seed seeds palette initialization. Zero picks a time-based seed, so
	// two runs over the same image may differ.
	Seed int64
}

// DefaultOptions returns options built from the cfg package defaults.
func DefaultOptions() Options {
	return OptionsFromConfig(cfg.Default())
}

// OptionsFromConfig maps a loaded config onto pipeline options.
func OptionsFromConfig(c cfg.Config) Options {
	return Options{
		PaletteSize:         c.PaletteSize,
		Iterations:          c.Iterations,
		BackgroundThreshold: c.BackgroundThreshold,
		Partners:            c.Partners,
		ReseedEmpty:         c.ReseedEmpty,
		Workers:             c.Workers,
		Seed:                c.Seed,
	}
}

func (o Options) validate() error {
	if o.PaletteSize < 1 || o.PaletteSize > 255 {
		return fmt.Errorf("%w: palette size %d out of range [1, 255]", ErrInvalidInput, o.PaletteSize)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("%w: negative iteration count %d", ErrInvalidInput, o.Iterations)
	}
	if o.Partners < 1 {
		return fmt.Errorf("%w: partner count %d", ErrInvalidInput, o.Partners)
	}
	return nil
}

// rand returns the random source for one run.
func (o Options) rand() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
