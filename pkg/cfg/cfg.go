package cfg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// BackgroundThreshold is the brightness above which a channel counts as paper.
// A pixel is background only when all of R, G and B exceed it.
// Every stage that needs the background test must read this one value.
var BackgroundThreshold uint8 = 240

// PaletteSize is the number of pen colors the palette reducer produces.
var PaletteSize = 16

// Iterations is the number of assign/update rounds run by the palette reducer.
var Iterations = 5

// Partners is the default number of output partitions (simulated pens).
var Partners = 1

// PageWidth and PageHeight are the drawing surface in pixels. The defaults
// are an A4 sheet at one pixel per mm.
var PageWidth = 210
var PageHeight = 297

// Config is the file form of the settings above. A config file only needs
// the keys it changes.
type Config struct {
	PaletteSize         int   `toml:"palette_size"`
	Iterations          int   `toml:"iterations"`
	BackgroundThreshold uint8 `toml:"background_threshold"`
	Partners            int   `toml:"partners"`
	ReseedEmpty         bool  `toml:"reseed_empty"`
	Workers             int   `toml:"workers"`
	Seed                int64 `toml:"seed"`
	PageWidth           int   `toml:"page_width"`
	PageHeight          int   `toml:"page_height"`
	SortTravel          bool  `toml:"sort_travel"`
}

// Default returns a Config populated from the package defaults.
func Default() Config {
	return Config{
		PaletteSize:         PaletteSize,
		Iterations:          Iterations,
		BackgroundThreshold: BackgroundThreshold,
		Partners:            Partners,
		Workers:             1,
		PageWidth:           PageWidth,
		PageHeight:          PageHeight,
	}
}

// Load reads a TOML config file. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode overlays the TOML document in data onto c. Only keys present in
// the document change c, so an explicit zero or false is applied as written.
// c is left untouched if the document is malformed or out of range.
func Decode(data []byte, c *Config) error {
	next := *c
	if err := toml.Unmarshal(data, &next); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.PaletteSize < 1 || c.PaletteSize > 255:
		return fmt.Errorf("palette_size %d out of range [1, 255]", c.PaletteSize)
	case c.Iterations < 0:
		return fmt.Errorf("iterations %d must not be negative", c.Iterations)
	case c.Partners < 1:
		return fmt.Errorf("partners %d must be at least 1", c.Partners)
	case c.Workers < 1:
		return fmt.Errorf("workers %d must be at least 1", c.Workers)
	case c.PageWidth < 0 || c.PageHeight < 0:
		return fmt.Errorf("page size %dx%d must not be negative", c.PageWidth, c.PageHeight)
	}
	return nil
}
