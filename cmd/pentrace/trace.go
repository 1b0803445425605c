package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"pentrace/pkg/cfg"
	"pentrace/pkg/geometry"
	"pentrace/pkg/travel"
	"pentrace/pkg/vectorize"

	"github.com/spf13/cobra"
)

var traceFlags struct {
	configPath  string
	output      string
	labels      string
	partners    int
	colors      int
	iterations  int
	threshold   uint8
	workers     int
	seed        int64
	reseedEmpty bool
	pageWidth   int
	pageHeight  int
	noFit       bool
	sortTravel  bool
}

var traceCmd = &cobra.Command{
	Use:   "trace IMAGE",
	Short: "Trace an image into pen strokes and write them as JSON",
	Long: `Trace decodes IMAGE (PNG, JPEG, GIF, BMP or WebP), places it on a white
page, reduces it to a small palette and traces one-pixel-wide strokes per
color. The strokes are dealt round-robin to --partners pens and written as
JSON to stdout or --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := traceConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if traceFlags.output != "" {
			f, err := os.Create(traceFlags.output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		return runTrace(args[0], traceFlags.labels, c, out)
	},
}

func init() {
	f := traceCmd.Flags()
	f.StringVarP(&traceFlags.configPath, "config", "c", "", "TOML config file")
	f.StringVarP(&traceFlags.output, "output", "o", "", "Write JSON here instead of stdout")
	f.StringVar(&traceFlags.labels, "labels", "", "Write the quantized label map as a PNG preview")
	f.IntVarP(&traceFlags.partners, "partners", "p", cfg.Partners, "Number of pens to distribute strokes over")
	f.IntVarP(&traceFlags.colors, "colors", "k", cfg.PaletteSize, "Palette size")
	f.IntVar(&traceFlags.iterations, "iterations", cfg.Iterations, "Palette refinement iterations")
	f.Uint8Var(&traceFlags.threshold, "threshold", cfg.BackgroundThreshold, "Channel value above which a pixel is paper")
	f.IntVarP(&traceFlags.workers, "workers", "j", 1, "Goroutines for palette reduction and labeling")
	f.Int64Var(&traceFlags.seed, "seed", 0, "Random seed for palette initialization (0 picks one)")
	f.BoolVar(&traceFlags.reseedEmpty, "reseed-empty", false, "Reseed palette colors that attract no pixels")
	f.IntVar(&traceFlags.pageWidth, "page-width", cfg.PageWidth, "Page width in pixels")
	f.IntVar(&traceFlags.pageHeight, "page-height", cfg.PageHeight, "Page height in pixels")
	f.BoolVar(&traceFlags.noFit, "no-fit", false, "Trace the image at its own size instead of fitting it to the page")
	f.BoolVar(&traceFlags.sortTravel, "sort-travel", false, "Reorder each pen's strokes to shorten pen-up travel")
	rootCmd.AddCommand(traceCmd)
}

// traceConfig loads --config, if any, and applies the flags the user set on
// top of it.
func traceConfig(cmd *cobra.Command) (cfg.Config, error) {
	c := cfg.Default()
	if traceFlags.configPath != "" {
		var err error
		if c, err = cfg.Load(traceFlags.configPath); err != nil {
			return c, err
		}
	}
	f := cmd.Flags()
	if f.Changed("partners") {
		c.Partners = traceFlags.partners
	}
	if f.Changed("colors") {
		c.PaletteSize = traceFlags.colors
	}
	if f.Changed("iterations") {
		c.Iterations = traceFlags.iterations
	}
	if f.Changed("threshold") {
		c.BackgroundThreshold = traceFlags.threshold
	}
	if f.Changed("workers") {
		c.Workers = traceFlags.workers
	}
	if f.Changed("seed") {
		c.Seed = traceFlags.seed
	}
	if f.Changed("reseed-empty") {
		c.ReseedEmpty = traceFlags.reseedEmpty
	}
	if f.Changed("page-width") {
		c.PageWidth = traceFlags.pageWidth
	}
	if f.Changed("page-height") {
		c.PageHeight = traceFlags.pageHeight
	}
	if f.Changed("sort-travel") {
		c.SortTravel = traceFlags.sortTravel
	}
	if traceFlags.noFit {
		c.PageWidth, c.PageHeight = 0, 0
	}
	return c, c.Validate()
}

// runTrace traces the image at path with c and writes the JSON partitions to
// out. A non-empty labelsPath also gets a PNG of the label map.
func runTrace(path, labelsPath string, c cfg.Config, out io.Writer) error {
	src, err := decodeImage(path)
	if err != nil {
		return err
	}
	if c.PageWidth > 0 && c.PageHeight > 0 {
		src = fitToPage(src, c.PageWidth, c.PageHeight)
	}
	img := vectorize.FromImage(src)

	result, err := vectorize.Vectorize(img, vectorize.OptionsFromConfig(c))
	if err != nil {
		return fmt.Errorf("trace %s: %w", path, err)
	}
	if result.Empty() {
		slog.Warn("no strokes produced; image too uniform to trace", "image", path)
	}

	partitions := result.Partitions
	home := geometry.Point{X: 0, Y: img.Height - 1}
	if c.SortTravel {
		before := totalTravel(home, partitions)
		partitions = travel.OrderPartitions(home, partitions)
		slog.Info("sorted strokes",
			"ink", travel.Ink(result.Strokes),
			"travel_before", before,
			"travel_after", totalTravel(home, partitions))
	}
	slog.Debug("traced", "image", path, "strokes", len(result.Strokes), "partitions", len(partitions))

	if labelsPath != "" {
		if err := writeLabels(labelsPath, result.Labels); err != nil {
			return err
		}
	}
	if err := vectorize.WritePartitions(out, partitions); err != nil {
		return fmt.Errorf("write strokes: %w", err)
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slog.Debug("decoded image", "format", format, "size", img.Bounds().Size())
	return img, nil
}

func writeLabels(path string, lm *vectorize.LabelMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create label preview: %w", err)
	}
	if err := png.Encode(f, lm); err != nil {
		f.Close()
		return fmt.Errorf("encode label preview: %w", err)
	}
	return f.Close()
}

func totalTravel(home geometry.Point, partitions [][]vectorize.Stroke) float64 {
	var d float64
	for _, strokes := range partitions {
		d += travel.Distance(home, strokes)
	}
	return d
}
