package renderer

import (
	"fmt"
	"path/filepath"
)

// LoopOptions controls a progressive render
type LoopOptions struct {
	Iterations   int    // Number of passes; samples per pixel double after each
	Name         string // Base file name
	OutputDir    string
	Format       string // png or ppm
	Filter       bool   // Also write the 3x3 non-black mean filtered image
	MedianRadius int    // Also write a median filtered image when positive
}

// PassResult holds the outcome of one progressive pass
type PassResult struct {
	Image *Image
	Stats RenderStats
	Files []string // Paths written for this pass
}

// LoopRender repeats whole renders, doubling the samples per pixel after every pass, and writes
// <name>_<spp>.<format> plus the requested filtered variants for each pass. Passes are independent:
// each one re-renders from scratch with its own seed.
func LoopRender(r *Renderer, opts LoopOptions) ([]PassResult, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	base := r.Options()

	results := make([]PassResult, 0, opts.Iterations)
	allStats := make([]RenderStats, 0, opts.Iterations)
	for i := 0; i < opts.Iterations; i++ {
		samples := base.SamplesPerPixel << i
		pass := r.WithSamples(samples, base.Seed+int64(i))

		img, stats, err := pass.Render()
		if err != nil {
			return results, fmt.Errorf("renderer: pass %d at %d spp: %w", i+1, samples, err)
		}

		result := PassResult{Image: img, Stats: stats}
		outputs := []struct {
			suffix string
			image  func() *Image
			enable bool
		}{
			{"", func() *Image { return img }, true},
			{"_filtered", img.Filter, opts.Filter},
			{fmt.Sprintf("_median_%d", opts.MedianRadius), func() *Image { return img.MedianFilter(opts.MedianRadius) }, opts.MedianRadius > 0},
		}
		for _, output := range outputs {
			if !output.enable {
				continue
			}
			path := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_%d%s.%s", opts.Name, samples, output.suffix, opts.Format))
			if err := output.image().Save(path, opts.Format); err != nil {
				return results, err
			}
			result.Files = append(result.Files, path)
		}

		logger.Noticef("pass %d/%d: %d spp in %v (%.0f samples/s), wrote %v",
			i+1, opts.Iterations, samples, stats.Duration, stats.SamplesPerSecond(), result.Files)
		results = append(results, result)
		allStats = append(allStats, stats)
	}

	logger.Noticef("render statistics\n%s", StatsTable(allStats, GetHostInfo()))
	return results, nil
}
