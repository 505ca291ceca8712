package cmd

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags are the options accepted by the render command. Flags that are set on the command
// line override the values loaded from the configuration file.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML render configuration",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Value: "cornell",
		Usage: "built-in scene to render (see list-scenes)",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 400,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 400,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 64,
		Usage: "samples per pixel for the first pass",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: 50,
		Usage: "maximum number of bounces",
	},
	cli.IntFlag{
		Name:  "iterations, n",
		Value: 1,
		Usage: "number of passes; samples per pixel double after each",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers (0 = one per cpu)",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "output",
		Usage: "output directory",
	},
	cli.StringFlag{
		Name:  "format",
		Value: "png",
		Usage: "image format (png or ppm)",
	},
	cli.BoolFlag{
		Name:  "filter",
		Usage: "also write a 3x3 filtered image",
	},
	cli.IntFlag{
		Name:  "median",
		Usage: "also write a median filtered image with this radius",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "base random seed (0 = seed from the clock)",
	},
	cli.StringFlag{
		Name:  "mesh",
		Usage: "OBJ file for the mesh scene",
	},
	cli.StringFlag{
		Name:  "texture",
		Usage: "image file for the earth scene",
	},
}

// Render renders a built-in scene, optionally as a series of progressively refined passes.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	seed := cfg.Render.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Infof("using seed %d", seed)
	}

	sc, err := scene.New(cfg.Scene.Name, scene.Options{
		AspectRatio: float64(cfg.Image.Width) / float64(cfg.Image.Height),
		Time0:       cfg.Image.Time0,
		Time1:       cfg.Image.Time1,
		MeshPath:    cfg.Scene.Mesh,
		TexturePath: cfg.Scene.Texture,
		Seed:        seed,
	})
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(sc.Camera, sc.Integrator(cfg.Render.MixtureWeight), renderer.Options{
		Width:           cfg.Image.Width,
		Height:          cfg.Image.Height,
		SamplesPerPixel: cfg.Image.Samples,
		Workers:         cfg.Render.Workers,
		Seed:            seed,
		Settings:        cfg.RaySettings(sc.Background),
	})
	if err != nil {
		return err
	}

	logger.Noticef("rendering %s at %dx%d, %d spp, %d pass(es)",
		sc.Name, cfg.Image.Width, cfg.Image.Height, cfg.Image.Samples, cfg.Render.Iterations)

	_, err = renderer.LoopRender(r, renderer.LoopOptions{
		Iterations:   cfg.Render.Iterations,
		Name:         cfg.Image.Name,
		OutputDir:    cfg.Render.OutputDir,
		Format:       cfg.Render.Format,
		Filter:       cfg.Render.Filter,
		MedianRadius: cfg.Render.MedianRadius,
	})
	return err
}

// loadConfig reads the optional configuration file and applies explicitly set flags on top.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"scene", func() { cfg.Scene.Name = ctx.String("scene") }},
		{"width", func() { cfg.Image.Width = ctx.Int("width") }},
		{"height", func() { cfg.Image.Height = ctx.Int("height") }},
		{"spp", func() { cfg.Image.Samples = ctx.Int("spp") }},
		{"depth", func() { cfg.Image.MaxDepth = ctx.Int("depth") }},
		{"iterations", func() { cfg.Render.Iterations = ctx.Int("iterations") }},
		{"workers", func() { cfg.Render.Workers = ctx.Int("workers") }},
		{"out", func() { cfg.Render.OutputDir = ctx.String("out") }},
		{"format", func() { cfg.Render.Format = ctx.String("format") }},
		{"filter", func() { cfg.Render.Filter = ctx.Bool("filter") }},
		{"median", func() { cfg.Render.MedianRadius = ctx.Int("median") }},
		{"seed", func() { cfg.Render.Seed = ctx.Int64("seed") }},
		{"mesh", func() { cfg.Scene.Mesh = ctx.String("mesh") }},
		{"texture", func() { cfg.Scene.Texture = ctx.String("texture") }},
	}
	for _, o := range overrides {
		if ctx.IsSet(o.flag) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
