// Package config holds the YAML render configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents a complete render configuration
type Config struct {
	Image  ImageConfig  `yaml:"image"`
	Render RenderConfig `yaml:"render"`
	Scene  SceneConfig  `yaml:"scene"`
}

// ImageConfig describes the raster and the per-ray settings
type ImageConfig struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Samples    int       `yaml:"samples"` // Samples per pixel for the first pass
	MaxDepth   int       `yaml:"max_depth"`
	Background []float64 `yaml:"background,omitempty"` // RGB; empty uses the scene's background
	TMin       float64   `yaml:"t_min"`
	TMax       float64   `yaml:"t_max"`
	Time0      float64   `yaml:"time0"` // Shutter open
	Time1      float64   `yaml:"time1"` // Shutter close
	Name       string    `yaml:"name"`  // Output file name without extension
}

// RenderConfig controls how renders are scheduled and written
type RenderConfig struct {
	Workers       int     `yaml:"workers"`       // 0 uses one worker per CPU
	Iterations    int     `yaml:"iterations"`    // Passes, doubling samples each time
	Filter        bool    `yaml:"filter"`        // Also write a spatially filtered image
	MedianRadius  int     `yaml:"median_radius"` // Also write a median filtered image when positive
	Format        string  `yaml:"format"`        // png or ppm
	OutputDir     string  `yaml:"output_dir"`
	Seed          int64   `yaml:"seed"`           // 0 seeds from the clock
	MixtureWeight float64 `yaml:"mixture_weight"` // Probability of sampling toward lights
}

// SceneConfig selects the scene to render
type SceneConfig struct {
	Name    string `yaml:"name"`
	Mesh    string `yaml:"mesh"`    // OBJ path for the mesh scene
	Texture string `yaml:"texture"` // Image path for the earth scene
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Width:    400,
			Height:   400,
			Samples:  64,
			MaxDepth: 50,
			TMin:     0.001,
			TMax:     2048,
			Time0:    0,
			Time1:    1,
			Name:     "render",
		},
		Render: RenderConfig{
			Workers:       0,
			Iterations:    1,
			Filter:        false,
			Format:        "png",
			OutputDir:     "output",
			MixtureWeight: 0.5,
		},
		Scene: SceneConfig{
			Name: "cornell",
		},
	}
}

// Load overlays the YAML file at path on the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: serializing: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	switch {
	case c.Image.Width <= 0 || c.Image.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Image.Width, c.Image.Height)
	case c.Image.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Image.Samples)
	case len(c.Image.Background) != 0 && len(c.Image.Background) != 3:
		return fmt.Errorf("%w: background needs 3 components, got %d", ErrInvalidConfig, len(c.Image.Background))
	case c.Image.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.Image.MaxDepth)
	case c.Image.TMin < 0 || c.Image.TMax <= c.Image.TMin:
		return fmt.Errorf("%w: hit interval (%g, %g)", ErrInvalidConfig, c.Image.TMin, c.Image.TMax)
	case c.Image.Time1 < c.Image.Time0:
		return fmt.Errorf("%w: shutter [%g, %g]", ErrInvalidConfig, c.Image.Time0, c.Image.Time1)
	case c.Render.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Render.Workers)
	case c.Render.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Render.Iterations)
	case c.Render.MedianRadius < 0:
		return fmt.Errorf("%w: median_radius must not be negative, got %d", ErrInvalidConfig, c.Render.MedianRadius)
	case c.Render.Format != "png" && c.Render.Format != "ppm":
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Render.Format)
	case c.Render.MixtureWeight <= 0 || c.Render.MixtureWeight >= 1:
		return fmt.Errorf("%w: mixture_weight must be in (0, 1), got %g", ErrInvalidConfig, c.Render.MixtureWeight)
	}
	return nil
}

// RaySettings returns the per-ray settings described by the image section. sceneBackground is
// used when the configuration does not set a background.
func (c *Config) RaySettings(sceneBackground core.Vec3) *core.RaySettings {
	background := sceneBackground
	if bg := c.Image.Background; len(bg) == 3 {
		background = core.NewVec3(bg[0], bg[1], bg[2])
	}
	return &core.RaySettings{
		Background: background,
		MaxDepth:   c.Image.MaxDepth,
		Hit:        core.Interval{Min: c.Image.TMin, Max: c.Image.TMax},
	}
}
