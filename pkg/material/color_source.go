package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at surface coordinates (u, v) and world point
	Evaluate(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two color sources in a 3D checker pattern
type Checker struct {
	Odd, Even ColorSource
	Scale     float64 // Frequency of the pattern; 10 when zero
}

// NewChecker creates a checker pattern from two solid colors
func NewChecker(odd, even core.Vec3) *Checker {
	return &Checker{Odd: NewSolidColor(odd), Even: NewSolidColor(even), Scale: 10}
}

// Evaluate picks Odd where sin(sx)·sin(sy)·sin(sz) is negative, Even elsewhere
func (c *Checker) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	scale := c.Scale
	if scale == 0 {
		scale = 10
	}
	sines := math.Sin(scale*point.X) * math.Sin(scale*point.Y) * math.Sin(scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(u, v, point)
	}
	return c.Even.Evaluate(u, v, point)
}
