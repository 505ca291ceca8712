package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture with nearest-neighbor lookup. UVs wrap into [0, 1);
// v=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 1, 1) // cyan marks a missing image
	}

	u -= float64(int(u))
	v -= float64(int(v))
	if u < 0 {
		u += 1
	}
	if v < 0 {
		v += 1
	}

	x := min(max(int(u*float64(t.Width)), 0), t.Width-1)
	y := min(max(int((1-v)*float64(t.Height)), 0), t.Height-1)
	return t.Pixels[y*t.Width+x]
}
