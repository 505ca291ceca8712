package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 3)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{"through interior", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), 0, nil), true, 1},
		{"from below", core.NewRay(core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1), 0, nil), true, 2},
		{"outside hypotenuse", core.NewRay(core.NewVec3(0.75, 0.75, 1), core.NewVec3(0, 0, -1), 0, nil), false, 0},
		{"parallel", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0), 0, nil), false, 0},
		{"behind origin", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1), 0, nil), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Material != 3 {
				t.Errorf("Expected material handle 3, got %d", hit.Material)
			}
			if math.Abs(math.Abs(hit.Normal.Z)-1) > 1e-9 {
				t.Errorf("Expected normal along z, got %v", hit.Normal)
			}
		})
	}
}

func TestTriangle_InterpolatedNormal(t *testing.T) {
	up := core.NewVec3(0, 0, 1)
	tilted := core.NewVec3(1, 0, 1).Normalize()
	tri := NewSmoothTriangle(
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		up, tilted, up, 0,
	)

	// Near vertex 1 the normal leans toward the tilted vertex normal
	ray := core.NewRay(core.NewVec3(0.9, 0.05, 1), core.NewVec3(0, 0, -1), 0, nil)
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal.X <= 0.5 {
		t.Errorf("Expected interpolated normal to lean toward +x, got %v", hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestTriangle_BoundingBox(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0), 0)
	box := tri.BoundingBox()

	if box.X.Min != 0 || box.X.Max != 2 || box.Y.Min != 0 || box.Y.Max != 3 {
		t.Errorf("unexpected triangle box %v", box)
	}
	if math.Abs(box.Z.Size()-core.AABBDelta) > 1e-12 {
		t.Errorf("Expected flat axis padded to %g, got %g", core.AABBDelta, box.Z.Size())
	}
}
