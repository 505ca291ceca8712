package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), 0)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		u, v      float64
	}{
		{"center", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0, nil), true, 0.5, 0.5},
		{"corner region", core.NewRay(core.NewVec3(-0.5, 0.5, 1), core.NewVec3(0, 0, -1), 0, nil), true, 0.25, 0.75},
		{"outside", core.NewRay(core.NewVec3(2, 0, 1), core.NewVec3(0, 0, -1), 0, nil), false, 0, 0},
		{"parallel", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), 0, nil), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := quad.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, ok)
			}
			if ok && (math.Abs(hit.U-tt.u) > 1e-9 || math.Abs(hit.V-tt.v) > 1e-9) {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.u, tt.v, hit.U, hit.V)
			}
		})
	}
}

func TestRect_Orientations(t *testing.T) {
	tests := []struct {
		name   string
		rect   *Rect
		ray    core.Ray
		normal core.Vec3
		point  core.Vec3
	}{
		{
			"xy", NewXYRect(0, 2, 0, 4, -1, 0),
			core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1), 0, nil),
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, -1),
		},
		{
			"xz", NewXZRect(0, 2, 0, 4, 3, 0),
			core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 1, 0), 0, nil),
			core.NewVec3(0, -1, 0), core.NewVec3(1, 3, 2),
		},
		{
			"yz", NewYZRect(0, 2, 0, 4, 5, 0),
			core.NewRay(core.NewVec3(10, 1, 1), core.NewVec3(-2, 0, 0), 0, nil),
			core.NewVec3(1, 0, 0), core.NewVec3(5, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.rect.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.Normal != tt.normal {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
			if hit.Point.Subtract(tt.point).Length() > 1e-9 {
				t.Errorf("Expected point %v, got %v", tt.point, hit.Point)
			}
		})
	}
}

func TestRect_FrontFaceIsPositiveAxis(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 0, 0)
	fromAbove := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0, nil)
	fromBelow := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), 0, nil)

	if hit, _ := rect.Hit(fromAbove, 0.001, math.Inf(1), nil); !hit.FrontFace {
		t.Error("Expected front face from +y")
	}
	if hit, _ := rect.Hit(fromBelow, 0.001, math.Inf(1), nil); hit.FrontFace {
		t.Error("Expected back face from -y")
	}
}

func TestRect_ParallelRayMisses(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 0, 0)
	// Origin in the plane with zero z direction yields 0/0
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0), 0, nil)
	if _, ok := rect.Hit(ray, math.Inf(-1), math.Inf(1), nil); ok {
		t.Error("Expected parallel ray in the plane to miss")
	}
}

func TestRect_BoundingBoxPadded(t *testing.T) {
	box := NewXYRect(0, 2, 0, 3, 1, 0).BoundingBox()
	if math.Abs(box.Z.Min-(1-rectEpsilon)) > 1e-12 || math.Abs(box.Z.Max-(1+rectEpsilon)) > 1e-12 {
		t.Errorf("Expected z padded by %g around 1, got %v", rectEpsilon, box.Z)
	}
}

func TestRect_PdfMatchesSampling(t *testing.T) {
	// A 2x2 light 1 unit above the origin
	light := NewXZRect(-1, 1, -1, 1, 1, 0)
	origin := core.NewVec3(0, 0, 0)
	random := rand.New(rand.NewSource(9))

	// Straight up: dist²=1, cos=1, area=4
	if v := light.PdfValue(origin, core.NewVec3(0, 1, 0), random); math.Abs(v-0.25) > 1e-9 {
		t.Errorf("Expected density 0.25, got %f", v)
	}
	if v := light.PdfValue(origin, core.NewVec3(0, -1, 0), random); v != 0 {
		t.Errorf("Expected zero density away from the light, got %f", v)
	}

	// Monte-Carlo estimate of the solid angle: E[1/pdf] over sampled directions
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		d := light.Random(origin, random)
		v := light.PdfValue(origin, d, random)
		if v <= 0 {
			t.Fatalf("sampled direction %v has zero density", d)
		}
		sum += 1 / v
	}
	solidAngle := sum / n

	// Exact solid angle of a centered 2x2 square at distance 1: 4*asin(1/2)
	exact := 4 * math.Asin(0.5)
	if math.Abs(solidAngle-exact)/exact > 0.02 {
		t.Errorf("Expected solid angle %f, estimated %f", exact, solidAngle)
	}
}

func TestQuad_PdfValue(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), 0)
	origin := core.NewVec3(0, 0, 0)

	// dist²=4, cos=1, area=4
	if v := quad.PdfValue(origin, core.NewVec3(0, 1, 0), nil); math.Abs(v-1) > 1e-9 {
		t.Errorf("Expected density 1, got %f", v)
	}

	random := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		d := quad.Random(origin, random)
		if math.Abs(d.Y-2) > 1e-9 || d.X < -1 || d.X > 1 || d.Z < -1 || d.Z > 1 {
			t.Fatalf("sampled vector %v does not land on the quad", d)
		}
	}
}
