package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestList_NearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, 1)
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, 2)
	list := NewList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0, nil)
	hit, ok := list.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != 1 || math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nearest sphere at t=1.5, got material %d at t=%f", hit.Material, hit.T)
	}

	if _, ok := NewList().Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("Expected empty list to never hit")
	}
}

func TestList_BoundingBox(t *testing.T) {
	list := NewList(
		NewSphere(core.NewVec3(0, 0, 0), 1, 0),
		NewSphere(core.NewVec3(4, 0, 0), 1, 0),
	)
	box := list.BoundingBox()
	if box.Min() != core.NewVec3(-1, -1, -1) || box.Max() != core.NewVec3(5, 1, 1) {
		t.Errorf("unexpected list box %v", box)
	}
}

func TestList_PdfAveragesMembers(t *testing.T) {
	a := NewXZRect(-1, 1, -1, 1, 1, 0)
	b := NewXZRect(-1, 1, -1, 1, -1, 0)
	lights := NewList(a, b)
	origin := core.NewVec3(0, 0, 0)

	up := core.NewVec3(0, 1, 0)
	expected := 0.5*a.PdfValue(origin, up, nil) + 0.5*b.PdfValue(origin, up, nil)
	if v := lights.PdfValue(origin, up, nil); math.Abs(v-expected) > 1e-12 {
		t.Errorf("Expected averaged density %f, got %f", expected, v)
	}

	// Random picks members uniformly
	random := rand.New(rand.NewSource(4))
	upCount := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if lights.Random(origin, random).Y > 0 {
			upCount++
		}
	}
	if frac := float64(upCount) / n; math.Abs(frac-0.5) > 0.03 {
		t.Errorf("Expected members chosen equally often, got fraction %f", frac)
	}
}

func TestList_RandomOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic sampling an empty light list")
		}
	}()
	NewList().Random(core.NewVec3(0, 0, 0), rand.New(rand.NewSource(1)))
}
