package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write obj: %v", err)
	}
	return path
}

func triangleArea(v0, v1, v2 core.Vec3) float64 {
	return 0.5 * v1.Subtract(v0).Cross(v2.Subtract(v0)).Length()
}

const unitSquareOBJ = `# unit square in the XY plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func TestLoadOBJ_TriangulatesFaces(t *testing.T) {
	path := writeOBJ(t, unitSquareOBJ)

	triangles, err := LoadOBJ(path, 3, OBJOptions{Scale: 2, Offset: core.NewVec3(0, 0, -1)})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(triangles) != 2 {
		t.Fatalf("Expected quad split into 2 triangles, got %d", len(triangles))
	}

	totalArea := 0.0
	for i, tri := range triangles {
		if tri.Material != 3 {
			t.Errorf("triangle %d: expected material 3, got %d", i, tri.Material)
		}
		if tri.Normals == nil {
			t.Errorf("triangle %d: expected vertex normals", i)
		}
		for _, v := range []core.Vec3{tri.V0, tri.V1, tri.V2} {
			if v.Z != -1 || v.X < 0 || v.X > 2 || v.Y < 0 || v.Y > 2 {
				t.Errorf("triangle %d: vertex %v outside the scaled and offset square", i, v)
			}
		}
		totalArea += triangleArea(tri.V0, tri.V1, tri.V2)
	}
	if math.Abs(totalArea-4) > 1e-9 {
		t.Errorf("Expected total area 4, got %f", totalArea)
	}
}

func TestLoadOBJ_FlatNormals(t *testing.T) {
	tests := []struct {
		name    string
		content string
		options OBJOptions
	}{
		{"no normals in file", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", OBJOptions{}},
		{"normals ignored", unitSquareOBJ, OBJOptions{IgnoreNormals: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangles, err := LoadOBJ(writeOBJ(t, tt.content), 0, tt.options)
			if err != nil {
				t.Fatalf("LoadOBJ failed: %v", err)
			}
			for i, tri := range triangles {
				if tri.Normals != nil {
					t.Errorf("triangle %d: expected flat shading", i)
				}
			}
		})
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), 0, OBJOptions{}); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := LoadOBJ(writeOBJ(t, "v 0 0 0\nv 1 0 0\n"), 0, OBJOptions{}); err == nil {
		t.Error("Expected error for a file without faces")
	}
}
