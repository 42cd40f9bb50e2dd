package yuletree

import (
	"math"
	"testing"
)

func TestTessellateTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		geo  Geometry
		want int
	}{
		{"box", Box(1, 1, 1), 12},
		{"octahedron", Octahedron(1), 8},
		{"dodecahedron", Dodecahedron(1), 36},
		{"sphere", Sphere(1, 8, 8), 8*8*2 - 16},
		{"cone", Cone(1, 1, 8), 16},
		{"cylinder", Cylinder(0.2, 0.3, 1), 32 * 4},
		{"torus", Torus(1, 0.4, 16, 100), 16 * 100 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.geo.Tessellate()); got != tt.want {
				t.Errorf("triangles = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTessellateUnknownKind(t *testing.T) {
	if got := (Geometry{Kind: 99}).Tessellate(); got != nil {
		t.Errorf("unknown kind = %d triangles, want nil", len(got))
	}
	if got := GeometryKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

func TestPolyhedraOnSphere(t *testing.T) {
	for _, g := range []Geometry{Octahedron(0.2), Dodecahedron(2), Sphere(1.5, 12, 10)} {
		r := g.Args[0]
		for i, tri := range g.Tessellate() {
			for _, p := range tri {
				if !approxEqual(p.Norm(), r, 1e-9) {
					t.Fatalf("%s triangle %d vertex radius = %v, want %v", g.Kind, i, p.Norm(), r)
				}
			}
		}
	}
}

func TestBoxExtents(t *testing.T) {
	for _, tri := range Box(2, 4, 6).Tessellate() {
		for _, p := range tri {
			if math.Abs(p.X) != 1 || math.Abs(p.Y) != 2 || math.Abs(p.Z) != 3 {
				t.Fatalf("box vertex %+v not on a corner", p)
			}
		}
	}
}

func TestConeApex(t *testing.T) {
	apex := 0
	for _, tri := range Cone(1.2, 0.8, 8).Tessellate() {
		for _, p := range tri {
			if p.Y > 0.4-1e-12 {
				if p.X != 0 || p.Z != 0 {
					t.Fatalf("top vertex %+v not at apex", p)
				}
				apex++
			}
		}
	}
	if apex != 8 {
		t.Errorf("apex references = %d, want 8", apex)
	}
}

func TestEdgesUnique(t *testing.T) {
	tests := []struct {
		name string
		geo  Geometry
		want int
	}{
		// 12 box edges plus one diagonal per face.
		{"box", Box(1, 1, 1), 18},
		{"octahedron", Octahedron(1), 12},
		// 30 pentagon edges plus two fan diagonals per face.
		{"dodecahedron", Dodecahedron(1), 54},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.geo.Edges()); got != tt.want {
				t.Errorf("edges = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEdgesSkipDegenerate(t *testing.T) {
	for _, e := range Sphere(1, 8, 6).Edges() {
		if e[0] == e[1] {
			t.Fatalf("degenerate edge %+v", e)
		}
	}
}

func TestGeometryComparable(t *testing.T) {
	if Sphere(0.1, 8, 8) != Sphere(0.1, 8, 8) {
		t.Error("equal sphere parameters compare unequal")
	}
	if Sphere(0.1, 8, 8) == Sphere(0.05, 6, 6) {
		t.Error("different sphere parameters compare equal")
	}
}
