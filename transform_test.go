package yuletree

import (
	"math"
	"testing"
)

func vecApprox(a, b Vec3) bool {
	return approxEqual(a.X, b.X, 1e-9) && approxEqual(a.Y, b.Y, 1e-9) && approxEqual(a.Z, b.Z, 1e-9)
}

func TestLocalAffineIdentity(t *testing.T) {
	a := localAffine(Vec3{}, Vec3{}, Vec3{1, 1, 1})
	if a != identityAffine {
		t.Errorf("localAffine(zero) = %+v, want identity", a)
	}
}

func TestLocalAffineRotations(t *testing.T) {
	tests := []struct {
		name string
		rot  Vec3
		in   Vec3
		want Vec3
	}{
		{"y quarter", Vec3{Y: math.Pi / 2}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"x quarter", Vec3{X: math.Pi / 2}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"z quarter", Vec3{Z: math.Pi / 2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		got := localAffine(Vec3{}, tt.rot, Vec3{1, 1, 1}).apply(tt.in)
		if !vecApprox(got, tt.want) {
			t.Errorf("%s: apply(%+v) = %+v, want %+v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestLocalAffineScaleThenTranslate(t *testing.T) {
	a := localAffine(Vec3{1, 2, 3}, Vec3{}, Vec3{1.5, 2, 1.5})
	got := a.apply(Vec3{1, 1, 1})
	if want := (Vec3{2.5, 4, 4.5}); !vecApprox(got, want) {
		t.Errorf("apply = %+v, want %+v", got, want)
	}
}

func TestWorldPositionComposesParents(t *testing.T) {
	root := NewGroup("root")
	root.Position = Vec3{0, 1, 0}
	mid := NewGroup("mid")
	mid.Scale = Vec3{2, 2, 2}
	leaf := NewGroup("leaf")
	leaf.Position = Vec3{1, 0, 0}
	root.AddChild(mid)
	mid.AddChild(leaf)

	if got, want := leaf.WorldPosition(), (Vec3{2, 1, 0}); !vecApprox(got, want) {
		t.Errorf("WorldPosition = %+v, want %+v", got, want)
	}

	mid.Rotation.Y = math.Pi / 2
	if got, want := leaf.WorldPosition(), (Vec3{0, 1, -2}); !vecApprox(got, want) {
		t.Errorf("rotated WorldPosition = %+v, want %+v", got, want)
	}
}

func TestAffineMulOrder(t *testing.T) {
	tr := localAffine(Vec3{5, 0, 0}, Vec3{}, Vec3{1, 1, 1})
	sc := localAffine(Vec3{}, Vec3{}, Vec3{2, 2, 2})
	// Scale first, then translate.
	if got := tr.mul(sc).apply(Vec3{1, 0, 0}); !vecApprox(got, Vec3{7, 0, 0}) {
		t.Errorf("tr*sc = %+v, want (7,0,0)", got)
	}
	if got := sc.mul(tr).apply(Vec3{1, 0, 0}); !vecApprox(got, Vec3{12, 0, 0}) {
		t.Errorf("sc*tr = %+v, want (12,0,0)", got)
	}
}
