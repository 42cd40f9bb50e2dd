package yuletree

import (
	"math"
	"testing"
)

func TestGenerateOrnamentsCountAndColors(t *testing.T) {
	rng := NewRandomSource(1)
	for i := 0; i < ThemeCount(); i++ {
		th := SelectTheme(i)
		orns := GenerateOrnaments(th, rng)
		if len(orns) != th.OrnamentCount {
			t.Fatalf("theme %d: len = %d, want %d", i, len(orns), th.OrnamentCount)
		}
		for j, o := range orns {
			want := th.MainColor
			if j%2 == 0 {
				want = th.DecorationColor
			}
			if o.Color != want {
				t.Errorf("theme %d ornament %d color = %s, want %s", i, j, o.Color, want)
			}
		}
	}
}

func TestGenerateOrnamentsBounds(t *testing.T) {
	for _, src := range []RandomSource{constSource(0), constSource(0.999999), NewRandomSource(99)} {
		th := SelectTheme(3)
		orns := GenerateOrnaments(th, src)
		prevY := math.Inf(-1)
		for i, o := range orns {
			r := math.Hypot(o.Position.X, o.Position.Z)
			if r < 0.8-1e-9 || r > 1.1+1e-9 {
				t.Errorf("ornament %d radius = %v, want [0.8, 1.1]", i, r)
			}
			if o.Scale < 0.1 || o.Scale > 0.15 {
				t.Errorf("ornament %d scale = %v, want [0.1, 0.15]", i, o.Scale)
			}
			if o.Position.Y < -2 || o.Position.Y > 2 {
				t.Errorf("ornament %d height = %v, want [-2, 2]", i, o.Position.Y)
			}
			if o.Position.Y <= prevY {
				t.Errorf("ornament %d height %v not above previous %v", i, o.Position.Y, prevY)
			}
			prevY = o.Position.Y
		}
	}
}

func TestGenerateOrnamentsShape(t *testing.T) {
	th := SelectTheme(0)
	orns := GenerateOrnaments(th, constSource(0.5))
	if orns[0].Position.Y != -2 {
		t.Errorf("first height = %v, want -2", orns[0].Position.Y)
	}
	// Quarter turn at index count/4.
	q := orns[th.OrnamentCount/4]
	if !approxEqual(q.Position.X, 0, 1e-9) || !approxEqual(q.Position.Z, 0.95, 1e-9) {
		t.Errorf("quarter position = (%v, %v), want (0, 0.95)", q.Position.X, q.Position.Z)
	}
	if !approxEqual(orns[0].Scale, 0.125, 1e-12) {
		t.Errorf("scale = %v, want 0.125", orns[0].Scale)
	}
}

func TestGenerateOrnamentsLayersAndGlow(t *testing.T) {
	th := SelectTheme(0)
	orns := GenerateOrnaments(th, constSource(0))
	want := map[int]string{0: th.LightColors[0], 4: th.LightColors[1], 8: th.LightColors[2], 1: th.LightColors[0]}
	for i, e := range want {
		if orns[i].Emissive != e {
			t.Errorf("ornament %d emissive = %s, want %s", i, orns[i].Emissive, e)
		}
	}
	for i, o := range orns {
		if o.Layer != i%LayerCount {
			t.Errorf("ornament %d layer = %d, want %d", i, o.Layer, i%LayerCount)
		}
	}
}

func TestGenerateOrnamentsEmptyTheme(t *testing.T) {
	if got := GenerateOrnaments(ThemeVariant{}, nil); got != nil {
		t.Errorf("GenerateOrnaments(empty) = %v, want nil", got)
	}
}

func TestGenerateBackdropStarsBounds(t *testing.T) {
	palette := map[string]bool{}
	for _, c := range BackdropPalette {
		palette[c] = true
	}
	for _, src := range []RandomSource{constSource(0), constSource(1), NewRandomSource(5)} {
		stars := GenerateBackdropStars(DefaultBackdropStars, src)
		if len(stars) != 20 {
			t.Fatalf("len = %d, want 20", len(stars))
		}
		for i, s := range stars {
			p := s.Position
			if p.X < -10 || p.X > 10 || p.Z < -10 || p.Z > 10 || p.Y < -5 || p.Y > 5 {
				t.Errorf("star %d position = %+v out of bounds", i, p)
			}
			if s.Scale < 0.5 || s.Scale > 1.0 {
				t.Errorf("star %d scale = %v, want [0.5, 1.0]", i, s.Scale)
			}
			if !palette[s.Color] {
				t.Errorf("star %d color = %s not in palette", i, s.Color)
			}
		}
	}
}

func TestGenerateBackdropStarsUsesWholePalette(t *testing.T) {
	src := &seqSource{vals: []float64{
		0.5, 0.5, 0.5, 0.5, 0.1,
		0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, 0.5, 0.9,
	}}
	stars := GenerateBackdropStars(3, src)
	got := []string{stars[0].Color, stars[1].Color, stars[2].Color}
	want := []string{BackdropPalette[0], BackdropPalette[1], BackdropPalette[2]}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("star %d color = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateBackdropStarsNonPositive(t *testing.T) {
	if got := GenerateBackdropStars(0, nil); got != nil {
		t.Errorf("GenerateBackdropStars(0) = %v, want nil", got)
	}
}

func TestGenerateStringLights(t *testing.T) {
	th := SelectTheme(1)
	lights := GenerateStringLights(th)
	if len(lights) != LayerCount*LightsPerLayer {
		t.Fatalf("len = %d, want %d", len(lights), LayerCount*LightsPerLayer)
	}
	for i, l := range lights {
		layer := i / LightsPerLayer
		if l.Layer != layer {
			t.Errorf("light %d layer = %d, want %d", i, l.Layer, layer)
		}
		wantR := 1.0 - float64(layer)*0.15
		if r := math.Hypot(l.Position.X, l.Position.Z); !approxEqual(r, wantR, 1e-9) {
			t.Errorf("light %d radius = %v, want %v", i, r, wantR)
		}
		if l.Color != th.LightColor(i%LightsPerLayer) {
			t.Errorf("light %d color = %s, want %s", i, l.Color, th.LightColor(i%LightsPerLayer))
		}
	}
}

func TestGenerateStarFieldShell(t *testing.T) {
	cfg := StarFieldConfig{Count: 500, Radius: 100, Depth: 50, Factor: 4}
	field := GenerateStarField(cfg, NewRandomSource(3))
	if len(field) != 500 {
		t.Fatalf("len = %d, want 500", len(field))
	}
	for i, f := range field {
		r := f.Position.Norm()
		if r < 100-1e-6 || r > 150+1e-6 {
			t.Errorf("star %d radius = %v, want [100, 150]", i, r)
		}
		if f.Size < 2 || f.Size > 4 {
			t.Errorf("star %d size = %v, want [2, 4]", i, f.Size)
		}
	}
}

func TestPickGuardsUpperBound(t *testing.T) {
	if got := pick(constSource(1), 3); got != 2 {
		t.Errorf("pick(1, 3) = %d, want 2", got)
	}
	if got := pick(constSource(0), 3); got != 0 {
		t.Errorf("pick(0, 3) = %d, want 0", got)
	}
}

func TestSeededSourceDeterministic(t *testing.T) {
	a := GenerateOrnaments(SelectTheme(2), NewRandomSource(11))
	b := GenerateOrnaments(SelectTheme(2), NewRandomSource(11))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ornament %d differs between equal seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
