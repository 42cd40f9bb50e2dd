package yuletree

import "testing"

func TestGenerateGoldParticlesRanges(t *testing.T) {
	for _, src := range []RandomSource{constSource(0), constSource(0.999999), NewRandomSource(6)} {
		specs := GenerateGoldParticles(DefaultGoldParticles, src)
		if len(specs) != 50 {
			t.Fatalf("len = %d, want 50", len(specs))
		}
		for i, s := range specs {
			if s.Left < 0 || s.Left >= 100 {
				t.Errorf("spec %d Left = %v, want [0, 100)", i, s.Left)
			}
			if s.Delay < 0 || s.Delay >= 2 {
				t.Errorf("spec %d Delay = %v, want [0, 2)", i, s.Delay)
			}
			if s.Duration < 3 || s.Duration >= 6 {
				t.Errorf("spec %d Duration = %v, want [3, 6)", i, s.Duration)
			}
		}
	}
	if GenerateGoldParticles(0, nil) != nil {
		t.Error("GenerateGoldParticles(0) != nil")
	}
}

func TestGoldenRainLifecycle(t *testing.T) {
	r := NewGoldenRain(DefaultRainConfig, NewRandomSource(3))
	if r.AliveCount() != 0 {
		t.Fatalf("new rain alive = %d, want 0", r.AliveCount())
	}
	r.Spawn()
	if r.AliveCount() != DefaultGoldParticles {
		t.Fatalf("alive after Spawn = %d, want %d", r.AliveCount(), DefaultGoldParticles)
	}
	r.Update(2.9)
	if r.AliveCount() != DefaultGoldParticles {
		t.Errorf("alive at 2.9s = %d, want all", r.AliveCount())
	}
	// Longest possible flake is a 2s delay plus a 6s fall.
	r.Update(5.2)
	if r.AliveCount() != 0 {
		t.Errorf("alive at 8.1s = %d, want 0", r.AliveCount())
	}
}

func TestGoldenRainSpawnResets(t *testing.T) {
	r := NewGoldenRain(RainConfig{Count: 10, Size: Range{Min: 4, Max: 4}}, NewRandomSource(3))
	r.Spawn()
	r.Spawn()
	if r.AliveCount() != 10 {
		t.Errorf("alive after double Spawn = %d, want 10", r.AliveCount())
	}
	r.Reset()
	if r.AliveCount() != 0 {
		t.Errorf("alive after Reset = %d, want 0", r.AliveCount())
	}
}

func TestGoldenRainQuads(t *testing.T) {
	r := NewGoldenRain(RainConfig{
		Count:      1,
		Size:       Range{Min: 4, Max: 4},
		Sway:       Range{Min: 0, Max: 0},
		StartColor: ColorWhite,
		EndColor:   ColorWhite,
	}, constSource(0.5))
	r.Spawn()
	// Left 50, delay 1s, duration 4.5s.
	if q := r.quads(800, 600, nil); len(q) != 0 {
		t.Fatalf("flake visible during its delay: %+v", q)
	}
	r.Update(1 + 2.25)
	q := r.quads(800, 600, nil)
	if len(q) != 1 {
		t.Fatalf("quads = %d, want 1", len(q))
	}
	if !approxEqual(q[0].center.X, 400, 1e-9) || !approxEqual(q[0].center.Y, 300, 1e-9) {
		t.Errorf("center = %+v, want (400, 300)", q[0].center)
	}
	if !approxEqual(q[0].color.A, 1, 1e-9) {
		t.Errorf("mid-fall alpha = %v, want 1", q[0].color.A)
	}
	if q[0].half != 2 {
		t.Errorf("half = %v, want 2", q[0].half)
	}
}

func TestGoldenRainFadesAtEnds(t *testing.T) {
	r := NewGoldenRain(RainConfig{Count: 1, StartColor: ColorWhite, EndColor: ColorWhite}, constSource(0))
	r.Spawn()
	// Delay 0, duration 3s.
	r.Update(0.15)
	a := r.quads(100, 100, nil)[0].color.A
	if !approxEqual(a, 0.5, 1e-9) {
		t.Errorf("alpha at 5%% = %v, want 0.5", a)
	}
	r.Update(2.55)
	a = r.quads(100, 100, nil)[0].color.A
	if !approxEqual(a, 0.5, 1e-9) {
		t.Errorf("alpha at 90%% = %v, want 0.5", a)
	}
}
