package yuletree

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultGoldParticles is how many flakes one activation spawns.
const DefaultGoldParticles = 50

// GoldParticleSpec is the randomized placement of one falling flake.
type GoldParticleSpec struct {
	// Left is the horizontal start position as a percentage of the width.
	Left float64
	// Delay is the wait in seconds before the flake starts falling.
	Delay float64
	// Duration is how long the fall takes in seconds.
	Duration float64
}

// GenerateGoldParticles draws count flake specs: Left in [0, 100),
// Delay in [0, 2), Duration in [3, 6).
func GenerateGoldParticles(count int, rng RandomSource) []GoldParticleSpec {
	if count <= 0 {
		return nil
	}
	out := make([]GoldParticleSpec, count)
	for i := range out {
		out[i] = GoldParticleSpec{
			Left:     Uniform(rng, 0, 100),
			Delay:    Uniform(rng, 0, 2),
			Duration: 3 + Uniform(rng, 0, 3),
		}
	}
	return out
}

// particle holds per-flake simulation state. Unexported; managed by GoldenRain.
type particle struct {
	spec  GoldParticleSpec
	age   float64
	size  float64
	spin  float64
	sway  float64
	phase float64
}

// progress returns the fall fraction in [0, 1), or a negative value while
// the flake is still waiting out its delay.
func (p *particle) progress() float64 {
	if p.spec.Duration <= 0 {
		return 1
	}
	return (p.age - p.spec.Delay) / p.spec.Duration
}

// RainConfig controls how golden flakes look.
type RainConfig struct {
	// Count is the number of flakes per activation.
	Count int
	// Size is the range of flake edge lengths in pixels.
	Size Range
	// Sway is the horizontal drift amplitude in pixels.
	Sway Range
	// StartColor is the tint at the top, interpolated to EndColor at the bottom.
	StartColor Color
	EndColor   Color
	BlendMode  BlendMode
}

// DefaultRainConfig is gold leaf drifting to amber.
var DefaultRainConfig = RainConfig{
	Count:      DefaultGoldParticles,
	Size:       Range{Min: 3, Max: 7},
	Sway:       Range{Min: 8, Max: 24},
	StartColor: Color{R: 1, G: 0.84, B: 0, A: 1},
	EndColor:   Color{R: 0.77, G: 0.63, B: 0.35, A: 1},
	BlendMode:  BlendAdd,
}

// GoldenRain is a pool of falling flakes, cleared and refilled by Spawn.
type GoldenRain struct {
	config    RainConfig
	rng       RandomSource
	particles []particle
	alive     int

	verts []ebiten.Vertex
	inds  []uint32
}

// NewGoldenRain creates an empty rain with a pool sized to cfg.Count.
func NewGoldenRain(cfg RainConfig, rng RandomSource) *GoldenRain {
	if cfg.Count <= 0 {
		cfg.Count = DefaultGoldParticles
	}
	return &GoldenRain{
		config:    cfg,
		rng:       sourceOrGlobal(rng),
		particles: make([]particle, cfg.Count),
	}
}

// Spawn clears every flake and starts a fresh batch.
func (r *GoldenRain) Spawn() {
	r.Reset()
	for _, spec := range GenerateGoldParticles(len(r.particles), r.rng) {
		r.particles[r.alive] = particle{
			spec:  spec,
			size:  r.config.Size.Random(r.rng),
			spin:  Uniform(r.rng, -2, 2) * math.Pi,
			sway:  r.config.Sway.Random(r.rng),
			phase: Uniform(r.rng, 0, 2*math.Pi),
		}
		r.alive++
	}
}

// Reset kills all flakes.
func (r *GoldenRain) Reset() {
	r.alive = 0
}

// AliveCount returns the number of flakes waiting or falling.
func (r *GoldenRain) AliveCount() int {
	return r.alive
}

// Update ages every flake by dt seconds and swap-removes finished ones.
func (r *GoldenRain) Update(dt float64) {
	i := 0
	for i < r.alive {
		p := &r.particles[i]
		p.age += dt
		if p.progress() >= 1 {
			r.alive--
			r.particles[i] = r.particles[r.alive]
			continue
		}
		i++
	}
}

// flakeQuad is a falling flake resolved to screen space.
type flakeQuad struct {
	center   Vec2
	half     float64
	rotation float64
	color    Color
}

// quads resolves every falling flake for a width x height surface.
func (r *GoldenRain) quads(width, height float64, buf []flakeQuad) []flakeQuad {
	buf = buf[:0]
	for i := 0; i < r.alive; i++ {
		p := &r.particles[i]
		t := p.progress()
		if t < 0 {
			continue
		}
		c := r.config.StartColor.Blend(r.config.EndColor, t)
		// Fade in over the first tenth of the fall and out over the last fifth.
		c.A *= math.Min(1, math.Min(t/0.1, (1-t)/0.2))
		buf = append(buf, flakeQuad{
			center: Vec2{
				X: p.spec.Left/100*width + math.Sin(p.phase+t*2*math.Pi)*p.sway,
				Y: lerp(-p.size, height+p.size, t),
			},
			half:     p.size / 2,
			rotation: p.spin * t,
			color:    c,
		})
	}
	return buf
}

// Draw paints the falling flakes over target.
func (r *GoldenRain) Draw(target *ebiten.Image) {
	if target == nil || r.alive == 0 {
		return
	}
	b := target.Bounds()
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for _, q := range r.quads(float64(b.Dx()), float64(b.Dy()), nil) {
		s, c := math.Sincos(q.rotation)
		base := uint32(len(r.verts))
		cr := float32(q.color.R * q.color.A)
		cg := float32(q.color.G * q.color.A)
		cb := float32(q.color.B * q.color.A)
		ca := float32(q.color.A)
		for _, corner := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			lx, ly := corner[0]*q.half, corner[1]*q.half
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(q.center.X + lx*c - ly*s + ox),
				DstY:   float32(q.center.Y + lx*s + ly*c + oy),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
	}
	if len(r.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = r.config.BlendMode.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(r.verts, r.inds, whiteSubImage(), &op)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
