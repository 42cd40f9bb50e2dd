package yuletree

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenValue, TweenColor) and call Update(dt)
// each frame. The group writes values straight into the bound fields.
//
// There is no global animation manager; callers run Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue creates a TweenGroup that animates *field from its current
// value to the target over duration seconds.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenColor creates a TweenGroup that animates all four components of c
// to the target color.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// DefaultPulseDelay is how long the effect flag stays raised after a click.
const DefaultPulseDelay = 2 * time.Second

// pulseSlack absorbs rounding in summed frame steps so a 2s pulse at 60
// TPS drops on frame 120.
const pulseSlack = 1e-9

// Pulse is a one-shot timed flag driven by frame time. Trigger raises it;
// it drops again once Delay has elapsed. Triggering while raised restarts
// the countdown, so only the most recent trigger decides when it drops.
type Pulse struct {
	delay   float64
	elapsed float64
	active  bool
}

// NewPulse creates a lowered pulse with the given delay. A non-positive
// delay falls back to DefaultPulseDelay.
func NewPulse(delay time.Duration) *Pulse {
	if delay <= 0 {
		delay = DefaultPulseDelay
	}
	return &Pulse{delay: delay.Seconds()}
}

// Trigger raises the flag and (re)starts the countdown.
func (p *Pulse) Trigger() {
	p.active = true
	p.elapsed = 0
}

// Update advances the countdown by dt seconds. It reports true on the frame
// the flag drops.
func (p *Pulse) Update(dt float64) bool {
	if !p.active {
		return false
	}
	p.elapsed += dt
	if p.elapsed < p.delay-pulseSlack {
		return false
	}
	p.active = false
	return true
}

// Active reports whether the flag is currently raised.
func (p *Pulse) Active() bool {
	return p.active
}

// Remaining returns the time left before the flag drops, or zero when it
// is lowered.
func (p *Pulse) Remaining() time.Duration {
	if !p.active {
		return 0
	}
	return time.Duration((p.delay - p.elapsed) * float64(time.Second))
}

// Delay returns the configured countdown length.
func (p *Pulse) Delay() time.Duration {
	return time.Duration(p.delay * float64(time.Second))
}
