package yuletree

import "time"

// AppState is the whole mutable state of the greeting.
type AppState struct {
	// VariantIndex counts clicks; the active theme is SelectTheme(VariantIndex).
	VariantIndex int
	// EffectActive is raised on click and drops after the pulse delay.
	EffectActive bool
}

// Theme returns the theme selected by the state.
func (s AppState) Theme() ThemeVariant {
	return SelectTheme(s.VariantIndex)
}

// GreetingConfig tunes a Greeting. Zero values pick the defaults; a
// StarField with a zero Count but other fields set disables the field.
type GreetingConfig struct {
	BackdropStars int
	PulseDelay    time.Duration
	StarField     StarFieldConfig
	Random        RandomSource
}

// Greeting owns AppState and the generated layout for the active theme.
// Advance and Update are meant to be called from the game loop only.
type Greeting struct {
	state     AppState
	pulse     *Pulse
	rng       RandomSource
	ornaments []OrnamentPlacement
	stars     []BackdropStar
	field     []FieldStar

	// OnAdvance, when set, runs after each Advance with the new state.
	OnAdvance func(AppState)
	// OnPulseEnd, when set, runs on the frame the effect flag drops.
	OnPulseEnd func(AppState)
}

// NewGreeting creates a Greeting at variant 0 with freshly generated
// ornaments, backdrop stars, and star field.
func NewGreeting(cfg GreetingConfig) *Greeting {
	if cfg.BackdropStars <= 0 {
		cfg.BackdropStars = DefaultBackdropStars
	}
	if cfg.StarField == (StarFieldConfig{}) {
		cfg.StarField = DefaultStarField
	}
	g := &Greeting{
		pulse: NewPulse(cfg.PulseDelay),
		rng:   sourceOrGlobal(cfg.Random),
	}
	g.ornaments = GenerateOrnaments(g.state.Theme(), g.rng)
	g.stars = GenerateBackdropStars(cfg.BackdropStars, g.rng)
	g.field = GenerateStarField(cfg.StarField, g.rng)
	return g
}

// State returns a copy of the current state.
func (g *Greeting) State() AppState {
	return g.state
}

// Theme returns the active theme.
func (g *Greeting) Theme() ThemeVariant {
	return g.state.Theme()
}

// Ornaments returns the ornaments generated for the active theme.
func (g *Greeting) Ornaments() []OrnamentPlacement {
	return g.ornaments
}

// BackdropStars returns the backdrop stars. They are scattered anew with
// every Advance, like the rest of the scene.
func (g *Greeting) BackdropStars() []BackdropStar {
	return g.stars
}

// StarField returns the distant point field.
func (g *Greeting) StarField() []FieldStar {
	return g.field
}

// Advance moves to the next theme, regenerates its ornaments, and fires the
// effect pulse.
func (g *Greeting) Advance() {
	g.state.VariantIndex++
	g.ornaments = GenerateOrnaments(g.state.Theme(), g.rng)
	g.stars = GenerateBackdropStars(len(g.stars), g.rng)
	g.TriggerPulse()
	if g.OnAdvance != nil {
		g.OnAdvance(g.state)
	}
}

// TriggerPulse raises EffectActive and restarts its countdown. No other
// state changes.
func (g *Greeting) TriggerPulse() {
	g.pulse.Trigger()
	g.state.EffectActive = true
}

// Update advances the pulse countdown by dt seconds.
func (g *Greeting) Update(dt float64) {
	if g.pulse.Update(dt) {
		g.state.EffectActive = false
		if g.OnPulseEnd != nil {
			g.OnPulseEnd(g.state)
		}
	}
}

// Scene builds the scene description for the current state. When prev is
// non-nil its animation clock and camera carry over so the orbit and sway
// continue without a jump.
func (g *Greeting) Scene(prev *SceneDescription) *SceneDescription {
	s := BuildScene(g.Theme(), g.ornaments, g.stars)
	s.StarField = g.field
	if prev != nil {
		s.Camera = prev.Camera
		s.elapsed = prev.elapsed
	}
	s.Tick(s.elapsed)
	return s
}
