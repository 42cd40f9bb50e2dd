package yuletree

import (
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the ebiten.Game that hosts the greeting: the 3D tree scene, the
// golden rain, and the text overlay.
type Game struct {
	cfg    Config
	logger *log.Logger

	greeting *Greeting
	scene    *SceneDescription
	renderer *Renderer
	rain     *GoldenRain
	overlay  *Overlay
	fps      *FPSWidget

	// Input
	source       PointerSource
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string

	width, height int
	hero          Rect
	blessing      Rect
	frame         int
}

// NewGame builds a Game from a validated config. A nil logger discards
// all output.
func NewGame(cfg Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = newDiscardLogger()
	}
	var rng RandomSource
	if cfg.Seed != 0 {
		rng = NewRandomSource(cfg.Seed)
	} else {
		rng = NewRandomSource(rand.Uint64())
	}

	field := DefaultStarField
	field.Count = cfg.FieldStars

	overlay, err := NewOverlay(cfg.Blessing, cfg.Hint)
	if err != nil {
		return nil, err
	}
	rain := DefaultRainConfig
	rain.Count = cfg.GoldParticles

	g := &Game{
		cfg:    cfg,
		logger: logger,
		greeting: NewGreeting(GreetingConfig{
			BackdropStars: cfg.BackdropStars,
			PulseDelay:    cfg.PulseDelay(),
			StarField:     field,
			Random:        rng,
		}),
		renderer:     NewRenderer(),
		rain:         NewGoldenRain(rain, rng),
		overlay:      overlay,
		fps:          NewFPSWidget(),
		source:       &EbitenPointer{},
		dragDeadZone: cfg.DragDeadZone,
	}
	g.greeting.OnPulseEnd = func(s AppState) {
		g.logger.Debug("effect pulse ended", "variant", s.VariantIndex)
	}
	g.scene = g.greeting.Scene(nil)
	g.layout(cfg.Width, cfg.Height)
	logger.Info("greeting ready", "theme", g.greeting.Theme().Name, "ornaments", len(g.greeting.Ornaments()))
	return g, nil
}

// SetPointerSource replaces the real mouse/touch reader. A nil source
// disables real input; injected events still apply.
func (g *Game) SetPointerSource(src PointerSource) {
	g.source = src
}

// Greeting returns the state controller.
func (g *Game) Greeting() *Greeting {
	return g.greeting
}

// Scene returns the current scene description.
func (g *Game) Scene() *SceneDescription {
	return g.scene
}

// HeroRect returns the clickable tree region in screen pixels.
func (g *Game) HeroRect() Rect {
	return g.hero
}

// click advances the theme and rebuilds the scene. The golden rain only
// restarts when the effect flag goes from lowered to raised, so clicks
// during an active pulse keep the current flakes.
func (g *Game) click() {
	wasActive := g.greeting.State().EffectActive
	g.greeting.Advance()
	g.scene = g.greeting.Scene(g.scene)
	s := g.greeting.State()
	if !wasActive && s.EffectActive {
		g.rain.Spawn()
	}
	g.logger.Info("tree changed", "variant", s.VariantIndex, "theme", g.greeting.Theme().Name)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.step(1.0 / float64(ebiten.TPS()))
}

// step advances one frame of dt seconds.
func (g *Game) step(dt float64) error {
	g.frame++
	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.testRunner.Done() && g.cfg.ExitAfterScript {
			if err := g.testRunner.Err(); err != nil {
				return err
			}
			return ebiten.Termination
		}
	}

	if !g.processInjectedInput() && g.source != nil {
		x, y, pressed := g.source.Pointer()
		g.processPointer(x, y, pressed)
	}
	if _, ok := g.source.(*EbitenPointer); ok {
		g.handleKeys()
	}

	g.greeting.Update(dt)
	g.scene.Advance(dt)
	g.rain.Update(dt)
	g.overlay.Update(dt)
	g.fps.Update(dt)
	return nil
}

// Draw implements ebiten.Game. A nil screen is a no-op.
func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	g.renderer.Draw(screen, g.scene)
	g.rain.Draw(screen)
	g.overlay.Draw(screen, g.hero, g.blessing)
	if g.cfg.ShowFPS {
		g.fps.Draw(screen)
	}
	g.flushScreenshots(screen)
	g.debugLog()
}

// Layout implements ebiten.Game. The screen follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// layout splits the screen into the hero region on top and the blessing
// band below it.
func (g *Game) layout(w, h int) {
	g.width, g.height = w, h
	heroH := float64(h) * g.cfg.HeroFraction
	g.hero = Rect{X: 0, Y: 0, Width: float64(w), Height: heroH}
	g.blessing = Rect{X: 0, Y: heroH + 8, Width: float64(w), Height: float64(h) - heroH - 8}
}

// Run opens a window and runs the game loop until the window closes or
// the attached script finishes with ExitAfterScript set.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
