package yuletree

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4.0 // pixels

// PointerSource reports the primary pointer each frame.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool)
}

// EbitenPointer reads the first active touch, falling back to the mouse.
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
}

// Pointer implements PointerSource.
func (p *EbitenPointer) Pointer() (x, y float64, pressed bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		return float64(tx), float64(ty), true
	}
	// A finger that just lifted has no current position; report the
	// release where it was last seen.
	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := inpututil.TouchPositionInPreviousTick(p.touchIDs[0])
		return float64(tx), float64(ty), false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// handleKeys applies keyboard shortcuts: F toggles the FPS widget.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cfg.ShowFPS = !g.cfg.ShowFPS
		g.logger.Debug("fps widget toggled", "visible", g.cfg.ShowFPS)
	}
}

// pointerState tracks the press/drag/click lifecycle of one pointer.
type pointerState struct {
	down     bool
	dragging bool
	inHero   bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

// processPointer runs the pointer state machine for one frame's sample.
// A press and release inside the hero region without crossing the drag
// dead zone is a click and advances the theme. Movement past the dead zone
// orbits the camera instead.
func (g *Game) processPointer(x, y float64, pressed bool) {
	ps := &g.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.inHero = g.hero.Contains(x, y)
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		if !ps.dragging && ps.inHero && g.hero.Contains(x, y) {
			g.click()
		}
		ps.down = false
		ps.dragging = false
		ps.inHero = false
		ps.lastX, ps.lastY = x, y
	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > g.dragDeadZone {
			ps.dragging = true
		}
		if ps.dragging && ps.inHero && g.scene != nil {
			g.scene.Camera.Drag(x-ps.lastX, y-ps.lastY, g.hero.Height)
		}
		ps.lastX, ps.lastY = x, y
	default:
		ps.lastX, ps.lastY = x, y
	}
}
