package yuletree

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the widget text is redrawn, in seconds.
const fpsRefresh = 0.5

// FPSWidget shows the current FPS and TPS in the top-left corner.
type FPSWidget struct {
	img   *ebiten.Image
	since float64
}

// NewFPSWidget creates the widget. The backing image is allocated lazily
// on first draw.
func NewFPSWidget() *FPSWidget {
	return &FPSWidget{since: fpsRefresh}
}

// Update accumulates frame time.
func (w *FPSWidget) Update(dt float64) {
	w.since += dt
}

// Draw refreshes the text when due and blits the widget.
func (w *FPSWidget) Draw(target *ebiten.Image) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
	}
	if w.since >= fpsRefresh {
		w.since = 0
		w.img.Clear()
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	target.DrawImage(w.img, nil)
}
