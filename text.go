package yuletree

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("yuletree: parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Default overlay text.
var (
	DefaultBlessing = []string{"Sweet dear Cai", "Merry Christmas"}
	DefaultHint     = "Click the tree for a new one"
)

var (
	blessingColor = MustHex("#F9F8F4")
	accentColor   = MustHex("#C5A059")
)

const (
	fadeInSeconds = 1.5
	hintBobPixels = 6
	hintBobPeriod = 1.2
)

// Overlay draws the blessing under the tree and the click hint inside it.
type Overlay struct {
	Lines []string
	Hint  string

	title *TTFFont
	body  *TTFFont
	hint  *TTFFont

	alpha  float64
	bob    float64
	fade   *TweenGroup
	bobber *TweenGroup
	bobUp  bool
}

// NewOverlay loads the Go Regular faces and starts the blessing fade-in.
func NewOverlay(lines []string, hint string) (*Overlay, error) {
	title, err := LoadTTFFont(goregular.TTF, 40)
	if err != nil {
		return nil, err
	}
	body, err := LoadTTFFont(goregular.TTF, 30)
	if err != nil {
		return nil, err
	}
	small, err := LoadTTFFont(goregular.TTF, 15)
	if err != nil {
		return nil, err
	}
	o := &Overlay{Lines: lines, Hint: hint, title: title, body: body, hint: small}
	o.fade = TweenValue(&o.alpha, 1, fadeInSeconds, ease.OutQuad)
	o.bobber = TweenValue(&o.bob, hintBobPixels, hintBobPeriod/2, ease.InOutSine)
	o.bobUp = true
	return o, nil
}

// Alpha returns the current blessing opacity.
func (o *Overlay) Alpha() float64 {
	return o.alpha
}

// Update advances the fade-in and the hint bob by dt seconds.
func (o *Overlay) Update(dt float64) {
	o.fade.Update(float32(dt))
	o.bobber.Update(float32(dt))
	if o.bobber.Done {
		to := 0.0
		if !o.bobUp {
			to = hintBobPixels
		}
		o.bobUp = !o.bobUp
		o.bobber = TweenValue(&o.bob, to, hintBobPeriod/2, ease.InOutSine)
	}
}

// Draw renders the hint at the bottom of hero and the blessing lines
// centered in blessing.
func (o *Overlay) Draw(target *ebiten.Image, hero, blessing Rect) {
	if target == nil {
		return
	}
	if o.Hint != "" {
		c := accentColor
		c.A = 0.8
		o.drawCentered(target, o.Hint, o.hint, hero.X+hero.Width/2, hero.Y+hero.Height-o.hint.LineHeight()-12+o.bob, c)
	}
	y := blessing.Y
	for i, line := range o.Lines {
		f := o.body
		c := accentColor
		if i == 0 {
			f = o.title
			c = blessingColor
		}
		c.A = o.alpha
		o.drawCentered(target, line, f, blessing.X+blessing.Width/2, y, c)
		y += f.LineHeight() * 1.1
	}
}

func (o *Overlay) drawCentered(target *ebiten.Image, s string, f *TTFFont, cx, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = f.LineHeight()
	text.Draw(target, s, f.face, op)
}
