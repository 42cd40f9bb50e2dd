package yuletree

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is fully opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ParseHex parses a "#RRGGBB" string into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like ParseHex but panics on malformed input. Only used for the
// hard-coded palettes in this package.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("yuletree: bad color literal " + s)
	}
	return c
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Scale multiplies the RGB components by k, leaving alpha untouched.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Add returns the component-wise RGB sum, keeping c's alpha.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Mul returns the component-wise RGB product, keeping c's alpha.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A}
}

// Clamp limits every component to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Blend mixes c toward o by t in linear RGB.
func (c Color) Blend(o Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: o.R, G: o.G, B: o.B}
	m := a.BlendLinearRgb(b, t)
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(c.A, o.A, t)}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec3 is a 3D vector used for positions, rotations (Euler radians), and
// scales throughout the scene description. Y points up.
type Vec3 = r3.Vector

// Uniform3 returns a vector with all three components set to s.
func Uniform3(s float64) Vec3 { return Vec3{s, s, s} }

// Vec2 is a 2D screen-space vector.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng RandomSource) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return Uniform(rng, r.Min, r.Max)
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

var image1x1 = image.Rect(1, 1, 2, 2)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// WhitePixel returns a shared 1x1 white image used as the source for solid
// color triangles. Created on first use so the pure parts of the package work
// without a graphics context.
func WhitePixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// whiteSubImage is the 1x1 interior of the white pixel image. Sampling the
// interior avoids bleeding at triangle edges.
func whiteSubImage() *ebiten.Image {
	return WhitePixel().SubImage(image1x1).(*ebiten.Image)
}
