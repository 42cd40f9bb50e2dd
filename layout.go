package yuletree

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Tree layout constants.
const (
	// LayerCount is the number of cone layers stacked on the trunk.
	LayerCount = 4
	// LightsPerLayer is the number of string lights ringing each layer.
	LightsPerLayer = 8

	ornamentMinRadius = 0.8
	ornamentRadiusJit = 0.3
	ornamentMinScale  = 0.1
	ornamentScaleJit  = 0.05
	ornamentLowY      = -2.0
	ornamentSpanY     = 4.0
)

// OrnamentPlacement is one decorative sphere placed around the tree.
type OrnamentPlacement struct {
	Position Vec3
	// Color alternates between the theme's decoration and main colors.
	Color string
	// Emissive is the glow color, cycled through the theme's lights per layer.
	Emissive string
	Scale    float64
	// Layer is the cone layer the ornament is grouped with (index mod 4).
	Layer int
}

// GenerateOrnaments lays out theme.OrnamentCount ornaments on an upward
// spiral: even angular spacing and a linear height ramp, with radius and
// scale jittered by rng.
func GenerateOrnaments(theme ThemeVariant, rng RandomSource) []OrnamentPlacement {
	count := theme.OrnamentCount
	if count <= 0 {
		return nil
	}
	out := make([]OrnamentPlacement, count)
	perLayer := [LayerCount]int{}
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count)
		angle := t * 2 * math.Pi
		radius := ornamentMinRadius + Uniform(rng, 0, ornamentRadiusJit)
		height := ornamentLowY + t*ornamentSpanY

		c := theme.MainColor
		if i%2 == 0 {
			c = theme.DecorationColor
		}
		layer := i % LayerCount
		out[i] = OrnamentPlacement{
			Position: Vec3{math.Cos(angle) * radius, height, math.Sin(angle) * radius},
			Color:    c,
			Emissive: theme.LightColor(perLayer[layer]),
			Scale:    ornamentMinScale + Uniform(rng, 0, ornamentScaleJit),
			Layer:    layer,
		}
		perLayer[layer]++
	}
	return out
}

// StringLight is one small glowing bulb on a cone layer.
type StringLight struct {
	Position Vec3
	Color    string
	Layer    int
}

// GenerateStringLights rings every cone layer with LightsPerLayer bulbs.
// The layout has no random component.
func GenerateStringLights(theme ThemeVariant) []StringLight {
	out := make([]StringLight, 0, LayerCount*LightsPerLayer)
	for layer := 0; layer < LayerCount; layer++ {
		radius := 1.0 - float64(layer)*0.15
		height := layerHeight(layer)
		for i := 0; i < LightsPerLayer; i++ {
			angle := float64(i) / LightsPerLayer * 2 * math.Pi
			out = append(out, StringLight{
				Position: Vec3{math.Cos(angle) * radius, height, math.Sin(angle) * radius},
				Color:    theme.LightColor(i),
				Layer:    layer,
			})
		}
	}
	return out
}

// layerHeight is the vertical center of cone layer k inside the tree group.
func layerHeight(k int) float64 {
	return -1 + float64(k)*0.8
}

// DefaultBackdropStars is the number of backdrop stars in the scene.
const DefaultBackdropStars = 20

// BackdropPalette is the fixed set of backdrop star colors.
var BackdropPalette = [3]string{"#FFD700", "#C5A059", "#F9F8F4"}

// BackdropStar is a small glowing sphere scattered in the background volume.
type BackdropStar struct {
	Position Vec3
	Scale    float64
	Color    string
}

// GenerateBackdropStars scatters count stars: X and Z in [-10, 10],
// Y in [-5, 5], scale in [0.5, 1.0].
func GenerateBackdropStars(count int, rng RandomSource) []BackdropStar {
	if count <= 0 {
		return nil
	}
	out := make([]BackdropStar, count)
	for i := range out {
		out[i] = BackdropStar{
			Position: Vec3{
				X: Uniform(rng, -10, 10),
				Y: Uniform(rng, -5, 5),
				Z: Uniform(rng, -10, 10),
			},
			Scale: 0.5 + Uniform(rng, 0, 0.5),
			Color: BackdropPalette[pick(rng, len(BackdropPalette))],
		}
	}
	return out
}

// StarFieldConfig shapes the distant point field behind everything else.
type StarFieldConfig struct {
	Count      int
	Radius     float64
	Depth      float64
	Factor     float64
	Saturation float64
}

// DefaultStarField matches the dense far-away field of the greeting.
var DefaultStarField = StarFieldConfig{Count: 5000, Radius: 100, Depth: 50, Factor: 4, Saturation: 0}

// FieldStar is one point of the distant star field.
type FieldStar struct {
	Position Vec3
	Size     float64
	Color    Color
}

// GenerateStarField distributes points over spherical shells between
// Radius and Radius+Depth. The shell shrinks a little with every point so
// the field reads as having depth.
func GenerateStarField(cfg StarFieldConfig, rng RandomSource) []FieldStar {
	if cfg.Count <= 0 {
		return nil
	}
	out := make([]FieldStar, cfg.Count)
	r := cfg.Radius + cfg.Depth
	step := cfg.Depth / float64(cfg.Count)
	for i := range out {
		r -= step * Uniform(rng, 0, 1)
		phi := math.Acos(1 - Uniform(rng, 0, 2))
		theta := Uniform(rng, 0, 2*math.Pi)
		sp, cp := math.Sincos(phi)
		st, ct := math.Sincos(theta)
		c := colorful.Hsl(float64(i)/float64(cfg.Count)*360, cfg.Saturation, 0.9)
		out[i] = FieldStar{
			Position: Vec3{r * sp * st, r * cp, r * sp * ct},
			Size:     (0.5 + Uniform(rng, 0, 0.5)) * cfg.Factor,
			Color:    Color{R: c.R, G: c.G, B: c.B, A: 1},
		}
	}
	return out
}
