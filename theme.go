package yuletree

// ThemeVariant is one of the fixed tree palettes cycled by clicking.
type ThemeVariant struct {
	Name            string
	MainColor       string
	DecorationColor string
	// LightColors are cycled for string lights and ornament glow.
	LightColors   []string
	OrnamentCount int
}

var themes = []ThemeVariant{
	{
		Name:            "classic-green",
		MainColor:       "#10B981",
		DecorationColor: "#EF4444",
		LightColors:     []string{"#FFD700", "#FF6B6B", "#4ECDC4", "#45B7D1"},
		OrnamentCount:   12,
	},
	{
		Name:            "frost-blue",
		MainColor:       "#0EA5E9",
		DecorationColor: "#F1F5F9",
		LightColors:     []string{"#E0F2FE", "#7DD3FC", "#0EA5E9", "#0284C7"},
		OrnamentCount:   10,
	},
	{
		Name:            "warm-orange",
		MainColor:       "#F97316",
		DecorationColor: "#FFFFFF",
		LightColors:     []string{"#FED7AA", "#FDBA74", "#FB923C", "#F97316"},
		OrnamentCount:   14,
	},
	{
		Name:            "deep-gold",
		MainColor:       "#059669",
		DecorationColor: "#C5A059",
		LightColors:     []string{"#FCD34D", "#F59E0B", "#D97706", "#C5A059"},
		OrnamentCount:   16,
	},
}

// ThemeCount returns the number of built-in themes.
func ThemeCount() int { return len(themes) }

// Themes returns a copy of the built-in theme list in cycling order.
func Themes() []ThemeVariant {
	out := make([]ThemeVariant, len(themes))
	for i, t := range themes {
		out[i] = t.clone()
	}
	return out
}

// SelectTheme returns the theme for a variant index, wrapping modulo the
// theme count. Every integer is valid; negative values wrap as well.
func SelectTheme(index int) ThemeVariant {
	n := len(themes)
	i := index % n
	if i < 0 {
		i += n
	}
	return themes[i].clone()
}

// LightColor returns the i-th light color, cycling through LightColors.
func (t ThemeVariant) LightColor(i int) string {
	if len(t.LightColors) == 0 {
		return t.MainColor
	}
	return t.LightColors[i%len(t.LightColors)]
}

func (t ThemeVariant) clone() ThemeVariant {
	t.LightColors = append([]string(nil), t.LightColors...)
	return t
}
