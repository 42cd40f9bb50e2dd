package yuletree

import "testing"

func TestSelectThemePeriodic(t *testing.T) {
	n := ThemeCount()
	for i := 0; i < 3*n; i++ {
		a, b := SelectTheme(i), SelectTheme(i+n)
		if a.Name != b.Name {
			t.Errorf("SelectTheme(%d) = %q, SelectTheme(%d) = %q", i, a.Name, i+n, b.Name)
		}
	}
}

func TestSelectThemeReferencePalettes(t *testing.T) {
	tests := []struct {
		index      int
		main, deco string
		ornaments  int
	}{
		{0, "#10B981", "#EF4444", 12},
		{1, "#0EA5E9", "#F1F5F9", 10},
		{2, "#F97316", "#FFFFFF", 14},
		{3, "#059669", "#C5A059", 16},
	}
	for _, tt := range tests {
		th := SelectTheme(tt.index)
		if th.MainColor != tt.main || th.DecorationColor != tt.deco || th.OrnamentCount != tt.ornaments {
			t.Errorf("SelectTheme(%d) = {%s %s %d}, want {%s %s %d}",
				tt.index, th.MainColor, th.DecorationColor, th.OrnamentCount, tt.main, tt.deco, tt.ornaments)
		}
		if len(th.LightColors) != 4 {
			t.Errorf("SelectTheme(%d) lights = %d, want 4", tt.index, len(th.LightColors))
		}
	}
}

func TestSelectThemeNegativeWraps(t *testing.T) {
	if got := SelectTheme(-1).Name; got != SelectTheme(3).Name {
		t.Errorf("SelectTheme(-1) = %q, want %q", got, SelectTheme(3).Name)
	}
	if got := SelectTheme(-4).Name; got != SelectTheme(0).Name {
		t.Errorf("SelectTheme(-4) = %q, want %q", got, SelectTheme(0).Name)
	}
}

func TestThemesReturnsCopy(t *testing.T) {
	list := Themes()
	list[0].LightColors[0] = "#000000"
	list[0].MainColor = "#000000"
	th := SelectTheme(0)
	if th.LightColors[0] != "#FFD700" || th.MainColor != "#10B981" {
		t.Error("mutating Themes() result changed the built-in palette")
	}
}

func TestLightColorCycles(t *testing.T) {
	th := SelectTheme(0)
	if th.LightColor(5) != th.LightColors[1] {
		t.Errorf("LightColor(5) = %s, want %s", th.LightColor(5), th.LightColors[1])
	}
	empty := ThemeVariant{MainColor: "#123456"}
	if empty.LightColor(3) != "#123456" {
		t.Errorf("LightColor with no lights = %s, want main color", empty.LightColor(3))
	}
}
