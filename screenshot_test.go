package yuletree

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tree", "tree"},
		{"first tree", "first_tree"},
		{"  padded  ", "padded"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"../escape", ".._escape"},
		{"v2.frost-blue", "v2.frost-blue"},
		{"a/b\\c:d", "a_b_c_d"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueues(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("one")
	g.Screenshot("two")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[1] != "two" {
		t.Errorf("queue = %v", g.screenshotQueue)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 197, G: 160, B: 89, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c := color.NRGBAModel.Convert(got.At(1, 1)).(color.NRGBA); c.R != 197 || c.G != 160 || c.B != 89 {
		t.Errorf("pixel = %+v", c)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
