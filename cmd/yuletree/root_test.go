package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/yuletree"
)

func TestResolveConfigFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--seed", "9", "--width", "640", "--fps"}); err != nil {
		t.Fatal(err)
	}
	var opts options
	opts.seed, _ = cmd.Flags().GetUint64("seed")
	opts.width, _ = cmd.Flags().GetInt("width")
	opts.showFPS, _ = cmd.Flags().GetBool("fps")

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Seed != 9 || cfg.Width != 640 || !cfg.ShowFPS {
		t.Errorf("cfg = seed %d width %d fps %v", cfg.Seed, cfg.Width, cfg.ShowFPS)
	}
	// Unset flags keep config values.
	if cfg.Height != 800 {
		t.Errorf("height = %d, want default 800", cfg.Height)
	}
}

func TestResolveConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("width = 1024\nheight = 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--height", "700"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd, options{configPath: path, height: 700})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 700 {
		t.Errorf("size = %dx%d, want 1024x700", cfg.Width, cfg.Height)
	}
}

func TestResolveConfigInvalid(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--width=-5"}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, options{width: -5}); !errors.Is(err, yuletree.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestPrintThemes(t *testing.T) {
	var buf bytes.Buffer
	if err := printThemes(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "\n"); n != yuletree.ThemeCount() {
		t.Errorf("lines = %d, want %d", n, yuletree.ThemeCount())
	}
	for _, th := range yuletree.Themes() {
		if !strings.Contains(out, th.Name) || !strings.Contains(out, th.MainColor) {
			t.Errorf("output missing %s", th.Name)
		}
	}
}

func TestThemesCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"themes"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "deep-gold") {
		t.Errorf("output = %q", buf.String())
	}
}
