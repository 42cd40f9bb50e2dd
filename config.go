package yuletree

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of tunables, loadable from a TOML file.
type Config struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
	Debug   bool   `toml:"debug"`

	// Seed makes every random draw reproducible. Zero seeds from the clock.
	Seed uint64 `toml:"seed"`

	// BackdropStars of zero uses DefaultBackdropStars.
	BackdropStars   int     `toml:"backdrop_stars"`
	FieldStars      int     `toml:"field_stars"`
	PulseSeconds    float64 `toml:"pulse_seconds"`
	GoldParticles   int     `toml:"gold_particles"`
	HeroFraction    float64 `toml:"hero_fraction"`
	DragDeadZone    float64 `toml:"drag_dead_zone"`
	ExitAfterScript bool    `toml:"exit_after_script"`

	Blessing []string `toml:"blessing"`
	Hint     string   `toml:"hint"`

	ScreenshotDir string `toml:"screenshot_dir"`
	Script        string `toml:"script"`
}

// DefaultConfig returns the stock greeting settings.
func DefaultConfig() Config {
	return Config{
		Title:         "Merry Christmas",
		Width:         800,
		Height:        800,
		BackdropStars: DefaultBackdropStars,
		FieldStars:    DefaultStarField.Count,
		PulseSeconds:  DefaultPulseDelay.Seconds(),
		GoldParticles: DefaultGoldParticles,
		HeroFraction:  0.72,
		DragDeadZone:  defaultDragDeadZone,
		Blessing:      append([]string(nil), DefaultBlessing...),
		Hint:          DefaultHint,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: %w: unknown key %q", path, ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.BackdropStars < 0:
		return fmt.Errorf("%w: backdrop_stars %d", ErrInvalidConfig, c.BackdropStars)
	case c.FieldStars < 0:
		return fmt.Errorf("%w: field_stars %d", ErrInvalidConfig, c.FieldStars)
	case c.PulseSeconds <= 0:
		return fmt.Errorf("%w: pulse_seconds %v", ErrInvalidConfig, c.PulseSeconds)
	case c.GoldParticles < 0:
		return fmt.Errorf("%w: gold_particles %d", ErrInvalidConfig, c.GoldParticles)
	case c.HeroFraction <= 0 || c.HeroFraction > 1:
		return fmt.Errorf("%w: hero_fraction %v", ErrInvalidConfig, c.HeroFraction)
	case c.DragDeadZone < 0:
		return fmt.Errorf("%w: drag_dead_zone %v", ErrInvalidConfig, c.DragDeadZone)
	}
	return nil
}

// PulseDelay returns PulseSeconds as a duration.
func (c Config) PulseDelay() time.Duration {
	return time.Duration(c.PulseSeconds * float64(time.Second))
}
