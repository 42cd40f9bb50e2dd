package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/yuletree"
)

// options holds flag values that override the config file.
type options struct {
	configPath  string
	seed        uint64
	width       int
	height      int
	showFPS     bool
	debug       bool
	script      string
	screenshots string
	exit        bool
}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "yuletree",
	})
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "yuletree",
		Short:        "Animated Christmas tree greeting",
		Long:         `yuletree opens a window with a rotating 3D Christmas tree, drifting stars and a golden blessing. Click the tree for a new one.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			level := log.InfoLevel
			if cfg.Debug {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			return run(cfg, logger)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	f.IntVar(&opts.width, "width", 0, "window width in pixels")
	f.IntVar(&opts.height, "height", 0, "window height in pixels")
	f.BoolVar(&opts.showFPS, "fps", false, "show the FPS widget")
	f.BoolVarP(&opts.debug, "debug", "d", false, "log per-frame render stats")
	f.StringVar(&opts.script, "script", "", "JSON test script of clicks, waits and screenshots")
	f.StringVar(&opts.screenshots, "screenshots", "", "directory for screenshots")
	f.BoolVar(&opts.exit, "exit", false, "quit once the test script finishes")

	root.AddCommand(newThemesCmd())
	return root
}

// resolveConfig loads the config file, if any, and applies flags that were
// set explicitly.
func resolveConfig(cmd *cobra.Command, opts options) (yuletree.Config, error) {
	cfg := yuletree.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = yuletree.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Height = opts.height
	}
	if f.Changed("fps") {
		cfg.ShowFPS = opts.showFPS
	}
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("script") {
		cfg.Script = opts.script
	}
	if f.Changed("screenshots") {
		cfg.ScreenshotDir = opts.screenshots
	}
	if f.Changed("exit") {
		cfg.ExitAfterScript = opts.exit
	}
	return cfg, cfg.Validate()
}

func run(cfg yuletree.Config, logger *log.Logger) error {
	game, err := yuletree.NewGame(cfg, logger)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := yuletree.LoadTestScript(data)
		if err != nil {
			return err
		}
		game.SetTestRunner(runner)
		logger.Info("test script attached", "path", cfg.Script)
	}
	return yuletree.Run(game)
}
