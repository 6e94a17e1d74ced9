package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: classic).

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space/Esc       - Pause
  R                 - Restart (after game over)
  Tab               - Toggle autopilot
  ?                 - More help
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play arcade
  snake play classic --size 12 --tick 120
  snake play --demo
  snake play sprint --config ./my-sprint.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Start with the autopilot steering")
}

// demoer is implemented by games that can steer themselves.
type demoer interface {
	SetDemo(on bool)
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(id, registry.Options{
		ConfigPath: flagConfig,
		Overrides:  overrides(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if d, ok := game.(demoer); ok && flagDemo {
		d.SetDemo(true)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	return tui.Run(game, cfg, logger)
}
