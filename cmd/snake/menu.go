package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a variant.
Quitting a game returns to the menu.

Examples:
  snake menu
  snake menu --size 15`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addConfigFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		game, err := registry.Create(result.GameID, registry.Options{
			ConfigPath: flagConfig,
			Overrides:  overrides(),
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			return err
		}
	}
}
