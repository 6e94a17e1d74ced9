package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print a variant's resolved configuration",
	Long: `Print the configuration a variant would run with, after the search
order and any overrides, as YAML. The output is a valid config file.

Search order:
  --config <path>
  ~/.snake/configs/<variant>.yaml
  ./configs/<variant>.yaml
  built-in defaults`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	cfg, source, err := config.Load(id, flagConfig)
	if err != nil {
		return err
	}
	cfg, err = overrides().Apply(cfg)
	if err != nil {
		return err
	}
	// Reject configs the engine cannot start, not just malformed ones
	if _, err := snake.EngineConfig(cfg); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# variant: %s (source: %s)\n", id, source)
	_, err = w.Write(data)
	return err
}
