// snake is a terminal Snake game with a headless simulator.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant in the terminal
//	snake menu               - Pick a variant interactively
//	snake sim [variant]      - Let the autopilot play without a UI
//	snake config [variant]   - Print the resolved configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for the TUI (default: ~/.snake/snake.log)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	// Global flags
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Config flags shared by play, menu, sim and config
	flagConfig string
	flagSize   int
	flagTick   int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal version of the classic grid game.

Steer the snake to the food, grow one segment per meal, and avoid the
walls and your own tail.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Headless autopilot run
  config   - Print a variant's configuration

Examples:
  snake play
  snake play arcade --size 15
  snake sim sprint --ticks 500 --seed 42
  snake config classic > ~/.snake/configs/classic.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.snake/snake.log for the TUI, stderr otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the flags that shape a variant's configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (cells per side); the start is recentred only if the snake no longer fits")
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Tick interval override in milliseconds")
}

// overrides returns the command-line config overrides.
func overrides() config.Overrides {
	return config.Overrides{BoardSize: flagSize, TickMS: flagTick}
}

// variantArg returns the requested variant or the default one.
func variantArg(args []string) (string, error) {
	id := config.DefaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", id)
	}
	return id, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger returns the logger for a command. While the TUI owns the
// terminal, logs go to a rotating file; otherwise they go to stderr unless
// --log-file is set.
func openLogger(tui bool) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" && tui {
		path = logging.DefaultFile()
	}
	if path == "" {
		logger, err := logging.New(os.Stderr, flagLogLevel)
		return logger, nopCloser{}, err
	}
	return logging.NewFile(path, flagLogLevel)
}

// terminalSize returns the terminal dimensions, falling back to the
// default runtime size when stdout is not a terminal.
func terminalSize() (width, height int) {
	def := core.DefaultConfig()
	width, height = def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
