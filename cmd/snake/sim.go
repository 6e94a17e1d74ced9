package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagTicks    int
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Let the autopilot play without a UI",
	Long: `Run a game headless with the autopilot steering, then print the final
board and a summary. The run stops after --ticks ticks or at game over.

Examples:
  snake sim
  snake sim arcade --ticks 2000 --seed 7
  snake sim classic --realtime --ticks 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	addConfigFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured interval")
}

// simResult summarises a headless run.
type simResult struct {
	Variant string
	Seed    int64
	Ticks   int
	Final   snake.GameState
	High    int
}

func runSim(cmd *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagTicks < 1 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, closer, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := config.Load(id, flagConfig)
	if err != nil {
		return err
	}
	cfg, err = overrides().Apply(cfg)
	if err != nil {
		return err
	}
	ec, err := snake.EngineConfig(cfg)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "variant", id, "source", source)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := simulate(cmd.Context(), ec, seed, flagTicks, flagRealtime, logger)
	if err != nil {
		return err
	}
	res.Variant = id
	printSim(cmd.OutOrStdout(), res, ec.GridSize)
	return nil
}

// simulate plays one game with the autopilot. In realtime mode the session's
// own ticker drives it; otherwise ticks run back to back.
func simulate(ctx context.Context, cfg snake.Config, seed int64, maxTicks int, realtime bool, logger *log.Logger) (simResult, error) {
	engine, err := snake.NewEngine(cfg, snake.NewRandom(seed))
	if err != nil {
		return simResult{}, err
	}
	session, err := snake.NewSession(engine, logger)
	if err != nil {
		return simResult{}, err
	}
	pilot := snake.Autopilot{GridSize: cfg.GridSize}

	steer := func(s snake.GameState) {
		_, _ = session.SubmitInput(snake.IntentFor(pilot.Next(s)))
	}

	ticks := 0
	steer(session.Snapshot())
	if realtime {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		err = session.Run(ctx, func(s snake.GameState) {
			ticks++
			if s.IsGameOver || ticks >= maxTicks {
				cancel()
				return
			}
			steer(s)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return simResult{}, err
		}
	} else {
		for ticks < maxTicks {
			if err := ctx.Err(); err != nil {
				return simResult{}, err
			}
			s := session.Tick()
			ticks++
			if s.IsGameOver {
				break
			}
			steer(s)
		}
	}

	return simResult{
		Seed:  seed,
		Ticks: ticks,
		Final: session.Snapshot(),
		High:  session.HighScore(),
	}, nil
}

func printSim(w io.Writer, r simResult, gridSize int) {
	fmt.Fprintln(w, r.Final.Board(gridSize))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "variant: %s\n", r.Variant)
	fmt.Fprintf(w, "seed:    %d\n", r.Seed)
	fmt.Fprintf(w, "ticks:   %d\n", r.Ticks)
	fmt.Fprintf(w, "status:  %s\n", r.Final.Status())
	if r.Final.IsGameOver {
		fmt.Fprintf(w, "cause:   %s\n", r.Final.Cause)
	}
	fmt.Fprintf(w, "score:   %d\n", r.Final.Score)
	fmt.Fprintf(w, "length:  %d\n", r.Final.Len())
	fmt.Fprintf(w, "moves:   %d\n", r.Final.Moves)
}
