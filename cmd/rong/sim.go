package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/frame"
	"github.com/vovakirdan/rong/internal/games/rong"
	"github.com/vovakirdan/rong/internal/platform/tui"
	"github.com/vovakirdan/rong/internal/registry"
)

var (
	simFrames int
	simDT     time.Duration
	simCols   int
	simRows   int
	simLeft   string
	simRight  string
	simShow   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a game headless and print the result",
	Long: `Runs the given variant for a fixed number of frames without a terminal
UI, then prints the score and, with --show, the last rendered frame.

Rackets can be held in one direction for the whole run with --left and
--right (up, down or none).

Examples:
  rong sim --frames 600 --seed 7
  rong sim rong-rackets --left up --right down --show
  rong sim --right-bound height --frames 3600`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&simFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().DurationVar(&simDT, "dt", time.Second/60, "Time step per frame")
	simCmd.Flags().IntVar(&simCols, "cols", 80, "Playfield width in cells")
	simCmd.Flags().IntVar(&simRows, "rows", 30, "Playfield height in cells")
	simCmd.Flags().StringVar(&simLeft, "left", "none", "Held left racket key: up, down or none")
	simCmd.Flags().StringVar(&simRight, "right", "none", "Held right racket key: up, down or none")
	simCmd.Flags().BoolVar(&simShow, "show", false, "Print the last rendered frame")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger("rong sim")
	gameID := gameArg(args)

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	controls, err := simControls(simLeft, simRight)
	if err != nil {
		logger.Fatal("bad racket flag", "error", err)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	canvas := tui.NewCanvas(simCols, simRows, cfg.Display.CellWidth, cfg.Display.CellHeight)
	w, h := canvas.Size()
	s := seed()
	driver := frame.NewDriver(game, w, h, s)

	script := &frame.Script{
		Count:    simFrames,
		DT:       simDT,
		Width:    w,
		Height:   h,
		Controls: func(int) core.Controls { return controls },
	}

	logger.Debug("simulating", "game", gameID, "frames", simFrames, "dt", simDT, "seed", s)
	if err := driver.Run(context.Background(), script, canvas); err != nil {
		logger.Fatal("simulation failed", "error", err, "frame", driver.Frames())
	}

	if simShow {
		fmt.Println(canvas.Front().String())
	}

	left, right := game.Score()
	fmt.Printf("game:   %s\n", game.ID())
	fmt.Printf("seed:   %d\n", s)
	fmt.Printf("frames: %d\n", driver.Frames())
	fmt.Printf("score:  %d - %d\n", left, right)

	if g, ok := game.(*rong.Game); ok {
		st := g.State()
		fmt.Printf("left:   (%.1f, %.1f)\n", st.Left.X, st.Left.Y)
		fmt.Printf("right:  (%.1f, %.1f)\n", st.Right.X, st.Right.Y)
		if g.Params().Ball {
			fmt.Printf("ball:   (%.1f, %.1f) v=(%.0f, %.0f)\n", st.Ball.X, st.Ball.Y, st.BallVel.X, st.BallVel.Y)
		}
	}
}

// simControls converts --left/--right values into held controls.
func simControls(left, right string) (core.Controls, error) {
	var c core.Controls
	var err error
	if c.LeftUp, c.LeftDown, err = direction(left); err != nil {
		return c, fmt.Errorf("--left: %w", err)
	}
	if c.RightUp, c.RightDown, err = direction(right); err != nil {
		return c, fmt.Errorf("--right: %w", err)
	}
	return c, nil
}

func direction(s string) (up, down bool, err error) {
	switch s {
	case "", "none":
		return false, false, nil
	case "up":
		return true, false, nil
	case "down":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown direction %q (want up, down or none)", s)
	}
}
