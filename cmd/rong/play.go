package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/platform/tui"
	"github.com/vovakirdan/rong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: rong).

Controls:
  W/S        - Left racket up/down
  Up/Down    - Right racket up/down
  P          - Pause
  R          - Restart
  ?          - Show racket keys
  Q/Esc      - Quit

Examples:
  rong play
  rong play rong-rackets
  rong play --right-bound height
  rong play --config ./my-rong.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger("rong")
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		logger.Fatal("unknown game, run 'rong list' to see available games", "game", gameID)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Display.FPS
	rt.Seed = seed()

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	} else {
		logger.Debug("cannot read terminal size, using defaults", "error", termErr)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	logger.Info("starting", "game", gameID, "seed", rt.Seed, "fps", rt.TickRate,
		"cells", rt.ScreenW, "rows", rt.ScreenH, "right_bound", cfg.Ball.RightBound)

	result, runErr := tui.Run(game, cfg, rt)
	if runErr != nil {
		logger.Fatal("game aborted", "error", runErr, "frames", result.Frames)
	}

	logger.Info("game over", "left", result.Left, "right", result.Right, "frames", result.Frames)
}
