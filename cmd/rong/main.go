// rong is a two-player Pong for the terminal.
//
// Usage:
//
//	rong play [variant]      - Play (default variant: rong)
//	rong list                - List playable variants
//	rong sim [variant]       - Run a game headless and print the result
//	rong serve               - Start SSH server for remote play
//	rong config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible serves
//	--config <path>      - Load settings from a YAML or TOML file
//	--right-bound <mode> - Right-edge scoring test: width or height
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rong/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/rong/internal/games/rong"
)

const defaultGameID = "rong"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagRightBound string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rong",
	Short: "Rong - two-player Pong in your terminal",
	Long: `Rong is a two-player Pong for the terminal. Both players share one
keyboard: the left racket moves with W/S, the right racket with the arrow keys.
The ball passes through rackets; a ball leaving the screen sideways scores for
the other player.

Available commands:
  play     - Play a game
  list     - Show all variants
  sim      - Run a game headless
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  rong play
  rong play rong-ball
  rong sim --frames 3600 --seed 42
  rong serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagRightBound, "right-bound", "", "Right-edge scoring test: width or height (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagRightBound != "" {
		cfg.Ball.RightBound = config.RightBound(flagRightBound)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// gameArg returns the variant named on the command line.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGameID
}
