package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rong/internal/platform/tui"
)

var (
	serveSSHAddr     string
	serveHostKey     string
	serveIdleTimeout time.Duration
	serveGame        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets players connect and play remotely.

Each SSH session gets its own game. Both players of a session share the
connecting terminal's keyboard.

Players connect using:
  ssh -p 23234 localhost

Examples:
  rong serve
  rong serve --ssh :2222
  rong serve --game rong-ball --host-key ./host_key`,
	Run: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&serveSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", "", "Path to SSH host key (default: ~/.rong/host_key)")
	serveCmd.Flags().DurationVar(&serveIdleTimeout, "idle-timeout", def.IdleTimeout, "Idle connection timeout")
	serveCmd.Flags().StringVar(&serveGame, "game", def.GameID, "Variant every session plays")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := newLogger("rong serve")

	gameCfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     serveSSHAddr,
		HostKeyPath: serveHostKey,
		IdleTimeout: serveIdleTimeout,
		GameID:      serveGame,
		Game:        gameCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Fatal("cannot create SSH server", "error", err)
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
