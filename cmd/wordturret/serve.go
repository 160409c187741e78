package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordturret/internal/core"
	"github.com/vovakirdan/wordturret/internal/game"
	"github.com/vovakirdan/wordturret/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Word Turret SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. All sessions share the
same config and word list, loaded once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordturret/host_key

Examples:
  wordturret serve                           # Listen on :23234 with auto-generated key
  wordturret serve --ssh :2222               # Listen on port 2222
  wordturret serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "wordturret-ssh")

	cfg, _ := loadGameConfig(logger)
	corpus := loadCorpus(logger, cfg.Words.MaxLength)

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS

	newGame := func(l *log.Logger) core.Game {
		return game.New(cfg, corpus, game.WithLogger(l))
	}

	server, err := tui.NewSSHServer(serverCfg, newGame, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Word Turret SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
