package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/game"
	"github.com/vovakirdan/wordturret/internal/platform/tui"
)

var (
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  a-z        - Type; every word needing that letter next advances
  Esc        - Pause
  R/Enter    - Restart (after game over)
  Q          - Leave (after game over)
  Ctrl+C     - Quit

The terminal takes over the screen, so log output is discarded unless
--log-file is set.

Examples:
  wordturret play
  wordturret play --seed 42
  wordturret play --config ./wordturret.yaml --watch
  wordturret play --log-file /tmp/wordturret.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on restart)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "")
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "wordturret")

	cfg, source := loadGameConfig(logger)
	corpus := loadCorpus(logger, cfg.Words.MaxLength)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if flagWatch {
		if w := watchConfig(logger, source); w != nil {
			defer w.Close()
			opts = append(opts, tui.WithConfigUpdates(w.Updates))
			go logWatchErrors(logger, w)
		}
	}

	g := game.New(cfg, corpus, game.WithLogger(logger))
	if err := tui.Run(g, runtimeConfig(width, height), opts...); err != nil {
		fail("running game: %v", err)
	}
}

// watchConfig starts watching the file the config came from. With the
// embedded defaults it watches the user config path so a newly created
// file is picked up.
func watchConfig(logger *log.Logger, source string) *config.Watcher {
	path := source
	if path == config.SourceEmbedded {
		path = config.UserConfigPath()
	}
	if path == "" {
		logger.Warn("nothing to watch, config reload disabled")
		return nil
	}

	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("cannot watch config, reload disabled", "path", path, "error", err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}

func logWatchErrors(logger *log.Logger, w *config.Watcher) {
	for err := range w.Errors {
		logger.Warn("config reload failed", "error", err)
	}
}
