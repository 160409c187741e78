package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordturret/internal/game"
	"github.com/vovakirdan/wordturret/internal/platform/gui"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The window matches the playfield
size from the config (800x600 by default).

Controls are the same as for play.

Examples:
  wordturret desktop
  wordturret desktop --fps 30 --dict ./words.txt`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func runDesktop(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "wordturret")

	cfg, _ := loadGameConfig(logger)
	corpus := loadCorpus(logger, cfg.Words.MaxLength)

	g := game.New(cfg, corpus, game.WithLogger(logger))
	rc := runtimeConfig(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	app := gui.NewApp(g, rc, gui.GlyphScale(cfg.Text), logger)

	if err := gui.Run(app); err != nil {
		fail("running game: %v", err)
	}
}
