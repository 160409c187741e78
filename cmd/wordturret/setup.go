package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
	"github.com/vovakirdan/wordturret/internal/dictionary"
	"github.com/vovakirdan/wordturret/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
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

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadGameConfig loads the game configuration or exits.
// It returns the config and the file it came from.
func loadGameConfig(logger *log.Logger) (config.Config, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("config loaded", "source", source)
	return cfg, source
}

// loadCorpus picks the word list: --dict if given, otherwise the imported
// corpus, otherwise the built-in list.
func loadCorpus(logger *log.Logger, maxLen int) *dictionary.List {
	if flagDict != "" {
		list, err := dictionary.Load(flagDict)
		if err != nil {
			fail("%v", err)
		}
		logger.Info("dictionary loaded", "path", flagDict, "words", humanize.Comma(int64(list.Len())))
		return list
	}

	list, err := loadStoredCorpus(logger, maxLen)
	switch {
	case err == nil:
		return list
	case errors.Is(err, dictionary.ErrEmpty):
		logger.Debug("corpus is empty, using built-in words", "db", flagDBPath)
	default:
		logger.Warn("could not read word corpus, using built-in words", "error", err)
	}
	return dictionary.Default()
}

func loadStoredCorpus(logger *log.Logger, maxLen int) (*dictionary.List, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	list, err := store.List()
	if err != nil {
		return nil, err
	}

	fit, err := store.Count(maxLen)
	if err != nil {
		return nil, err
	}
	if fit == 0 {
		logger.Warn("no stored word fits max_length, every spawn will be skipped", "max_length", maxLen)
	}

	logger.Info("corpus loaded",
		"db", flagDBPath,
		"words", humanize.Comma(int64(list.Len())),
		"playable", humanize.Comma(int64(fit)),
	)
	return list, nil
}
