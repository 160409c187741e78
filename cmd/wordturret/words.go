package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordturret/internal/storage"
)

var flagClearYes bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word corpus",
	Long: `The word corpus is a SQLite database of words the game draws from.
It is used unless --dict is given. When it is empty the built-in list is
used instead.`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import newline-delimited word lists",
	Long: `Add words to the corpus. Blank lines, lines starting with # and
entries containing spaces are skipped; words are lower-cased. Words that
are already stored are ignored.

Examples:
  wordturret words import /usr/share/dict/words
  wordturret words import easy.txt hard.txt --db ./words.db`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWordsImport,
}

var wordsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Args:  cobra.NoArgs,
	Run:   runWordsStats,
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every word from the corpus",
	Args:  cobra.NoArgs,
	Run:   runWordsClear,
}

func init() {
	wordsClearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm deleting every word")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsStatsCmd)
	wordsCmd.AddCommand(wordsClearCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening word corpus: %v", err)
	}
	return store
}

func runWordsImport(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			fail("%v", err)
		}
		res, err := store.ImportWords(f)
		f.Close()
		if err != nil {
			fail("importing %s: %v", path, err)
		}
		fmt.Printf("%s: %s words read, %s new\n",
			path, humanize.Comma(int64(res.Read)), humanize.Comma(int64(res.Inserted)))
	}
}

func runWordsStats(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "wordturret")
	cfg, _ := loadGameConfig(logger)

	store := openStore()
	defer store.Close()

	total, err := store.Count(0)
	if err != nil {
		fail("%v", err)
	}
	if total == 0 {
		fmt.Println("The word corpus is empty.")
		fmt.Println("Import a list with 'wordturret words import <file>'.")
		return
	}

	playable, err := store.Count(cfg.Words.MaxLength)
	if err != nil {
		fail("%v", err)
	}
	lengths, err := store.Lengths()
	if err != nil {
		fail("%v", err)
	}
	last, err := store.LastImport()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Word corpus - %s\n", flagDBPath)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Words:       %s\n", humanize.Comma(int64(total)))
	fmt.Printf("Playable:    %s (max length %d)\n", humanize.Comma(int64(playable)), cfg.Words.MaxLength)
	if !last.IsZero() {
		fmt.Printf("Last import: %s\n", humanize.Time(last))
	}
	fmt.Println()

	fmt.Printf("%-8s %10s\n", "Length", "Words")
	fmt.Println(strings.Repeat("-", 19))
	for _, lc := range lengths {
		fmt.Printf("%-8d %10s\n", lc.Length, humanize.Comma(int64(lc.Count)))
	}
}

func runWordsClear(_ *cobra.Command, _ []string) {
	if !flagClearYes {
		fail("refusing to delete the corpus without --yes")
	}

	store := openStore()
	defer store.Close()

	if err := store.Clear(); err != nil {
		fail("%v", err)
	}
	fmt.Println("Word corpus cleared.")
}
