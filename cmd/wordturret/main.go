// wordturret is a typing arcade game: words drift toward a turret and
// typing a word fires a shot that blows it apart.
//
// Usage:
//
//	wordturret play              - Play in the terminal
//	wordturret desktop           - Play in a desktop window
//	wordturret serve             - Start SSH server for remote play
//	wordturret words import <f>  - Add a word list to the corpus
//	wordturret words stats       - Show corpus statistics
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a specific config YAML
//	--dict <path>       - Use a word list file instead of the corpus
//	--db <path>         - Set corpus database path (default: ~/.wordturret/words.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDict     string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordturret",
	Short: "Word Turret - defend the turret by typing",
	Long: `Word Turret is a typing game. Words drift in from the right; type a
word to launch a projectile at it. Let three words slip past and the
turret is destroyed.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  words    - Manage the word corpus

Examples:
  wordturret play
  wordturret play --dict ./words.txt --seed 42
  wordturret desktop
  wordturret serve --ssh :2222
  wordturret words import /usr/share/dict/words`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Newline-delimited word list (overrides the corpus)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordturret/words.db", "Path to word corpus database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
}
