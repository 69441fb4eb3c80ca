// bakery is a TUI puzzle kitchen: mix water and flour on a falling
// board, bake buns and get them to the collectors.
//
// Usage:
//
//	bakery list              - List available game variants
//	bakery play <game>       - Play a variant
//	bakery serve             - Start SSH server for remote play
//	bakery results <game>    - Show best results for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bakery/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-bakery/internal/games/bakery"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bakery",
	Short: "Bun Kitchen - a falling-board baking puzzle in your terminal",
	Long: `Bun Kitchen is a terminal puzzle game. Ingredients fall down the
board; put water on flour to bake a bun, season with flavourings, and
land buns on the collectors before the spawners clog up.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  results  - View best results

Examples:
  bakery list
  bakery play bakery
  bakery play bakery_large --seed 42
  bakery serve --ssh :2222
  bakery results bakery`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bakery/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}
