package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bakery/internal/platform/tui"
	"github.com/vovakirdan/tui-bakery/internal/registry"
	"github.com/vovakirdan/tui-bakery/internal/storage"
)

var flagResultsTUI bool

var resultsCmd = &cobra.Command{
	Use:   "results <game>",
	Short: "Show best results for a game variant",
	Long: `Display the top 10 results for the specified game variant.

Examples:
  bakery results bakery
  bakery results bakery_large
  bakery results bakery --tui`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Browse results in an interactive scoreboard")
}

func runResults(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bakery list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Bakes - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bakery play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Buns", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, entry.Buns, entry.Moves, dateStr)
	}

	fmt.Println()
	best, err := store.BestBuns(gameID)
	if err == nil {
		fmt.Printf("Best: %d buns\n", best)
	}
}
