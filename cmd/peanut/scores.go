package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crouton-games/peanut-panic/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the best score recorded on this machine.

Examples:
  peanut scores
  peanut scores --db ./peanut.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	highScore, err := store.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}

	if highScore == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Run 'peanut play' to set the first one!")
		return
	}

	fmt.Printf("Best: %d\n", highScore)
}
