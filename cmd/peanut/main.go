// peanut is a terminal arcade game: a falling peanut hops through fork
// gaps above a pot of churning soup.
//
// Usage:
//
//	peanut play              - Play in the current terminal
//	peanut serve             - Start SSH server for remote play
//	peanut scores            - Show the stored high score
//	peanut skins             - List available skins
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.peanut-panic/peanut.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "peanut",
	Short: "Peanut Panic - dodge the forks, stay out of the soup",
	Long: `Peanut Panic is a terminal arcade game. A peanut falls under gravity;
tap to hop through the gaps between paired fork tines and stay clear of
the soup churning below. One point per fork pair cleared.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - Show the stored high score
  skins    - List available skins

Examples:
  peanut play
  peanut play --skin cashew
  peanut serve --ssh :2222
  peanut scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.peanut-panic/peanut.db", "Path to settings database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
