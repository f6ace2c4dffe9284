package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crouton-games/peanut-panic/internal/config"
	"github.com/crouton-games/peanut-panic/internal/core"
	"github.com/crouton-games/peanut-panic/internal/game"
	"github.com/crouton-games/peanut-panic/internal/platform/tui"
	"github.com/crouton-games/peanut-panic/internal/skin"
	"github.com/crouton-games/peanut-panic/internal/storage"
)

var (
	flagConfig string
	flagSkin   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a session in the current terminal.

Controls:
  Space/Up/W - Jump
  Enter      - Start / play again
  C          - Cycle skin (in menu)
  Esc/B      - Back to menu (after game over)
  Q/Ctrl+C   - Quit

Examples:
  peanut play
  peanut play --skin pistachio
  peanut play --seed 42
  peanut play --config ./my-peanut.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Skin to play with (see 'peanut skins')")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open settings storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open settings database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	opts := []game.Option{game.WithSeed(rt.Seed)}
	if store != nil {
		if hs, hsErr := store.HighScore(); hsErr == nil {
			opts = append(opts, game.WithHighScore(hs))
		}
	}

	// The flag beats the stored preference
	skinID := flagSkin
	if skinID == "" && store != nil {
		if stored, skinErr := store.Skin(); skinErr == nil {
			skinID = stored
		}
	}
	opts = append(opts, game.WithSkin(skin.Parse(skinID).ID))

	session := game.New(&cfg, opts...)

	runErr := tui.Run(session, store, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
