package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crouton-games/peanut-panic/internal/skin"
	"github.com/crouton-games/peanut-panic/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List available skins",
	Long:  `Shows all registered peanut skins. The active one is marked with *.`,
	Run:   runSkins,
}

func runSkins(cmd *cobra.Command, args []string) {
	skins := skin.List()

	// The stored preference, if we can read it
	active := skin.DefaultID
	if store, err := storage.Open(flagDBPath); err == nil {
		if stored, skinErr := store.Skin(); skinErr == nil && skin.Exists(stored) {
			active = stored
		}
		store.Close()
	}

	fmt.Println("Available skins:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("    %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("    %-*s  %s\n", maxIDLen, "--", "-----")

	// Print skins
	for _, s := range skins {
		marker := "  "
		if s.ID == active {
			marker = "* "
		}
		fmt.Printf("  %s%-*s  %c %s\n", marker, maxIDLen, s.ID, s.Glyph, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'peanut play --skin <id>' to play with a skin.")
}
