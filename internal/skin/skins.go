package skin

import "github.com/crouton-games/peanut-panic/internal/core"

// Register the built-in skins
func init() {
	Register(Skin{
		ID:    "classic",
		Title: "Classic Peanut",
		Glyph: '●',
		Color: core.ColorYellow,
	})
	Register(Skin{
		ID:    "cashew",
		Title: "Cashew",
		Glyph: '◗',
		Color: core.ColorOrange,
	})
	Register(Skin{
		ID:    "almond",
		Title: "Almond",
		Glyph: '◆',
		Color: core.ColorWhite,
	})
	Register(Skin{
		ID:    "pistachio",
		Title: "Pistachio",
		Glyph: '◉',
		Color: core.ColorBrightGreen,
	})
}
