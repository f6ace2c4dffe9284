package config

import (
	_ "embed"
)

//go:embed defaults/peanut.yaml
var defaultYAML []byte

// Default returns the built-in configuration. The embedded YAML mirrors
// these values; this copy is the last-resort fallback if the embed cannot
// be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Physics: Physics{
			Gravity:      0.5,
			JumpForce:    -10,
			MaxFallSpeed: 12,
		},
		Forks: Forks{
			Width:         60,
			Gap:           280,
			Speed:         3.9,
			SpawnInterval: 140,
			EdgeMargin:    100,
		},
		Soup: Soup{
			Baseline: 540,
		},
		Bubbles: Bubbles{
			SpawnEvery: 12,
			Max:        40,
			MinRadius:  2,
			MaxRadius:  7,
			RiseMin:    -1.5,
			RiseMax:    -0.6,
			PopMargin:  2,
		},
	}
}
