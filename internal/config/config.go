// Package config provides YAML-based configuration loading for the
// simulation. Values here are world units, not screen cells; the renderer
// projects them onto whatever terminal size it gets.
package config

// Config contains all tunables for a game session.
type Config struct {
	World   World   `yaml:"world"`
	Player  Player  `yaml:"player"`
	Physics Physics `yaml:"physics"`
	Forks   Forks   `yaml:"forks"`
	Soup    Soup    `yaml:"soup"`
	Bubbles Bubbles `yaml:"bubbles"`
}

// World defines the fixed logical playfield dimensions.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the peanut's fixed column and body size.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the vertical motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Forks defines the paired obstacle parameters.
type Forks struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	EdgeMargin    float64 `yaml:"edge_margin"`
}

// Soup defines the hazard surface resting height.
type Soup struct {
	Baseline float64 `yaml:"baseline"`
}

// Bubbles defines the cosmetic particle parameters.
type Bubbles struct {
	SpawnEvery int     `yaml:"spawn_every"`
	Max        int     `yaml:"max"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	RiseMin    float64 `yaml:"rise_min"`
	RiseMax    float64 `yaml:"rise_max"`
	PopMargin  float64 `yaml:"pop_margin"`
}
