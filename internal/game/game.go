// Package game implements the Peanut Panic simulation: a fixed-column
// peanut falling under gravity, jumping through paired fork obstacles above
// an animated soup hazard. The package is pure logic with no rendering or
// timing; the platform layer drives it by calling Tick at a fixed rate and
// forwards player input as method calls.
package game

import (
	"math/rand"

	"github.com/crouton-games/peanut-panic/internal/config"
	"github.com/crouton-games/peanut-panic/internal/core"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Player is the peanut. Its horizontal position never changes during play;
// vertical motion is velocity integrated under gravity.
type Player struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Velocity float64
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the player's horizontal center, where the soup surface is
// sampled for the drown check.
func (p Player) CenterX() float64 {
	return p.X + p.Width/2
}

// Session owns one player's game lifecycle: the menu/playing/game-over
// phase machine, the entity state, and the scores. Operations called in a
// phase that does not accept them are silent no-ops. A Session is not safe
// for concurrent use; the driving layer serializes access.
type Session struct {
	cfg  *config.Config
	soup Soup

	phase   Phase
	player  Player
	forks   *forkManager
	bubbles *bubbleManager
	frame   uint64
	score   int

	highScore int
	skin      string

	seed      int64
	customRNG *rand.Rand
}

// Option configures a Session at construction.
type Option func(*Session)

// WithSeed fixes the RNG seed so fork placement is reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithRand injects the random source used for fork gap placement,
// overriding the seed. Tests use it to pin gap positions exactly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.customRNG = rng }
}

// WithHighScore seeds the best score carried into this session, typically
// loaded from storage.
func WithHighScore(score int) Option {
	return func(s *Session) { s.highScore = score }
}

// WithSkin sets the cosmetic skin identifier carried in snapshots. The
// simulation never branches on it.
func WithSkin(id string) Option {
	return func(s *Session) { s.skin = id }
}

// New creates a session resting in the menu phase.
func New(cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		soup:  Soup{Baseline: cfg.Soup.Baseline},
		phase: PhaseMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetEntities()
	return s
}

// resetEntities rebuilds the player, forks, and bubbles for a fresh run.
// Score and frame counter return to zero; the high score survives.
func (s *Session) resetEntities() {
	s.player = Player{
		X:      s.cfg.Player.X,
		Y:      (s.cfg.World.Height - s.cfg.Player.Height) / 2,
		Width:  s.cfg.Player.Width,
		Height: s.cfg.Player.Height,
	}
	s.forks = newForkManager(s.cfg, s.forkRNG())
	s.bubbles = newBubbleManager(s.cfg, rand.New(rand.NewSource(s.seed+1)))
	s.frame = 0
	s.score = 0
}

func (s *Session) forkRNG() *rand.Rand {
	if s.customRNG != nil {
		return s.customRNG
	}
	return rand.New(rand.NewSource(s.seed))
}

// Start begins play from the menu or game-over phase with fresh entities.
// Calling it while already playing does nothing.
func (s *Session) Start() {
	if s.phase == PhasePlaying {
		return
	}
	s.resetEntities()
	s.phase = PhasePlaying
}

// Jump overwrites the player's vertical velocity with the jump impulse.
// There is no charge-up and no cooldown; each call takes effect in full on
// the next integration. Outside the playing phase it does nothing.
func (s *Session) Jump() {
	if s.phase != PhasePlaying {
		return
	}
	s.player.Velocity = s.cfg.Physics.JumpForce
}

// ToMenu returns from the game-over screen to the menu. Calls in any other
// phase do nothing.
func (s *Session) ToMenu() {
	if s.phase != PhaseGameOver {
		return
	}
	s.phase = PhaseMenu
}

// Tick advances the simulation one frame and returns the resulting
// snapshot. Outside the playing phase the state is returned untouched.
//
// Order within a tick: integrate the player, spawn and advance forks with
// pass scoring, evaluate fork overlap, drop off-screen forks, advance
// bubbles, then resolve terminal collisions. Fork overlap is evaluated
// before the off-screen drop so a pair crossing the left boundary is still
// checked on its final tick.
func (s *Session) Tick() Snapshot {
	if s.phase != PhasePlaying {
		return s.Snapshot()
	}

	s.frame++

	s.player.Velocity += s.cfg.Physics.Gravity
	if s.player.Velocity > s.cfg.Physics.MaxFallSpeed {
		s.player.Velocity = s.cfg.Physics.MaxFallSpeed
	}
	s.player.Y += s.player.Velocity

	s.forks.maybeSpawn(s.frame)
	s.score += s.forks.advance(s.player.X)

	forkHit := s.forks.collides(s.player.Rect())
	s.forks.filter()

	s.bubbles.advance(s.frame, s.soup)

	if s.hitCeiling() || s.drowned() || forkHit {
		s.phase = PhaseGameOver
		if s.score > s.highScore {
			s.highScore = s.score
		}
	}

	return s.Snapshot()
}

// hitCeiling reports whether the player's top edge left the world upward.
func (s *Session) hitCeiling() bool {
	return s.player.Y < 0
}

// drowned reports whether the player's bottom edge sank below the live soup
// surface at the player's center column.
func (s *Session) drowned() bool {
	surface := s.soup.HeightAt(s.player.CenterX(), s.frame)
	return s.player.Y+s.player.Height > surface
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen so far, including the value seeded
// at construction.
func (s *Session) HighScore() int {
	return s.highScore
}

// Skin returns the active cosmetic skin identifier.
func (s *Session) Skin() string {
	return s.skin
}

// SetSkin swaps the cosmetic skin identifier. Purely visual.
func (s *Session) SetSkin(id string) {
	s.skin = id
}

// Soup returns the hazard surface sampler.
func (s *Session) Soup() Soup {
	return s.soup
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}
