package game

import (
	"math/rand"

	"github.com/crouton-games/peanut-panic/internal/config"
	"github.com/crouton-games/peanut-panic/internal/core"
)

// Fork is one paired obstacle: a tine descending from the ceiling and a tine
// rising from the floor, separated by a fixed vertical gap. GapY is the
// world y-coordinate of the gap's top edge. Both tines share the same x and
// move together.
type Fork struct {
	X      float64
	GapY   float64
	Passed bool
}

// TopRect returns the bounding box of the ceiling tine.
func (f Fork) TopRect(width float64) core.Rect {
	return core.NewRect(f.X, 0, width, f.GapY)
}

// BottomRect returns the bounding box of the floor tine.
func (f Fork) BottomRect(width, gap, worldH float64) core.Rect {
	top := f.GapY + gap
	return core.NewRect(f.X, top, width, worldH-top)
}

// forkManager owns the active fork pairs, their spawn cadence, and the
// randomized gap placement.
type forkManager struct {
	forks []Fork
	rng   *rand.Rand
	cfg   *config.Config
}

func newForkManager(cfg *config.Config, rng *rand.Rand) *forkManager {
	return &forkManager{
		forks: make([]Fork, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// maybeSpawn emits one fork pair at the right world edge when the frame
// lands on the spawn cadence. The gap's top edge is uniform in
// [EdgeMargin, worldHeight-Gap-EdgeMargin) so both tines keep a minimum
// length.
func (fm *forkManager) maybeSpawn(frame uint64) {
	if frame%uint64(fm.cfg.Forks.SpawnInterval) != 0 {
		return
	}
	minY := fm.cfg.Forks.EdgeMargin
	maxY := fm.cfg.World.Height - fm.cfg.Forks.Gap - fm.cfg.Forks.EdgeMargin
	gapY := minY + fm.rng.Float64()*(maxY-minY)
	fm.forks = append(fm.forks, Fork{X: fm.cfg.World.Width, GapY: gapY})
}

// advance moves every fork left by the fixed speed and flags pairs whose
// right edge has moved strictly left of playerX. Returns the number of
// newly passed pairs.
func (fm *forkManager) advance(playerX float64) int {
	passed := 0
	width := fm.cfg.Forks.Width
	for i := range fm.forks {
		fm.forks[i].X -= fm.cfg.Forks.Speed
		if !fm.forks[i].Passed && fm.forks[i].X+width < playerX {
			fm.forks[i].Passed = true
			passed++
		}
	}
	return passed
}

// collides reports whether the player's box overlaps any tine of any active
// fork, including forks about to leave through the left edge.
func (fm *forkManager) collides(player core.Rect) bool {
	width := fm.cfg.Forks.Width
	gap := fm.cfg.Forks.Gap
	worldH := fm.cfg.World.Height
	for _, f := range fm.forks {
		if player.Intersects(f.TopRect(width)) {
			return true
		}
		if player.Intersects(f.BottomRect(width, gap, worldH)) {
			return true
		}
	}
	return false
}

// filter drops forks whose right edge has crossed the left world boundary.
func (fm *forkManager) filter() {
	active := fm.forks[:0]
	for _, f := range fm.forks {
		if f.X+fm.cfg.Forks.Width > 0 {
			active = append(active, f)
		}
	}
	fm.forks = active
}
