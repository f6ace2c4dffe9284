package game

import (
	"math"
	"math/rand"

	"github.com/crouton-games/peanut-panic/internal/config"
)

// Horizontal wobble applied to rising bubbles, and the band below the
// baseline where new bubbles appear.
const (
	wobbleFreq  = 0.12
	wobbleAmp   = 0.25
	spawnDepth  = 20.0
	spawnSpread = 20.0
)

// Bubble is a purely cosmetic particle drifting up through the soup. It
// never interacts with the player or the forks.
type Bubble struct {
	X, Y     float64
	Radius   float64
	Velocity float64 // upward drift per tick, negative
	Phase    float64 // horizontal wobble offset in radians
}

// bubbleManager owns the active bubbles and their spawn cadence.
type bubbleManager struct {
	bubbles []Bubble
	rng     *rand.Rand
	cfg     *config.Config
}

func newBubbleManager(cfg *config.Config, rng *rand.Rand) *bubbleManager {
	return &bubbleManager{
		bubbles: make([]Bubble, 0, cfg.Bubbles.Max),
		rng:     rng,
		cfg:     cfg,
	}
}

// advance runs one particle tick: spawn on cadence while under the cap,
// rise and wobble every bubble, retire the ones that cleared the surface.
// Retired bubbles are gone for good; only the spawn cadence creates new ones.
func (bm *bubbleManager) advance(frame uint64, soup Soup) {
	c := bm.cfg.Bubbles
	if frame%uint64(c.SpawnEvery) == 0 && len(bm.bubbles) < c.Max {
		bm.spawn()
	}

	alive := bm.bubbles[:0]
	for _, b := range bm.bubbles {
		b.Y += b.Velocity
		b.X += math.Sin(float64(frame)*wobbleFreq+b.Phase) * wobbleAmp
		if b.Y+b.Radius < soup.HeightAt(b.X, frame)-c.PopMargin {
			continue // popped just above the surface
		}
		alive = append(alive, b)
	}
	bm.bubbles = alive
}

// spawn creates one bubble submerged below the resting baseline with
// randomized size, rise speed, and wobble phase.
func (bm *bubbleManager) spawn() {
	c := bm.cfg.Bubbles
	bm.bubbles = append(bm.bubbles, Bubble{
		X:        bm.rng.Float64() * bm.cfg.World.Width,
		Y:        bm.cfg.Soup.Baseline + spawnDepth + bm.rng.Float64()*spawnSpread,
		Radius:   c.MinRadius + bm.rng.Float64()*(c.MaxRadius-c.MinRadius),
		Velocity: c.RiseMin + bm.rng.Float64()*(c.RiseMax-c.RiseMin),
		Phase:    bm.rng.Float64() * 2 * math.Pi,
	})
}
