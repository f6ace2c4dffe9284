package game

import "github.com/crouton-games/peanut-panic/internal/core"

// ForkView is one fork pair expanded into its two collision boxes for
// rendering and inspection.
type ForkView struct {
	Top    core.Rect
	Bottom core.Rect
	Scored bool
}

// Snapshot is a read-only copy of the visible session state. The slices are
// owned by the snapshot, so it stays valid across later ticks.
type Snapshot struct {
	Phase     Phase
	Player    Player
	Forks     []ForkView
	Bubbles   []Bubble
	Score     int
	HighScore int
	Frame     uint64
	Terminal  bool
	Skin      string
}

// Snapshot builds a point-in-time copy of the session state.
func (s *Session) Snapshot() Snapshot {
	width := s.cfg.Forks.Width
	gap := s.cfg.Forks.Gap
	worldH := s.cfg.World.Height

	forks := make([]ForkView, len(s.forks.forks))
	for i, f := range s.forks.forks {
		forks[i] = ForkView{
			Top:    f.TopRect(width),
			Bottom: f.BottomRect(width, gap, worldH),
			Scored: f.Passed,
		}
	}

	bubbles := make([]Bubble, len(s.bubbles.bubbles))
	copy(bubbles, s.bubbles.bubbles)

	return Snapshot{
		Phase:     s.phase,
		Player:    s.player,
		Forks:     forks,
		Bubbles:   bubbles,
		Score:     s.score,
		HighScore: s.highScore,
		Frame:     s.frame,
		Terminal:  s.phase == PhaseGameOver,
		Skin:      s.skin,
	}
}
