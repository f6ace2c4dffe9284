package tui

import (
	"strings"
	"testing"

	"github.com/crouton-games/peanut-panic/internal/config"
	"github.com/crouton-games/peanut-panic/internal/core"
	"github.com/crouton-games/peanut-panic/internal/game"
)

// testScreenAndConfig returns an 80x23 screen (a 24-row terminal minus the
// help bar) and the default world config, giving a 0.1 horizontal and
// 23/600 vertical cell scale.
func testScreenAndConfig() (*core.Screen, config.Config) {
	return core.NewScreen(80, 23), config.Default()
}

func playingSnapshot() game.Snapshot {
	return game.Snapshot{
		Phase:  game.PhasePlaying,
		Player: game.Player{X: 100, Y: 280, Width: 40, Height: 40},
		Skin:   "classic",
	}
}

func TestDrawSnapshotSoupColumns(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}

	DrawSnapshot(dst, playingSnapshot(), soup, &cfg)

	// Every column reads sky, then exactly one crest cell, then body down
	// to the bottom edge.
	for x := 0; x < dst.Width(); x++ {
		crest := -1
		for y := 1; y < dst.Height(); y++ { // Skip the HUD row
			if dst.Get(x, y) == soupCrestChar {
				crest = y
				break
			}
		}
		if crest == -1 {
			t.Fatalf("Column %d: no soup crest found", x)
		}
		for y := crest + 1; y < dst.Height(); y++ {
			if dst.Get(x, y) != soupBodyChar {
				t.Errorf("Column %d row %d: expected soup body, got %q", x, y, dst.Get(x, y))
			}
		}
	}
}

func TestDrawSnapshotPlayerUsesSkin(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Skin = "pistachio"

	DrawSnapshot(dst, snap, soup, &cfg)

	// Player box 100..140 x 280..320 in world units projects to
	// cols 10..13, rows 10..11.
	cell := dst.GetCell(10, 10)
	if cell.Rune != '◉' {
		t.Errorf("Expected pistachio glyph at player cell, got %q", cell.Rune)
	}
	if cell.Color != core.ColorBrightGreen {
		t.Errorf("Expected pistachio color, got %d", cell.Color)
	}
	if dst.Get(13, 11) != '◉' {
		t.Error("Expected player box to cover its bottom-right cell")
	}
	if dst.Get(14, 10) == '◉' {
		t.Error("Expected no player glyph right of the box")
	}
}

func TestDrawSnapshotUnknownSkinFallsBack(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Skin = "walnut"

	DrawSnapshot(dst, snap, soup, &cfg)

	if dst.Get(10, 10) != '●' {
		t.Errorf("Expected classic glyph for unknown skin, got %q", dst.Get(10, 10))
	}
}

func TestDrawSnapshotForkTinesAndCaps(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Forks = []game.ForkView{{
		Top:    core.NewRect(400, 0, 60, 160),
		Bottom: core.NewRect(400, 440, 60, 160),
	}}

	DrawSnapshot(dst, snap, soup, &cfg)

	// World x 400..460 -> cols 40..45. Top tine 0..160 -> rows 0..5 with
	// the cap on row 5; bottom tine 440..600 -> rows 16..22 with the cap
	// on row 16.
	if dst.Get(40, 0) != tineChar {
		t.Errorf("Expected top tine at (40,0), got %q", dst.Get(40, 0))
	}
	if dst.Get(40, 5) != tineCapTop {
		t.Errorf("Expected top tine cap at (40,5), got %q", dst.Get(40, 5))
	}
	if dst.Get(40, 6) == tineChar {
		t.Error("Expected open gap below the top tine cap")
	}
	if dst.Get(40, 16) != tineCapBottom {
		t.Errorf("Expected bottom tine cap at (40,16), got %q", dst.Get(40, 16))
	}
	if dst.Get(40, 20) != tineChar {
		t.Errorf("Expected bottom tine body at (40,20), got %q", dst.Get(40, 20))
	}
	if dst.Get(46, 0) == tineChar {
		t.Error("Expected no tine right of the fork")
	}
}

func TestDrawSnapshotBubbleGlyphs(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Bubbles = []game.Bubble{
		{X: 100, Y: 560, Radius: 2.5},
		{X: 200, Y: 560, Radius: 4.0},
		{X: 300, Y: 560, Radius: 6.0},
	}

	DrawSnapshot(dst, snap, soup, &cfg)

	if dst.Get(10, 21) != bubbleSmall {
		t.Errorf("Expected small bubble glyph, got %q", dst.Get(10, 21))
	}
	if dst.Get(20, 21) != bubbleMedium {
		t.Errorf("Expected medium bubble glyph, got %q", dst.Get(20, 21))
	}
	if dst.Get(30, 21) != bubbleLarge {
		t.Errorf("Expected large bubble glyph, got %q", dst.Get(30, 21))
	}
}

func TestDrawSnapshotHUD(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Score = 2
	snap.HighScore = 9

	DrawSnapshot(dst, snap, soup, &cfg)

	top := dst.Row(0)
	if !strings.Contains(top, "Score: 2") {
		t.Errorf("Expected score in HUD row, got %q", top)
	}
	if !strings.Contains(top, "Best: 9") {
		t.Errorf("Expected best score in HUD row, got %q", top)
	}
}

func TestDrawSnapshotMenuOverlay(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Phase = game.PhaseMenu

	DrawSnapshot(dst, snap, soup, &cfg)

	out := dst.String()
	if !strings.Contains(out, "PEANUT PANIC") {
		t.Error("Expected menu title on screen")
	}
	if !strings.Contains(out, "Classic Peanut") {
		t.Error("Expected active skin name on menu screen")
	}
}

func TestDrawSnapshotGameOverOverlay(t *testing.T) {
	dst, cfg := testScreenAndConfig()
	soup := game.Soup{Baseline: cfg.Soup.Baseline}
	snap := playingSnapshot()
	snap.Phase = game.PhaseGameOver
	snap.Terminal = true
	snap.Score = 3
	snap.HighScore = 7

	DrawSnapshot(dst, snap, soup, &cfg)

	out := dst.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Expected game over title on screen")
	}
	if !strings.Contains(out, "Score: 3   Best: 7") {
		t.Error("Expected final scores on game over screen")
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "AB")
	s.DrawTextColored(0, 1, "CD", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "AB") {
		t.Errorf("Expected first line to contain AB, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "CD") {
		t.Errorf("Expected second line to contain CD, got %q", lines[1])
	}
}
