package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crouton-games/peanut-panic/internal/core"
	"github.com/crouton-games/peanut-panic/internal/game"
	"github.com/crouton-games/peanut-panic/internal/skin"
	"github.com/crouton-games/peanut-panic/internal/storage"
)

// Model is the Bubble Tea model for a Peanut Panic session. The session's
// phase machine decides what each key does; the model only translates
// messages into session calls and draws snapshots.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	saved    bool // Whether the high score has been saved for the current game over
	quitting bool
}

// NewModel creates a new Bubble Tea model around a game session.
func NewModel(session *game.Session, store *storage.Store, rt core.RuntimeConfig) Model {
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH)),
		store:   store,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// playfieldHeight reserves the bottom terminal row for the help bar.
func playfieldHeight(h int) int {
	return core.Max(1, h-1)
}

// Init starts the tick loop. Ticks outside the playing phase are no-ops in
// the session, so the loop simply runs for the whole program lifetime.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch m.session.Phase() {
	case game.PhaseMenu:
		switch {
		case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Jump):
			m.saved = false
			m.session.Start()
		case key.Matches(msg, m.keys.Skin):
			m.cycleSkin()
		}

	case game.PhasePlaying:
		if key.Matches(msg, m.keys.Jump) {
			m.session.Jump()
		}

	case game.PhaseGameOver:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.saved = false
			m.session.Start()
		case key.Matches(msg, m.keys.Menu):
			m.session.ToMenu()
		}
	}

	return m, nil
}

// handleResize adjusts the projection. The simulation itself runs in fixed
// world units and is untouched by terminal size changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation while a run is live and saves the
// high score once per game over. The message loop keeps ticking in the
// other phases so a later Start resumes without rearming anything, but
// the simulation itself stays frozen.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() == game.PhasePlaying {
		snap := m.session.Tick()

		if snap.Terminal && !m.saved {
			if m.store != nil && snap.HighScore > 0 {
				//nolint:errcheck // Best-effort save, session continues regardless
				m.store.SaveHighScore(snap.HighScore)
			}
			m.saved = true
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// cycleSkin switches to the next registered skin and stores the preference.
func (m *Model) cycleSkin() {
	skins := skin.List()
	if len(skins) == 0 {
		return
	}

	current := skin.Parse(m.session.Skin())
	next := skins[0]
	for i, s := range skins {
		if s.ID == current.ID {
			next = skins[(i+1)%len(skins)]
			break
		}
	}

	m.session.SetSkin(next.ID)
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveSkin(next.ID)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	snap := m.session.Snapshot()
	DrawSnapshot(m.screen, snap, m.session.Soup(), m.session.Config())

	dir := filepath.Join(os.Getenv("HOME"), ".peanut-panic", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("peanut_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the playfield with the help bar on the last row.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	DrawSnapshot(m.screen, snap, m.session.Soup(), m.session.Config())

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *storage.Store, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, store, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
