package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
)

// DefaultFlightHold is how long thrust stays on after the last flight key
// event. Terminals report presses and auto-repeats but never releases, so a
// held key is recognised by repeats arriving inside this window.
const DefaultFlightHold = 300 * time.Millisecond

// Bounds on the measured frame time handed to the game. A stalled terminal
// or SSH link advances the run by at most maxFrameMs per tick.
const (
	minFrameMs = 1
	maxFrameMs = 100
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	loop       int64
	lastTick   time.Time

	flightHold time.Duration
	lastFlight time.Time
	thrusting  bool

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		flightHold: DefaultFlightHold,
		loop:       newTickLoop(),
	}
}

// WithFlightHold overrides the thrust hold window.
func (m Model) WithFlightHold(d time.Duration) Model {
	if d > 0 {
		m.flightHold = d
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is fixed-size and scaled at render time, so a resize
		// never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionStartFlight:
		m.lastFlight = m.now()
		if m.thrusting {
			// Auto-repeat of a held key.
			return m, nil
		}
		m.thrusting = true
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			// Ends a standalone program; a session swaps in its menu.
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick releases expired thrust and advances the game by the time
// since the previous tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.thrusting && m.now().Sub(m.lastFlight) > m.flightHold {
		m.thrusting = false
		m.inputFrame.Set(core.ActionStopFlight)
	}

	m.inputFrame.DtMs = m.frameMs(at)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver {
		m.thrusting = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// frameMs returns the clamped ms since the previous tick, or 0 (one nominal
// tick) for the first tick of a loop and for ticks without a timestamp.
func (m *Model) frameMs(at time.Time) float64 {
	if at.IsZero() {
		return 0
	}
	prev := m.lastTick
	m.lastTick = at
	if prev.IsZero() {
		return 0
	}
	ms := float64(at.Sub(prev)) / float64(time.Millisecond)
	return core.ClampF(ms, minFrameMs, maxFrameMs)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jetpack", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game on the local terminal. It
// reports whether the player left through Back rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, flightHold time.Duration) (bool, error) {
	model := NewModel(game, cfg).WithFlightHold(flightHold)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
