package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// stubGame records the input of every step.
type stubGame struct {
	steps    [][]core.Action
	dts      []float64
	gameOver bool
	resets   int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState    { return core.GameState{GameOver: g.gameOver} }

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	var acts []core.Action
	for a, on := range in.Actions {
		if on {
			acts = append(acts, a)
		}
	}
	g.steps = append(g.steps, acts)
	g.dts = append(g.dts, in.DtMs)
	return core.StepResult{State: g.State()}
}

func (g *stubGame) lastStepHas(a core.Action) bool {
	if len(g.steps) == 0 {
		return false
	}
	for _, got := range g.steps[len(g.steps)-1] {
		if got == a {
			return true
		}
	}
	return false
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(g *stubGame) (Model, *time.Time) {
	clock := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.now = func() time.Time { return clock }
	return m, &clock
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg{loop: m.loop})
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{runeKey('w'), core.ActionStartFlight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionStartFlight, false},
		{runeKey('f'), core.ActionFire, false},
		{runeKey('x'), core.ActionFire, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('s'), core.ActionScores, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %s, %v; want %s, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestFlightHoldReleasesThrust(t *testing.T) {
	g := &stubGame{}
	m, clock := newTestModel(g)

	m = step(t, m, runeKey('w'))
	m = tick(t, m)
	if !g.lastStepHas(core.ActionStartFlight) {
		t.Fatal("first press should start flight")
	}

	// Auto-repeat inside the window keeps thrust on without new events.
	for i := 0; i < 5; i++ {
		*clock = clock.Add(100 * time.Millisecond)
		m = step(t, m, runeKey('w'))
		m = tick(t, m)
		if g.lastStepHas(core.ActionStartFlight) || g.lastStepHas(core.ActionStopFlight) {
			t.Fatalf("repeat %d should not send flight events: %v", i, g.steps[len(g.steps)-1])
		}
	}

	*clock = clock.Add(DefaultFlightHold + time.Millisecond)
	m = tick(t, m)
	if !g.lastStepHas(core.ActionStopFlight) {
		t.Fatal("thrust should be released after the hold window")
	}

	m = tick(t, m)
	if g.lastStepHas(core.ActionStopFlight) {
		t.Error("release should be sent once")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)

	m = step(t, m, TickMsg{loop: m.loop + 100})
	if len(g.steps) != 0 {
		t.Error("a tick from another loop must not step the game")
	}
	tick(t, m)
	if len(g.steps) != 1 {
		t.Errorf("expected one step, got %d", len(g.steps))
	}
}

func TestBackOnlyLeavesFinishedRun(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)

	m = step(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back during a live run should be passed to the game")
	}
	m = tick(t, m)
	if !g.lastStepHas(core.ActionBack) {
		t.Error("back should reach the game")
	}

	g.gameOver = true
	m = tick(t, m)
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back after game over should return to the menu")
	}
	if m.View() != "" {
		t.Error("a model leaving for the menu renders nothing")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if got := m.View(); !strings.HasPrefix(got, "stub") {
		t.Errorf("unexpected view %q", got)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '*', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "*") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestTickUsesElapsedTime(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g)
	start := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want float64
	}{
		{start, 0}, // first tick of the loop runs one nominal tick
		{start.Add(50 * time.Millisecond), 50},
		{start.Add(550 * time.Millisecond), maxFrameMs},
		{start.Add(550 * time.Millisecond), minFrameMs},
	}
	for i, tt := range tests {
		m = step(t, m, TickMsg{loop: m.loop, At: tt.at})
		if got := g.dts[i]; got != tt.want {
			t.Errorf("tick %d: dt = %v, want %v", i, got, tt.want)
		}
	}
}
