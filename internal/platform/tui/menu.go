package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
	"github.com/vovakirdan/jetpack-arcade/internal/storage"
)

const maxPilotName = 16

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	ModeID string
	Title  string
	Best   int // Best score recorded for the mode, 0 if none
}

// MenuModel is the Bubble Tea model for the mode picker. It also lets the
// pilot change the name written to the scoreboard.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	pilot          core.Pilot
	saveName       func(string) error // nil disables renaming
	naming         bool
	nameInput      textinput.Model
	status         string
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model. saveName persists a new pilot
// name; pass nil when the name is fixed.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, pilot core.Pilot, saveName func(string) error) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	for _, g := range modes {
		item := MenuItem{ModeID: g.ID, Title: g.Title}
		if store != nil {
			if top, err := store.TopScores(g.ID, 1); err == nil && len(top) > 0 {
				item.Best = top[0].Score
			}
		}
		items = append(items, item)
	}

	// The default mode comes first.
	for i, it := range items {
		if it.ModeID == "classic" && i > 0 {
			items[0], items[i] = items[i], items[0]
		}
	}

	ti := textinput.New()
	ti.Placeholder = pilot.Name
	ti.CharLimit = maxPilotName
	ti.Width = maxPilotName + 1
	ti.Prompt = "Pilot name: "

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		pilot:     pilot,
		saveName:  saveName,
		nameInput: ti,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNaming(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "n" && m.saveName != nil {
		m.naming = true
		m.status = ""
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// handleNaming feeds keys to the name prompt until it is confirmed or
// cancelled.
func (m MenuModel) handleNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		m.naming = false
		m.nameInput.Blur()
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		if err := m.saveName(name); err != nil {
			m.status = "Could not save name"
			return m, nil
		}
		m.pilot.Name = name
		m.nameInput.Placeholder = name
		m.status = "Welcome aboard, " + name
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("J E T P A C K   R A I D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pilot: "+m.pilot.Name, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		line := cursor + item.Title
		if item.Best > 0 {
			line += dimStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.naming {
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render("Enter: Save  |  Esc: Cancel"), m.width))
		return b.String()
	}
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Fly  |  Tab: Scores  |  Q: Quit"
	if m.saveName != nil {
		controls += "  |  N: Name"
	}
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Pilot returns the pilot, renamed if the user changed the name.
func (m MenuModel) Pilot() core.Pilot {
	return m.pilot
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID          string
	Config          core.RuntimeConfig
	Pilot           core.Pilot
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, pilot core.Pilot, saveName func(string) error) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, pilot, saveName),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Pilot: pilot}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Pilot: pilot, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Pilot:  m.Pilot(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.ModeID = m.Selected().ModeID
	}

	return result, nil
}
