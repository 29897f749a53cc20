// Package tui holds the Bubble Tea screens that wrap the game: the
// entry menu and the high-score browser. The game itself renders
// through its own incremental renderer, not through Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is what the user picked from the entry menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuEntry is one selectable row of the entry menu.
type menuEntry struct {
	choice MenuChoice
	title  string
}

// MenuModel is the Bubble Tea model for the entry menu.
type MenuModel struct {
	entries   []menuEntry
	cursor    int
	width     int
	height    int
	highScore int
	keyMapper *KeyMapper
	quitting  bool
	choice    MenuChoice
}

// NewMenuModel creates the entry menu. highScore is shown under the
// title; pass 0 when no scores are recorded.
func NewMenuModel(highScore int) MenuModel {
	return MenuModel{
		entries: []menuEntry{
			{MenuChoicePlay, "Play"},
			{MenuChoiceScores, "High Scores"},
			{MenuChoiceQuit, "Quit"},
		},
		highScore: highScore,
		keyMapper: NewKeyMapper(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.entries[m.cursor].choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  2 0 4 8  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry.title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the entry menu and returns the user's choice.
func RunMenu(highScore int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(highScore),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuChoiceQuit, nil
	}
	if m.Choice() == MenuChoiceNone {
		return MenuChoiceQuit, nil
	}
	return m.Choice(), nil
}
