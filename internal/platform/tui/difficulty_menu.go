package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ricochet-arcade/ricochet/internal/core"
)

// DifficultyChoice holds the user's selection from the difficulty menu.
// An empty Preset means "use whatever the config file says".
type DifficultyChoice struct {
	Preset string
}

// difficultyOption pairs a display label with the preset it maps to.
type difficultyOption struct {
	label  string
	preset string
}

var difficultyOptions = []difficultyOption{
	{"Easy", "easy"},
	{"Normal", "normal"},
	{"Hard", "hard"},
	{"Fixed (no ramp-up)", "fixed"},
	{"Config default", ""},
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection DifficultyChoice
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty selection model for the given game.
func NewDifficultyModel(gameTitle string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     gameTitle,
		cursor:    1, // Normal preselected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = DifficultyChoice{Preset: difficultyOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m DifficultyModel) Selected() *DifficultyChoice {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the difficulty selection screen.
// Returns nil if the user backed out or quit; IsQuitting is reported
// through the second return so callers can exit the whole menu loop.
func RunDifficultySelector(gameTitle string, cfg core.RuntimeConfig) (*DifficultyChoice, bool, error) {
	model := NewDifficultyModel(gameTitle, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return nil, false, nil
	}

	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}
