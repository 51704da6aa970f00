package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

const footerHeight = 4

// Model is the interactive theme browser: a tab row of theme names over a
// scrollable swatch pane.
type Model struct {
	themes   []theme.Theme
	settings config.Settings

	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates a browser over the given theme set.
func NewModel(themes []theme.Theme, settings config.Settings) Model {
	return Model{themes: themes, settings: settings}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.refreshContent()
			}
			return m, nil
		case "right", "l", "tab":
			if m.cursor < len(m.themes)-1 {
				m.cursor++
				m.refreshContent()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-footerHeight, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-footerHeight, 1)
		}
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshContent() {
	if !m.ready || len(m.themes) == 0 {
		return
	}
	m.viewport.SetContent(RenderTheme(m.themes[m.cursor], m.settings))
	m.viewport.GotoTop()
}
