package preview

import (
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.tabRow())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render("←/→ switch theme · ↑/↓ scroll · q quit"))
	return sb.String()
}

func (m Model) tabRow() string {
	tabs := make([]string, 0, len(m.themes))
	for i, t := range m.themes {
		label := t.Name
		if label == "" {
			label = "(unnamed)"
		}
		if i == m.cursor {
			tabs = append(tabs, selectedTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
