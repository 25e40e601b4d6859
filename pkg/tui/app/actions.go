package teaui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func (m *Model) updateActions(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.actionIndex > 0 {
			m.actionIndex--
		}
	case "down", "j":
		if m.actionIndex < len(m.snap.Actions)-1 {
			m.actionIndex++
		}
	case "space", " ", "enter":
		m.toggleSelected()
	case "a":
		return m.openActionForm()
	}
	return nil
}

func (m *Model) toggleSelected() {
	if len(m.snap.Actions) == 0 {
		return
	}
	a := m.snap.Actions[clamp(m.actionIndex, len(m.snap.Actions))]
	toggled, err := m.svc.ToggleAction(a.ID)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	if toggled.Completed {
		m.setStatus(fmt.Sprintf("Done: %s", toggled.Description))
	} else {
		m.setStatus(fmt.Sprintf("Reopened: %s", toggled.Description))
	}
}

func (m *Model) renderActions() string {
	actions := m.snap.Actions
	done := 0
	for _, a := range actions {
		if a.Completed {
			done++
		}
	}

	lines := []string{m.theme.Panel.Title.Render(fmt.Sprintf("Committed actions · %d of %d done", done, len(actions)))}
	if len(actions) == 0 {
		lines = append(lines, m.theme.List.Empty.Render("No actions yet. Press a to commit to one."))
		return strings.Join(lines, "\n")
	}

	width := max(m.termWidth-8, 10)
	for i, a := range actions {
		cursor := "  "
		if i == m.actionIndex {
			cursor = "▸ "
		}
		box := "[ ] "
		desc := m.theme.List.Normal.Render(fit(a.Description, width))
		if a.Completed {
			box = "[✓] "
			desc = m.theme.List.Completed.Render(fit(a.Description, width))
		}
		if i == m.actionIndex && !a.Completed {
			desc = m.theme.List.Selected.Render(fit(a.Description, width))
		}
		line := cursor + box + desc
		if a.ValueName != "" {
			line += m.theme.List.Label.Render("  · " + a.ValueName)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
