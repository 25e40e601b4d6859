package teaui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
	"tableflip.dev/actd/pkg/tui/theme"
)

func (m *Model) currentCategory() category.Category {
	all := category.All()
	return all[clamp(m.categoryIndex, len(all))]
}

func (m *Model) visibleValues() []entry.Value {
	return m.snap.InCategory(m.currentCategory().ID)
}

func (m *Model) selectedValue() (entry.Value, bool) {
	values := m.visibleValues()
	if len(values) == 0 {
		return entry.Value{}, false
	}
	return values[clamp(m.valueIndex, len(values))], true
}

func (m *Model) updateValues(key string) tea.Cmd {
	n := len(category.All())
	switch key {
	case "left":
		m.categoryIndex = (m.categoryIndex + n - 1) % n
		m.valueIndex = 0
	case "right":
		m.categoryIndex = (m.categoryIndex + 1) % n
		m.valueIndex = 0
	case "up", "k":
		if m.valueIndex > 0 {
			m.valueIndex--
		}
	case "down", "j":
		if m.valueIndex < len(m.visibleValues())-1 {
			m.valueIndex++
		}
	case "+", "=":
		m.rateSelected(1)
	case "-", "_":
		m.rateSelected(-1)
	case "a":
		return m.openValueForm()
	case "d":
		m.deleteSelected()
	case "h":
		if v, ok := m.selectedValue(); ok {
			m.historyID = v.ID
			m.mode = modeHistory
		}
	}
	return nil
}

// rateSelected moves the selected value's score by delta, clamped to the
// scale. A step past either end records nothing.
func (m *Model) rateSelected(delta int) {
	v, ok := m.selectedValue()
	if !ok {
		return
	}
	next := v.Score + delta
	if next < entry.MinValueScore || next > entry.MaxValueScore {
		return
	}
	updated, err := m.svc.UpdateValueScore(v.ID, next)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setStatus(fmt.Sprintf("%s rated %d/%d", updated.Name, updated.Score, entry.MaxValueScore))
}

func (m *Model) deleteSelected() {
	v, ok := m.selectedValue()
	if !ok {
		return
	}
	removed, err := m.svc.DeleteValue(v.ID)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	switch removed {
	case 0:
		m.setStatus(fmt.Sprintf("Deleted %s", v.Name))
	case 1:
		m.setStatus(fmt.Sprintf("Deleted %s and 1 action", v.Name))
	default:
		m.setStatus(fmt.Sprintf("Deleted %s and %d actions", v.Name, removed))
	}
}

func (m *Model) renderCategoryPicker() string {
	all := category.All()
	parts := make([]string, 0, len(all))
	for i, c := range all {
		if i == clamp(m.categoryIndex, len(all)) {
			parts = append(parts, m.theme.List.Selected.Render("["+c.String()+"]"))
		} else {
			parts = append(parts, m.theme.List.Normal.Render(" "+c.String()+" "))
		}
	}
	return window(parts, m.categoryIndex, max(m.termWidth, 10))
}

func (m *Model) renderValues() string {
	cat := m.currentCategory()
	lines := []string{
		m.renderCategoryPicker(),
		"",
		m.theme.Panel.Title.Render(cat.String()),
	}

	values := m.visibleValues()
	if len(values) == 0 {
		lines = append(lines, m.theme.List.Empty.Render("No values in this category yet. Press a to add one."))
		return strings.Join(lines, "\n")
	}

	width := 0
	for _, v := range values {
		width = max(width, lipgloss.Width(v.Name))
	}
	nameWidth := min(width, max(m.termWidth-24, 8))

	for i, v := range values {
		cursor := "  "
		style := m.theme.List.Normal
		if i == m.valueIndex {
			cursor = "▸ "
			style = m.theme.List.Selected
		}
		name := fit(v.Name, nameWidth)
		name += strings.Repeat(" ", max(nameWidth-lipgloss.Width(name), 0))
		lines = append(lines, cursor+style.Render(name)+"  "+scoreBar(v.Score)+" "+
			fmt.Sprintf("%d/%d", v.Score, entry.MaxValueScore))
	}
	return strings.Join(lines, "\n")
}

func scoreBar(score int) string {
	span := entry.MaxValueScore - entry.MinValueScore
	filled := min(max(score-entry.MinValueScore, 0), span)
	style := lipgloss.NewStyle().Foreground(theme.Score(score, entry.MinValueScore, entry.MaxValueScore))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.Repeat("░", span-filled))
	if filled == 0 {
		return empty
	}
	return style.Render(strings.Repeat("█", filled)) + empty
}

func (m *Model) historyValue() (entry.Value, bool) {
	for _, v := range m.snap.Values {
		if v.ID == m.historyID {
			return v, true
		}
	}
	return entry.Value{}, false
}

func (m *Model) renderHistory() string {
	v, ok := m.historyValue()
	if !ok {
		return ""
	}
	lines := []string{m.theme.Modal.Title.Render(v.Name + " history"), ""}
	if len(v.History) == 0 {
		lines = append(lines, m.theme.List.Empty.Render("No ratings yet."))
	}
	for _, h := range v.History {
		lines = append(lines, fmt.Sprintf("%-14s %2d/%d", h.Date.Long(), h.Score, entry.MaxValueScore))
	}
	return m.theme.Modal.Frame.Render(strings.Join(lines, "\n"))
}
