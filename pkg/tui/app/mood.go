package teaui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/actd/pkg/entry"
	"tableflip.dev/actd/pkg/printers"
	"tableflip.dev/actd/pkg/tui/theme"
)

func (m *Model) updateMood(key string) tea.Cmd {
	if len(key) != 1 || key[0] < '1' || key[0] > '5' {
		return nil
	}
	score := int(key[0] - '0')
	e, err := m.svc.AddMood(score)
	if err != nil {
		m.setError(err)
		return nil
	}
	m.refresh()
	m.setStatus(fmt.Sprintf("Logged %s %d for %s", entry.MoodFace(score), score, e.Date.Long()))
	return nil
}

func (m *Model) renderMood() string {
	title := m.theme.Panel.Title.Render("How have you been feeling?")
	entries := m.snap.Mood
	if len(entries) == 0 {
		return title + "\n\n" + m.theme.List.Empty.Render("No mood logged yet. Press 1-5 to log today's mood.")
	}

	// keep the most recent entries that fit
	gutter := len("5 ") + 3
	cols := max((m.termWidth-gutter)/printers.ChartColumn, 1)
	if len(entries) > cols {
		entries = entries[len(entries)-cols:]
	}

	var b strings.Builder
	for row := entry.MaxMoodScore; row >= entry.MinMoodScore; row-- {
		b.WriteString(m.theme.Panel.Axis.Render(fmt.Sprintf("%d %s ", row, entry.MoodFace(row))))
		for _, e := range entries {
			cell := strings.Repeat(" ", printers.ChartColumn)
			style := lipgloss.NewStyle().Foreground(theme.Score(e.Score, entry.MinMoodScore, entry.MaxMoodScore))
			switch {
			case e.Score == row:
				cell = style.Render(printers.ChartCell("●"))
			case e.Score > row:
				cell = style.Render(printers.ChartCell("│"))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", gutter))
	for _, e := range entries {
		b.WriteString(m.theme.Panel.Axis.Render(fmt.Sprintf("%-*s", printers.ChartColumn, e.Date.Short())))
	}

	latest := m.snap.Mood[len(m.snap.Mood)-1]
	summary := fmt.Sprintf("Latest: %s %d on %s", entry.MoodFace(latest.Score), latest.Score, latest.Date.Long())

	return strings.Join([]string{title, b.String(), m.theme.Panel.Body.Render(summary)}, "\n\n")
}
