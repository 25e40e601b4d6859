// Package help renders the key reference overlay.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

//go:embed help.md
var keysMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Option configures a Model.
type Option func(*Model)

// WithFrame replaces the default rounded border.
func WithFrame(frame lipgloss.Style) Option {
	return func(m *Model) {
		m.frame = frame
	}
}

// WithSection scrolls to the heading named section once rendered.
func WithSection(section string) Option {
	return func(m *Model) {
		m.section = section
	}
}

// Model is a scrollable key reference. The markdown is rendered with
// glamour at the current width and kept as plain text.
type Model struct {
	vp      viewport.Model
	frame   lipgloss.Style
	section string

	width, height int
	text          string
}

func New(width, height int, opts ...Option) *Model {
	m := &Model{
		vp:    viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.vp.MouseWheelEnabled = true
	for _, opt := range opts {
		opt(m)
	}
	m.SetSize(width, height)
	return m
}

// Update scrolls.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.vp.View())
}

// SetSize clamps to a usable minimum and re-wraps the text when the width
// changes.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.vp.SetWidth(inner)
	m.vp.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))

	m.text = render(inner)
	m.vp.SetContent(m.text)
	m.vp.SetYOffset(sectionLine(m.text, m.section))
}

// Content is the rendered text without styling.
func (m *Model) Content() string {
	return m.text
}

func render(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	out, err := r.Render(strings.TrimSpace(keysMarkdown))
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	return plain(out)
}

// sectionLine finds the line holding the heading, 0 when absent.
func sectionLine(text, section string) int {
	if section == "" {
		return 0
	}
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#")) == section {
			return i
		}
	}
	return 0
}

func plain(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			esc = true
		case esc:
			esc = !ansi.IsTerminator(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
