// Package teaui is the Bubble Tea terminal UI: a Mood, Values and Actions
// tab each backed by the shared app service.
package teaui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/store"
	"tableflip.dev/actd/pkg/tui/components/help"
	"tableflip.dev/actd/pkg/tui/theme"
)

type tab int

const (
	tabMood tab = iota
	tabValues
	tabActions
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabMood:
		return "Mood"
	case tabValues:
		return "Values"
	case tabActions:
		return "Actions"
	}
	return ""
}

type mode int

const (
	modeNormal mode = iota
	modeHelp
	modeHistory
	modeAddValue
	modeAddAction
)

type storeEventMsg struct {
	event store.Event
	ok    bool
}

// Model is the root Bubble Tea model.
type Model struct {
	svc   *app.Service
	theme theme.Theme

	tab  tab
	mode mode
	snap app.Snapshot

	termWidth  int
	termHeight int

	categoryIndex int
	valueIndex    int
	actionIndex   int

	valueForm  *valueForm
	actionForm *actionForm
	historyID  string
	help       *help.Model

	status   string
	errorMsg string

	events <-chan store.Event
}

// New builds the root model over svc.
func New(svc *app.Service) *Model {
	m := &Model{
		svc:        svc,
		theme:      theme.Default(),
		termWidth:  80,
		termHeight: 24,
	}
	m.refresh()
	return m
}

// Watch makes the model re-render on every store event until ctx is done.
func (m *Model) Watch(ctx context.Context) {
	m.events = m.svc.Watch(ctx)
}

func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		return storeEventMsg{event: ev, ok: ok}
	}
}

// refresh re-derives every view from a fresh snapshot.
func (m *Model) refresh() {
	m.snap = m.svc.Snapshot()
	m.valueIndex = clamp(m.valueIndex, len(m.visibleValues()))
	m.actionIndex = clamp(m.actionIndex, len(m.snap.Actions))
	if m.historyID != "" {
		if _, ok := m.historyValue(); !ok {
			m.historyID = ""
			if m.mode == modeHistory {
				m.mode = modeNormal
			}
		}
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.errorMsg = ""
}

func (m *Model) setError(err error) {
	m.errorMsg = err.Error()
	m.status = ""
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(m.overlayWidth(), m.overlayHeight())
		}
		return m, nil
	case storeEventMsg:
		if !msg.ok {
			m.events = nil
			return m, nil
		}
		m.refresh()
		return m, m.waitForEvent()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeHelp && m.help != nil {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeHelp:
		switch key {
		case "?", "esc", "q":
			m.mode = modeNormal
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	case modeHistory:
		switch key {
		case "esc", "h", "q", "enter":
			m.mode = modeNormal
			m.historyID = ""
		}
		return m, nil
	case modeAddValue:
		return m, m.updateValueForm(msg)
	case modeAddAction:
		return m, m.updateActionForm(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case "?":
		m.help = help.New(m.overlayWidth(), m.overlayHeight(),
			help.WithFrame(m.theme.Modal.Frame),
			help.WithSection(m.tab.String()),
		)
		m.mode = modeHelp
		return m, nil
	}

	switch m.tab {
	case tabMood:
		return m, m.updateMood(key)
	case tabValues:
		return m, m.updateValues(key)
	case tabActions:
		return m, m.updateActions(key)
	}
	return m, nil
}

func (m *Model) overlayWidth() int {
	return max(m.termWidth-4, 1)
}

func (m *Model) overlayHeight() int {
	return max(m.termHeight-6, 1)
}

func (m *Model) View() string {
	sections := []string{m.renderTabs()}

	switch m.mode {
	case modeHelp:
		if m.help != nil {
			sections = append(sections, m.help.View())
		}
	case modeHistory:
		sections = append(sections, m.renderHistory())
	case modeAddValue:
		sections = append(sections, m.renderValueForm())
	case modeAddAction:
		sections = append(sections, m.renderActionForm())
	default:
		switch m.tab {
		case tabMood:
			sections = append(sections, m.renderMood())
		case tabValues:
			sections = append(sections, m.renderValues())
		case tabActions:
			sections = append(sections, m.renderActions())
		}
	}

	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		if t == m.tab {
			parts = append(parts, m.theme.Tabs.Active.Render(t.String()))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, m.theme.Tabs.Gap.Render("│")))
}

func (m *Model) renderFooter() string {
	var lines []string
	switch {
	case m.errorMsg != "":
		lines = append(lines, m.theme.Footer.Error.Render(m.errorMsg))
	case m.status != "":
		lines = append(lines, m.theme.Footer.Status.Render(m.status))
	}
	hint := wordwrap.String(m.hints(), max(m.termWidth, 20))
	lines = append(lines, m.theme.Footer.Help.Render(hint))
	return strings.Join(lines, "\n")
}

func (m *Model) hints() string {
	switch m.mode {
	case modeHelp:
		return "↑/↓ scroll • ? or esc close"
	case modeHistory:
		return "esc close"
	case modeAddValue, modeAddAction:
		return "tab next field • ←/→ choose • enter save • esc cancel"
	}
	common := "tab switch • ? help • q quit"
	switch m.tab {
	case tabMood:
		return "1-5 log mood • " + common
	case tabValues:
		return "←/→ category • ↑/↓ select • +/- rate • a add • h history • d delete • " + common
	case tabActions:
		return "↑/↓ select • space toggle • a add • " + common
	}
	return common
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *app.Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(svc)
	m.Watch(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
