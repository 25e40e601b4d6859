package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

type formField int

const (
	fieldChoice formField = iota
	fieldText
)

// valueForm collects a category and a name for a new value.
type valueForm struct {
	categoryIndex int
	name          textinput.Model
	focus         formField
}

// actionForm collects a value and a description for a new action. No
// value is chosen until the user picks one.
type actionForm struct {
	values      []entry.Value
	valueIndex  int
	description textinput.Model
	focus       formField
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.CharLimit = 120
	in.SetWidth(max(width, 10))
	return in
}

func (f *valueForm) ready() bool {
	return strings.TrimSpace(f.name.Value()) != ""
}

func (f *actionForm) ready() bool {
	return f.valueIndex >= 0 && strings.TrimSpace(f.description.Value()) != ""
}

func (m *Model) openValueForm() tea.Cmd {
	f := &valueForm{
		categoryIndex: m.categoryIndex,
		name:          newInput("Name of the value…", m.overlayWidth()-8),
		focus:         fieldText,
	}
	m.valueForm = f
	m.mode = modeAddValue
	return f.name.Focus()
}

func (m *Model) openActionForm() tea.Cmd {
	if len(m.snap.Values) == 0 {
		m.setStatus("Add a value first")
		return nil
	}
	f := &actionForm{
		values:      m.snap.Values,
		valueIndex:  -1,
		description: newInput("What will you do?", m.overlayWidth()-8),
		focus:       fieldChoice,
	}
	m.actionForm = f
	m.mode = modeAddAction
	return nil
}

func (m *Model) closeForms() {
	m.valueForm = nil
	m.actionForm = nil
	m.mode = modeNormal
}

func (m *Model) updateValueForm(msg tea.KeyPressMsg) tea.Cmd {
	f := m.valueForm
	n := len(category.All())
	switch msg.String() {
	case "esc":
		m.closeForms()
		return nil
	case "tab", "shift+tab":
		if f.focus == fieldText {
			f.focus = fieldChoice
			f.name.Blur()
			return nil
		}
		f.focus = fieldText
		return f.name.Focus()
	case "enter":
		if !f.ready() {
			m.setStatus("Enter a name to save")
			return nil
		}
		cat := category.All()[f.categoryIndex]
		v, err := m.svc.AddValue(cat.ID, f.name.Value())
		if err != nil {
			m.setError(err)
			return nil
		}
		m.closeForms()
		m.categoryIndex = f.categoryIndex
		m.refresh()
		m.valueIndex = len(m.visibleValues()) - 1
		m.setStatus(fmt.Sprintf("Added %s to %s", v.Name, cat.Name))
		return nil
	}

	if f.focus == fieldChoice {
		switch msg.String() {
		case "left":
			f.categoryIndex = (f.categoryIndex + n - 1) % n
		case "right":
			f.categoryIndex = (f.categoryIndex + 1) % n
		}
		return nil
	}
	var cmd tea.Cmd
	f.name, cmd = f.name.Update(msg)
	return cmd
}

func (m *Model) updateActionForm(msg tea.KeyPressMsg) tea.Cmd {
	f := m.actionForm
	n := len(f.values)
	switch msg.String() {
	case "esc":
		m.closeForms()
		return nil
	case "tab", "shift+tab":
		if f.focus == fieldText {
			f.focus = fieldChoice
			f.description.Blur()
			return nil
		}
		f.focus = fieldText
		return f.description.Focus()
	case "enter":
		if !f.ready() {
			m.setStatus("Choose a value and describe the action to save")
			return nil
		}
		a, err := m.svc.AddAction(f.values[f.valueIndex].ID, f.description.Value())
		if err != nil {
			m.setError(err)
			return nil
		}
		m.closeForms()
		m.refresh()
		m.actionIndex = len(m.snap.Actions) - 1
		m.setStatus(fmt.Sprintf("Committed to %s", a.Description))
		return nil
	}

	if f.focus == fieldChoice {
		switch msg.String() {
		case "left", "up":
			if f.valueIndex <= 0 {
				f.valueIndex = n - 1
			} else {
				f.valueIndex--
			}
		case "right", "down":
			f.valueIndex = (f.valueIndex + 1) % n
		}
		return nil
	}
	var cmd tea.Cmd
	f.description, cmd = f.description.Update(msg)
	return cmd
}

func (m *Model) saveButton(ready bool) string {
	if ready {
		return m.theme.Modal.Focus.Render("[ Save ]")
	}
	return m.theme.Modal.Disabled.Render("[ Save ]")
}

func (m *Model) field(label string, focused bool, body string) string {
	marker := "  "
	if focused {
		marker = m.theme.Modal.Focus.Render("▸ ")
	}
	return marker + label + "\n  " + body
}

func (m *Model) renderValueForm() string {
	f := m.valueForm
	if f == nil {
		return ""
	}
	cat := category.All()[f.categoryIndex]
	lines := []string{
		m.theme.Modal.Title.Render("Add a value"),
		"",
		m.field("Category", f.focus == fieldChoice, "◀ "+cat.String()+" ▶"),
		"",
		m.field("Name", f.focus == fieldText, f.name.View()),
		"",
		m.saveButton(f.ready()),
	}
	return m.theme.Modal.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderActionForm() string {
	f := m.actionForm
	if f == nil {
		return ""
	}
	choice := m.theme.Modal.Disabled.Render("choose a value")
	if f.valueIndex >= 0 {
		v := f.values[f.valueIndex]
		choice = fmt.Sprintf("%s (%s)", v.Name, category.Label(v.Category))
	}
	lines := []string{
		m.theme.Modal.Title.Render("Commit to an action"),
		"",
		m.field("Value", f.focus == fieldChoice, "◀ "+choice+" ▶"),
		"",
		m.field("Action", f.focus == fieldText, f.description.View()),
		"",
		m.saveButton(f.ready()),
	}
	return m.theme.Modal.Frame.Render(strings.Join(lines, "\n"))
}
