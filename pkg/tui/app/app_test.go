package teaui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/seed"
	"tableflip.dev/actd/pkg/store"
)

func newTestModel(t *testing.T) (*Model, *app.Service) {
	t.Helper()
	n := 0
	svc := app.New(
		app.WithSeed(seed.Sample()),
		app.WithClock(func() time.Time { return time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC) }),
		app.WithIDs(func() string {
			n++
			return fmt.Sprintf("tui-%d", n)
		}),
	)
	m := New(svc)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, svc
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
			continue
		}
		if inSeq {
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	if m.tab != tabMood {
		t.Fatalf("expected to start on mood tab")
	}
	press(m, "tab")
	if m.tab != tabValues {
		t.Fatalf("expected values tab, got %s", m.tab)
	}
	press(m, "tab", "tab")
	if m.tab != tabMood {
		t.Fatalf("expected tab to wrap to mood, got %s", m.tab)
	}
	press(m, "shift+tab")
	if m.tab != tabActions {
		t.Fatalf("expected shift+tab to wrap to actions, got %s", m.tab)
	}
}

func TestMoodKeyLogsEntry(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "3")

	mood := svc.Mood()
	if len(mood) != 6 {
		t.Fatalf("expected 6 mood entries, got %d", len(mood))
	}
	last := mood[len(mood)-1]
	if last.Score != 3 || last.Date.String() != "2024-03-06" {
		t.Fatalf("unexpected entry %+v", last)
	}
	view := plain(m.View())
	if !strings.Contains(view, "Mar 6") || !strings.Contains(view, "Latest: 😐 3 on Mar 6, 2024") {
		t.Fatalf("chart not refreshed:\n%s", view)
	}

	press(m, "9", "0")
	if len(svc.Mood()) != 6 {
		t.Fatalf("out of range keys should not log mood")
	}
}

func TestValuesRateAndClamp(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "tab")

	press(m, "+")
	v, _ := svc.Value("1")
	if v.Score != 8 || len(v.History) != 3 {
		t.Fatalf("expected score 8 with new history, got %+v", v)
	}
	press(m, "-", "-")
	v, _ = svc.Value("1")
	if v.Score != 6 || len(v.History) != 5 {
		t.Fatalf("expected score 6 after two steps down, got %+v", v)
	}

	press(m, "+", "+", "+", "+", "+", "+")
	v, _ = svc.Value("1")
	if v.Score != 10 {
		t.Fatalf("expected score to stop at 10, got %d", v.Score)
	}
	before := len(v.History)
	press(m, "+")
	v, _ = svc.Value("1")
	if len(v.History) != before {
		t.Fatalf("step past the top should not be recorded")
	}
}

func TestCategoryPickerFiltersValues(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab", "right", "right", "right", "right", "right")

	if m.currentCategory().ID != category.Leisure {
		t.Fatalf("expected leisure, got %s", m.currentCategory().ID)
	}
	view := plain(m.View())
	for _, want := range []string{"Creative Expression", "Physical Activities", "Social Activities", "6/10"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Family Connection") {
		t.Fatalf("values from another category shown:\n%s", view)
	}

	press(m, "right")
	if m.currentCategory().ID != category.Relationships {
		t.Fatalf("expected picker to wrap, got %s", m.currentCategory().ID)
	}
}

func TestCategoryPickerShowsSelectionAtNarrowWidth(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	press(m, "tab")

	for _, c := range category.All() {
		view := plain(m.View())
		if !strings.Contains(view, "["+c.String()+"]") {
			t.Fatalf("selected %s not visible:\n%s", c.ID, view)
		}
		if !strings.Contains(view, c.Name) {
			t.Fatalf("missing title %q", c.Name)
		}
		press(m, "right")
	}
}

func TestDeleteValueRemovesItsActions(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "tab", "d")

	if _, ok := svc.Value("1"); ok {
		t.Fatalf("value 1 still present")
	}
	if !strings.Contains(m.status, "Deleted Family Connection and 1 action") {
		t.Fatalf("unexpected status %q", m.status)
	}

	press(m, "tab")
	view := plain(m.View())
	if strings.Contains(view, "Call family member") {
		t.Fatalf("cascaded action still shown:\n%s", view)
	}
	if !strings.Contains(view, "Daily meditation") {
		t.Fatalf("unrelated action missing:\n%s", view)
	}
}

func TestHistoryModal(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab", "h")
	if m.mode != modeHistory {
		t.Fatalf("expected history mode")
	}
	view := plain(m.View())
	for _, want := range []string{"Family Connection history", "Feb 1, 2024", "Feb 15, 2024", "7/10"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q:\n%s", want, view)
		}
	}
	press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected esc to close history")
	}
}

func TestAddValueForm(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "tab", "right", "right", "right", "a")
	if m.mode != modeAddValue {
		t.Fatalf("expected add value form")
	}

	press(m, "enter")
	if m.mode != modeAddValue || len(svc.Values()) != 10 {
		t.Fatalf("blank name should not submit")
	}

	m.valueForm.name.SetValue("Growth")
	press(m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("expected form to close after save")
	}
	in := svc.ValuesIn(category.Career)
	if len(in) != 2 {
		t.Fatalf("expected new career value, got %+v", in)
	}
	added := in[1]
	if added.Name != "Growth" || added.Score != 5 || len(added.History) != 0 || added.ID != "tui-1" {
		t.Fatalf("unexpected value %+v", added)
	}
	if v, _ := m.selectedValue(); v.ID != "tui-1" {
		t.Fatalf("expected new value selected, got %s", v.ID)
	}
}

func TestAddValueFormCancel(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "tab", "a")
	m.valueForm.name.SetValue("Ignored")
	press(m, "esc")
	if m.mode != modeNormal || len(svc.Values()) != 10 {
		t.Fatalf("esc should cancel without saving")
	}
}

func TestToggleAction(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "shift+tab", "space")

	a := svc.Actions()[0]
	if !a.Completed {
		t.Fatalf("expected first action completed")
	}
	press(m, "enter")
	if svc.Actions()[0].Completed {
		t.Fatalf("expected second toggle to reopen")
	}

	press(m, "down", "space")
	if svc.Actions()[1].Completed {
		t.Fatalf("expected completed action to reopen")
	}
}

func TestAddActionForm(t *testing.T) {
	m, svc := newTestModel(t)
	press(m, "shift+tab", "a")
	if m.mode != modeAddAction {
		t.Fatalf("expected add action form")
	}

	m.actionForm.description.SetValue("Do X")
	press(m, "enter")
	if len(svc.Actions()) != 4 {
		t.Fatalf("submit must wait for a value choice")
	}

	press(m, "right")
	press(m, "enter")
	actions := svc.Actions()
	if len(actions) != 5 {
		t.Fatalf("expected a new action, got %d", len(actions))
	}
	last := actions[4]
	if last.ValueID != "1" || last.Description != "Do X" || last.Completed {
		t.Fatalf("unexpected action %+v", last)
	}
	view := plain(m.View())
	if !strings.Contains(view, "Do X") || !strings.Contains(view, "· Family Connection") {
		t.Fatalf("new action not rendered:\n%s", view)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "?")
	if m.mode != modeHelp || m.help == nil {
		t.Fatalf("expected help overlay")
	}
	press(m, "?")
	if m.mode != modeNormal {
		t.Fatalf("expected ? to close help")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _ := newTestModel(t)
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestStoreEventRefreshes(t *testing.T) {
	m, svc := newTestModel(t)
	if _, err := svc.AddMood(5); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	if len(m.snap.Mood) != 5 {
		t.Fatalf("snapshot should not change before the event arrives")
	}
	m.Update(storeEventMsg{event: store.Event{Kind: store.KindMood, Op: store.OpAdded}, ok: true})
	if len(m.snap.Mood) != 6 {
		t.Fatalf("expected refresh on store event")
	}
}
