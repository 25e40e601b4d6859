package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// PrettyPrint renders journal state for the terminal.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer

	colorSet bool
	colored  bool
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) useColor() bool {
	if !pp.colorSet {
		if pp.Out == nil {
			pp.colored = ColorEnabled(os.Stdout)
		} else {
			pp.colored = ColorEnabled(pp.Out)
		}
		pp.colorSet = true
	}
	return pp.colored
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.useColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.style(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := pp.style(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := pp.style(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", pad))
	} else {
		_, _ = fmt.Fprint(pp.out(), "  ")
	}
}

// Values prints values grouped by category, in registry order. Categories
// without values are skipped.
func (pp *PrettyPrint) Values(values []entry.Value) {
	if len(values) == 0 {
		pp.Title("Values")
		pp.none()
		return
	}
	for _, cat := range category.All() {
		in := make([]entry.Value, 0)
		for _, v := range values {
			if v.Category == cat.ID {
				in = append(in, v)
			}
		}
		if len(in) == 0 {
			continue
		}
		pp.TitleWithCount(cat.String(), len(in))
		pp.valueRows(in)
	}
}

// Category prints the values of a single category, even when empty.
func (pp *PrettyPrint) Category(cat category.Category, values []entry.Value) {
	pp.TitleWithCount(cat.String(), len(values))
	if len(values) == 0 {
		pp.none()
		return
	}
	pp.valueRows(values)
}

func (pp *PrettyPrint) valueRows(values []entry.Value) {
	width := 0
	for _, v := range values {
		if len(v.Name) > width {
			width = len(v.Name)
		}
	}
	for _, v := range values {
		pp.id(v.ID)
		_, _ = fmt.Fprintf(pp.out(), "%-*s  %s %s\n", width, v.Name,
			pp.scoreBar(v.Score, entry.MinValueScore, entry.MaxValueScore),
			pp.paint(fmt.Sprintf("%d/%d", v.Score, entry.MaxValueScore), v.Score, entry.MinValueScore, entry.MaxValueScore))
	}
	pp.NewLine()
}

// History prints the rating history of v, oldest first.
func (pp *PrettyPrint) History(v entry.Value) {
	pp.TitleWithCount(fmt.Sprintf("%s history", v.Name), len(v.History))
	if len(v.History) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range v.History {
		tbl.AddRow(h.Date.Long(), pp.paint(fmt.Sprintf("%d/%d", h.Score, entry.MaxValueScore), h.Score, entry.MinValueScore, entry.MaxValueScore))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Actions prints actions with their completion mark and value label.
func (pp *PrettyPrint) Actions(actions []app.ActionView) {
	done := 0
	for _, a := range actions {
		if a.Completed {
			done++
		}
	}
	pp.TitleWithCount("Actions", len(actions))
	if len(actions) == 0 {
		pp.none()
		return
	}

	t := pp.style()
	strike := pp.style(color.Faint, color.CrossedOut)
	label := pp.style(color.FgCyan, color.Faint)
	for _, a := range actions {
		pp.id(a.ID)
		if a.Completed {
			_, _ = t.Fprint(pp.out(), "✓ ")
			_, _ = strike.Fprint(pp.out(), a.Description)
		} else {
			_, _ = t.Fprint(pp.out(), "○ ")
			_, _ = t.Fprint(pp.out(), a.Description)
		}
		if a.ValueName != "" {
			_, _ = label.Fprintf(pp.out(), "  (%s)", a.ValueName)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	_, _ = pp.style(color.Faint).Fprintf(pp.out(), "%d of %d completed\n", done, len(actions))
	pp.NewLine()
}

// Categories prints the registry as an icon/id/name table.
func (pp *PrettyPrint) Categories(cats []category.Category) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Category"))
	for _, c := range cats {
		tbl.AddRow(c.Icon, string(c.ID), c.Name)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) scoreBar(score, lo, hi int) string {
	span := hi - lo
	filled := score - lo
	if filled < 0 {
		filled = 0
	}
	if filled > span {
		filled = span
	}
	empty := pp.style(color.Faint).Sprint(strings.Repeat("░", span-filled))
	if filled == 0 {
		return empty
	}
	return pp.paint(strings.Repeat("█", filled), score, lo, hi) + empty
}
