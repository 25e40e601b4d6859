package teaui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// fit trims s to width cells, marking the cut with an ellipsis. Strings
// that already fit are returned untouched.
func fit(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// window lays parts out on one line, scrolled so that parts[sel] is
// visible. Hidden parts on either side are marked with an ellipsis.
func window(parts []string, sel, width int) string {
	if len(parts) == 0 {
		return ""
	}
	sel = clamp(sel, len(parts))
	widths := make([]int, len(parts))
	for i, p := range parts {
		widths[i] = lipgloss.Width(p)
	}
	span := func(from, to int) int {
		n := to - from
		for i := from; i <= to; i++ {
			n += widths[i]
		}
		if from > 0 {
			n += lipgloss.Width(ellipsis + " ")
		}
		return n
	}

	start := 0
	for start < sel && span(start, sel) > width {
		start++
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis + " ")
	}
	used := span(start, sel)
	end := sel
	for end+1 < len(parts) {
		need := used + 1 + widths[end+1]
		if end+2 < len(parts) {
			need += lipgloss.Width(" " + ellipsis)
		}
		if need > width {
			break
		}
		end++
		used += 1 + widths[end]
	}
	b.WriteString(strings.Join(parts[start:end+1], " "))
	if end+1 < len(parts) && used+lipgloss.Width(" "+ellipsis) <= width {
		b.WriteString(" " + ellipsis)
	}
	return fit(b.String(), width)
}
