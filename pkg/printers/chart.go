package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/actd/pkg/entry"
)

// ChartColumn is the width of one entry in a mood chart: a short date
// plus a space.
const ChartColumn = len("Mar 10 ")

// ChartCell centers glyph in a chart column.
func ChartCell(glyph string) string {
	left := (ChartColumn - 1) / 2
	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", ChartColumn-left-1)
}

// Mood plots the entries in insertion order: one column per entry, rows
// for each score from the highest down.
func (pp *PrettyPrint) Mood(entries []entry.MoodEntry) {
	pp.TitleWithCount("Mood", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}

	axis := pp.style(color.Faint)
	for row := entry.MaxMoodScore; row >= entry.MinMoodScore; row-- {
		_, _ = axis.Fprintf(pp.out(), "%d %s ", row, entry.MoodFace(row))
		for _, e := range entries {
			cell := strings.Repeat(" ", ChartColumn)
			switch {
			case e.Score == row:
				cell = pp.paint(ChartCell("●"), e.Score, entry.MinMoodScore, entry.MaxMoodScore)
			case e.Score > row:
				cell = pp.paint(ChartCell("│"), e.Score, entry.MinMoodScore, entry.MaxMoodScore)
			}
			_, _ = fmt.Fprint(pp.out(), cell)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}

	_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", len("5 ")+3))
	for _, e := range entries {
		_, _ = axis.Fprintf(pp.out(), "%-*s", ChartColumn, e.Date.Short())
	}
	_, _ = fmt.Fprintln(pp.out(), "")
	pp.NewLine()
}
