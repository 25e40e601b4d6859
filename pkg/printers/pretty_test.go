package printers

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
	"tableflip.dev/actd/pkg/seed"
)

func TestMoodChart(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Mood(seed.Sample().Mood)

	out := buf.String()
	if !strings.Contains(out, "Mood - 5 entries") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Mar 1") || !strings.Contains(out, "Mar 5") {
		t.Fatalf("missing short dates:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	// row 5 only holds the Mar 4 entry
	if strings.Count(lines[1], "●") != 1 || !strings.HasPrefix(lines[1], "5 ") {
		t.Fatalf("unexpected top row %q", lines[1])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes when writing to a buffer")
	}
}

func TestChartCell(t *testing.T) {
	cell := ChartCell("●")
	if got := len([]rune(cell)); got != ChartColumn {
		t.Fatalf("cell is %d runes wide, want %d", got, ChartColumn)
	}
	if cell != "   ●   " {
		t.Fatalf("glyph not centered: %q", cell)
	}
}

func TestEmptyMood(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Mood(nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestValuesGroupedByCategory(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	pp.Values(seed.Sample().Values)

	out := buf.String()
	rel := strings.Index(out, "Relationships - 2 entries")
	leisure := strings.Index(out, "Leisure - 3 entries")
	if rel < 0 || leisure < 0 || rel > leisure {
		t.Fatalf("categories missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "7/10") || !strings.Contains(out, "Family Connection") {
		t.Fatalf("missing value row:\n%s", out)
	}
}

func TestCategoryShowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	c, _ := category.Lookup(category.Career)
	pp.Category(c, nil)
	if !strings.Contains(buf.String(), "Career & Work - 0 entries") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.History(seed.Sample().Values[0])

	out := buf.String()
	for _, want := range []string{"Feb 1, 2024", "Feb 15, 2024", "6/10", "7/10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestActions(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Actions([]app.ActionView{
		{Action: entry.Action{ID: "1", ValueID: "1", Description: "Call family member"}, ValueName: "Family Connection"},
		{Action: entry.Action{ID: "2", ValueID: "gone", Description: "Orphan", Completed: true}},
	})

	out := buf.String()
	if !strings.Contains(out, "○ Call family member  (Family Connection)") {
		t.Fatalf("missing open action:\n%s", out)
	}
	if !strings.Contains(out, "✓ Orphan\n") {
		t.Fatalf("dangling action should have no label:\n%s", out)
	}
	if !strings.Contains(out, "1 of 2 completed") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestScoreColorEnds(t *testing.T) {
	if got := ScoreColor(0, 0, 10).Hex(); got != lowScore.Hex() {
		t.Fatalf("low end: %s", got)
	}
	if got := ScoreColor(10, 0, 10).Hex(); got != highScore.Hex() {
		t.Fatalf("high end: %s", got)
	}
	if ColorEnabled(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
