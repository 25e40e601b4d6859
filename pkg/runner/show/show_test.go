package show

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/entry"
)

func TestParseWhat(t *testing.T) {
	tests := map[string]What{"": All, "all": All, "Mood": Mood, " values ": Values, "actions": Actions}
	for in, want := range tests {
		got, err := ParseWhat(in)
		if err != nil || got != want {
			t.Fatalf("ParseWhat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseWhat("notes"); err == nil {
		t.Fatalf("expected error for unknown collection")
	}
}

func TestShowAll(t *testing.T) {
	var buf bytes.Buffer
	s := Show{App: app.New(), Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mood - 5 entries", "Relationships - 2 entries", "Actions - 4 entries"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestShowCategoryFiltersActions(t *testing.T) {
	var buf bytes.Buffer
	s := Show{App: app.New(), What: Actions, Category: "learning", Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Learn a new programming language") || strings.Contains(out, "Call family member") {
		t.Fatalf("unexpected actions:\n%s", out)
	}
	if strings.Contains(out, "Mood") {
		t.Fatalf("mood shown when only actions requested")
	}
}

func TestShowJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Show{App: app.New(), What: Values, Category: "leisure", JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var values []entry.Value
	if err := json.Unmarshal(buf.Bytes(), &values); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(values) != 3 || values[0].Name != "Creative Expression" {
		t.Fatalf("unexpected values %+v", values)
	}
}

func TestShowUnknownCategory(t *testing.T) {
	s := Show{App: app.New(), Category: "gardening", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
