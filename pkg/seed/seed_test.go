package seed

import (
	"testing"

	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

func TestSampleHoldsInvariants(t *testing.T) {
	d := Sample()

	for _, m := range d.Mood {
		if err := entry.CheckMoodScore(m.Score); err != nil {
			t.Fatalf("mood entry %v: %v", m.Date, err)
		}
	}

	ids := map[string]bool{}
	for _, v := range d.Values {
		if ids[v.ID] {
			t.Fatalf("duplicate value id %q", v.ID)
		}
		ids[v.ID] = true
		if !category.Valid(v.Category) {
			t.Fatalf("value %q has unknown category %q", v.ID, v.Category)
		}
		if err := entry.CheckValueScore(v.Score); err != nil {
			t.Fatalf("value %q: %v", v.ID, err)
		}
		if v.History == nil {
			t.Fatalf("value %q has nil history", v.ID)
		}
	}

	actionIDs := map[string]bool{}
	for _, a := range d.Actions {
		if actionIDs[a.ID] {
			t.Fatalf("duplicate action id %q", a.ID)
		}
		actionIDs[a.ID] = true
		if !ids[a.ValueID] {
			t.Fatalf("action %q references missing value %q", a.ID, a.ValueID)
		}
	}
}

func TestSampleReturnsFreshCopies(t *testing.T) {
	a := Sample()
	a.Values[0].History[0].Score = 0
	a.Actions[0].Completed = true

	b := Sample()
	if b.Values[0].History[0].Score != 6 || b.Actions[0].Completed {
		t.Fatalf("sample data shared between calls")
	}
}
