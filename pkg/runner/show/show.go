// Package show prints the journal state.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/printers"
)

// What selects the collection to show. The zero value shows everything.
type What string

const (
	All     What = ""
	Mood    What = "mood"
	Values  What = "values"
	Actions What = "actions"
)

// ParseWhat validates a positional argument.
func ParseWhat(s string) (What, error) {
	switch w := What(strings.ToLower(strings.TrimSpace(s))); w {
	case All, Mood, Values, Actions:
		return w, nil
	case "all":
		return All, nil
	}
	return "", fmt.Errorf("unknown collection %q, expected mood, values or actions", s)
}

type Show struct {
	App      *app.Service
	What     What
	Category string
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

func (s *Show) Do(_ context.Context) error {
	if s.App == nil {
		return errors.New("can not show, no app service")
	}

	var cat category.ID
	if s.Category != "" {
		var err error
		if cat, err = category.Parse(s.Category); err != nil {
			return err
		}
	}

	snap := s.App.Snapshot()
	if cat != "" {
		snap.Values = snap.InCategory(cat)
		keep := make(map[string]bool, len(snap.Values))
		for _, v := range snap.Values {
			keep[v.ID] = true
		}
		actions := make([]app.ActionView, 0, len(snap.Actions))
		for _, a := range snap.Actions {
			if keep[a.ValueID] {
				actions = append(actions, a)
			}
		}
		snap.Actions = actions
	}

	if s.JSON {
		return s.json(snap)
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID, Out: s.Out}
	pp.NewLine()
	if s.What == All || s.What == Mood {
		pp.Mood(snap.Mood)
	}
	if s.What == All || s.What == Values {
		if cat != "" {
			c, _ := category.Lookup(cat)
			pp.Category(c, snap.Values)
		} else {
			pp.Values(snap.Values)
		}
	}
	if s.What == All || s.What == Actions {
		pp.Actions(snap.Actions)
	}
	return nil
}

func (s *Show) json(snap app.Snapshot) error {
	var body any
	switch s.What {
	case Mood:
		body = snap.Mood
	case Values:
		body = snap.Values
	case Actions:
		body = snap.Actions
	default:
		body = snap
	}
	enc := json.NewEncoder(s.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}
