package store

import "tableflip.dev/actd/pkg/entry"

// Actions holds value-aligned actions.
type Actions struct {
	base
	actions []entry.Action
}

// NewActions returns a store seeded with a copy of seed.
func NewActions(seed []entry.Action, opts ...Option) *Actions {
	actions := make([]entry.Action, len(seed))
	copy(actions, seed)
	return &Actions{base: newBase(opts), actions: actions}
}

// Add creates an incomplete action. valueID is not checked.
func (s *Actions) Add(valueID, description string) entry.Action {
	a := entry.Action{
		ID:          s.newID(),
		ValueID:     valueID,
		Description: description,
	}

	next := make([]entry.Action, len(s.actions), len(s.actions)+1)
	copy(next, s.actions)
	s.actions = append(next, a)

	s.publish(KindActions, OpAdded, a.ID)
	return a
}

// Toggle flips the completion state of id. It is a no-op when id is
// unknown.
func (s *Actions) Toggle(id string) (entry.Action, bool) {
	idx := s.index(id)
	if idx < 0 {
		return entry.Action{}, false
	}
	next := make([]entry.Action, len(s.actions))
	copy(next, s.actions)
	next[idx] = next[idx].Toggled()
	s.actions = next

	s.publish(KindActions, OpUpdated, id)
	return next[idx], true
}

// DeleteByValue removes every action referencing valueID and reports how
// many were removed.
func (s *Actions) DeleteByValue(valueID string) int {
	next := make([]entry.Action, 0, len(s.actions))
	removed := make([]string, 0)
	for _, a := range s.actions {
		if a.ValueID == valueID {
			removed = append(removed, a.ID)
			continue
		}
		next = append(next, a)
	}
	if len(removed) == 0 {
		return 0
	}
	s.actions = next

	for _, id := range removed {
		s.publish(KindActions, OpDeleted, id)
	}
	return len(removed)
}

// List returns every action in insertion order.
func (s *Actions) List() []entry.Action {
	out := make([]entry.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// ForValue returns the actions referencing valueID.
func (s *Actions) ForValue(valueID string) []entry.Action {
	out := make([]entry.Action, 0)
	for _, a := range s.actions {
		if a.ValueID == valueID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Actions) index(id string) int {
	for i, a := range s.actions {
		if a.ID == id {
			return i
		}
	}
	return -1
}
