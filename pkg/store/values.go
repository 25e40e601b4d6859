package store

import (
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// Values holds the user's values.
type Values struct {
	base
	values []entry.Value
}

// NewValues returns a store seeded with a copy of seed.
func NewValues(seed []entry.Value, opts ...Option) *Values {
	return &Values{base: newBase(opts), values: cloneValues(seed)}
}

// Add creates a value with the default score and an empty history.
func (s *Values) Add(cat category.ID, name string) entry.Value {
	v := entry.NewValue(s.newID(), cat, name)

	next := make([]entry.Value, len(s.values), len(s.values)+1)
	copy(next, s.values)
	s.values = append(next, v)

	s.publish(KindValues, OpAdded, v.ID)
	return v.Clone()
}

// UpdateScore replaces the score of id and appends today's rating to its
// history. It is a no-op when id is unknown or score is out of range.
func (s *Values) UpdateScore(id string, score int) (entry.Value, bool) {
	if entry.CheckValueScore(score) != nil {
		return entry.Value{}, false
	}
	idx := s.index(id)
	if idx < 0 {
		return entry.Value{}, false
	}

	updated := s.values[idx].Rated(entry.Today(s.now()), score)
	next := make([]entry.Value, len(s.values))
	copy(next, s.values)
	next[idx] = updated
	s.values = next

	s.publish(KindValues, OpUpdated, id)
	return updated.Clone(), true
}

// Delete removes id. Dependent actions are not touched here.
func (s *Values) Delete(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	next := make([]entry.Value, 0, len(s.values)-1)
	for _, v := range s.values {
		if v.ID != id {
			next = append(next, v)
		}
	}
	s.values = next

	s.publish(KindValues, OpDeleted, id)
	return true
}

// Get looks up a value by id.
func (s *Values) Get(id string) (entry.Value, bool) {
	idx := s.index(id)
	if idx < 0 {
		return entry.Value{}, false
	}
	return s.values[idx].Clone(), true
}

// List returns every value in insertion order.
func (s *Values) List() []entry.Value {
	return cloneValues(s.values)
}

// InCategory returns the values of cat in insertion order.
func (s *Values) InCategory(cat category.ID) []entry.Value {
	out := make([]entry.Value, 0)
	for _, v := range s.values {
		if v.Category == cat {
			out = append(out, v.Clone())
		}
	}
	return out
}

func (s *Values) index(id string) int {
	for i, v := range s.values {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func cloneValues(in []entry.Value) []entry.Value {
	out := make([]entry.Value, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
