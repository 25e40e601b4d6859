package store

import "tableflip.dev/actd/pkg/entry"

// Mood is the append-only sequence of mood entries, kept in insertion
// order.
type Mood struct {
	base
	entries []entry.MoodEntry
}

// NewMood returns a store seeded with a copy of seed.
func NewMood(seed []entry.MoodEntry, opts ...Option) *Mood {
	entries := make([]entry.MoodEntry, len(seed))
	copy(entries, seed)
	return &Mood{base: newBase(opts), entries: entries}
}

// Add appends a mood entry for today.
func (s *Mood) Add(score int) (entry.MoodEntry, error) {
	if err := entry.CheckMoodScore(score); err != nil {
		return entry.MoodEntry{}, err
	}
	e := entry.MoodEntry{Date: entry.Today(s.now()), Score: score}

	next := make([]entry.MoodEntry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	s.entries = append(next, e)

	s.publish(KindMood, OpAdded, e.Date.String())
	return e, nil
}

// Entries returns a copy of the sequence.
func (s *Mood) Entries() []entry.MoodEntry {
	out := make([]entry.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
