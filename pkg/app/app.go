// Package app composes the mood, values and actions stores into a single
// service shared by the terminal UI, the CLI and the MCP and HTTP servers.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
	"tableflip.dev/actd/pkg/seed"
	"tableflip.dev/actd/pkg/store"
)

var (
	// ErrInvalidInput is returned when a required field is blank.
	ErrInvalidInput = errors.New("app: invalid input")
	// ErrUnknownCategory is returned for category ids outside the registry.
	ErrUnknownCategory = errors.New("app: unknown category")
	// ErrNotFound is returned when an id matches nothing. The state is left
	// unchanged.
	ErrNotFound = errors.New("app: not found")
)

// Service owns the three stores. Every method runs under one lock, so a
// mutation and its cascade complete before the next call starts.
type Service struct {
	mu      sync.Mutex
	mood    *store.Mood
	values  *store.Values
	actions *store.Actions
	feed    *store.Feed
	now     func() time.Time
	log     zerolog.Logger
}

type options struct {
	seed  seed.Data
	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

// Option configures New.
type Option func(*options)

// WithSeed replaces the sample data the stores start with.
func WithSeed(d seed.Data) Option {
	return func(o *options) { o.seed = d }
}

// WithClock overrides the clock used to date mood entries and ratings.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDs overrides id generation for new values and actions.
func WithIDs(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds a service seeded with the sample journal unless WithSeed says
// otherwise.
func New(opts ...Option) *Service {
	o := options{
		seed: seed.Sample(),
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		o.now = time.Now
	}

	feed := store.NewFeed()
	storeOpts := []store.Option{
		store.WithClock(o.now),
		store.WithIDs(o.newID),
		store.WithFeed(feed),
	}
	return &Service{
		mood:    store.NewMood(o.seed.Mood, storeOpts...),
		values:  store.NewValues(o.seed.Values, storeOpts...),
		actions: store.NewActions(o.seed.Actions, storeOpts...),
		feed:    feed,
		now:     o.now,
		log:     o.log,
	}
}

// Watch streams store events until ctx is done.
func (s *Service) Watch(ctx context.Context) <-chan store.Event {
	return s.feed.Watch(ctx)
}

// AddMood records today's mood.
func (s *Service) AddMood(score int) (entry.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.mood.Add(score)
	if err != nil {
		return entry.MoodEntry{}, err
	}
	s.log.Debug().Int("score", score).Str("date", e.Date.String()).Msg("mood logged")
	return e, nil
}

// Mood returns the mood entries in insertion order.
func (s *Service) Mood() []entry.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood.Entries()
}

// AddValue creates a value in cat.
func (s *Service) AddValue(cat category.ID, name string) (entry.Value, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entry.Value{}, fmt.Errorf("%w: value name is required", ErrInvalidInput)
	}
	if !category.Valid(cat) {
		return entry.Value{}, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values.Add(cat, name)
	s.log.Debug().Str("id", v.ID).Str("category", string(cat)).Msg("value added")
	return v, nil
}

// UpdateValueScore rates the value id.
func (s *Service) UpdateValueScore(id string, score int) (entry.Value, error) {
	if err := entry.CheckValueScore(score); err != nil {
		return entry.Value{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values.UpdateScore(id, score)
	if !ok {
		return entry.Value{}, fmt.Errorf("%w: value %q", ErrNotFound, id)
	}
	s.log.Debug().Str("id", id).Int("score", score).Msg("value rated")
	return v, nil
}

// DeleteValue removes the value id together with every action that
// references it. It reports how many actions were removed.
func (s *Service) DeleteValue(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.values.Delete(id) {
		return 0, fmt.Errorf("%w: value %q", ErrNotFound, id)
	}
	removed := s.actions.DeleteByValue(id)
	s.log.Debug().Str("id", id).Int("actions", removed).Msg("value deleted")
	return removed, nil
}

// Value looks up a value by id.
func (s *Service) Value(id string) (entry.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Get(id)
}

// Values returns every value in insertion order.
func (s *Service) Values() []entry.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.List()
}

// ValuesIn returns the values of cat.
func (s *Service) ValuesIn(cat category.ID) []entry.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.InCategory(cat)
}

// AddAction creates an action for valueID. The value is not required to
// exist.
func (s *Service) AddAction(valueID, description string) (entry.Action, error) {
	valueID = strings.TrimSpace(valueID)
	description = strings.TrimSpace(description)
	if valueID == "" {
		return entry.Action{}, fmt.Errorf("%w: value id is required", ErrInvalidInput)
	}
	if description == "" {
		return entry.Action{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.actions.Add(valueID, description)
	s.log.Debug().Str("id", a.ID).Str("value", valueID).Msg("action added")
	return a, nil
}

// ToggleAction flips the completion state of id.
func (s *Service) ToggleAction(id string) (entry.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.actions.Toggle(id)
	if !ok {
		return entry.Action{}, fmt.Errorf("%w: action %q", ErrNotFound, id)
	}
	s.log.Debug().Str("id", id).Bool("completed", a.Completed).Msg("action toggled")
	return a, nil
}

// Actions returns every action in insertion order.
func (s *Service) Actions() []entry.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actions.List()
}

// ActionView is an action joined with the name of its value.
type ActionView struct {
	entry.Action
	// ValueName is empty when the referenced value does not exist.
	ValueName string `json:"valueName,omitempty"`
}

// ActionViews returns the actions with their value labels resolved.
func (s *Service) ActionViews() []ActionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return joinActions(s.actions.List(), s.values.List())
}

// ActionsFor returns the actions aligned to valueID. The value does not
// have to exist.
func (s *Service) ActionsFor(valueID string) []ActionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return joinActions(s.actions.ForValue(valueID), s.values.List())
}

func joinActions(actions []entry.Action, values []entry.Value) []ActionView {
	names := make(map[string]string, len(values))
	for _, v := range values {
		names[v.ID] = v.Name
	}
	out := make([]ActionView, 0, len(actions))
	for _, a := range actions {
		out = append(out, ActionView{Action: a, ValueName: names[a.ValueID]})
	}
	return out
}

// Snapshot is a consistent copy of all three collections.
type Snapshot struct {
	Mood    []entry.MoodEntry `json:"mood"`
	Values  []entry.Value     `json:"values"`
	Actions []ActionView      `json:"actions"`
}

// Snapshot copies the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.values.List()
	return Snapshot{
		Mood:    s.mood.Entries(),
		Values:  values,
		Actions: joinActions(s.actions.List(), values),
	}
}

// InCategory filters the snapshot's values by cat.
func (snap Snapshot) InCategory(cat category.ID) []entry.Value {
	out := make([]entry.Value, 0)
	for _, v := range snap.Values {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out
}

// Today is the service clock's calendar date.
func (s *Service) Today() entry.Day {
	return entry.Today(s.now())
}
