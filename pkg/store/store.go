// Package store holds the three in-memory collections: mood entries,
// values and actions. Stores are not safe for concurrent use; the app
// service serialises access to them.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a store.
type Option func(*base)

// WithClock overrides the clock used to stamp dates.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDs overrides the id generator.
func WithIDs(gen func() string) Option {
	return func(b *base) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithFeed publishes mutations to f.
func WithFeed(f *Feed) Option {
	return func(b *base) {
		b.feed = f
	}
}

type base struct {
	now   func() time.Time
	newID func() string
	feed  *Feed
}

func newBase(opts []Option) base {
	b := base{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) publish(kind Kind, op Op, id string) {
	b.feed.Publish(Event{Kind: kind, Op: op, ID: id})
}
