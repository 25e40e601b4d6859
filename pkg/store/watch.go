package store

import (
	"context"
	"sync"
)

// Kind names the collection an event refers to.
type Kind int

const (
	KindMood Kind = iota
	KindValues
	KindActions
)

func (k Kind) String() string {
	switch k {
	case KindMood:
		return "mood"
	case KindValues:
		return "values"
	case KindActions:
		return "actions"
	default:
		return "unknown"
	}
}

// Op describes what happened to the record.
type Op int

const (
	OpAdded Op = iota
	OpUpdated
	OpDeleted
)

func (o Op) String() string {
	switch o {
	case OpAdded:
		return "added"
	case OpUpdated:
		return "updated"
	case OpDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is published after a store mutation has been applied.
type Event struct {
	Kind Kind
	Op   Op
	ID   string
}

const watchBuffer = 64

// Feed fans store events out to watchers.
type Feed struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan Event)}
}

// Watch streams events until ctx is cancelled, then closes the channel.
// Events are dropped for watchers that fall behind; callers re-read a
// snapshot on every event, so a dropped event only delays a redraw.
func (f *Feed) Watch(ctx context.Context) <-chan Event {
	ch := make(chan Event, watchBuffer)

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		close(ch)
		f.mu.Unlock()
	}()
	return ch
}

// Publish delivers ev to every watcher without blocking.
func (f *Feed) Publish(ev Event) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
