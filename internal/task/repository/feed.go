package repository

import (
	"sync"

	"smart-todo/internal/model"
)

const feedBuffer = 16

// Feed fans committed-write events out to subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses that event.
type Feed struct {
	mu     sync.RWMutex
	subs   map[int]chan model.TaskEvent
	nextID int
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan model.TaskEvent)}
}

// Subscribe registers a new subscriber. The returned cancel function closes
// the channel and may be called more than once.
func (f *Feed) Subscribe() (<-chan model.TaskEvent, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan model.TaskEvent, feedBuffer)
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
}

// Publish delivers ev to every subscriber with buffer space.
func (f *Feed) Publish(ev model.TaskEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
