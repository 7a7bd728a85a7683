package dashboard

import (
	"context"
	"sync"
)

type generation struct {
	id     uint64
	cancel context.CancelFunc
}

// Tracker hands out request generations per key. Starting a new generation
// cancels the in-flight one, and only the latest generation may commit.
type Tracker struct {
	mu      sync.Mutex
	next    uint64
	current map[string]generation
}

func NewTracker() *Tracker {
	return &Tracker{current: make(map[string]generation)}
}

// Begin starts a generation for key and returns its id with a context that
// is cancelled once a newer generation begins.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.current[key]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	t.next++
	t.current[key] = generation{id: t.next, cancel: cancel}
	return ctx, t.next
}

// Commit runs apply if id is still the latest generation for key and reports
// whether it did.
func (t *Tracker) Commit(key string, id uint64, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.current[key]
	if !ok || cur.id != id {
		return false
	}
	apply()
	cur.cancel()
	delete(t.current, key)
	return true
}

// CancelAll aborts every in-flight generation.
func (t *Tracker) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, cur := range t.current {
		cur.cancel()
		delete(t.current, key)
	}
}
