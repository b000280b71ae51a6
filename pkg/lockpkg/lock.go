// Package lockpkg provides keyed mutual exclusion.
package lockpkg

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Table serializes operations by string key.
//
// Each distinct key gets its own mutex, so unrelated keys never contend.
// A mutex lives only while someone holds or waits for it, which keeps
// the table bounded by the number of in-flight keys.
// Locks are not reentrant.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New returns an empty lock table.
func New() *Table {
	return &Table{entries: make(map[string]*entry)}
}

func (t *Table) acquire(key string) *entry {
	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok {
		e = &entry{}
		t.entries[key] = e
	}
	e.refs++
	t.mu.Unlock()

	e.mu.Lock()

	return e
}

func (t *Table) release(key string, e *entry) {
	e.mu.Unlock()

	t.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(t.entries, key)
	}
	t.mu.Unlock()
}

// WithLock runs fn while holding the lock for key and returns its error.
// The lock is released on every exit path, panics included.
func (t *Table) WithLock(key string, fn func() error) error {
	e := t.acquire(key)
	defer t.release(key, e)

	return fn()
}

// Len returns the number of keys currently held or awaited.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
