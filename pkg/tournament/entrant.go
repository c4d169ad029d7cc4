package tournament

import (
	"fmt"
	"sync"
)

// Entrant is the canonical mutable slot for one entrant.
//
// A tournament creates exactly one Entrant per input value and hands the same
// pointer to every battle the entrant takes part in, so state a battle policy
// writes (remaining health, a win counter) carries into later rounds.
//
// Access is scoped: [Entrant.Read] and [Entrant.Write] hold the slot's lock
// only for the duration of the callback. Callbacks must not retain the value
// pointer passed to Write, and must not call Read or Write on the same entrant
// (the lock is not reentrant).
type Entrant[E any] struct {
	id    EntrantID
	mu    sync.RWMutex
	value E
}

func newEntrant[E any](id EntrantID, v E) *Entrant[E] {
	return &Entrant[E]{id: id, value: v}
}

// ID returns the entrant's stable ID.
func (e *Entrant[E]) ID() EntrantID { return e.id }

// Read calls fn with a copy of the entrant under a read lock.
func (e *Entrant[E]) Read(fn func(E)) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn(e.value)
}

// Write calls fn with a pointer to the entrant under the write lock.
func (e *Entrant[E]) Write(fn func(*E)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.value)
}

// Value returns a copy of the entrant.
func (e *Entrant[E]) Value() E {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// String formats the current value with %v.
func (e *Entrant[E]) String() string {
	return fmt.Sprint(e.Value())
}
