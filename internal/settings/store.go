package settings

import (
	"sync"

	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

// Observer receives the tree before and after a committed change.
type Observer func(prev, next Tree)

type change struct {
	prev Tree
	next Tree
}

// Store is the single source of truth for the settings tree. Every write is
// committed atomically and observers run synchronously in commit order. An
// observer may write to the store; the nested change is queued and delivered
// after the current round completes, so no observer ever sees a partial tree.
type Store struct {
	mu          sync.Mutex
	tree        Tree
	observers   map[uint64]Observer
	order       []uint64
	nextID      uint64
	pending     []change
	dispatching bool
}

// NewStore creates a store holding initial.
func NewStore(initial Tree) *Store {
	return &Store{
		tree:      initial,
		observers: make(map[uint64]Observer),
	}
}

// Get returns the current snapshot.
func (s *Store) Get() Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Update sets the field addressed by path and notifies observers.
func (s *Store) Update(path string, value any) error {
	f, ok := fields[path]
	if !ok {
		return acerrors.NewUnknownFieldError(path)
	}
	var setErr error
	s.commit(func(t *Tree) {
		setErr = f.set(t, value)
	})
	return setErr
}

// Batch applies several writes as one transaction with one notification round.
func (s *Store) Batch(mutate func(*Tree)) {
	s.commit(mutate)
}

// Replace swaps in a whole tree, typically one restored from storage.
func (s *Store) Replace(next Tree) {
	s.commit(func(t *Tree) { *t = next })
}

// Reset restores every field to its default.
func (s *Store) Reset() {
	s.Replace(Defaults())
}

// Subscribe registers an observer for every committed change.
func (s *Store) Subscribe(observer Observer) (unsubscribe func()) {
	if observer == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers[id] = observer
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.observers, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// ObserverCount reports how many observers are registered.
func (s *Store) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Watch subscribes callback to the slice of the tree picked by selector. The
// callback fires only when the selected value differs from the previous one.
func Watch[T comparable](s *Store, selector func(Tree) T, callback func(T)) (unsubscribe func()) {
	return s.Subscribe(func(prev, next Tree) {
		before, after := selector(prev), selector(next)
		if before != after {
			callback(after)
		}
	})
}

func (s *Store) commit(mutate func(*Tree)) {
	s.mu.Lock()
	prev := s.tree
	next := prev
	mutate(&next)
	if next == prev {
		s.mu.Unlock()
		return
	}
	s.tree = next
	s.pending = append(s.pending, change{prev: prev, next: next})
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	s.mu.Unlock()

	s.drain()
}

// drain delivers queued changes in write order. Observers run without the
// lock held. If one panics the rest of the queue is dropped and the store
// keeps notifying on later commits.
func (s *Store) drain() {
	s.mu.Lock()
	completed := false
	defer func() {
		if !completed {
			s.mu.Lock()
			s.pending = nil
		}
		s.dispatching = false
		s.mu.Unlock()
	}()

	for len(s.pending) > 0 {
		c := s.pending[0]
		s.pending = s.pending[1:]
		ids := append([]uint64(nil), s.order...)

		for _, id := range ids {
			// Observers removed earlier in this round are skipped.
			observer, ok := s.observers[id]
			if !ok {
				continue
			}
			s.mu.Unlock()
			observer(c.prev, c.next)
			s.mu.Lock()
		}
	}
	completed = true
}
