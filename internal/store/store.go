package store

import (
	"sort"
	"sync"
)

// ActionRestoreSnapshot is the synthetic action type reported to listeners
// when a whole snapshot is swapped in via Restore. It is not part of the
// dispatchable set; dispatching it directly is a no-op like any unknown type.
const ActionRestoreSnapshot ActionType = "RESTORE_SNAPSHOT"

// Listener observes every committed mutation. Listeners run synchronously
// inside the dispatch critical section, so they must not call back into the
// store and should return quickly.
type Listener func(AppState, Action)

// Options configures a Store.
type Options struct {
	// Strict turns on the invariant checks at the dispatch boundary:
	// closed enums, referential ids, transition legality, duplicate adds.
	// Off by default, which preserves the silently-absorbing behavior of
	// the client reducer this store descends from.
	Strict bool
}

// Store owns the application state. All access is safe for concurrent use;
// dispatches are serialized through one mutex, so every listener and every
// State call observes fully-applied snapshots in dispatch order.
type Store struct {
	mu     sync.Mutex
	state  AppState
	strict bool
	closed bool

	nextID    int
	listeners map[int]Listener
}

// New creates a store holding the initial empty state.
func New(opts Options) *Store {
	return &Store{
		state:     InitialState(),
		strict:    opts.Strict,
		listeners: make(map[int]Listener),
	}
}

// Strict reports whether the store enforces the strict invariant checks.
func (s *Store) Strict() bool {
	return s.strict
}

// State returns the current snapshot. The returned value shares its
// collections with the store but they are never mutated after commit, so
// callers may read them freely.
func (s *Store) State() (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return AppState{}, ErrStoreClosed
	}
	return s.state, nil
}

// Dispatch applies one action atomically and returns the resulting snapshot.
// Order of observation follows dispatch order for all readers and listeners.
func (s *Store) Dispatch(a Action) (AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return AppState{}, ErrStoreClosed
	}

	if s.strict {
		if err := checkStrict(s.state, a); err != nil {
			return s.state, err
		}
	}

	next, err := reduce(s.state, a)
	if err != nil {
		return s.state, err
	}
	s.state = next
	s.notify(next, a)
	return next, nil
}

// Subscribe registers a listener for committed mutations and returns its
// unsubscribe func. Listeners are notified in registration order.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Restore swaps in a complete snapshot, bypassing the action set. Used for
// boot seeding and archive restores; listeners see it as a
// RESTORE_SNAPSHOT action.
func (s *Store) Restore(state AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.state = state
	s.notify(state, Action{Type: ActionRestoreSnapshot})
	return nil
}

// Close shuts the store down. Every later operation fails with
// ErrStoreClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = make(map[int]Listener)
}

func (s *Store) notify(state AppState, a Action) {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		s.listeners[id](state, a)
	}
}
