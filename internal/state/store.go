// Package state holds the fields shared by the profile directory client and
// the export controller, and notifies observers whenever they change.
package state

import (
	"slices"
	"sync"
)

// Phase is the step an export interaction is in.
type Phase int

const (
	PhaseIdle                 Phase = iota
	PhaseAwaitingPath               // save dialog open
	PhaseAwaitingExportResult       // export command issued
)

// String returns a short name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingPath:
		return "awaiting-path"
	case PhaseAwaitingExportResult:
		return "awaiting-export-result"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the shared fields at one point in time.
type Snapshot struct {
	Profiles     []string
	Selected     string
	HasSelection bool
	Phase        Phase
}

// Selection returns the selected profile name, if any.
func (s Snapshot) Selection() (string, bool) {
	return s.Selected, s.HasSelection
}

func (s Snapshot) clone() Snapshot {
	s.Profiles = slices.Clone(s.Profiles)
	return s
}

// Store owns the shared fields. Updates are applied under a lock and
// observers are called afterwards with the new snapshot, in the order
// they subscribed.
type Store struct {
	mu        sync.Mutex
	snap      Snapshot
	observers map[int]func(Snapshot)
	nextID    int
}

// NewStore returns an empty store: no profiles, no selection, idle.
func NewStore() *Store {
	return &Store{observers: make(map[int]func(Snapshot))}
}

// Snapshot returns a copy of the current fields.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

// Update applies fn to the fields and notifies observers.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	snap := s.snap.clone()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.mu.Unlock()

	for _, f := range fns {
		f(snap.clone())
	}
}

// Subscribe registers fn to be called after every update. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}
