// Package store holds keyed scene state: namespaces of named fields that are
// replaced wholesale with SetInitialState and updated one field at a time
// with Advance. Every write produces a new Snapshot; older snapshots are
// never modified, so readers can hold on to them without locking.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUninitialized = errors.New("store: uninitialized state")
	ErrNilUpdate     = errors.New("store: update function is nil")
	ErrTypeMismatch  = errors.New("store: field has unexpected type")
)

// Namespace maps field names to values.
type Namespace map[string]any

func (n Namespace) clone() Namespace {
	out := make(Namespace, len(n)+1)
	for k, v := range n {
		out[k] = v
	}
	return out
}

// Snapshot is the full store contents at one instant. Snapshots are
// immutable once published.
type Snapshot struct {
	namespaces map[string]Namespace
}

// Namespace returns a copy of the named namespace.
func (s Snapshot) Namespace(name string) (Namespace, bool) {
	ns, ok := s.namespaces[name]
	if !ok {
		return nil, false
	}
	return ns.clone(), true
}

// Has reports whether the namespace has been initialized.
func (s Snapshot) Has(name string) bool {
	_, ok := s.namespaces[name]
	return ok
}

// Field returns namespace.field, or an error wrapping ErrUninitialized when
// either part was never set.
func (s Snapshot) Field(namespace, field string) (any, error) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil, fmt.Errorf("%w: namespace %q", ErrUninitialized, namespace)
	}
	v, ok := ns[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q.%q", ErrUninitialized, namespace, field)
	}
	return v, nil
}

// Names lists the initialized namespaces in sorted order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a two-level copy of the snapshot.
func (s Snapshot) Map() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.namespaces))
	for name, ns := range s.namespaces {
		out[name] = map[string]any(ns.clone())
	}
	return out
}

// MarshalYAML lets snapshots be dumped with yaml.Marshal.
func (s Snapshot) MarshalYAML() (any, error) {
	return s.Map(), nil
}

// with returns a snapshot where only namespace has been replaced.
func (s Snapshot) with(namespace string, ns Namespace) Snapshot {
	next := make(map[string]Namespace, len(s.namespaces)+1)
	for k, v := range s.namespaces {
		next[k] = v
	}
	next[namespace] = ns
	return Snapshot{namespaces: next}
}

// UpdateFunc computes a field's next value from the current snapshot. It must
// be a pure function of its argument: the store may call it while holding its
// write lock and makes no promise about how often it runs.
type UpdateFunc func(Snapshot) (any, error)

// Listener observes the snapshot produced by a write.
type Listener func(Snapshot)

type listenerEntry struct {
	id uint64
	fn Listener
}

type Option func(*Store)

// WithAutoCreate makes Advance create a missing namespace instead of failing.
// Fields the update function reads must still exist.
func WithAutoCreate() Option {
	return func(s *Store) {
		s.autoCreate = true
	}
}

// Store is a keyed state container. It is safe for concurrent use; writes are
// serialized and listeners run on the writing goroutine after the new
// snapshot is published.
type Store struct {
	mu         sync.Mutex
	current    Snapshot
	listeners  []listenerEntry
	nextID     uint64
	autoCreate bool
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{current: Snapshot{namespaces: map[string]Namespace{}}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetInitialState replaces everything stored under namespace.
func (s *Store) SetInitialState(namespace string, initial Namespace) {
	s.mu.Lock()
	s.current = s.current.with(namespace, initial.clone())
	snap, listeners := s.current, s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

// Advance replaces namespace.field with fn(current snapshot) and returns the
// new value. If fn fails, or the namespace is missing and the store was not
// built WithAutoCreate, the store is left untouched.
func (s *Store) Advance(namespace, field string, fn UpdateFunc) (any, error) {
	if fn == nil {
		return nil, ErrNilUpdate
	}

	s.mu.Lock()
	ns, ok := s.current.namespaces[namespace]
	if !ok && !s.autoCreate {
		s.mu.Unlock()
		return nil, fmt.Errorf("store: advance %s.%s: %w: namespace %q", namespace, field, ErrUninitialized, namespace)
	}

	value, err := fn(s.current)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("store: advance %s.%s: %w", namespace, field, err)
	}

	next := ns.clone()
	next[field] = value
	s.current = s.current.with(namespace, next)
	snap, listeners := s.current, s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return value, nil
}

// Subscribe registers fn to run after every write. Listeners run in
// registration order. The returned func removes the listener.
func (s *Store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) listenersLocked() []listenerEntry {
	if len(s.listeners) == 0 {
		return nil
	}
	return append([]listenerEntry(nil), s.listeners...)
}

func notify(listeners []listenerEntry, snap Snapshot) {
	for _, l := range listeners {
		l.fn(snap)
	}
}
