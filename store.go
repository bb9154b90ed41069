package jsonconf

import (
	"sort"
	"sync"
)

// Store maps group names to merged Value trees and resolves dotted key
// paths against them. The first path segment selects the group, the rest
// descend into nested object fields.
//
// A Store is safe for concurrent use: reads take a shared lock, Set and the
// load-pass fold take an exclusive one.
type Store struct {
	mu     sync.RWMutex
	groups map[string]Value
}

// NewStore returns a Store optionally pre-seeded with initial group trees.
// The seed map is copied.
func NewStore(seed map[string]Value) *Store {
	groups := make(map[string]Value, len(seed))
	for name, v := range seed {
		groups[name] = v
	}
	return &Store{groups: groups}
}

// Get resolves a dotted key path. It returns ErrNotFound when the group is
// absent or any segment fails to resolve, with null treated as absent (see
// resolveValue). The empty key resolves to a found null Value.
func (s *Store) Get(key string) (Value, error) {
	segs := splitKey(key)
	if len(segs) == 0 {
		return NullValue(), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.groups[segs[0]]
	if !ok {
		return Value{}, notFound(key)
	}
	v, ok := resolveValue(root, segs[1:])
	if !ok {
		return Value{}, notFound(key)
	}
	return v, nil
}

// Has reports whether key resolves to a value. It is true exactly when Get
// succeeds.
func (s *Store) Has(key string) bool {
	_, err := s.Get(key)
	return err == nil
}

// Set assigns a value at a dotted key path, in memory only. A single
// segment replaces the group's whole tree; deeper paths rebuild the group
// tree with the nested field updated, creating intermediate objects as
// needed. The empty key is a no-op.
func (s *Store) Set(key string, v Value) {
	segs := splitKey(key)
	if len(segs) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(segs) == 1 {
		s.groups[segs[0]] = v
		return
	}
	root, ok := s.groups[segs[0]]
	if !ok || root.Kind() != KindObject {
		root = ObjectValue(nil)
	}
	s.groups[segs[0]] = setValue(root, segs[1:], v)
}

// Groups returns the group names currently in the store, sorted.
func (s *Store) Groups() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fold merges v into the named group. The first tree for a group becomes
// the entry verbatim; later trees merge with overlay-wins semantics.
func (s *Store) fold(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.groups[name]
	if !ok {
		s.groups[name] = v
		return
	}
	s.groups[name] = Merge(existing, v)
}
