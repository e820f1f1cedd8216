// Package keyedset provides an insertion-ordered set whose element identity
// is decided by a caller-supplied key function rather than by struct
// equality.
package keyedset

// Set holds at most one element per key. Adding an element whose key is
// already present replaces the stored element in place.
type Set[K comparable, V any] struct {
	key   func(V) K
	items []V
	index map[K]int
}

// New creates a set using key to derive element identity.
func New[K comparable, V any](key func(V) K, items ...V) *Set[K, V] {
	s := &Set[K, V]{
		key:   key,
		index: make(map[K]int, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts v, replacing any element with the same key.
func (s *Set[K, V]) Add(v V) {
	k := s.key(v)
	if i, ok := s.index[k]; ok {
		s.items[i] = v
		return
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
}

// Remove deletes the element sharing v's key. It reports whether anything
// was removed.
func (s *Set[K, V]) Remove(v V) bool {
	return s.RemoveKey(s.key(v))
}

// RemoveKey deletes the element stored under k.
func (s *Set[K, V]) RemoveKey(k K) bool {
	i, ok := s.index[k]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, k)
	for j := i; j < len(s.items); j++ {
		s.index[s.key(s.items[j])] = j
	}
	return true
}

// Clear empties the set.
func (s *Set[K, V]) Clear() {
	s.items = nil
	s.index = make(map[K]int)
}

// Contains reports whether an element with v's key is present.
func (s *Set[K, V]) Contains(v V) bool {
	_, ok := s.index[s.key(v)]
	return ok
}

// Get returns the element stored under k.
func (s *Set[K, V]) Get(k K) (V, bool) {
	i, ok := s.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of elements.
func (s *Set[K, V]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements in insertion order.
func (s *Set[K, V]) Items() []V {
	out := make([]V, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent copy sharing the same key function.
func (s *Set[K, V]) Clone() *Set[K, V] {
	return New(s.key, s.items...)
}
