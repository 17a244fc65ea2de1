// Package attachments provides the ordered working set of child references
// held by an entity while it is being edited
package attachments

// Set is an insertion-ordered collection of attachments keyed by the
// referenced child. A key appears at most once.
type Set[K comparable, V any] struct {
	key   func(V) K
	items []V
	index map[K]int
}

// New creates a set keyed by key. Later items whose key is already present
// are dropped, so hydrating from persisted references never duplicates.
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

// Len returns the number of attachments
func (s *Set[K, V]) Len() int {
	return len(s.items)
}

// Has reports whether k is attached
func (s *Set[K, V]) Has(k K) bool {
	_, ok := s.index[k]
	return ok
}

// Get returns the attachment for k
func (s *Set[K, V]) Get(k K) (V, bool) {
	i, ok := s.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return s.items[i], true
}

// Add appends v unless its key is already attached. It reports whether the
// set changed.
func (s *Set[K, V]) Add(v V) bool {
	k := s.key(v)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Remove detaches k, keeping the order of the remaining attachments
func (s *Set[K, V]) Remove(k K) (V, bool) {
	i, ok := s.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, k)
	for j := i; j < len(s.items); j++ {
		s.index[s.key(s.items[j])] = j
	}
	return removed, true
}

// Update replaces the attachment for k with fn's result. The update is
// refused if k is absent or fn changes the key.
func (s *Set[K, V]) Update(k K, fn func(V) V) bool {
	i, ok := s.index[k]
	if !ok {
		return false
	}
	next := fn(s.items[i])
	if s.key(next) != k {
		return false
	}
	s.items[i] = next
	return true
}

// UpdateAll applies fn to every attachment in order. Results that would
// change a key are discarded.
func (s *Set[K, V]) UpdateAll(fn func(V) V) {
	for i, item := range s.items {
		next := fn(item)
		if s.key(next) == s.key(item) {
			s.items[i] = next
		}
	}
}

// Items returns a copy of the attachments in insertion order
func (s *Set[K, V]) Items() []V {
	out := make([]V, len(s.items))
	copy(out, s.items)
	return out
}

// Keys returns the attached keys in insertion order
func (s *Set[K, V]) Keys() []K {
	out := make([]K, len(s.items))
	for i, item := range s.items {
		out[i] = s.key(item)
	}
	return out
}

// Count returns how many attachments satisfy pred
func (s *Set[K, V]) Count(pred func(V) bool) int {
	n := 0
	for _, item := range s.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the set
func (s *Set[K, V]) Clone() *Set[K, V] {
	return New(s.key, s.items...)
}
