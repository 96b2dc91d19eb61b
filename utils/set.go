package utils

import (
	"sort"
	"sync"
)

// StringSet is a thread-safe set of strings. The zero value is not usable;
// call NewStringSet.
type StringSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewStringSet creates a set holding the given values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{seen: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.seen[v] = struct{}{}
	}
	return s
}

// Add returns true if the value was newly added, false if already present.
func (s *StringSet) Add(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[value]; exists {
		return false
	}
	s.seen[value] = struct{}{}
	return true
}

// Contains returns true if the value is in the set.
func (s *StringSet) Contains(value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[value]
	return exists
}

// Size returns the number of distinct values tracked.
func (s *StringSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}

// Sorted returns the members in ascending order.
func (s *StringSet) Sorted() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.seen))
	for v := range s.seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
