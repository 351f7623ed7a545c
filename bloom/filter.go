// Package bloom provides URL deduplication backed by a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set is an exact string set with a Bloom filter in front of it.
// Most lookups during a crawl are for URLs that have never been seen, and
// the filter answers those without touching the map. A positive filter
// answer is always confirmed against the map, so the set never reports a
// false positive.
type Set struct {
	f *bloom.BloomFilter
	m map[string]struct{}
}

// NewSet creates a new Set sized for n expected items
// with the given false positive rate for the prefilter.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		f: bloom.NewWithEstimates(n, fpRate),
		m: make(map[string]struct{}, n),
	}
}

// Add inserts key into the set.
// Returns false if key was already present.
func (s *Set) Add(key string) bool {
	if s.Has(key) {
		return false
	}
	s.f.AddString(key)
	s.m[key] = struct{}{}
	return true
}

// Has returns true if key is in the set.
func (s *Set) Has(key string) bool {
	if !s.f.TestString(key) {
		return false
	}
	_, ok := s.m[key]
	return ok
}

// Len returns the exact number of items in the set.
func (s *Set) Len() int {
	return len(s.m)
}
