package crawl

import (
	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/bloom"
)

// Compile-time interface verification.
var _ linkcheck.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with an exact seen set.
// It is owned by a single crawl and is not safe for concurrent use.
type Frontier struct {
	seen  *bloom.Set
	queue []linkcheck.FrontierItem
	head  int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for the seen-set prefilter.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewSet(n, fpRate),
	}
}

// Visit marks the URL as seen.
// Returns false if the URL had already been seen.
func (f *Frontier) Visit(url string) bool {
	return f.seen.Add(url)
}

// Push appends an item to the back of the queue.
func (f *Frontier) Push(item linkcheck.FrontierItem) {
	f.queue = append(f.queue, item)
}

// Pop removes and returns the oldest item.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (linkcheck.FrontierItem, bool) {
	if f.head == len(f.queue) {
		return linkcheck.FrontierItem{}, false
	}
	item := f.queue[f.head]
	f.queue[f.head] = linkcheck.FrontierItem{}
	f.head++

	// Reuse the backing array once drained.
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return item, true
}

// Len returns the number of items in the queue.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// SeenCount returns the number of distinct URLs visited so far.
func (f *Frontier) SeenCount() int {
	return f.seen.Len()
}

// Seen returns true if the URL has been visited.
func (f *Frontier) Seen(url string) bool {
	return f.seen.Has(url)
}
