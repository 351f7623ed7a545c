package linkcheck

// FrontierItem is a page waiting to be visited.
type FrontierItem struct {
	URL string
	// Depth is the hop distance from the seed (seed = 0).
	Depth int
}

// URLFrontier manages a breadth-first crawl queue with a seen set.
// Marking a URL seen and queueing it are separate steps: every discovered
// link is marked seen, but only links within the depth budget are queued.
type URLFrontier interface {
	// Visit marks the URL as seen.
	// Returns false if the URL had already been seen.
	Visit(url string) bool

	// Push appends an item to the back of the queue.
	Push(item FrontierItem)

	// Pop removes and returns the item at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (FrontierItem, bool)

	// Len returns the number of items in the queue.
	Len() int

	// Seen returns true if the URL has been visited.
	Seen(url string) bool
}
