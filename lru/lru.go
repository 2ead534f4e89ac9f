package lru

import (
	"errors"

	"github.com/mkravets/algokit/cachemetrics"
)

// ErrInvalidCapacity indicates a non-positive capacity passed to New.
var ErrInvalidCapacity = errors.New("lru: capacity must be positive")

// node is an entry in the recency list. The list runs head (most recent)
// to tail (least recent) between two sentinel nodes.
type node struct {
	key   int
	value int
	prev  *node
	next  *node
}

// Cache is a fixed-capacity integer→integer map with LRU eviction.
// Construct with New; a nil *Cache is a benign empty cache for reads.
type Cache struct {
	capacity int
	head     *node // sentinel: head.next is the most recently used entry
	tail     *node // sentinel: tail.prev is the eviction victim
	index    map[int]*node
	metrics  cachemetrics.Metrics
}

// Option customizes a Cache at construction time.
type Option func(*Cache)

// WithMetrics attaches a metrics backend. The default is cachemetrics.Noop.
func WithMetrics(m cachemetrics.Metrics) Option {
	return func(c *Cache) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New returns an empty Cache with the given fixed capacity.
// Returns ErrInvalidCapacity when capacity < 1.
// Complexity: O(1).
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache{
		capacity: capacity,
		head:     &node{},
		tail:     &node{},
		index:    make(map[int]*node, capacity),
		metrics:  cachemetrics.Noop{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// unlink detaches n from the recency list. Sentinels make the neighbor
// pointers always valid.
func unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// pushFront links n right after the head sentinel (most recent position).
func (c *Cache) pushFront(n *node) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

// Get returns the value stored under key and promotes the entry to most
// recent. A miss reports ok=false and promotes nothing.
// Complexity: O(1).
func (c *Cache) Get(key int) (int, bool) {
	if c == nil {
		return 0, false
	}

	n, ok := c.index[key]
	if !ok {
		c.metrics.Miss()
		return 0, false
	}

	unlink(n)
	c.pushFront(n)
	c.metrics.Hit()

	return n.value, true
}

// Put inserts key with value, or updates and promotes an existing entry.
// Inserting a new key at full capacity first evicts the least-recently-used
// entry; updates never evict.
// Complexity: O(1) amortized.
func (c *Cache) Put(key, value int) {
	if c == nil {
		return
	}

	if n, ok := c.index[key]; ok {
		n.value = value
		unlink(n)
		c.pushFront(n)
		c.metrics.Hit()
		return
	}

	if len(c.index) >= c.capacity {
		victim := c.tail.prev
		unlink(victim)
		delete(c.index, victim.key)
		c.metrics.Evict()
	}

	n := &node{key: key, value: value}
	c.pushFront(n)
	c.index[key] = n
	c.metrics.Size(len(c.index))
}

// Delete removes key and reports whether it was present.
// Complexity: O(1).
func (c *Cache) Delete(key int) bool {
	if c == nil {
		return false
	}

	n, ok := c.index[key]
	if !ok {
		return false
	}

	unlink(n)
	delete(c.index, key)
	c.metrics.Size(len(c.index))

	return true
}

// Contains reports whether key is present. It consults only the index, so
// recency order is never disturbed.
// Complexity: O(1).
func (c *Cache) Contains(key int) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[key]
	return ok
}

// PeekNewest returns the most recently used key without promoting it.
// Complexity: O(1).
func (c *Cache) PeekNewest() (int, bool) {
	if c == nil || len(c.index) == 0 {
		return 0, false
	}
	return c.head.next.key, true
}

// PeekOldest returns the least recently used key, the next eviction
// victim, without promoting it.
// Complexity: O(1).
func (c *Cache) PeekOldest() (int, bool) {
	if c == nil || len(c.index) == 0 {
		return 0, false
	}
	return c.tail.prev.key, true
}

// Keys returns up to max keys ordered most- to least-recently used.
// Complexity: O(min(n, max)).
func (c *Cache) Keys(max int) []int {
	if c == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, min(len(c.index), max))
	for n := c.head.next; n != c.tail && len(out) < max; n = n.next {
		out = append(out, n.key)
	}

	return out
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.index)
}

// Cap returns the fixed capacity.
func (c *Cache) Cap() int {
	if c == nil {
		return 0
	}
	return c.capacity
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache) IsEmpty() bool {
	return c.Len() == 0
}

// IsFull reports whether the next insert of a new key would evict.
func (c *Cache) IsFull() bool {
	if c == nil {
		return false
	}
	return len(c.index) >= c.capacity
}

// Clear removes every entry, leaving the empty shell reusable with the
// same capacity.
func (c *Cache) Clear() {
	if c == nil {
		return
	}

	c.head.next = c.tail
	c.tail.prev = c.head
	clear(c.index)
	c.metrics.Size(0)
}
