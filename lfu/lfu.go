package lfu

import (
	"errors"

	"github.com/mkravets/algokit/cachemetrics"
)

// ErrInvalidCapacity indicates a non-positive capacity passed to New.
var ErrInvalidCapacity = errors.New("lfu: capacity must be positive")

// node is a cache entry. prev/next link it into the recency list of the
// bucket matching its frequency counter.
type node struct {
	key   int
	value int
	freq  int
	prev  *node
	next  *node
}

// bucket is the recency list of all entries at one frequency, running
// head (most recently touched) to tail (eviction victim) between two
// sentinel nodes.
type bucket struct {
	head *node
	tail *node
	size int
}

func newBucket() *bucket {
	b := &bucket{head: &node{}, tail: &node{}}
	b.head.next = b.tail
	b.tail.prev = b.head
	return b
}

// pushFront links n at the most-recently-touched end.
func (b *bucket) pushFront(n *node) {
	n.prev = b.head
	n.next = b.head.next
	b.head.next.prev = n
	b.head.next = n
	b.size++
}

// remove unlinks n from the bucket.
func (b *bucket) remove(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	b.size--
}

// removeTail unlinks and returns the least recently touched entry.
func (b *bucket) removeTail() *node {
	n := b.tail.prev
	b.remove(n)
	return n
}

// Cache is a fixed-capacity integer→integer map with LFU eviction and
// LRU tie-breaking. Construct with New; a nil *Cache is a benign empty
// cache for reads.
type Cache struct {
	capacity int
	minFreq  int
	index    map[int]*node
	buckets  map[int]*bucket
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
		index:    make(map[int]*node, capacity),
		buckets:  make(map[int]*bucket),
		metrics:  cachemetrics.Noop{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// touch counts one access: the entry leaves its current bucket and is
// rehomed at the head of the next-frequency bucket. If the vacated bucket
// was the minFreq bucket and is now empty, minFreq advances by one.
func (c *Cache) touch(n *node) {
	oldFreq := n.freq
	newFreq := oldFreq + 1

	if b, ok := c.buckets[oldFreq]; ok {
		b.remove(n)
		if b.size == 0 {
			delete(c.buckets, oldFreq)
			if c.minFreq == oldFreq {
				c.minFreq = newFreq
			}
		}
	}

	n.freq = newFreq
	c.bucketFor(newFreq).pushFront(n)
}

// bucketFor returns the bucket for freq, creating it if needed.
func (c *Cache) bucketFor(freq int) *bucket {
	b, ok := c.buckets[freq]
	if !ok {
		b = newBucket()
		c.buckets[freq] = b
	}
	return b
}

// Get returns the value stored under key and counts the access,
// incrementing the entry's frequency. A miss reports ok=false.
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

	c.touch(n)
	c.metrics.Hit()

	return n.value, true
}

// Put inserts key with value or updates an existing entry. Both paths
// count as one access. Inserting a new key at full capacity first evicts
// the least recently touched entry of the minFreq bucket; the new entry
// starts at frequency one and minFreq is forced to one.
// Complexity: O(1) amortized.
func (c *Cache) Put(key, value int) {
	if c == nil {
		return
	}

	if n, ok := c.index[key]; ok {
		n.value = value
		c.touch(n)
		c.metrics.Hit()
		return
	}

	if len(c.index) >= c.capacity {
		c.evict()
	}

	n := &node{key: key, value: value, freq: 1}
	c.bucketFor(1).pushFront(n)
	c.index[key] = n
	c.minFreq = 1
	c.metrics.Size(len(c.index))
}

// evict removes the victim: the tail of the populated bucket with the
// smallest frequency ≥ minFreq. minFreq can lag behind after a Delete, so
// the lookup walks upward to the first live bucket; the walk is one step
// in the steady state.
func (c *Cache) evict() {
	freq := c.minFreq
	b, ok := c.buckets[freq]
	for !ok || b.size == 0 {
		freq++
		b, ok = c.buckets[freq]
	}

	victim := b.removeTail()
	if b.size == 0 {
		delete(c.buckets, freq)
	}
	delete(c.index, victim.key)
	c.metrics.Evict()
}

// Delete removes key and reports whether it was present. Emptying the
// minFreq bucket does not advance minFreq; the next insert resets it.
// Complexity: O(1).
func (c *Cache) Delete(key int) bool {
	if c == nil {
		return false
	}

	n, ok := c.index[key]
	if !ok {
		return false
	}

	if b, found := c.buckets[n.freq]; found {
		b.remove(n)
		if b.size == 0 {
			delete(c.buckets, n.freq)
		}
	}
	delete(c.index, key)
	c.metrics.Size(len(c.index))

	return true
}

// Contains reports whether key is present without counting an access.
// Complexity: O(1).
func (c *Cache) Contains(key int) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[key]
	return ok
}

// FrequencyOf returns the access count of key (1 for a freshly inserted
// entry), or −1 when the key is absent. It does not count as an access.
// Complexity: O(1).
func (c *Cache) FrequencyOf(key int) int {
	if c == nil {
		return -1
	}

	n, ok := c.index[key]
	if !ok {
		return -1
	}

	return n.freq
}

// MinFrequency returns the tracked minimum frequency, or 0 when the
// cache is empty. The value can lag after a Delete empties the lowest
// bucket; the next insert resets it to one.
// Complexity: O(1).
func (c *Cache) MinFrequency() int {
	if c == nil || len(c.index) == 0 {
		return 0
	}
	return c.minFreq
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

	clear(c.index)
	clear(c.buckets)
	c.minFreq = 0
	c.metrics.Size(0)
}
