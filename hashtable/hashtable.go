package hashtable

// Bucket count starts at initialBuckets and doubles whenever the entry
// count exceeds maxLoadNum/maxLoadDen of it.
const (
	initialBuckets = 16
	maxLoadNum     = 3
	maxLoadDen     = 4
)

// FNV-1a constants for 64-bit hashes.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// entry is a single chained key/value pair.
type entry struct {
	key   string
	value int
	next  *entry
}

// Table is a string→int hash table with separate chaining. Construct
// with New; a nil *Table is a benign empty table for reads.
type Table struct {
	buckets []*entry
	size    int
}

// New returns an empty Table.
// Complexity: O(1).
func New() *Table {
	return &Table{buckets: make([]*entry, initialBuckets)}
}

// hash returns the FNV-1a hash of key.
func hash(key string) uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}
	return h
}

// bucketFor maps key to its chain index. The bucket count is a power of
// two, so the modulo reduces to a mask.
func (t *Table) bucketFor(key string) int {
	return int(hash(key) & uint64(len(t.buckets)-1))
}

// lookup returns the entry holding key, nil when absent.
func (t *Table) lookup(key string) *entry {
	if len(t.buckets) == 0 {
		return nil
	}
	for e := t.buckets[t.bucketFor(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// resize doubles the bucket count and rehashes every entry.
func (t *Table) resize() {
	old := t.buckets
	t.buckets = make([]*entry, 2*len(old))

	for _, e := range old {
		for e != nil {
			next := e.next
			i := t.bucketFor(e.key)
			e.next = t.buckets[i]
			t.buckets[i] = e
			e = next
		}
	}
}

// Put stores value under key and reports whether the key was new. An
// existing key has its value overwritten.
// Complexity: O(1) expected, O(n) on a resize.
func (t *Table) Put(key string, value int) bool {
	if t == nil {
		return false
	}
	if t.buckets == nil {
		t.buckets = make([]*entry, initialBuckets)
	}

	if e := t.lookup(key); e != nil {
		e.value = value
		return false
	}

	if maxLoadDen*(t.size+1) > maxLoadNum*len(t.buckets) {
		t.resize()
	}

	i := t.bucketFor(key)
	t.buckets[i] = &entry{key: key, value: value, next: t.buckets[i]}
	t.size++
	return true
}

// Get returns the value stored under key and whether the key is present.
// Complexity: O(1) expected.
func (t *Table) Get(key string) (int, bool) {
	if t == nil {
		return 0, false
	}
	if e := t.lookup(key); e != nil {
		return e.value, true
	}
	return 0, false
}

// Contains reports whether key is present.
// Complexity: O(1) expected.
func (t *Table) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
// Complexity: O(1) expected.
func (t *Table) Delete(key string) bool {
	if t == nil || len(t.buckets) == 0 {
		return false
	}

	i := t.bucketFor(key)
	for p := &t.buckets[i]; *p != nil; p = &(*p).next {
		if (*p).key == key {
			*p = (*p).next
			t.size--
			return true
		}
	}
	return false
}

// Len returns the number of stored keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the table holds no keys.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Clear removes every key, keeping the current bucket array.
func (t *Table) Clear() {
	if t == nil {
		return
	}
	clear(t.buckets)
	t.size = 0
}

// Keys returns every stored key in no particular order; nil when empty.
// Complexity: O(n).
func (t *Table) Keys() []string {
	if t == nil || t.size == 0 {
		return nil
	}

	out := make([]string, 0, t.size)
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			out = append(out, e.key)
		}
	}
	return out
}

// Values returns every stored value in no particular order; nil when
// empty.
// Complexity: O(n).
func (t *Table) Values() []int {
	if t == nil || t.size == 0 {
		return nil
	}

	out := make([]int, 0, t.size)
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			out = append(out, e.value)
		}
	}
	return out
}
