// Package cachemetrics defines the observability hook shared by the lru and
// lfu caches. The caches call the Metrics interface on every hit, miss and
// eviction; Noop is the default when no backend is configured. A Prometheus
// adapter lives in the prom subpackage.
package cachemetrics

// Metrics receives cache events. Implementations must be cheap: the caches
// invoke these callbacks synchronously on their O(1) hot paths.
type Metrics interface {
	// Hit is called when Get or an updating Put finds the key.
	Hit()
	// Miss is called when Get misses.
	Miss()
	// Evict is called when an insert at full capacity removes a victim.
	Evict()
	// Size reports the entry count after every mutation.
	Size(entries int)
}

// Noop is a drop-in Metrics implementation that does nothing. It is the
// default used by the caches when no backend is configured.
type Noop struct{}

func (Noop) Hit()       {}
func (Noop) Miss()      {}
func (Noop) Evict()     {}
func (Noop) Size(_ int) {}

// Compile-time check.
var _ Metrics = Noop{}
