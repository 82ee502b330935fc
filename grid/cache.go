package grid

import (
	"hash/fnv"
	"math"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Evaluator is the capability the Cache needs from an objective: a value and
// a gradient at a physical position. It is satisfied structurally by any
// shgo.Objective (and by test doubles), so grid never imports the root
// package — there is no cyclic dependency between the facade and its leaf
// data structures.
type Evaluator interface {
	F(x []float64) float64
	Grad(x []float64) []float64
}

// entry is the memoized slot for one grid index. Contending callers race to
// create it; exactly one of them runs the Evaluator, the rest wait on done.
type entry struct {
	done  chan struct{}
	value float64
	grad  []float64
	ok    bool // false if the evaluation panicked or produced NaN/Inf
}

type shard struct {
	mu sync.RWMutex
	m  map[string]*entry
}

// Cache memoizes (value, gradient) pairs over a Grid under concurrent
// access. It shards its backing map by index key across GOMAXPROCS buckets,
// each behind its own sync.RWMutex — generalizing core.Graph's split-lock
// idiom (separate locks for vertices vs. edges) from a fixed two-way split
// to an N-way shard scheme, since cache contention scales with grid size
// rather than with a fixed structural split.
//
// No lock is ever held across a call into Evaluator: a shard is only locked
// to insert a placeholder or to delete a poisoned one, never while F/Grad
// run. This lets concurrent misses at distinct indices proceed in parallel
// even behind the same shard.
type Cache struct {
	grid      *Grid
	eval      Evaluator
	shards    []shard
	evalCount atomic.Int64
}

// NewCache builds a Cache over g using eval for first-demand evaluation.
func NewCache(g *Grid, eval Evaluator) *Cache {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	c := &Cache{
		grid:   g,
		eval:   eval,
		shards: make([]shard, n),
	}
	for i := range c.shards {
		c.shards[i].m = make(map[string]*entry)
	}

	return c
}

// Grid returns the underlying Grid.
func (c *Cache) Grid() *Grid {
	return c.grid
}

// Valid reports whether idx is within the grid's closed index box.
func (c *Cache) Valid(idx []int) bool {
	return c.grid.Valid(idx)
}

// Position returns the physical coordinates of idx (no validity check).
func (c *Cache) Position(idx []int) []float64 {
	return c.grid.Position(idx)
}

// EvaluationCount returns the number of objective calls charged to the
// cache so far: one per distinct index that was successfully evaluated,
// never counted twice even under a storm of concurrent misses at the same
// index.
func (c *Cache) EvaluationCount() int64 {
	return c.evalCount.Load()
}

// GetValue returns the (possibly infinity-padded) value at idx, computing
// it on first demand. Complexity: O(N) for the index encode plus whatever
// Evaluator.F costs on a miss.
func (c *Cache) GetValue(idx []int) float64 {
	v, _ := c.GetVertex(idx)

	return v
}

// GetVertex returns the (value, gradient) pair at idx. Out-of-range idx
// returns (+Inf, nil) per the infinity-padding convention; callers never
// need a special case for boundary vertices.
func (c *Cache) GetVertex(idx []int) (float64, []float64) {
	if !c.grid.Valid(idx) {
		return math.Inf(1), nil
	}

	key := encodeIndex(idx)
	sh := c.shardFor(key)

	// Fast path: entry already exists.
	sh.mu.RLock()
	e, exists := sh.m[key]
	sh.mu.RUnlock()
	if exists {
		<-e.done
		if e.ok {
			return e.value, e.grad
		}
		// Poisoned: the owner already removed it from the map. This call
		// observes the failure; a later call will retry the evaluation.
		return math.NaN(), nil
	}

	// Slow path: try to become the owner via a double-checked insert.
	sh.mu.Lock()
	if e, exists = sh.m[key]; exists {
		sh.mu.Unlock()
		<-e.done
		if e.ok {
			return e.value, e.grad
		}

		return math.NaN(), nil
	}
	owned := &entry{done: make(chan struct{})}
	sh.m[key] = owned
	sh.mu.Unlock()

	value, gradient, ok := c.safeEval(idx)
	if ok {
		owned.value = value
		owned.grad = gradient
		owned.ok = true
		c.evalCount.Add(1)
	} else {
		sh.mu.Lock()
		delete(sh.m, key)
		sh.mu.Unlock()
	}
	close(owned.done)

	if !ok {
		return math.NaN(), nil
	}

	return value, gradient
}

// safeEval calls the Evaluator and disqualifies NaN/Inf results and
// recovered panics alike, never retaining a poisoned cache entry.
func (c *Cache) safeEval(idx []int) (value float64, gradient []float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	pos := c.grid.Position(idx)
	value = c.eval.F(pos)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, nil, false
	}
	gradient = c.eval.Grad(pos)
	for _, gi := range gradient {
		if math.IsNaN(gi) {
			return 0, nil, false
		}
	}

	return value, gradient, true
}

func (c *Cache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return &c.shards[h.Sum32()%uint32(len(c.shards))]
}

// encodeIndex renders idx as a comma-separated key. Indices are small
// (bounded by n_div_max, documented default 25) so this stays cheap and
// avoids pulling in a binary codec for what is, in practice, a handful of
// digits per axis.
func encodeIndex(idx []int) string {
	// Typical N <= 6 and k[i] <= a few hundred: preallocate generously.
	buf := make([]byte, 0, len(idx)*4)
	for i, v := range idx {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}
