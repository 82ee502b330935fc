package basin

import (
	"math"
	"runtime"
	"sort"

	"github.com/katalvlaran/shgo/grid"
	"golang.org/x/sync/errgroup"
)

// Candidate is one star-minimum: a grid vertex whose value is <= every one
// of its 3^N-1 neighbors within a relative tolerance.
type Candidate struct {
	Idx   []int
	Value float64
}

// DetectStars scans every vertex of cache's grid in lexicographic index
// order and returns the star-minimum candidates, in that same order (the
// ordering guarantee basin clustering's deterministic root production
// relies on). relTol is the relative tolerance from the "<=" comparison;
// callers pass DefaultRelTolStar absent an explicit Options override.
//
// A vertex whose own value is non-finite (the objective raised or returned
// NaN/Inf at that index) is disqualified outright, never a candidate; a
// non-finite neighbor value never blocks candidacy, treated the same as
// the infinity-padding convention at the box boundary.
func DetectStars(cache *grid.Cache, relTol float64) []Candidate {
	g := cache.Grid()
	n := g.Dim()
	deltas := neighborDeltas(n)

	return scanRange(cache, deltas, relTol, g.K, 0, g.K[0])
}

// DetectStarsParallel is DetectStars sharded across maxParallel workers,
// each scanning a contiguous range of the outermost axis via
// golang.org/x/sync/errgroup — the one fan-out primitive used throughout
// this codebase for per-iteration parallel work (see DESIGN.md). Shard
// results are concatenated in shard order, which is also index order,
// since the outermost axis is the most significant digit: concatenation
// never needs to re-sort.
func DetectStarsParallel(cache *grid.Cache, relTol float64, maxParallel int) ([]Candidate, error) {
	if maxParallel < 1 {
		maxParallel = runtime.GOMAXPROCS(0)
	}
	g := cache.Grid()
	n := g.Dim()
	deltas := neighborDeltas(n)

	axis0Count := g.K[0] + 1
	shards := maxParallel
	if shards > axis0Count {
		shards = axis0Count
	}
	if shards < 1 {
		shards = 1
	}

	results := make([][]Candidate, shards)
	chunk := (axis0Count + shards - 1) / shards

	var eg errgroup.Group
	eg.SetLimit(shards)
	for s := 0; s < shards; s++ {
		s := s
		lo := s * chunk
		hi := lo + chunk - 1
		if hi > g.K[0] {
			hi = g.K[0]
		}
		if lo > g.K[0] {
			continue
		}
		eg.Go(func() error {
			results[s] = scanRange(cache, deltas, relTol, g.K, lo, hi)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]Candidate, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	return all, nil
}

func scanRange(cache *grid.Cache, deltas [][]int, relTol float64, k []int, lo0, hi0 int) []Candidate {
	n := len(k)
	it := newVertexIteratorRange(k, lo0, hi0)
	neighbor := make([]int, n)
	var candidates []Candidate

	for idx, ok := it.next(); ok; idx, ok = it.next() {
		if c, isStar := checkVertex(cache, deltas, relTol, idx, neighbor); isStar {
			candidates = append(candidates, c)
		}
	}

	return candidates
}

// checkVertex evaluates idx against its 3^N-1 neighbors, reusing the
// caller-owned neighbor scratch buffer. It is the shared core of both the
// full-grid scan (scanRange) and DetectStarsSubset's pruned shortlist scan.
func checkVertex(cache *grid.Cache, deltas [][]int, relTol float64, idx, neighbor []int) (Candidate, bool) {
	v := cache.GetValue(idx)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// spec.md §4.4: a non-finite val(idx) disqualifies the vertex
		// outright, regardless of how its neighbors compare. idx itself is
		// always a valid in-box grid index here (only neighbor lookups can
		// hit the +Inf boundary-padding rule), so a non-finite v can only
		// come from the objective itself failing or saturating at idx.
		return Candidate{}, false
	}

	tol := starTolerance(v, relTol)
	for _, d := range deltas {
		for i := range neighbor {
			neighbor[i] = idx[i] + d[i]
		}
		nv := cache.GetValue(neighbor)
		if math.IsNaN(nv) {
			// A disqualified neighbor cannot prove v is not minimal; treat
			// it the same as the +Inf boundary-padding value.
			continue
		}
		if v > nv+tol {
			return Candidate{}, false
		}
	}

	return Candidate{Idx: cloneIdx(idx), Value: v}, true
}

// DetectStarsSubset is DetectStars restricted to the given indices — the
// gradient-hull pruning shortlist, used instead of a full grid scan when
// Options.UseGradientPruning is set. Duplicate indices are scanned once;
// results are produced in the same lexicographic order DetectStars uses,
// so the two code paths are interchangeable to callers.
func DetectStarsSubset(cache *grid.Cache, indices [][]int, relTol float64) []Candidate {
	g := cache.Grid()
	n := g.Dim()
	deltas := neighborDeltas(n)

	dedup := make(map[string][]int, len(indices))
	for _, idx := range indices {
		dedup[encodeIdx(idx)] = idx
	}
	unique := make([][]int, 0, len(dedup))
	for _, idx := range dedup {
		unique = append(unique, idx)
	}
	sort.Slice(unique, func(a, b int) bool {
		for i := range unique[a] {
			if unique[a][i] != unique[b][i] {
				return unique[a][i] < unique[b][i]
			}
		}

		return false
	})

	neighbor := make([]int, n)
	var candidates []Candidate
	for _, idx := range unique {
		if c, isStar := checkVertex(cache, deltas, relTol, idx, neighbor); isStar {
			candidates = append(candidates, c)
		}
	}

	return candidates
}
