package basin

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Cluster partitions candidates into basins: two candidates in the 3^N-1
// neighborhood of one another merge iff their values differ by less than
// value_range * thresholdRatio, where value_range = max(max-min, MinEps)
// over all candidate values. thresholdRatio <= 0 selects
// DefaultThresholdRatio.
//
// The disjoint-set is index-based over candidates (union by rank, iterative
// path-compressed find), generalizing prim_kruskal.Kruskal's
// map[string]string parent/rank scheme to slice indices — candidates have
// no natural string ID, and a slice index is denser and allocation-free.
// This is O(K * 3^N * alpha(K)); it never builds a full pairwise graph.
//
// Each returned basin is a slice of indices into candidates; basins are
// ordered by their union-find root's index after path compression (not by
// input order),
// so two runs over the same candidate set in any order produce the same
// basin partition up to the order of members within a basin.
func Cluster(candidates []Candidate, thresholdRatio float64) [][]int {
	k := len(candidates)
	if k == 0 {
		return nil
	}
	if thresholdRatio <= 0 {
		thresholdRatio = DefaultThresholdRatio
	}

	parent := make([]int, k)
	rank := make([]int, k)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, c := range candidates {
		if c.Value < minV {
			minV = c.Value
		}
		if c.Value > maxV {
			maxV = c.Value
		}
	}
	valueRange := math.Max(maxV-minV, MinEps)
	threshold := valueRange * thresholdRatio

	n := len(candidates[0].Idx)
	deltas := neighborDeltas(n)
	lookup := make(map[string]int, k)
	for i, c := range candidates {
		lookup[encodeIdx(c.Idx)] = i
	}

	neighbor := make([]int, n)
	for i, c := range candidates {
		for _, d := range deltas {
			for j := 0; j < n; j++ {
				neighbor[j] = c.Idx[j] + d[j]
			}
			j, ok := lookup[encodeIdx(neighbor)]
			if !ok {
				continue
			}
			if math.Abs(c.Value-candidates[j].Value) < threshold {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]int)
	for i := range candidates {
		r := find(i)
		groups[r] = append(groups[r], i)
	}
	roots := make([]int, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	basins := make([][]int, 0, len(roots))
	for _, r := range roots {
		basins = append(basins, groups[r])
	}

	return basins
}

func encodeIdx(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
