// Package basin identifies star-minimum candidates on a grid.Cache and
// partitions them into basins of attraction.
//
// A star-minimum candidate is a vertex whose value is less than or equal to
// every one of its 3^N-1 axis-and-diagonal neighbors (infinity-padded at the
// box boundary), within a relative tolerance. Two candidates that are
// 3^N-1-adjacent and whose values differ by less than a value-range-relative
// threshold belong to the same basin; basin membership is computed with an
// index-based union-find (union by rank, path compression), generalizing
// prim_kruskal.Kruskal's map[string]string parent/rank scheme from
// vertex-ID keys to dense slice indices, since candidates have no natural
// string identity and a slice index is both denser and allocation-free.
package basin

import "math"

// MinEps is the floor on value_range (and, scaled by rel_tol, on a single
// vertex's own comparison slack) below which floating point noise would
// otherwise make every comparison spuriously exact.
const MinEps = 1e-12

// DefaultThresholdRatio is the default fraction of the candidate value
// range used as the basin-merge tolerance (see Cluster).
const DefaultThresholdRatio = 0.1

// DefaultRelTolStar is the default relative tolerance used to decide
// whether one vertex's value is "less than or equal to" a neighbor's,
// guarding against floating point noise at a true plateau.
const DefaultRelTolStar = 1e-10

func starTolerance(v, relTol float64) float64 {
	return math.Max(MinEps, math.Abs(v)*relTol)
}
