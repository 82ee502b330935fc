package refine

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/shgo/grid"
	"github.com/katalvlaran/shgo/hull"
	"github.com/katalvlaran/shgo/kuhn"
)

// prunedShortlist walks every Kuhn simplex of cache's grid and, for each
// one, asks hull.CanPrune whether the origin provably lies outside the
// convex hull of its vertices' gradients. A simplex that cannot be pruned
// contributes all of its vertices to the shortlist; a simplex that can be
// pruned contributes none. The result — deduplicated, unordered — is meant
// for basin.DetectStarsSubset, which imposes its own deterministic order.
//
// A simplex with any unevaluable vertex (a poisoned cache entry) is always
// retained rather than pruned, the same conservative default hull.CanPrune
// itself applies to non-finite gradients.
func prunedShortlist(cache *grid.Cache, k []int) [][]int {
	enum := kuhn.NewEnumerator(k)
	seen := make(map[string][]int)

	for simplex, ok := enum.Next(); ok; simplex, ok = enum.Next() {
		gradients := make([][]float64, 0, len(simplex.Vertices))
		retain := false
		for _, v := range simplex.Vertices {
			_, grad := cache.GetVertex(v)
			if grad == nil {
				retain = true

				break
			}
			gradients = append(gradients, grad)
		}

		if !retain {
			pruned, err := hull.CanPrune(gradients)
			if err != nil {
				retain = true
			} else {
				retain = !pruned
			}
		}

		if retain {
			for _, v := range simplex.Vertices {
				seen[encodeIdx(v)] = v
			}
		}
	}

	shortlist := make([][]int, 0, len(seen))
	for _, v := range seen {
		shortlist = append(shortlist, v)
	}

	return shortlist
}

// encodeIdx is refine's own private index-to-key encoder, deliberately
// duplicated rather than reaching into basin's unexported helper of the
// same shape — each package that needs this owns its own copy, matching
// the pattern kuhn.encodeVertex and basin.encodeIdx already establish.
func encodeIdx(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
