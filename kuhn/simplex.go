package kuhn

import (
	"sort"
	"strconv"
	"strings"
)

// Simplex is the convex hull of N+1 grid vertex indices lying along a
// monotone Kuhn path. Vertices[0] is the starting corner idx0; each
// subsequent vertex adds one unit increment along the next axis in the
// defining permutation.
type Simplex struct {
	Vertices [][]int
}

// BuildSimplex constructs the N+1 vertex index tuples for cell idx0 and
// permutation perm (values 1..N, axes to increment in order). It never
// mutates idx0 or perm, and never shares backing storage with the caller's
// buffers — each vertex tuple is an independent allocation safe to retain.
func BuildSimplex(idx0 []int, perm []int) *Simplex {
	n := len(idx0)
	verts := make([][]int, n+1)
	cur := make([]int, n)
	copy(cur, idx0)
	verts[0] = append(make([]int, 0, n), cur...)
	for j, axis := range perm {
		cur[axis-1]++
		verts[j+1] = append([]int(nil), cur...)
	}

	return &Simplex{Vertices: verts}
}

// Key returns a canonical string identifying the simplex by the multiset of
// its vertex indices: two simplices are equal iff their vertex index
// multisets are equal, regardless of the order Vertices happens to list
// them in.
func (s *Simplex) Key() string {
	keys := make([]string, len(s.Vertices))
	for i, v := range s.Vertices {
		keys[i] = encodeVertex(v)
	}
	sort.Strings(keys)

	return strings.Join(keys, "|")
}

func encodeVertex(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
