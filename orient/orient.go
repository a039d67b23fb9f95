// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orient propagates a consistent orientation across the
// top-dimensional simplices of a primal complex. Two k-simplices sharing a
// (k-1)-face are consistently oriented iff they induce opposite
// orientations on that face; a DFS from an arbitrary representative of
// each connected component pushes that rule outwards, and a contradiction
// anywhere declares the component non-orientable.
package orient

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/dec/simplex"
)

var alternating = [3]int{1, -1, 1}

// facing lists, per shared face id, the top simplices touching it together
// with the structural sign each induces on the face (orientation excluded).
type facing struct {
	top int
	ind int
}

// adjacency returns face id -> incident top simplices for the complex:
// vertices of edges in 1D, edges of triangles in 2D.
func adjacency(c *simplex.Complex) map[int][]facing {
	adj := make(map[int][]facing)
	if c.Dim == 1 {
		for e := 1; e <= c.NEdges(); e++ {
			adj[c.EdgeTgt(e)] = append(adj[c.EdgeTgt(e)], facing{top: e, ind: 1})
			adj[c.EdgeSrc(e)] = append(adj[c.EdgeSrc(e)], facing{top: e, ind: -1})
		}
		return adj
	}
	for t := 1; t <= c.NTriangles(); t++ {
		e0, e1, e2 := c.TriangleEdges(t)
		v0, v1, v2 := c.TriangleVertices(t)
		dirs := [3][2]int{{v1, v2}, {v0, v2}, {v0, v1}}
		for i, e := range [3]int{e0, e1, e2} {
			match := 1
			if c.EdgeSrc(e) == dirs[i][1] && c.EdgeTgt(e) == dirs[i][0] {
				match = -1
			}
			adj[e] = append(adj[e], facing{top: t, ind: alternating[i] * match})
		}
	}
	return adj
}

// Orient partitions the top simplices into connected components over
// shared faces, picks the lowest-id simplex of each component as its
// representative (keeping that simplex's current orientation) and runs the
// same DFS as OrientComponent from it, committing the orientations only
// after every component has been visited. It returns false — writing
// nothing — when any component is non-orientable.
func Orient(c *simplex.Complex) bool {
	if !c.Oriented {
		chk.Panic("orient: complex carries no orientation to propagate")
	}
	ntop := c.NEdges()
	if c.Dim == 2 {
		ntop = c.NTriangles()
	}
	adj := adjacency(c)
	prop := utl.IntVals(ntop+1, 0)
	for x := 1; x <= ntop; x++ {
		if prop[x] != 0 {
			continue
		}
		seed := 1
		if !topOrientation(c, x) {
			seed = -1
		}
		if !propagate(c, adj, prop, x, seed) {
			return false
		}
	}
	write(c, prop)
	return true
}

// OrientComponent orients the single connected component containing top
// simplex x, forcing x to carry orientation o; the rest of the complex is
// untouched. It returns false when that component is non-orientable.
func OrientComponent(c *simplex.Complex, x int, o simplex.Sign) bool {
	if !c.Oriented {
		chk.Panic("orient: complex carries no orientation to propagate")
	}
	ntop := c.NEdges()
	if c.Dim == 2 {
		ntop = c.NTriangles()
	}
	adj := adjacency(c)
	prop := utl.IntVals(ntop+1, 0)
	seed := 1
	if !o {
		seed = -1
	}
	if !propagate(c, adj, prop, x, seed) {
		return false
	}
	write(c, prop)
	return true
}

// propagate runs the DFS from x, filling prop with ±1 proposals. Crossing
// a shared face flips or keeps the sign so that the two incident top
// simplices induce opposite orientations on it; meeting an already
// proposed simplex with the other sign is the non-orientability witness.
func propagate(c *simplex.Complex, adj map[int][]facing, prop []int, x, seed int) bool {
	prop[x] = seed
	stack := []int{x}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, face := range faces(c, t) {
			var self int
			for _, f := range adj[face] {
				if f.top == t {
					self = f.ind
					break
				}
			}
			for _, f := range adj[face] {
				if f.top == t {
					continue
				}
				want := -prop[t] * self * f.ind
				if prop[f.top] == 0 {
					prop[f.top] = want
					stack = append(stack, f.top)
				} else if prop[f.top] != want {
					return false
				}
			}
		}
	}
	return true
}

func faces(c *simplex.Complex, t int) []int {
	if c.Dim == 1 {
		return []int{c.EdgeSrc(t), c.EdgeTgt(t)}
	}
	e0, e1, e2 := c.TriangleEdges(t)
	return []int{e0, e1, e2}
}

func topOrientation(c *simplex.Complex, x int) simplex.Sign {
	if c.Dim == 1 {
		return c.EdgeOrientation(x)
	}
	return c.TriangleOrientation(x)
}

// write commits the proposals; untouched entries (other components, for
// OrientComponent) stay as they are.
func write(c *simplex.Complex, prop []int) {
	for x := 1; x < len(prop); x++ {
		if prop[x] == 0 {
			continue
		}
		if c.Dim == 1 {
			c.SetEdgeOrientation(x, simplex.Sign(prop[x] > 0))
		} else {
			c.SetTriangleOrientation(x, simplex.Sign(prop[x] > 0))
		}
	}
}
