// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplex implements the primal complex: an ordered (semi-)
// simplicial complex of dimension 1 or 2, built on top of rel.Store, with
// optional per-simplex orientation and per-vertex embedding in ℝⁿ.
package simplex

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/dec/euclid"
	"github.com/cpmech/dec/rel"
)

// object table names
const (
	obV   = "V"
	obE   = "E"
	obTri = "Tri"
)

// face-map attribute names: ∂v0 == tgt, ∂v1 == src, and the three
// edge-face maps on triangles ∂e0, ∂e1, ∂e2.
const (
	attrDv0 = "dv0" // tgt
	attrDv1 = "dv1" // src
	attrDe0 = "de0"
	attrDe1 = "de1"
	attrDe2 = "de2"
)

// Sign is the orientation alphabet used throughout this module: true ↔ +1.
// Negate and ToFloat are the only two operations the operator assemblies
// sign through.
type Sign bool

// Negate returns the opposite sign.
func (s Sign) Negate() Sign { return !s }

// ToFloat returns +1 for true and -1 for false.
func (s Sign) ToFloat() float64 {
	if s {
		return 1
	}
	return -1
}

// Complex is a primal delta complex of dimension 1 (vertices+edges) or 2
// (vertices+edges+triangles). Oriented and Embedded are fixed at
// construction, so one type covers the plain, oriented and embedded
// delta-set variants.
type Complex struct {
	Dim      int // 1 or 2
	Oriented bool
	Embedded bool

	store *rel.Store

	edgeOrient []Sign
	triOrient  []Sign
	points     []euclid.Point

	frozen bool
}

// New returns an empty primal complex of the given dimension.
func New(dim int, oriented, embedded bool) *Complex {
	if dim != 1 && dim != 2 {
		chk.Panic("simplex: dimension must be 1 or 2, got %d", dim)
	}
	s := rel.NewStore()
	s.DeclareAttr(obE, attrDv0, true)
	s.DeclareAttr(obE, attrDv1, true)
	if dim == 2 {
		s.DeclareAttr(obTri, attrDe0, true)
		s.DeclareAttr(obTri, attrDe1, true)
		s.DeclareAttr(obTri, attrDe2, true)
	}
	return &Complex{Dim: dim, Oriented: oriented, Embedded: embedded, store: s}
}

// Freeze marks the complex as read-only; any further mutator call panics.
// The dual-complex build calls this on the primal snapshot it consumes.
func (c *Complex) Freeze() { c.frozen = true }

// Frozen reports whether the complex has been frozen.
func (c *Complex) Frozen() bool { return c.frozen }

func (c *Complex) checkMutable() {
	if c.frozen {
		chk.Panic("simplex: complex is frozen, no further mutation allowed")
	}
}

// NVerts, NEdges and NTriangles return the current size of each table.
func (c *Complex) NVerts() int     { return c.store.NParts(obV) }
func (c *Complex) NEdges() int     { return c.store.NParts(obE) }
func (c *Complex) NTriangles() int { return c.store.NParts(obTri) }

// AddVertex appends a vertex, optionally with a point if the complex is
// embedded, and returns its id.
func (c *Complex) AddVertex(p euclid.Point) int {
	c.checkMutable()
	id := c.store.AddPart(obV)
	if c.Embedded {
		if p == nil {
			chk.Panic("simplex: embedded complex requires a point for every vertex")
		}
		c.points = append(c.points, p)
	}
	return id
}

// AddVertices appends n bare (unembedded) vertices and returns their ids.
func (c *Complex) AddVertices(n int) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = c.AddVertex(nil)
	}
	return ids
}

// Point returns the embedded position of vertex v.
func (c *Complex) Point(v int) euclid.Point {
	if !c.Embedded {
		chk.Panic("simplex: complex is not embedded")
	}
	return c.points[v-1]
}

// AddEdge appends an edge with ∂v0=tgt, ∂v1=src and returns its id. An
// explicit orientation may be passed; it defaults to +1.
func (c *Complex) AddEdge(src, tgt int, orientation ...Sign) int {
	c.checkMutable()
	id := c.store.AddPart(obE)
	c.store.SetSubpart(obE, attrDv0, id, tgt)
	c.store.SetSubpart(obE, attrDv1, id, src)
	if c.Oriented {
		sign := Sign(true)
		if len(orientation) > 0 {
			sign = orientation[0]
		}
		c.edgeOrient = append(c.edgeOrient, sign)
	}
	return id
}

// AddEdges appends one edge per (src,tgt) pair and returns their ids.
func (c *Complex) AddEdges(pairs [][2]int) []int {
	ids := make([]int, len(pairs))
	for i, p := range pairs {
		ids[i] = c.AddEdge(p[0], p[1])
	}
	return ids
}

// AddSortedEdge adds edge (min(a,b) -> max(a,b)).
func (c *Complex) AddSortedEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	return c.AddEdge(a, b)
}

// EdgeSrc and EdgeTgt return ∂v1 and ∂v0 of edge e.
func (c *Complex) EdgeSrc(e int) int { return c.store.Subpart(obE, attrDv1, e) }
func (c *Complex) EdgeTgt(e int) int { return c.store.Subpart(obE, attrDv0, e) }

// EdgeOrientation returns the orientation of edge e (true ↔ +1).
func (c *Complex) EdgeOrientation(e int) Sign {
	if !c.Oriented {
		return true
	}
	return c.edgeOrient[e-1]
}

// SetEdgeOrientation overwrites the orientation of edge e; used by the
// orientation pass.
func (c *Complex) SetEdgeOrientation(e int, s Sign) {
	c.checkMutable()
	if !c.Oriented {
		chk.Panic("simplex: complex carries no orientation")
	}
	c.edgeOrient[e-1] = s
}

// Edges returns every edge x with EdgeSrc(x)==src and EdgeTgt(x)==tgt.
func (c *Complex) Edges(src, tgt int) []int {
	cand := c.store.Incident(obE, attrDv1, src)
	out := make([]int, 0, len(cand))
	for _, e := range cand {
		if c.store.Subpart(obE, attrDv0, e) == tgt {
			out = append(out, e)
		}
	}
	return out
}

// AddTriangle sets ∂e2=eFirst, ∂e0=eLast, ∂e1=tgtEdge and returns the new
// triangle's id. It does not verify the simplicial identities; the caller
// accepts that responsibility.
func (c *Complex) AddTriangle(eFirst, eLast, tgtEdge int, orientation ...Sign) int {
	c.checkMutable()
	if c.Dim != 2 {
		chk.Panic("simplex: AddTriangle requires a 2D complex")
	}
	id := c.store.AddPart(obTri)
	c.store.SetSubpart(obTri, attrDe2, id, eFirst)
	c.store.SetSubpart(obTri, attrDe0, id, eLast)
	c.store.SetSubpart(obTri, attrDe1, id, tgtEdge)
	if c.Oriented {
		sign := Sign(true)
		if len(orientation) > 0 {
			sign = orientation[0]
		}
		c.triOrient = append(c.triOrient, sign)
	}
	return id
}

// TriangleEdges returns (e0, e1, e2) of triangle t.
func (c *Complex) TriangleEdges(t int) (e0, e1, e2 int) {
	e0 = c.store.Subpart(obTri, attrDe0, t)
	e1 = c.store.Subpart(obTri, attrDe1, t)
	e2 = c.store.Subpart(obTri, attrDe2, t)
	return
}

// TriangleVertices returns (v0, v1, v2) of triangle t, read via
// src(e1), tgt(e2), tgt(e1) as specified.
func (c *Complex) TriangleVertices(t int) (v0, v1, v2 int) {
	_, e1, e2 := c.TriangleEdges(t)
	v0 = c.EdgeSrc(e1)
	v1 = c.EdgeTgt(e2)
	v2 = c.EdgeTgt(e1)
	return
}

// TriangleOrientation returns the orientation of triangle t.
func (c *Complex) TriangleOrientation(t int) Sign {
	if !c.Oriented {
		return true
	}
	return c.triOrient[t-1]
}

// SetTriangleOrientation overwrites the orientation of triangle t.
func (c *Complex) SetTriangleOrientation(t int, s Sign) {
	c.checkMutable()
	if !c.Oriented {
		chk.Panic("simplex: complex carries no orientation")
	}
	c.triOrient[t-1] = s
}

// GlueTriangle adds a triangle on corners v0, v1, v2 (in this order),
// reusing an existing edge between any two corners when one already exists
// in the expected direction (as a sorted edge) and creating one otherwise.
// This is the only constructor that guarantees the simplicial identities,
// and it does so precisely when v0 < v1 < v2; callers that cannot
// guarantee the order should call GlueSortedTriangle instead.
func (c *Complex) GlueTriangle(v0, v1, v2 int, orientation ...Sign) (int, error) {
	eFirst, err := c.reuseOrAddSortedEdge(v0, v1)
	if err != nil {
		return 0, err
	}
	eLast, err := c.reuseOrAddSortedEdge(v1, v2)
	if err != nil {
		return 0, err
	}
	eTgt, err := c.reuseOrAddSortedEdge(v0, v2)
	if err != nil {
		return 0, err
	}
	return c.AddTriangle(eFirst, eLast, eTgt, orientation...), nil
}

// GlueSortedTriangle normalizes (a,b,c) into increasing order before
// delegating to GlueTriangle.
func (c *Complex) GlueSortedTriangle(a, b, c2 int, orientation ...Sign) (int, error) {
	utl.IntSort3(&a, &b, &c2)
	return c.GlueTriangle(a, b, c2, orientation...)
}

// reuseOrAddSortedEdge returns the edge stored between lo=min(a,b) and
// hi=max(a,b), creating it if absent. It returns an InvalidTopology error
// if an edge already exists between a and b but in the opposite (hi->lo)
// direction, since glue_triangle only ever recognizes sorted edges.
func (c *Complex) reuseOrAddSortedEdge(a, b int) (int, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if existing := c.Edges(lo, hi); len(existing) > 0 {
		return existing[0], nil
	}
	if reversed := c.Edges(hi, lo); len(reversed) > 0 {
		return 0, rel.NewError(rel.InvalidTopology,
			"simplex: glue_triangle: an edge already exists from %d to %d, "+
				"which disagrees with the requested sorted direction %d->%d", hi, lo, lo, hi)
	}
	return c.AddSortedEdge(lo, hi), nil
}
