// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dual builds and holds the Poincaré-dual subdivision of a frozen
// primal complex: the dual vertices, dual edges and (in 2D) dual triangles,
// their orientations, and — once SubdivideDuals has placed dual points —
// the primal/dual k-volumes the Hodge star needs.
package dual

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dec/euclid"
	"github.com/cpmech/dec/simplex"
)

// Rule selects how a triangle's dual center is placed.
type Rule int

const (
	Barycenter Rule = iota
	Circumcenter
	Incenter
)

// dualEdge is one 1-cell of the subdivision. The endpoints are dual-vertex
// ids (D_∂v0=tgt, D_∂v1=src). primalDim/primalId back-point to the primal
// simplex whose elementary dual this 1-cell serves; they are plain ids into
// the primal store, never owning handles.
type dualEdge struct {
	v0, v1    int
	sign      simplex.Sign
	primalDim int
	primalId  int
}

// dualTri is one of the six (vertex-corner, adjacent-edge) triangles a
// primal 2-cell contributes to the subdivision.
type dualTri struct {
	tri    int // owning primal triangle
	vertex int // primal vertex id at this corner
	edge   int // primal edge id whose center is the adjacent dual vertex
	sign   simplex.Sign
}

// DualSimplex identifies one cell of the dual subdivision: Dim is its
// dimension, Id its index in the DualV/DualE/DualTri table, and Sign the
// induced orientation it carries inside the elementary dual it belongs to.
type DualSimplex struct {
	Dim  int
	Id   int
	Sign simplex.Sign
}

// Complex is the dual subdivision of a frozen primal complex.
type Complex struct {
	Primal *simplex.Complex

	edges []dualEdge
	tris  []dualTri

	// edgeHalves[e] holds the two half-edges created for primal edge e:
	// [0] = edge_center(e)->src, [1] = edge_center(e)->tgt.
	edgeHalves map[int][2]int

	// edgeSpokes[e] holds the tri_center->edge_center(e) dual edges, one
	// per incident triangle; together they are the elementary dual of e.
	edgeSpokes map[int][]int

	// vertexTris[v] holds every dualTri index whose corner vertex is v.
	vertexTris map[int][]int
	// edgeTris[e] holds the (up to two) primal triangles incident to e.
	edgeTris map[int][]int

	kern *euclid.Kernel

	dualPoints []euclid.Point // len == NDualV once SubdivideDuals has run
	rule       Rule
	subdivided bool
}

// NDualV returns the number of dual vertices: one per primal simplex of
// every dimension 0..D.
func (d *Complex) NDualV() int {
	p := d.Primal
	n := p.NVerts() + p.NEdges()
	if p.Dim == 2 {
		n += p.NTriangles()
	}
	return n
}

// NDualE and NDualTri return the sizes of the other two dual tables.
func (d *Complex) NDualE() int   { return len(d.edges) }
func (d *Complex) NDualTri() int { return len(d.tris) }

// VertexCenter, EdgeCenter and TriCenter implement the key scheme:
// vertex_center(v)=v, edge_center(e)=N_V+e, triangle_center(t)=N_V+N_E+t.
func (d *Complex) VertexCenter(v int) int { return v }
func (d *Complex) EdgeCenter(e int) int   { return d.Primal.NVerts() + e }
func (d *Complex) TriCenter(t int) int    { return d.Primal.NVerts() + d.Primal.NEdges() + t }

func (d *Complex) addDualEdge(v1, v0 int, sign simplex.Sign, pdim, pid int) int {
	d.edges = append(d.edges, dualEdge{v0: v0, v1: v1, sign: sign, primalDim: pdim, primalId: pid})
	return len(d.edges)
}

// DualEdgeEnds returns (D_∂v1, D_∂v0) of dual edge id.
func (d *Complex) DualEdgeEnds(id int) (src, tgt int) {
	de := d.edges[id-1]
	return de.v1, de.v0
}

// DualEdgeOrientation returns the induced orientation of dual edge id.
func (d *Complex) DualEdgeOrientation(id int) simplex.Sign { return d.edges[id-1].sign }

// DualEdgePrimal returns the (dimension, id) of the primal simplex dual
// edge id back-points to.
func (d *Complex) DualEdgePrimal(id int) (dim, pid int) {
	de := d.edges[id-1]
	return de.primalDim, de.primalId
}

// Build constructs the dual subdivision of primal (which it freezes).
// Every primal edge splits into two half-edges, edge_center(e)->src and
// edge_center(e)->tgt, oriented +σ and -σ. In 2D every triangle adds six
// spokes (to its three edge centers and three vertices) and six dual
// triangles, one per (vertex-corner, adjacent-edge) pair, so that
// DualE = 2·N_E + 6·N_Tri and DualTri = 6·N_Tri. The spokes to an edge
// center carry the induced orientation of that edge's dual 1-cell,
// (-1)^{k(D-k)}·σ = -σ at k=1, D=2.
func Build(primal *simplex.Complex) *Complex {
	primal.Freeze()
	d := &Complex{
		Primal:     primal,
		edgeHalves: make(map[int][2]int),
		edgeSpokes: make(map[int][]int),
		vertexTris: make(map[int][]int),
		edgeTris:   make(map[int][]int),
		kern:       euclid.NewKernel(),
	}

	for e := 1; e <= primal.NEdges(); e++ {
		u := primal.EdgeSrc(e)
		v := primal.EdgeTgt(e)
		sigma := primal.EdgeOrientation(e)
		ec := d.EdgeCenter(e)
		idSrc := d.addDualEdge(ec, u, sigma, 1, e)
		idTgt := d.addDualEdge(ec, v, sigma.Negate(), 1, e)
		d.edgeHalves[e] = [2]int{idSrc, idTgt}
	}
	if primal.Dim == 1 {
		return d
	}

	for t := 1; t <= primal.NTriangles(); t++ {
		e0, e1, e2 := primal.TriangleEdges(t)
		v0, v1, v2 := primal.TriangleVertices(t)
		tc := d.TriCenter(t)

		for _, e := range [3]int{e0, e1, e2} {
			d.edgeTris[e] = append(d.edgeTris[e], t)
		}

		for _, e := range [3]int{e0, e1, e2} {
			id := d.addDualEdge(tc, d.EdgeCenter(e), primal.EdgeOrientation(e).Negate(), 1, e)
			d.edgeSpokes[e] = append(d.edgeSpokes[e], id)
		}
		for _, v := range [3]int{v0, v1, v2} {
			d.addDualEdge(tc, v, true, 0, v)
		}

		// corner v0: adjacent edges e1 (v0-v2) and e2 (v0-v1)
		d.addDualTri(t, v0, e1)
		d.addDualTri(t, v0, e2)
		// corner v1: adjacent edges e0 (v1-v2) and e2 (v0-v1)
		d.addDualTri(t, v1, e0)
		d.addDualTri(t, v1, e2)
		// corner v2: adjacent edges e0 (v1-v2) and e1 (v0-v2)
		d.addDualTri(t, v2, e0)
		d.addDualTri(t, v2, e1)
	}
	return d
}

func (d *Complex) addDualTri(tri, vertex, edge int) {
	idx := len(d.tris)
	d.tris = append(d.tris, dualTri{tri: tri, vertex: vertex, edge: edge, sign: true})
	d.vertexTris[vertex] = append(d.vertexTris[vertex], idx)
}

// ElementaryDuals returns the dual (D-k)-cells that together form the cell
// Poincaré-dual to primal k-simplex x.
func (d *Complex) ElementaryDuals(k, x int) []DualSimplex {
	p := d.Primal
	switch {
	case k == 0 && p.Dim == 1:
		var out []DualSimplex
		for e := 1; e <= p.NEdges(); e++ {
			h := d.edgeHalves[e]
			if p.EdgeSrc(e) == x {
				out = append(out, DualSimplex{Dim: 1, Id: h[0], Sign: d.edges[h[0]-1].sign})
			}
			if p.EdgeTgt(e) == x {
				out = append(out, DualSimplex{Dim: 1, Id: h[1], Sign: d.edges[h[1]-1].sign})
			}
		}
		return out
	case k == 0 && p.Dim == 2:
		out := make([]DualSimplex, 0, len(d.vertexTris[x]))
		for _, idx := range d.vertexTris[x] {
			out = append(out, DualSimplex{Dim: 2, Id: idx + 1, Sign: d.tris[idx].sign})
		}
		return out
	case k == 1 && p.Dim == 1:
		return []DualSimplex{{Dim: 0, Id: d.EdgeCenter(x), Sign: true}}
	case k == 1 && p.Dim == 2:
		out := make([]DualSimplex, 0, len(d.edgeSpokes[x]))
		for _, id := range d.edgeSpokes[x] {
			out = append(out, DualSimplex{Dim: 1, Id: id, Sign: d.edges[id-1].sign})
		}
		return out
	case k == 2 && p.Dim == 2:
		return []DualSimplex{{Dim: 0, Id: d.TriCenter(x), Sign: p.TriangleOrientation(x)}}
	}
	chk.Panic("dual: ElementaryDuals(%d) is not defined on a %dD complex", k, p.Dim)
	return nil
}

// SubdivideDuals places a point into every dual vertex: the primal point
// for a vertex center, and the rule-selected center of the corresponding
// primal simplex for edge and triangle centers (all three rules place an
// edge center at the midpoint). It requires an embedded primal complex.
func (d *Complex) SubdivideDuals(rule Rule) error {
	if !d.Primal.Embedded {
		chk.Panic("dual: SubdivideDuals requires an embedded primal complex")
	}
	p := d.Primal
	d.rule = rule
	d.dualPoints = make([]euclid.Point, d.NDualV())

	for v := 1; v <= p.NVerts(); v++ {
		d.dualPoints[d.VertexCenter(v)-1] = p.Point(v)
	}
	for e := 1; e <= p.NEdges(); e++ {
		u, v := p.EdgeSrc(e), p.EdgeTgt(e)
		d.dualPoints[d.EdgeCenter(e)-1] = euclid.Barycenter([]euclid.Point{p.Point(u), p.Point(v)})
	}
	for t := 1; t <= p.NTriangles(); t++ {
		v0, v1, v2 := p.TriangleVertices(t)
		p0, p1, p2 := p.Point(v0), p.Point(v1), p.Point(v2)
		var c euclid.Point
		var err error
		switch rule {
		case Barycenter:
			c = euclid.Barycenter([]euclid.Point{p0, p1, p2})
		case Circumcenter:
			c, err = euclid.Circumcenter(p0, p1, p2)
		case Incenter:
			c = euclid.Incenter(p0, p1, p2)
		default:
			chk.Panic("dual: unknown subdivision rule %d", rule)
		}
		if err != nil {
			return err
		}
		d.dualPoints[d.TriCenter(t)-1] = c
	}
	d.subdivided = true
	return nil
}

// Subdivided reports whether SubdivideDuals has run.
func (d *Complex) Subdivided() bool { return d.subdivided }

// SubdivisionRule returns the rule SubdivideDuals placed the dual points
// with; meaningful only once Subdivided reports true.
func (d *Complex) SubdivisionRule() Rule { return d.rule }

// DualPoint returns the placed point of dual vertex id.
func (d *Complex) DualPoint(id int) euclid.Point {
	if !d.subdivided {
		chk.Panic("dual: SubdivideDuals has not been called")
	}
	return d.dualPoints[id-1]
}

// Volume0 returns the measure of the elementary dual of primal vertex v:
// the summed half-lengths of its incident edges in 1D, or the summed areas
// of its corner dual triangles in 2D.
func (d *Complex) Volume0(v int) float64 {
	p := d.Primal
	if p.Dim == 1 {
		var sum float64
		for e := 1; e <= p.NEdges(); e++ {
			if p.EdgeSrc(e) == v || p.EdgeTgt(e) == v {
				length, err := d.kern.Volume([]euclid.Point{p.Point(p.EdgeSrc(e)), p.Point(p.EdgeTgt(e))})
				if err != nil {
					chk.Panic("dual: %v", err)
				}
				sum += length / 2
			}
		}
		return sum
	}
	var sum float64
	for _, idx := range d.vertexTris[v] {
		dt := d.tris[idx]
		tc := d.DualPoint(d.TriCenter(dt.tri))
		ec := d.DualPoint(d.EdgeCenter(dt.edge))
		vp := p.Point(v)
		// a collapsed corner triangle (circumcenter on an edge) has zero
		// measure, not an error
		area, err := d.kern.Volume([]euclid.Point{tc, ec, vp})
		if err != nil {
			area = 0
		}
		sum += area
	}
	return sum
}

// Volume1 returns the length of the elementary dual of primal edge e. In
// 1D this is the unit measure of the edge-center point. In 2D it is, for
// each incident triangle, the perpendicular distance from the triangle's
// dual center to the line through e, summed. For circumcentric duals the
// spoke from center to edge center is already perpendicular to e, so this
// coincides with the straight spoke length; for barycentric and incentric
// duals it does not, and the perpendicular component is the measure that
// makes the diagonal Hodge star a dual/primal volume ratio.
func (d *Complex) Volume1(e int) float64 {
	p := d.Primal
	if p.Dim == 1 {
		return 1
	}
	pa, pb := p.Point(p.EdgeSrc(e)), p.Point(p.EdgeTgt(e))
	length, err := d.kern.Volume([]euclid.Point{pa, pb})
	if err != nil {
		chk.Panic("dual: %v", err)
	}
	var sum float64
	for _, t := range d.edgeTris[e] {
		tc := d.DualPoint(d.TriCenter(t))
		// tc collinear with e (circumcenter on the edge) contributes zero
		area, err := d.kern.Volume([]euclid.Point{tc, pa, pb})
		if err != nil {
			area = 0
		}
		sum += 2 * area / length
	}
	return sum
}

// Volume2 returns the volume of the elementary dual of a top-dimensional
// primal simplex, which is always a single point: 1, by the same
// convention that gives a 0-simplex unit volume.
func (d *Complex) Volume2(int) float64 { return 1 }

// DualVolume returns the measure of the cell Poincaré-dual to primal
// k-simplex x.
func (d *Complex) DualVolume(k, x int) float64 {
	switch k {
	case 0:
		return d.Volume0(x)
	case 1:
		return d.Volume1(x)
	case 2:
		if d.Primal.Dim == 2 {
			return d.Volume2(x)
		}
	}
	chk.Panic("dual: DualVolume(%d) is not defined on a %dD complex", k, d.Primal.Dim)
	return 0
}

// EdgeTriangles returns the (up to two) primal triangles incident to edge e.
func (d *Complex) EdgeTriangles(e int) []int {
	out := make([]int, len(d.edgeTris[e]))
	copy(out, d.edgeTris[e])
	return out
}
