// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ops assembles the combinatorial and geometric operators of the
// discrete exterior calculus — the exterior derivative, the boundary map,
// the Hodge star (diagonal and geometric), the codifferential, the
// Laplace-de Rham operator, the wedge product and the musical isomorphisms
// — on top of a simplex.Complex/dual.Complex pair. Global assembly
// accumulates structural nonzeros into la.Triplet's coordinate-format
// builder and collapses to a dense matrix once at the end, since the
// complexes this module targets are small enough that a compressed sparse
// format buys nothing further.
package ops

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/dec/dual"
	"github.com/cpmech/dec/euclid"
	"github.com/cpmech/dec/rel"
	"github.com/cpmech/dec/simplex"
)

// Matrix is a dense row-major operator (la.MatAlloc-backed [][]float64)
// rather than a sparse la.CCMatrix, since every assembled operator here is
// converted from its triplet to a dense form immediately after assembly.
type Matrix [][]float64

// HodgeKind selects which Hodge star realization the metric operators use
// for 1-forms in 2D.
type HodgeKind int

const (
	DiagonalHodge HodgeKind = iota
	GeometricHodge
)

func assembleFromTriplet(nr, nc, nnz int, fill func(t *la.Triplet)) Matrix {
	t := new(la.Triplet)
	t.Init(nr, nc, nnz)
	fill(t)
	return t.ToMatrix(nil).ToDense()
}

// faceDir returns the (src,tgt) vertex pair the i-th face edge of triangle
// t is expected to span under the simplicial identities.
func faceDir(c *simplex.Complex, t, i int) (src, tgt int) {
	v0, v1, v2 := c.TriangleVertices(t)
	switch i {
	case 0:
		return v1, v2
	case 1:
		return v0, v2
	case 2:
		return v0, v1
	}
	chk.Panic("ops: face index %d out of range", i)
	return
}

// edgeMatch is +1 when edge e's stored (src,tgt) agrees with the direction
// implied by TriangleVertices for face slot i of triangle t, -1 when it is
// reversed.
func edgeMatch(c *simplex.Complex, t, i, e int) float64 {
	expSrc, expTgt := faceDir(c, t, i)
	switch {
	case c.EdgeSrc(e) == expSrc && c.EdgeTgt(e) == expTgt:
		return 1
	case c.EdgeSrc(e) == expTgt && c.EdgeTgt(e) == expSrc:
		return -1
	}
	chk.Panic("ops: triangle %d's face %d (edge %d) is not incident to the expected vertices", t, i, e)
	return 0
}

var alternating = [3]float64{1, -1, 1}

// faceSign returns the signed incidence of triangle t's i-th face edge e:
// the standard alternating (+,-,+) simplicial boundary sign, combined with
// the triangle's own orientation, the edge's own orientation, and whether
// the edge's stored direction agrees with the direction implied by
// TriangleVertices for that face.
func faceSign(c *simplex.Complex, t, i, e int) float64 {
	return alternating[i] * c.TriangleOrientation(t).ToFloat() * edgeMatch(c, t, i, e) * c.EdgeOrientation(e).ToFloat()
}

// Boundary assembles ∂(k): k-chains to (k-1)-chains. k=1 gives the
// NVerts×NEdges incidence ∂e = tgt(e) - src(e) (signed by e's own
// orientation); k=2 (2D only) gives the NEdges×NTriangles face incidence.
func Boundary(c *simplex.Complex, k int) Matrix {
	switch k {
	case 1:
		return assembleFromTriplet(c.NVerts(), c.NEdges(), 2*c.NEdges(), func(t *la.Triplet) {
			for e := 1; e <= c.NEdges(); e++ {
				sign := c.EdgeOrientation(e).ToFloat()
				t.Put(c.EdgeTgt(e)-1, e-1, sign)
				t.Put(c.EdgeSrc(e)-1, e-1, -sign)
			}
		})
	case 2:
		if c.Dim != 2 {
			chk.Panic("ops: Boundary(2) requires a 2D complex")
		}
		return assembleFromTriplet(c.NEdges(), c.NTriangles(), 3*c.NTriangles(), func(t *la.Triplet) {
			for tri := 1; tri <= c.NTriangles(); tri++ {
				e0, e1, e2 := c.TriangleEdges(tri)
				for i, e := range [3]int{e0, e1, e2} {
					t.Put(e-1, tri-1, faceSign(c, tri, i, e))
				}
			}
		})
	}
	chk.Panic("ops: Boundary(%d) is not defined", k)
	return nil
}

// ExteriorDerivative assembles d(k): k-cochains to (k+1)-cochains, as the
// transpose incidence of Boundary(k+1) — the standard coboundary/boundary
// duality of simplicial (co)chain complexes.
func ExteriorDerivative(c *simplex.Complex, k int) Matrix {
	return Transpose(Boundary(c, k+1))
}

// DualBoundary assembles the boundary map on dual k-chains. In the primal
// indexing used throughout this module (a dual k-cell is indexed by the
// primal (D-k)-simplex it is dual to) this is the signed exterior
// derivative one primal dimension down: (-1)^{D-k} · d(D-k).
func DualBoundary(c *simplex.Complex, k int) Matrix {
	D := c.Dim
	sign := 1.0
	if (D-k)%2 != 0 {
		sign = -1
	}
	return Scale(ExteriorDerivative(c, D-k), sign)
}

// DualDerivative assembles the discrete exterior derivative on dual
// k-forms: (-1)^{k+1} · ∂(D-k) in primal indexing.
func DualDerivative(c *simplex.Complex, k int) Matrix {
	D := c.Dim
	sign := 1.0
	if (k+1)%2 != 0 {
		sign = -1
	}
	return Scale(Boundary(c, D-k), sign)
}

// DiagonalHodgeDiag returns the diagonal entries of ⋆(k): the ratio
// |dual(σ)| / |σ| for every primal k-simplex σ. A zero-volume primal cell
// makes the star undefined and yields a DegenerateGeometry error.
func DiagonalHodgeDiag(c *simplex.Complex, d *dual.Complex, k int) ([]float64, error) {
	switch k {
	case 0:
		out := make([]float64, c.NVerts())
		for v := 1; v <= c.NVerts(); v++ {
			out[v-1] = d.Volume0(v)
		}
		return out, nil
	case 1:
		out := make([]float64, c.NEdges())
		for e := 1; e <= c.NEdges(); e++ {
			length, err := euclid.Volume([]euclid.Point{c.Point(c.EdgeSrc(e)), c.Point(c.EdgeTgt(e))})
			if err != nil {
				return nil, err
			}
			out[e-1] = d.Volume1(e) / length
		}
		return out, nil
	case 2:
		if c.Dim != 2 {
			chk.Panic("ops: DiagonalHodgeDiag(2) requires a 2D complex")
		}
		out := make([]float64, c.NTriangles())
		for t := 1; t <= c.NTriangles(); t++ {
			v0, v1, v2 := c.TriangleVertices(t)
			area, err := euclid.Volume([]euclid.Point{c.Point(v0), c.Point(v1), c.Point(v2)})
			if err != nil {
				return nil, err
			}
			out[t-1] = d.Volume2(t) / area
		}
		return out, nil
	}
	chk.Panic("ops: DiagonalHodgeDiag(%d) is not defined", k)
	return nil, nil
}

// GeometricHodge1 assembles the non-diagonal ⋆(1) of a 2D complex from the
// subdivided dual: for each triangle with dual center c, each face edge
// contributes its perpendicular spoke ratio |ev×dv|/|ev|² to the diagonal
// (dv = c minus the edge center), and each pair of distinct face edges
// contributes 6·dd_i·dd_j off-diagonal, where dd = ⟨ev,dv⟩/|ev|² is the
// tangential spoke ratio. The tangential ratios vanish when the dual
// center is the circumcenter, collapsing ⋆(1) onto the diagonal star; for
// barycentric or incentric duals they supply the coupling between edges
// meeting at a corner. The triangle's own orientation never enters, so the
// matrix is invariant under re-orienting top cells. The sign convention on
// meshes whose edges are not sorted has only been validated on coherently
// built complexes.
func GeometricHodge1(c *simplex.Complex, d *dual.Complex) (Matrix, error) {
	if c.Dim != 2 {
		chk.Panic("ops: GeometricHodge1 requires a 2D complex")
	}
	if !d.Subdivided() {
		chk.Panic("ops: GeometricHodge1 requires subdivided duals")
	}
	out := la.MatAlloc(c.NEdges(), c.NEdges())
	for t := 1; t <= c.NTriangles(); t++ {
		e0, e1, e2 := c.TriangleEdges(t)
		edges := [3]int{e0, e1, e2}
		tc := d.DualPoint(d.TriCenter(t))

		var ev, dv [3]euclid.Point
		var lsq, crs, dd [3]float64
		for i, e := range edges {
			ev[i] = c.Point(c.EdgeTgt(e)).Sub(c.Point(c.EdgeSrc(e)))
			dv[i] = tc.Sub(d.DualPoint(d.EdgeCenter(e)))
			lsq[i] = ev[i].Dot(ev[i])
			if lsq[i] < euclid.DetTol {
				return nil, rel.NewError(rel.DegenerateGeometry, "ops: zero-length edge %d in triangle %d", e, t)
			}
			crs[i] = ev[i][0]*dv[i][1] - ev[i][1]*dv[i][0]
			dd[i] = ev[i].Dot(dv[i]) / lsq[i]
		}
		for i := 0; i < 3; i++ {
			out[edges[i]-1][edges[i]-1] += math.Abs(crs[i]) / lsq[i]
			for j := 0; j < 3; j++ {
				if i != j {
					out[edges[i]-1][edges[j]-1] += 6 * dd[i] * dd[j]
				}
			}
		}
	}
	return out, nil
}

func diagToMatrix(diag []float64) Matrix {
	n := len(diag)
	out := la.MatAlloc(n, n)
	for i, v := range diag {
		out[i][i] = v
	}
	return out
}

func diagInverse(diag []float64) ([]float64, error) {
	out := make([]float64, len(diag))
	for i, v := range diag {
		if math.Abs(v) < euclid.DetTol {
			return nil, rel.NewError(rel.DegenerateGeometry, "ops: hodge star has a zero diagonal entry at %d and cannot be inverted", i+1)
		}
		out[i] = 1 / v
	}
	return out, nil
}

// Hodge returns the k-form Hodge star as a dense matrix under the
// requested kind. GeometricHodge is only meaningful (and only implemented)
// for k=1 in a 2D complex; every other (kind,k) combination falls back to
// the diagonal star.
func Hodge(c *simplex.Complex, d *dual.Complex, k int, kind HodgeKind) (Matrix, error) {
	if kind == GeometricHodge && k == 1 && c.Dim == 2 {
		return GeometricHodge1(c, d)
	}
	diag, err := DiagonalHodgeDiag(c, d, k)
	if err != nil {
		return nil, err
	}
	return diagToMatrix(diag), nil
}

// HodgeInverse returns the matrix inverse of Hodge(c,d,k,kind). For the
// diagonal star this is the elementwise reciprocal; for the geometric star
// it goes through gonum's LU-based Dense.Inverse.
func HodgeInverse(c *simplex.Complex, d *dual.Complex, k int, kind HodgeKind) (Matrix, error) {
	if kind == GeometricHodge && k == 1 && c.Dim == 2 {
		m, err := GeometricHodge1(c, d)
		if err != nil {
			return nil, err
		}
		n := len(m)
		flat := make([]float64, n*n)
		for i := 0; i < n; i++ {
			copy(flat[i*n:(i+1)*n], m[i])
		}
		var inv mat.Dense
		if err := inv.Inverse(mat.NewDense(n, n, flat)); err != nil {
			return nil, rel.NewError(rel.DegenerateGeometry, "ops: geometric hodge star (1) is not invertible: %v", err)
		}
		out := la.MatAlloc(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out[i][j] = inv.At(i, j)
			}
		}
		return out, nil
	}
	diag, err := DiagonalHodgeDiag(c, d, k)
	if err != nil {
		return nil, err
	}
	inv, err := diagInverse(diag)
	if err != nil {
		return nil, err
	}
	return diagToMatrix(inv), nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	out := la.MatAlloc(len(m[0]), len(m))
	for i := range m {
		for j := range m[i] {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Mul returns a·b.
func Mul(a, b Matrix) Matrix {
	if len(a) == 0 || len(b) == 0 {
		return Matrix{}
	}
	nr, nk, nc := len(a), len(b), len(b[0])
	out := la.MatAlloc(nr, nc)
	for i := 0; i < nr; i++ {
		for p := 0; p < nk; p++ {
			if a[i][p] == 0 {
				continue
			}
			for j := 0; j < nc; j++ {
				out[i][j] += a[i][p] * b[p][j]
			}
		}
	}
	return out
}

// Scale returns s·a.
func Scale(a Matrix, s float64) Matrix {
	if len(a) == 0 {
		return Matrix{}
	}
	out := la.MatAlloc(len(a), len(a[0]))
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] * s
		}
	}
	return out
}

// Add returns a+b, treating an empty matrix as zero.
func Add(a, b Matrix) Matrix {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := la.MatAlloc(len(a), len(a[0]))
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// Apply multiplies operator m into form x, checking the form's length.
func Apply(m Matrix, x []float64) ([]float64, error) {
	if len(m) == 0 {
		return nil, nil
	}
	if len(x) != len(m[0]) {
		return nil, rel.NewError(rel.DimensionMismatch, "ops: operator is %dx%d but the form has length %d", len(m), len(m[0]), len(x))
	}
	out := make([]float64, len(m))
	la.MatVecMul(out, 1, m, x)
	return out, nil
}

// CoDifferential assembles δ(k): k-forms to (k-1)-forms, via the adjoint
// identity δ = (-1)^{D(k-1)+1} · ⋆⁻¹(k-1) · ∂(k) · ⋆(k), for 1<=k<=D.
// ∂(k) is the same structural incidence used by ExteriorDerivative, read
// here against the dual complex: ⋆(k) carries the k-form to the dual,
// where ∂(k) acts as the dual (D-k)-coboundary, and ⋆⁻¹(k-1) brings the
// result back to a primal (k-1)-form.
func CoDifferential(c *simplex.Complex, d *dual.Complex, k int, kind HodgeKind) (Matrix, error) {
	D := c.Dim
	if k < 1 || k > D {
		chk.Panic("ops: CoDifferential(%d) is not defined on a %dD complex", k, D)
	}
	sign := 1.0
	if (D*(k-1)+1)%2 != 0 {
		sign = -1
	}
	star, err := Hodge(c, d, k, kind)
	if err != nil {
		return nil, err
	}
	starInv, err := HodgeInverse(c, d, k-1, kind)
	if err != nil {
		return nil, err
	}
	return Scale(Mul(starInv, Mul(Boundary(c, k), star)), sign), nil
}

// Laplacian assembles the Laplace-de Rham operator Δ(k) = d(k-1)∘δ(k) +
// δ(k+1)∘d(k), dropping whichever term falls outside [0,D].
func Laplacian(c *simplex.Complex, d *dual.Complex, k int, kind HodgeKind) (Matrix, error) {
	D := c.Dim
	var left, right Matrix
	if k >= 1 {
		delta, err := CoDifferential(c, d, k, kind)
		if err != nil {
			return nil, err
		}
		left = Mul(ExteriorDerivative(c, k-1), delta)
	}
	if k+1 <= D {
		delta, err := CoDifferential(c, d, k+1, kind)
		if err != nil {
			return nil, err
		}
		right = Mul(delta, ExteriorDerivative(c, k))
	}
	return Add(left, right), nil
}

// LaplaceBeltrami is the ∇² operator on 0-forms: -Δ(0).
func LaplaceBeltrami(c *simplex.Complex, d *dual.Complex, kind HodgeKind) (Matrix, error) {
	lap, err := Laplacian(c, d, 0, kind)
	if err != nil {
		return nil, err
	}
	return Scale(lap, -1), nil
}
