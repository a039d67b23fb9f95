// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/dec/dual"
	"github.com/cpmech/dec/euclid"
	"github.com/cpmech/dec/rel"
	"github.com/cpmech/dec/simplex"
)

// Typed chains and forms. A chain pushes forward through the boundary, a
// form pulls back through the coboundary; both are dense vectors indexed
// by simplex id, and the distinct types keep the variance visible in every
// operator signature instead of erasing it to []float64.
type (
	VChain   []float64 // primal 0-chains, indexed by vertex
	EChain   []float64 // primal 1-chains, indexed by edge
	TriChain []float64 // primal 2-chains, indexed by triangle

	VForm   []float64 // primal 0-forms, indexed by vertex
	EForm   []float64 // primal 1-forms, indexed by edge
	TriForm []float64 // primal 2-forms, indexed by triangle

	// Dual k-forms live on dual k-cells and are indexed by the primal
	// (D-k)-simplex each cell is dual to.
	DualForm0 []float64
	DualForm1 []float64
	DualForm2 []float64
)

// DualVectorField is a vector per triangle, anchored at the dual centers;
// VectorField is a vector per primal vertex.
type (
	DualVectorField []euclid.Point
	VectorField     []euclid.Point
)

func checkLen(what string, got, want int) error {
	if got != want {
		return rel.NewError(rel.DimensionMismatch, "ops: %s has length %d, want %d", what, got, want)
	}
	return nil
}

// Wedge00 is the wedge of two 0-forms: pointwise multiplication.
func Wedge00(c *simplex.Complex, alpha, beta VForm) (VForm, error) {
	if err := checkLen("0-form", len(alpha), c.NVerts()); err != nil {
		return nil, err
	}
	if err := checkLen("0-form", len(beta), c.NVerts()); err != nil {
		return nil, err
	}
	out := make(VForm, len(alpha))
	for i := range alpha {
		out[i] = alpha[i] * beta[i]
	}
	return out, nil
}

// Wedge01 is the wedge of a 0-form with a 1-form: the 0-form is averaged
// over the edge's endpoints and multiplied into the 1-form's value.
func Wedge01(c *simplex.Complex, alpha VForm, beta EForm) (EForm, error) {
	if err := checkLen("0-form", len(alpha), c.NVerts()); err != nil {
		return nil, err
	}
	if err := checkLen("1-form", len(beta), c.NEdges()); err != nil {
		return nil, err
	}
	out := make(EForm, c.NEdges())
	for e := 1; e <= c.NEdges(); e++ {
		out[e-1] = (alpha[c.EdgeSrc(e)-1] + alpha[c.EdgeTgt(e)-1]) / 2 * beta[e-1]
	}
	return out, nil
}

// Wedge02 is the wedge of a 0-form with a 2-form: the 0-form is averaged
// over the triangle's corners and multiplied into the 2-form's value.
func Wedge02(c *simplex.Complex, alpha VForm, beta TriForm) (TriForm, error) {
	if err := checkLen("0-form", len(alpha), c.NVerts()); err != nil {
		return nil, err
	}
	if err := checkLen("2-form", len(beta), c.NTriangles()); err != nil {
		return nil, err
	}
	out := make(TriForm, c.NTriangles())
	for t := 1; t <= c.NTriangles(); t++ {
		v0, v1, v2 := c.TriangleVertices(t)
		mean := floats.Sum([]float64{alpha[v0-1], alpha[v1-1], alpha[v2-1]}) / 3
		out[t-1] = mean * beta[t-1]
	}
	return out, nil
}

// edgePull evaluates a 1-form on the ordered vertex pair the i-th face of
// triangle t spans: the stored value, negated when the edge's stored
// direction is reversed against the face, signed by the edge orientation.
func edgePull(c *simplex.Complex, alpha EForm, t, i, e int) float64 {
	return edgeMatch(c, t, i, e) * c.EdgeOrientation(e).ToFloat() * alpha[e-1]
}

// Wedge11 is the wedge of two 1-forms, the antisymmetrized average of the
// pairwise products over the six orderings of each triangle's corners. It
// satisfies α∧β = -β∧α exactly.
func Wedge11(c *simplex.Complex, alpha, beta EForm) (TriForm, error) {
	if err := checkLen("1-form", len(alpha), c.NEdges()); err != nil {
		return nil, err
	}
	if err := checkLen("1-form", len(beta), c.NEdges()); err != nil {
		return nil, err
	}
	out := make(TriForm, c.NTriangles())
	for t := 1; t <= c.NTriangles(); t++ {
		e0, e1, e2 := c.TriangleEdges(t)
		// a0 on (v1,v2), a1 on (v0,v2), a2 on (v0,v1)
		a0 := edgePull(c, alpha, t, 0, e0)
		a1 := edgePull(c, alpha, t, 1, e1)
		a2 := edgePull(c, alpha, t, 2, e2)
		b0 := edgePull(c, beta, t, 0, e0)
		b1 := edgePull(c, beta, t, 1, e1)
		b2 := edgePull(c, beta, t, 2, e2)
		sum := a2*b0 + a2*b1 + a1*b0 - a1*b2 - a0*b1 - a0*b2
		out[t-1] = c.TriangleOrientation(t).ToFloat() * sum / 6
	}
	return out, nil
}

// Flat maps a dual vector field (one vector per triangle center) to a
// primal 1-form: for each edge, the projections of the adjacent centers'
// vectors onto the edge vector, averaged with weights given by the length
// of the dual-edge portion inside each triangle.
func Flat(c *simplex.Complex, d *dual.Complex, x DualVectorField) (EForm, error) {
	if c.Dim != 2 {
		return nil, rel.NewError(rel.DimensionMismatch, "ops: Flat requires a 2D complex")
	}
	if err := checkLen("dual vector field", len(x), c.NTriangles()); err != nil {
		return nil, err
	}
	out := make(EForm, c.NEdges())
	for e := 1; e <= c.NEdges(); e++ {
		ev := c.Point(c.EdgeTgt(e)).Sub(c.Point(c.EdgeSrc(e)))
		ec := d.DualPoint(d.EdgeCenter(e))
		var wsum, val float64
		for _, t := range d.EdgeTriangles(e) {
			w := math.Sqrt(euclid.SqDistance(d.DualPoint(d.TriCenter(t)), ec))
			val += w * floats.Dot(x[t-1], ev)
			wsum += w
		}
		if wsum > 0 {
			out[e-1] = c.EdgeOrientation(e).ToFloat() * val / wsum
		}
	}
	return out, nil
}

// Sharp maps a primal 1-form to a vector field at the vertices: for each
// vertex, the least-squares vector whose circulation along every incident
// edge reproduces the form's value there, weighted by the elementary-dual
// volume of each edge.
func Sharp(c *simplex.Complex, d *dual.Complex, alpha EForm) (VectorField, error) {
	if c.Dim != 2 {
		return nil, rel.NewError(rel.DimensionMismatch, "ops: Sharp requires a 2D complex")
	}
	if err := checkLen("1-form", len(alpha), c.NEdges()); err != nil {
		return nil, err
	}
	n := len(c.Point(1))
	out := make(VectorField, c.NVerts())
	a := make([]float64, n*n)
	b := make([]float64, n)
	for v := 1; v <= c.NVerts(); v++ {
		for i := range a {
			a[i] = 0
		}
		for i := range b {
			b[i] = 0
		}
		for e := 1; e <= c.NEdges(); e++ {
			if c.EdgeSrc(e) != v && c.EdgeTgt(e) != v {
				continue
			}
			ev := c.Point(c.EdgeTgt(e)).Sub(c.Point(c.EdgeSrc(e)))
			w := d.Volume1(e)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					a[i*n+j] += w * ev[i] * ev[j]
				}
				b[i] += w * c.EdgeOrientation(e).ToFloat() * alpha[e-1] * ev[i]
			}
		}
		var sol mat.VecDense
		if err := sol.SolveVec(mat.NewDense(n, n, a), mat.NewVecDense(n, b)); err != nil {
			return nil, rel.NewError(rel.DegenerateGeometry, "ops: sharp: the edges at vertex %d do not determine a vector: %v", v, err)
		}
		p := make(euclid.Point, n)
		for i := 0; i < n; i++ {
			p[i] = sol.AtVec(i)
		}
		out[v-1] = p
	}
	return out, nil
}

// InteriorProduct1 contracts a flattened vector field into a dual 1-form,
// returning a dual 0-form: ι(α) = -⋆(2) ∘ (X♭ ∧ ·) ∘ ⋆⁻¹(1), the k=1 case
// of ι = (-1)^{k(D-k)}·⋆⁻¹∘∧(X♭,·)∘⋆ read against dual forms.
func InteriorProduct1(c *simplex.Complex, d *dual.Complex, xb EForm, alpha DualForm1, kind HodgeKind) (DualForm0, error) {
	if err := checkLen("dual 1-form", len(alpha), c.NEdges()); err != nil {
		return nil, err
	}
	inv, err := HodgeInverse(c, d, 1, kind)
	if err != nil {
		return nil, err
	}
	primal, err := Apply(inv, alpha)
	if err != nil {
		return nil, err
	}
	wedge, err := Wedge11(c, xb, primal)
	if err != nil {
		return nil, err
	}
	star, err := Hodge(c, d, 2, kind)
	if err != nil {
		return nil, err
	}
	out, err := Apply(star, wedge)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = -out[i]
	}
	return out, nil
}

// InteriorProduct2 contracts a flattened vector field into a dual 2-form,
// returning a dual 1-form (the k=2 case; the sign (-1)^{k(D-k)} is +1).
func InteriorProduct2(c *simplex.Complex, d *dual.Complex, xb EForm, alpha DualForm2, kind HodgeKind) (DualForm1, error) {
	if err := checkLen("dual 2-form", len(alpha), c.NVerts()); err != nil {
		return nil, err
	}
	inv, err := HodgeInverse(c, d, 0, kind)
	if err != nil {
		return nil, err
	}
	primal, err := Apply(inv, alpha)
	if err != nil {
		return nil, err
	}
	wedge, err := Wedge01(c, primal, xb)
	if err != nil {
		return nil, err
	}
	star, err := Hodge(c, d, 1, kind)
	if err != nil {
		return nil, err
	}
	return Apply(star, wedge)
}

// LieDerivative0 is ℒ_X on dual 0-forms by Cartan's magic formula; the
// dι term vanishes at k=0, leaving ι(d_dual α).
func LieDerivative0(c *simplex.Complex, d *dual.Complex, xb EForm, alpha DualForm0, kind HodgeKind) (DualForm0, error) {
	if err := checkLen("dual 0-form", len(alpha), c.NTriangles()); err != nil {
		return nil, err
	}
	dalpha, err := Apply(DualDerivative(c, 0), alpha)
	if err != nil {
		return nil, err
	}
	return InteriorProduct1(c, d, xb, dalpha, kind)
}

// LieDerivative1 is ℒ_X on dual 1-forms: d(ι α) + ι(d α).
func LieDerivative1(c *simplex.Complex, d *dual.Complex, xb EForm, alpha DualForm1, kind HodgeKind) (DualForm1, error) {
	if err := checkLen("dual 1-form", len(alpha), c.NEdges()); err != nil {
		return nil, err
	}
	iota, err := InteriorProduct1(c, d, xb, alpha, kind)
	if err != nil {
		return nil, err
	}
	left, err := Apply(DualDerivative(c, 0), iota)
	if err != nil {
		return nil, err
	}
	dalpha, err := Apply(DualDerivative(c, 1), alpha)
	if err != nil {
		return nil, err
	}
	right, err := InteriorProduct2(c, d, xb, dalpha, kind)
	if err != nil {
		return nil, err
	}
	out := make(DualForm1, len(left))
	for i := range out {
		out[i] = left[i] + right[i]
	}
	return out, nil
}

// LieDerivative2 is ℒ_X on dual 2-forms; the ιd term vanishes at the top
// dual dimension, leaving d_dual(ι α).
func LieDerivative2(c *simplex.Complex, d *dual.Complex, xb EForm, alpha DualForm2, kind HodgeKind) (DualForm2, error) {
	if err := checkLen("dual 2-form", len(alpha), c.NVerts()); err != nil {
		return nil, err
	}
	iota, err := InteriorProduct2(c, d, xb, alpha, kind)
	if err != nil {
		return nil, err
	}
	return Apply(DualDerivative(c, 1), iota)
}
