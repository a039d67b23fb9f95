// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package euclid implements the Euclidean kernel used by the dual-complex
// construction: squared distances, Cayley-Menger volumes, and the
// barycenter/circumcenter/incenter of a simplex embedded in ℝⁿ.
package euclid

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/dec/rel"
)

// DetTol is the minimum |Cayley-Menger determinant| accepted before a
// simplex is declared degenerate, playing the same role a minimum-Jacobian
// threshold plays in an isoparametric mapping.
const DetTol = 1.0e-14

// Point is a position in ℝⁿ, n ∈ {2,3}. Only the first len(p) coordinates
// are meaningful; callers are expected to use a consistent dimension across
// one complex.
type Point []float64

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Dot returns the Euclidean inner product of p and q.
func (p Point) Dot(q Point) float64 {
	var s float64
	for i := range p {
		s += p[i] * q[i]
	}
	return s
}

// SqDistance returns Σ(pᵢ-qᵢ)².
func SqDistance(p, q Point) float64 {
	var s float64
	for i := range p {
		d := p[i] - q[i]
		s += d * d
	}
	return s
}

// CayleyMenger returns the (k+2)×(k+2) Cayley-Menger matrix of the k+1
// points given: a zero diagonal, a border of ones in the first row/column
// (with [0][0]=0), and squared distances filling the interior.
func CayleyMenger(pts []Point) (cm [][]float64) {
	k := len(pts) - 1
	n := k + 2
	cm = la.MatAlloc(n, n)
	for j := 1; j < n; j++ {
		cm[0][j] = 1
		cm[j][0] = 1
	}
	for i := 0; i < len(pts); i++ {
		for j := 0; j < len(pts); j++ {
			if i != j {
				cm[i+1][j+1] = SqDistance(pts[i], pts[j])
			}
		}
	}
	return
}

// factorial returns k! for small non-negative k.
func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// Volume returns the unsigned k-volume of the simplex spanned by pts
// (k = len(pts)-1), computed as sqrt(|det CM| / 2^k) / k!. A single point
// has unit volume. It returns an error wrapping DegenerateGeometry
// semantics when |det CM| < DetTol.
func Volume(pts []Point) (vol float64, err error) {
	k := len(pts) - 1
	cm := CayleyMenger(pts)
	det := determinant(cm)
	if math.Abs(det) < DetTol {
		err = rel.NewError(rel.DegenerateGeometry, "euclid: degenerate simplex: |det(CayleyMenger)|=%v < tol=%v", math.Abs(det), DetTol)
		return
	}
	vol = math.Sqrt(math.Abs(det)/math.Pow(2, float64(k))) / factorial(k)
	return
}

// Kernel is a reusable scratchpad for the volume queries the dual-complex
// build performs in bulk. It keeps the Cayley-Menger matrix and the flat
// buffer backing the determinant allocated between calls, the same way
// shp.Shape keeps its S, G and J scratch arrays allocated across
// integration points.
type Kernel struct {
	cm   [][]float64
	flat []float64
}

// NewKernel returns an empty kernel; buffers grow on first use.
func NewKernel() *Kernel { return &Kernel{} }

// Volume is the buffer-reusing form of the package-level Volume.
func (o *Kernel) Volume(pts []Point) (vol float64, err error) {
	k := len(pts) - 1
	n := k + 2
	if len(o.cm) < n {
		o.cm = la.MatAlloc(n, n)
		o.flat = make([]float64, n*n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				o.cm[i][j] = 0
			case i == 0 || j == 0:
				o.cm[i][j] = 1
			default:
				o.cm[i][j] = SqDistance(pts[i-1], pts[j-1])
			}
		}
	}
	for i := 0; i < n; i++ {
		copy(o.flat[i*n:(i+1)*n], o.cm[i][:n])
	}
	det := mat.Det(mat.NewDense(n, n, o.flat[:n*n]))
	if math.Abs(det) < DetTol {
		err = rel.NewError(rel.DegenerateGeometry, "euclid: degenerate simplex: |det(CayleyMenger)|=%v < tol=%v", math.Abs(det), DetTol)
		return
	}
	vol = math.Sqrt(math.Abs(det)/math.Pow(2, float64(k))) / factorial(k)
	return
}

// determinant computes the determinant of a small square matrix via gonum's
// LU factorization, used instead of a hand-rolled cofactor expansion because
// the Cayley-Menger matrices handled here grow to 4×4 in the 2D case.
func determinant(m [][]float64) float64 {
	n := len(m)
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(flat[i*n:(i+1)*n], m[i])
	}
	d := mat.NewDense(n, n, flat)
	return mat.Det(d)
}

// Barycenter returns the mean of pts.
func Barycenter(pts []Point) Point {
	n := len(pts[0])
	out := make(Point, n)
	for _, p := range pts {
		for i := 0; i < n; i++ {
			out[i] += p[i]
		}
	}
	for i := 0; i < n; i++ {
		out[i] /= float64(len(pts))
	}
	return out
}

// Circumcenter returns the point equidistant from the three vertices of the
// triangle (p0,p1,p2), lying in the triangle's plane. It is obtained by
// solving the 2×2 linear system for the offset along the edge directions
// from p0, using gonum/mat's LU solve rather than a hand-written 2×2
// inverse so the same machinery extends to a future 3D circumcenter.
func Circumcenter(p0, p1, p2 Point) (c Point, err error) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	a := mat.NewDense(2, 2, []float64{
		2 * e1.Dot(e1), 2 * e1.Dot(e2),
		2 * e1.Dot(e2), 2 * e2.Dot(e2),
	})
	b := mat.NewVecDense(2, []float64{e1.Dot(e1), e2.Dot(e2)})
	var t mat.VecDense
	if err2 := t.SolveVec(a, b); err2 != nil {
		err = rel.NewError(rel.DegenerateGeometry, "euclid: circumcenter: degenerate triangle: %v", err2)
		return
	}
	n := len(p0)
	c = make(Point, n)
	for i := 0; i < n; i++ {
		c[i] = p0[i] + t.AtVec(0)*e1[i] + t.AtVec(1)*e2[i]
	}
	return
}

// Incenter returns (a·p0 + b·p1 + c·p2)/(a+b+c) where a,b,c are the lengths
// of the edges opposite p0, p1 and p2 respectively.
func Incenter(p0, p1, p2 Point) Point {
	a := math.Sqrt(SqDistance(p1, p2))
	b := math.Sqrt(SqDistance(p0, p2))
	c := math.Sqrt(SqDistance(p0, p1))
	sum := a + b + c
	n := len(p0)
	out := make(Point, n)
	for i := 0; i < n; i++ {
		out[i] = (a*p0[i] + b*p1[i] + c*p2[i]) / sum
	}
	return out
}
