// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dec/dual"
)

func Test_forms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forms01. wedge commutativity")

	s, _ := square(tst, false)

	a := VForm{1, 2, -1, 3}
	b := VForm{0.5, -2, 4, 1}
	ab, err := Wedge00(s, a, b)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ba, err := Wedge00(s, b, a)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "0∧0 symmetric", 1e-15, ab, ba)

	p := EForm{1, -2, 3, 0.5, -1}
	q := EForm{2, 1, -1, 4, 3}
	pq, err := Wedge11(s, p, q)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	qp, err := Wedge11(s, q, p)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range qp {
		qp[i] = -qp[i]
	}
	chk.Vector(tst, "1∧1 antisymmetric", 1e-15, pq, qp)

	ae, err := Wedge01(s, a, p)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(ae), s.NEdges())
}

func Test_forms02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forms02. wedge rejects mis-sized forms")

	s, _ := square(tst, false)
	_, err := Wedge00(s, VForm{1, 2}, VForm{1, 2, 3, 4})
	if err == nil {
		tst.Fatalf("expected a dimension-mismatch error")
	}
}

func Test_forms03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forms03. interior product and lie derivative shapes")

	s, d := rightTriangle(tst, dual.Barycenter)

	xb := EForm{1, 0.5, -1}

	a1 := DualForm1{1, 2, 3}
	i1, err := InteriorProduct1(s, d, xb, a1, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(i1), s.NTriangles())

	a2 := DualForm2{1, -1, 2}
	i2, err := InteriorProduct2(s, d, xb, a2, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(i2), s.NEdges())

	l0, err := LieDerivative0(s, d, xb, DualForm0{2}, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(l0), s.NTriangles())

	l1, err := LieDerivative1(s, d, xb, a1, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(l1), s.NEdges())

	l2, err := LieDerivative2(s, d, xb, a2, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(l2), s.NVerts())
}

func Test_forms04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forms04. contracting a field with its own flat vanishes")

	// ι_X(⋆X♭) reduces to ⋆(X♭∧X♭) = 0, the discrete image of the smooth
	// identity ⟨X, rot X⟩ = 0
	s, d := rightTriangle(tst, dual.Barycenter)
	xb := EForm{1, 0, 1}
	star, err := Hodge(s, d, 1, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	dx, err := Apply(star, xb)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	out, err := InteriorProduct1(s, d, xb, dx, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "ι_X(⋆X♭)", 1e-14, out, []float64{0})

	// while a transverse contraction does not vanish
	yb := EForm{0, 1, 0}
	dy, err := Apply(star, yb)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cross, err := InteriorProduct1(s, d, xb, dy, DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if cross[0] == 0 {
		tst.Fatalf("expected a nonzero transverse contraction, got 0")
	}
}
