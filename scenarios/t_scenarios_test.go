// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenarios

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dec/dual"
	"github.com/cpmech/dec/euclid"
	"github.com/cpmech/dec/ops"
	"github.com/cpmech/dec/simplex"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func unitRightTriangle(tst *testing.T, rule dual.Rule) (*simplex.Complex, *dual.Complex) {
	s := simplex.New(2, true, true)
	s.AddVertex(euclid.Point{0, 0})
	s.AddVertex(euclid.Point{1, 0})
	s.AddVertex(euclid.Point{0, 1})
	if _, err := s.GlueTriangle(1, 2, 3); err != nil {
		tst.Fatalf("glue failed: %v", err)
	}
	d := dual.Build(s)
	if err := d.SubdivideDuals(rule); err != nil {
		tst.Fatalf("subdivide failed: %v", err)
	}
	return s, d
}

func Test_scen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen01. path graph: ∇² of the unit bump")

	s := simplex.New(1, true, true)
	for _, x := range []float64{-2, -1, 0, 1, 2} {
		s.AddVertex(euclid.Point{x, 0})
	}
	for i := 1; i < 5; i++ {
		s.AddEdge(i, i+1)
	}
	d := dual.Build(s)
	if err := d.SubdivideDuals(dual.Barycenter); err != nil {
		tst.Fatalf("subdivide failed: %v", err)
	}

	lb, err := ops.LaplaceBeltrami(s, d, ops.DiagonalHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	bump := []float64{0, 0, 1, 0, 0}
	res, err := ops.Apply(lb, bump)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("∇²·bump = %v\n", res)
	chk.Vector(tst, "∇²·bump", 1e-3, res, []float64{0, -1, 2, -1, 0})
}

func Test_scen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen02. 3-vertex path with lengths 1 and 2: ⋆0")

	s := simplex.New(1, true, true)
	s.AddVertex(euclid.Point{0, 0})
	s.AddVertex(euclid.Point{1, 0})
	s.AddVertex(euclid.Point{3, 0})
	s.AddEdge(1, 2)
	s.AddEdge(2, 3)
	d := dual.Build(s)
	if err := d.SubdivideDuals(dual.Barycenter); err != nil {
		tst.Fatalf("subdivide failed: %v", err)
	}

	h0, err := ops.DiagonalHodgeDiag(s, d, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "⋆0", 1e-3, h0, []float64{0.5, 1.5, 1.0})
}

func Test_scen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen03. unit right triangle, barycentric duals")

	s, d := unitRightTriangle(tst, dual.Barycenter)

	center := d.DualPoint(d.TriCenter(1))
	chk.Vector(tst, "triangle center", 1e-3, center, []float64{1.0 / 3.0, 1.0 / 3.0})

	h0, err := ops.DiagonalHodgeDiag(s, d, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "⋆0", 1e-3, h0, []float64{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0})

	star1, err := ops.Hodge(s, d, 1, ops.GeometricHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Matrix(tst, "⋆1", 1e-3, star1, [][]float64{
		{1.0 / 3.0, 0, 1.0 / 6.0},
		{0, 1.0 / 6.0, 0},
		{1.0 / 6.0, 0, 1.0 / 3.0},
	})

	lap0, err := ops.Laplacian(s, d, 0, ops.GeometricHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("Δ0 = %v\n", lap0)
	chk.Matrix(tst, "Δ0", 1e-3, lap0, [][]float64{
		{-6, 3, 3},
		{3, -3, 0},
		{3, 0, -3},
	})

	lap2, err := ops.Laplacian(s, d, 2, ops.GeometricHodge)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Matrix(tst, "Δ2", 1e-3, lap2, [][]float64{{-36}})
}

func Test_scen04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen04. unit right triangle, circumcentric duals")

	s, d := unitRightTriangle(tst, dual.Circumcenter)

	center := d.DualPoint(d.TriCenter(1))
	chk.Vector(tst, "triangle center", 1e-3, center, []float64{0.5, 0.5})

	h0, err := ops.DiagonalHodgeDiag(s, d, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "⋆0", 1e-3, h0, []float64{0.25, 0.125, 0.125})

	h1, err := ops.DiagonalHodgeDiag(s, d, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "⋆1", 1e-3, h1, []float64{0.5, 0, 0.5})
}

func Test_scen05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen05. unit right triangle, incentric duals")

	s, d := unitRightTriangle(tst, dual.Incenter)

	q := 1.0 / (2.0 + math.Sqrt2)
	center := d.DualPoint(d.TriCenter(1))
	chk.Vector(tst, "triangle center", 1e-3, center, []float64{q, q})

	h0, err := ops.DiagonalHodgeDiag(s, d, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "⋆0", 1e-3, h0, []float64{0.146, 0.177, 0.177})
}

func Test_scen06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen06. split square: flat and sharp")

	s := simplex.New(2, true, true)
	s.AddVertex(euclid.Point{-1, -1})
	s.AddVertex(euclid.Point{1, -1})
	s.AddVertex(euclid.Point{1, 1})
	s.AddVertex(euclid.Point{-1, 1})
	if _, err := s.GlueTriangle(1, 2, 3); err != nil {
		tst.Fatalf("glue failed: %v", err)
	}
	if _, err := s.GlueTriangle(1, 3, 4); err != nil {
		tst.Fatalf("glue failed: %v", err)
	}
	d := dual.Build(s)
	if err := d.SubdivideDuals(dual.Barycenter); err != nil {
		tst.Fatalf("subdivide failed: %v", err)
	}

	x := ops.DualVectorField{
		euclid.Point{1, 0},
		euclid.Point{-1, 0},
	}
	alpha, err := ops.Flat(s, d, x)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("♭(X) = %v\n", alpha)
	chk.Vector(tst, "♭(X)", 1e-3, alpha, []float64{2, 0, 0, 2, 0})

	field, err := ops.Sharp(s, d, alpha)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	io.Pforan("♯(α) = %v\n", field)
	if field[1][0] <= 0 {
		tst.Fatalf("expected positive x at vertex 2, got %v", field[1])
	}
	if field[3][0] >= 0 {
		tst.Fatalf("expected negative x at vertex 4, got %v", field[3])
	}
}

func Test_scen07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen07. equilateral triangle: Δ1 agrees under both hodges")

	s := simplex.New(2, true, true)
	s.AddVertex(euclid.Point{0, 0})
	s.AddVertex(euclid.Point{1, 0})
	s.AddVertex(euclid.Point{0.5, math.Sqrt(3) / 2})
	if _, err := s.GlueTriangle(1, 2, 3); err != nil {
		tst.Fatalf("glue failed: %v", err)
	}
	d := dual.Build(s)
	if err := d.SubdivideDuals(dual.Barycenter); err != nil {
		tst.Fatalf("subdivide failed: %v", err)
	}

	want := [][]float64{
		{-12, -6, 6},
		{-6, -12, 6},
		{6, 6, -12},
	}
	for _, kind := range []ops.HodgeKind{ops.DiagonalHodge, ops.GeometricHodge} {
		lap1, err := ops.Laplacian(s, d, 1, kind)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		io.Pforan("Δ1 (kind=%v) = %v\n", kind, lap1)
		chk.Matrix(tst, "Δ1", 1e-3, lap1, want)
	}
}
