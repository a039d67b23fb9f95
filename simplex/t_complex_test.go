// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dec/euclid"
)

func Test_complex01(tst *testing.T) {

	chk.PrintTitle("Test complex01: path graph with 5 vertices")

	s := New(1, true, true)
	xs := []float64{-2, -1, 0, 1, 2}
	for _, x := range xs {
		s.AddVertex(euclid.Point{x, 0})
	}
	for i := 1; i < 5; i++ {
		s.AddEdge(i, i+1)
	}
	chk.IntAssert(s.NVerts(), 5)
	chk.IntAssert(s.NEdges(), 4)
	chk.IntAssert(s.EdgeSrc(1), 1)
	chk.IntAssert(s.EdgeTgt(1), 2)
}

func Test_complex02(tst *testing.T) {

	chk.PrintTitle("Test complex02: glue_triangle on the unit right triangle")

	s := New(2, true, true)
	s.AddVertex(euclid.Point{0, 0})
	s.AddVertex(euclid.Point{1, 0})
	s.AddVertex(euclid.Point{0, 1})
	t, err := s.GlueTriangle(1, 2, 3)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(s.NTriangles(), 1)
	chk.IntAssert(s.NEdges(), 3)

	v0, v1, v2 := s.TriangleVertices(t)
	chk.IntAssert(v0, 1)
	chk.IntAssert(v1, 2)
	chk.IntAssert(v2, 3)
}

func Test_complex03(tst *testing.T) {

	chk.PrintTitle("Test complex03: glue_triangle reuses shared edges")

	s := New(2, true, true)
	s.AddVertex(euclid.Point{-1, -1})
	s.AddVertex(euclid.Point{1, -1})
	s.AddVertex(euclid.Point{1, 1})
	s.AddVertex(euclid.Point{-1, 1})
	_, err := s.GlueTriangle(1, 2, 3)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	_, err = s.GlueTriangle(1, 3, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(s.NTriangles(), 2)
	// the diagonal 1-3 is shared, so only 5 distinct edges should exist
	chk.IntAssert(s.NEdges(), 5)
}

func Test_complex04(tst *testing.T) {

	chk.PrintTitle("Test complex04: frozen complex rejects mutation")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected a panic on mutating a frozen complex")
		}
	}()
	s := New(1, false, false)
	s.AddVertices(2)
	s.Freeze()
	s.AddEdge(1, 2)
}
