// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euclid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_euclid01(tst *testing.T) {

	chk.PrintTitle("Test euclid01: unit right triangle volume and centers")

	p0 := Point{0, 0}
	p1 := Point{1, 0}
	p2 := Point{0, 1}

	vol, err := Volume([]Point{p0, p1, p2})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "area", 1e-12, vol, 0.5)

	bc := Barycenter([]Point{p0, p1, p2})
	chk.Vector(tst, "barycenter", 1e-12, bc, []float64{1.0 / 3.0, 1.0 / 3.0})

	cc, err := Circumcenter(p0, p1, p2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "circumcenter", 1e-12, cc, []float64{0.5, 0.5})

	ic := Incenter(p0, p1, p2)
	d := 1.0 / (2.0 + math.Sqrt2)
	chk.Vector(tst, "incenter", 1e-9, ic, []float64{d, d})
}

func Test_euclid02(tst *testing.T) {

	chk.PrintTitle("Test euclid02: degenerate (collinear) triangle is flagged")

	p0 := Point{0, 0}
	p1 := Point{1, 0}
	p2 := Point{2, 0}

	_, err := Volume([]Point{p0, p1, p2})
	if err == nil {
		tst.Fatalf("expected a degenerate-geometry error, got nil")
	}
}

func Test_euclid03(tst *testing.T) {

	chk.PrintTitle("Test euclid03: edge volume equals its length")

	p0 := Point{-2, 0}
	p1 := Point{0, 0}
	vol, err := Volume([]Point{p0, p1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "length", 1e-12, vol, 2.0)
}
