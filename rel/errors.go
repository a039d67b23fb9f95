// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rel

import "github.com/cpmech/gosl/chk"

// ErrKind classifies the errors this module's components can return, per
// the error-handling design: InvalidTopology, DegenerateGeometry,
// NonOrientable and DimensionMismatch never overlap in meaning and are never
// retried by the library itself. The one place an error is caught is the
// dual-cell measure sums in package dual, where a collapsed constituent
// triangle (a DegenerateGeometry volume) is counted as zero measure.
type ErrKind int

const (
	InvalidTopology ErrKind = iota
	DegenerateGeometry
	NonOrientable
	DimensionMismatch
)

func (k ErrKind) String() string {
	switch k {
	case InvalidTopology:
		return "InvalidTopology"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	case NonOrientable:
		return "NonOrientable"
	case DimensionMismatch:
		return "DimensionMismatch"
	}
	return "Unknown"
}

// Error is the concrete error type returned by this module; Kind lets a
// caller branch on the failure category with a type switch instead of
// parsing the message, while Error() keeps chk.Err's formatted text.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// NewError builds an Error of the given kind using chk.Err's formatting
// conventions.
func NewError(kind ErrKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: chk.Err(format, args...).Error()}
}
