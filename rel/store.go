// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rel implements a minimal in-memory relational store: a set of
// dense object tables plus named morphisms between them, with an optional
// inverse (coface) index. It is the backing structure for every simplicial
// complex in this module.
package rel

import "github.com/cpmech/gosl/chk"

// Store holds a set of object tables (each a dense id range starting at 1)
// and, for every declared morphism "ob.attr", a per-row value plus an
// optional inverse index used to answer coface queries.
type Store struct {
	nrows    map[string]int            // ob => number of rows
	obAttrs  map[string][]string       // ob => attrs declared on it, in declaration order
	attrs    map[string][]int          // "ob.attr" => dense values, 0-based by (id-1)
	indexed  map[string]bool           // "ob.attr" => true if an inverse index is kept
	inverse  map[string]map[int][]int  // "ob.attr" => target id => source ids
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nrows:   make(map[string]int),
		obAttrs: make(map[string][]string),
		attrs:   make(map[string][]int),
		indexed: make(map[string]bool),
		inverse: make(map[string]map[int][]int),
	}
}

// DeclareAttr registers morphism ob.attr: ob -> (unspecified target table).
// When index is true an inverse lookup is maintained by SetSubpart, giving
// Incident its coface answers. Rows already in ob when DeclareAttr runs get
// a zero-valued entry for the attribute.
func (s *Store) DeclareAttr(ob, attr string, index bool) {
	key := ob + "." + attr
	if _, ok := s.attrs[key]; ok {
		return
	}
	s.obAttrs[ob] = append(s.obAttrs[ob], attr)
	s.attrs[key] = make([]int, s.nrows[ob])
	s.indexed[key] = index
	if index {
		s.inverse[key] = make(map[int][]int)
	}
}

// AddPart appends a new row to object table ob and returns its 1-based id.
// Every attribute already declared on ob grows by one zero-valued entry.
func (s *Store) AddPart(ob string) int {
	s.nrows[ob]++
	id := s.nrows[ob]
	for _, attr := range s.obAttrs[ob] {
		key := ob + "." + attr
		s.attrs[key] = append(s.attrs[key], 0)
	}
	return id
}

// NParts returns the number of rows currently in object table ob.
func (s *Store) NParts(ob string) int {
	return s.nrows[ob]
}

// SetSubpart assigns ob.attr[id] = value, updating the inverse index if one
// is kept for this attribute.
func (s *Store) SetSubpart(ob, attr string, id, value int) {
	key := ob + "." + attr
	vals := s.attrs[key]
	if id < 1 || id > len(vals) {
		chk.Panic("rel: id=%d out of range for %s (n=%d)", id, key, len(vals))
	}
	if s.indexed[key] {
		old := vals[id-1]
		if old != 0 {
			bucket := s.inverse[key][old]
			for i, x := range bucket {
				if x == id {
					s.inverse[key][old] = append(bucket[:i], bucket[i+1:]...)
					break
				}
			}
		}
		s.inverse[key][value] = append(s.inverse[key][value], id)
	}
	vals[id-1] = value
}

// Subpart returns ob.attr[id].
func (s *Store) Subpart(ob, attr string, id int) int {
	key := ob + "." + attr
	vals := s.attrs[key]
	if id < 1 || id > len(vals) {
		chk.Panic("rel: id=%d out of range for %s (n=%d)", id, key, len(vals))
	}
	return vals[id-1]
}

// SubpartVec returns ob.attr[ids[i]] for every i, i.e. the vectorized form
// of Subpart.
func (s *Store) SubpartVec(ob, attr string, ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = s.Subpart(ob, attr, id)
	}
	return out
}

// Incident returns every source id x with ob.attr[x] == target. It requires
// that ob.attr was declared with index=true; otherwise it panics, since an
// un-indexed morphism has no efficient inverse.
func (s *Store) Incident(ob, attr string, target int) []int {
	key := ob + "." + attr
	if !s.indexed[key] {
		chk.Panic("rel: %s is not indexed, cannot answer Incident queries", key)
	}
	bucket := s.inverse[key][target]
	out := make([]int, len(bucket))
	copy(out, bucket)
	return out
}
