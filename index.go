// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gasket

import (
	"math"
	"math/cmplx"
)

// Index answers duplicate queries against an accumulated set of circles.
type Index interface {
	// Contains reports whether the set holds a circle whose center lies
	// closer than eps to c's center and whose radius differs by less than eps.
	Contains(c Circle, eps float64) bool
}

// CircleSet is an ordered slice of circles that implements Index with a
// linear scan.
type CircleSet []Circle

// Contains implements Index.
func (s CircleSet) Contains(c Circle, eps float64) bool {
	for _, other := range s {
		if nearlyEqual(c, other, eps) {
			return true
		}
	}
	return false
}

// nearlyEqual is the duplicate rule: centers and radii both within eps.
func nearlyEqual(a, b Circle, eps float64) bool {
	return cmplx.Abs(a.center-b.center) < eps && math.Abs(a.r-b.r) < eps
}

// cellKey addresses one bucket of a gridIndex.
type cellKey struct {
	x, y int64
}

// gridIndex buckets circles by center on a square grid. A query with
// tolerance eps only needs to visit the cells within ceil(eps/cell) of the
// query's own cell, which makes duplicate checks independent of the set size.
//
// Buckets preserve insertion order, so the most recently added circle of a
// cell is always last; pop relies on that.
type gridIndex struct {
	cell    float64
	buckets map[cellKey][]Circle
	size    int
}

// newGridIndex creates an index with the given cell side. cell must be > 0.
func newGridIndex(cell float64) *gridIndex {
	return &gridIndex{
		cell:    cell,
		buckets: make(map[cellKey][]Circle),
	}
}

// key returns the bucket of a center. ok is false for non-finite centers,
// which are never stored.
func (g *gridIndex) key(z complex128) (k cellKey, ok bool) {
	x := math.Floor(real(z) / g.cell)
	y := math.Floor(imag(z) / g.cell)
	if !isFinite(x) || !isFinite(y) || math.Abs(x) > math.MaxInt64/2 || math.Abs(y) > math.MaxInt64/2 {
		return cellKey{}, false
	}
	return cellKey{x: int64(x), y: int64(y)}, true
}

// add inserts c. Circles with non-finite centers are ignored.
func (g *gridIndex) add(c Circle) {
	k, ok := g.key(c.center)
	if !ok {
		return
	}
	g.buckets[k] = append(g.buckets[k], c)
	g.size++
}

// pop removes the most recently added circle equal to c. Circles must be
// popped in reverse insertion order.
func (g *gridIndex) pop(c Circle) {
	k, ok := g.key(c.center)
	if !ok {
		return
	}
	b := g.buckets[k]
	if n := len(b); n > 0 && b[n-1] == c {
		b = b[:n-1]
		g.size--
	}
	if len(b) == 0 {
		delete(g.buckets, k)
		return
	}
	g.buckets[k] = b
}

// Len returns the number of stored circles.
func (g *gridIndex) Len() int {
	return g.size
}

// Contains implements Index.
func (g *gridIndex) Contains(c Circle, eps float64) bool {
	k, ok := g.key(c.center)
	if !ok {
		return false
	}
	reach := int64(math.Ceil(eps / g.cell))
	if reach < 1 {
		reach = 1
	}
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for _, other := range g.buckets[cellKey{x: k.x + dx, y: k.y + dy}] {
				if nearlyEqual(c, other, eps) {
					return true
				}
			}
		}
	}
	return false
}
