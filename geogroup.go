/*
Copyright © 2026 the GeoGroup authors.
This file is part of GeoGroup.

GeoGroup is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GeoGroup is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GeoGroup.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package geogroup partitions geometric entities into equivalence classes
// using a caller-supplied tolerance predicate, and ranks and labels the
// resulting classes. It is used to collapse near-duplicate points and curves
// into unique sets and to group planar faces into coplanar families.
//
// Classification is a greedy, first-seen-wins scan: each entity joins the
// first existing class whose representative it matches, so the result
// depends on input order. This matches the behavior of interactive design
// workflows, where a deterministic result for a given input ordering matters
// more than a globally optimal clustering.
//
// The package performs no geometric construction itself. Curve and face
// entities are consumed through narrow query interfaces (Curve, Face) that
// an external geometry kernel is expected to implement.
package geogroup

import "fmt"

// Version gives the version number.
const Version = "0.1.0"

// DefaultTolerance is the distance below which two locations are considered
// coincident when neither the caller nor the host environment supplies a
// positive tolerance.
const DefaultTolerance = 1e-6

// Tolerance returns tol if it is positive, otherwise fallback if it is
// positive, otherwise DefaultTolerance. Callers typically source fallback
// from a host document's absolute tolerance.
func Tolerance(tol, fallback float64) float64 {
	if tol > 0 {
		return tol
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultTolerance
}

// A Warning reports an entity that was skipped because a predicate input
// could not be computed for it. Warnings are advisory; processing continues
// for the remaining entities.
type Warning struct {
	Index int // position of the entity in the input sequence
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("entity %d skipped: %v", w.Index, w.Err)
}
