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

package geogroup

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coincident reports whether points a and b lie within tol of each other.
func Coincident(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

// PointEquivalence returns an equivalence predicate for bare point
// locations: two points are equivalent when their Euclidean distance is at
// most the tolerance.
func PointEquivalence() EquivalenceFunc[r3.Vec] {
	return func(a, b r3.Vec, tol float64) (bool, error) {
		return Coincident(a, b, tol), nil
	}
}

// DedupPoints classifies pts by coincidence within tol, substituting
// fallback and then DefaultTolerance when tol is not positive. Points with
// non-finite coordinates are filtered out before classification.
func DedupPoints(pts []r3.Vec, tol, fallback float64) *Classification[r3.Vec] {
	c := Classifier[r3.Vec]{
		Tolerance:        tol,
		DefaultTolerance: fallback,
		Equivalent:       PointEquivalence(),
		Valid:            finite,
	}
	return c.Classify(pts)
}

func finite(p r3.Vec) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DistanceFrom returns a ranking key measuring the Euclidean distance from
// ref. Passing the zero r3.Vec ranks by distance from the world origin.
func DistanceFrom(ref r3.Vec) func(r3.Vec) float64 {
	return func(p r3.Vec) float64 { return r3.Norm(r3.Sub(p, ref)) }
}
