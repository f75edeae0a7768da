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
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultSamples is the number of equal normalized-arclength intervals used
// when comparing two non-linear curves, giving DefaultSamples+1 sampled
// point pairs.
const DefaultSamples = 10

// A Curve is the narrow query interface the classifier needs from a curve
// entity. It is expected to be implemented by an adapter onto an external
// geometry kernel; Segment and Polyline are self-contained implementations.
type Curve interface {
	// Length returns the total arc length.
	Length() (float64, error)

	// PointAt returns the point at normalized arc length t in [0, 1].
	PointAt(t float64) (r3.Vec, error)

	// Linear reports whether the curve is a straight segment to within tol.
	Linear(tol float64) bool
}

// CurveEquivalence returns an equivalence predicate for curves sampled at
// the given number of arclength intervals. If samples is not positive,
// DefaultSamples is used.
//
// Two straight segments are compared by their endpoints alone, in both
// orientations. Otherwise the curves must have arc lengths within the
// tolerance of each other, and every sampled point pair must be within the
// tolerance in either the forward or the reversed parametrization; the first
// sample that fails in both orientations ends the comparison.
func CurveEquivalence(samples int) EquivalenceFunc[Curve] {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return func(a, b Curve, tol float64) (bool, error) {
		return curvesCoincide(a, b, tol, samples)
	}
}

// CheckCurve returns an error if c's arc length cannot be computed. Use it
// as a classifier Check so a degenerate curve is skipped instead of opening
// a class that every later curve fails to compare against.
func CheckCurve(c Curve) error {
	if _, err := c.Length(); err != nil {
		return fmt.Errorf("geogroup: curve length: %v", err)
	}
	return nil
}

func curvesCoincide(a, b Curve, tol float64, samples int) (bool, error) {
	if a.Linear(tol) && b.Linear(tol) {
		a0, a1, err := endpoints(a)
		if err != nil {
			return false, err
		}
		b0, b1, err := endpoints(b)
		if err != nil {
			return false, err
		}
		forward := r3.Norm(r3.Sub(a0, b0)) + r3.Norm(r3.Sub(a1, b1))
		reversed := r3.Norm(r3.Sub(a0, b1)) + r3.Norm(r3.Sub(a1, b0))
		return forward <= tol || reversed <= tol, nil
	}

	la, err := a.Length()
	if err != nil {
		return false, fmt.Errorf("geogroup: curve length: %v", err)
	}
	lb, err := b.Length()
	if err != nil {
		return false, fmt.Errorf("geogroup: curve length: %v", err)
	}
	if !scalar.EqualWithinAbs(la, lb, tol) {
		return false, nil
	}

	forward, reversed := true, true
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		pa, err := a.PointAt(t)
		if err != nil {
			return false, fmt.Errorf("geogroup: sampling curve at %g: %v", t, err)
		}
		pb, err := b.PointAt(t)
		if err != nil {
			return false, fmt.Errorf("geogroup: sampling curve at %g: %v", t, err)
		}
		qb, err := b.PointAt(1 - t)
		if err != nil {
			return false, fmt.Errorf("geogroup: sampling curve at %g: %v", 1-t, err)
		}
		forward = forward && Coincident(pa, pb, tol)
		reversed = reversed && Coincident(pa, qb, tol)
		if !forward && !reversed {
			return false, nil
		}
	}
	return forward || reversed, nil
}

func endpoints(c Curve) (start, end r3.Vec, err error) {
	start, err = c.PointAt(0)
	if err != nil {
		return start, end, fmt.Errorf("geogroup: curve start point: %v", err)
	}
	end, err = c.PointAt(1)
	if err != nil {
		return start, end, fmt.Errorf("geogroup: curve end point: %v", err)
	}
	return start, end, nil
}

// A Segment is a straight line segment between two points.
type Segment struct {
	Start, End r3.Vec
}

// Length returns the distance between the segment endpoints.
func (s Segment) Length() (float64, error) {
	return r3.Norm(r3.Sub(s.End, s.Start)), nil
}

// PointAt linearly interpolates between the endpoints.
func (s Segment) PointAt(t float64) (r3.Vec, error) {
	return r3.Add(s.Start, r3.Scale(t, r3.Sub(s.End, s.Start))), nil
}

// Linear always reports true.
func (s Segment) Linear(tol float64) bool { return true }

// A Polyline is a sequence of at least two vertices joined by straight
// segments, parametrized by arc length.
type Polyline []r3.Vec

// Length returns the sum of the segment lengths.
func (p Polyline) Length() (float64, error) {
	if len(p) < 2 {
		return 0, fmt.Errorf("geogroup: polyline has %d vertices; need at least 2", len(p))
	}
	var l float64
	for i := 1; i < len(p); i++ {
		l += r3.Norm(r3.Sub(p[i], p[i-1]))
	}
	return l, nil
}

// PointAt returns the point at normalized arc length t, clamped to [0, 1].
func (p Polyline) PointAt(t float64) (r3.Vec, error) {
	total, err := p.Length()
	if err != nil {
		return r3.Vec{}, err
	}
	if total == 0 {
		return p[0], nil
	}
	if t <= 0 {
		return p[0], nil
	}
	if t >= 1 {
		return p[len(p)-1], nil
	}
	target := t * total
	for i := 1; i < len(p); i++ {
		seg := r3.Norm(r3.Sub(p[i], p[i-1]))
		if target <= seg && seg > 0 {
			return r3.Add(p[i-1], r3.Scale(target/seg, r3.Sub(p[i], p[i-1]))), nil
		}
		target -= seg
	}
	return p[len(p)-1], nil
}

// Linear reports whether every vertex lies within tol of the line through
// the first and last vertices.
func (p Polyline) Linear(tol float64) bool {
	if len(p) < 3 {
		return len(p) == 2
	}
	chord := r3.Sub(p[len(p)-1], p[0])
	l := r3.Norm(chord)
	if l == 0 {
		return false
	}
	for _, v := range p[1 : len(p)-1] {
		// Distance from v to the infinite line through the endpoints.
		d := r3.Norm(r3.Cross(r3.Sub(v, p[0]), chord)) / l
		if d > tol {
			return false
		}
	}
	return true
}
