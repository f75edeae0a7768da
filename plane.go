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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// A Plane is an oriented plane given by a point on the plane and a normal
// vector. The normal need not be unit length.
type Plane struct {
	Origin, Normal r3.Vec
}

// DistanceTo returns the perpendicular distance from pt to the plane.
func (p Plane) DistanceTo(pt r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Unit(p.Normal), r3.Sub(pt, p.Origin)))
}

// Coplanar reports whether q describes the same plane as p to within tol:
// the normals must be parallel within tol and the perpendicular distance
// from q's origin to p must be at most tol.
func (p Plane) Coplanar(q Plane, tol float64) bool {
	if r3.Norm(r3.Cross(r3.Unit(p.Normal), r3.Unit(q.Normal))) > tol {
		return false
	}
	return p.DistanceTo(q.Origin) <= tol
}

// A Face is the narrow query interface the classifier needs from a
// plane-bearing face entity, expected to be implemented by an adapter onto
// an external geometry kernel. PlanarFace is a self-contained
// implementation for callers whose kernel has already evaluated the face.
type Face interface {
	// Plane returns the plane the face lies in.
	Plane() (Plane, error)

	// Area returns the face area.
	Area() (float64, error)

	// Center returns the center of the face's bounding box.
	Center() r3.Vec
}

// A PlanarFace is a Face backed by precomputed values.
type PlanarFace struct {
	P Plane
	A float64
	C r3.Vec
}

// Plane returns the face plane.
func (f PlanarFace) Plane() (Plane, error) { return f.P, nil }

// Area returns the face area.
func (f PlanarFace) Area() (float64, error) { return f.A, nil }

// Center returns the face center.
func (f PlanarFace) Center() r3.Vec { return f.C }

// FaceEquivalence returns an equivalence predicate grouping faces into
// coplanar families.
func FaceEquivalence() EquivalenceFunc[Face] {
	return func(a, b Face, tol float64) (bool, error) {
		pa, err := a.Plane()
		if err != nil {
			return false, fmt.Errorf("geogroup: extracting face plane: %v", err)
		}
		pb, err := b.Plane()
		if err != nil {
			return false, fmt.Errorf("geogroup: extracting face plane: %v", err)
		}
		return pa.Coplanar(pb, tol), nil
	}
}

// A FaceGroup is a coplanar family of faces together with the distinct
// rounded areas found in the family.
type FaceGroup struct {
	// Label identifies the group: "Plane_A", "Plane_B", … in
	// discovery order.
	Label string

	// Faces holds every face in the family, in insertion order.
	Faces []Face

	// Areas holds the distinct rounded areas in first-seen order.
	Areas []float64

	// Unique holds the first-seen face for each rounded area, so that
	// faces in the same plane whose areas round to the same value are
	// collapsed to one representative.
	Unique []Face
}

// GroupFaces partitions faces into coplanar families within tol
// (substituting fallback and then DefaultTolerance when tol is not
// positive), and sub-partitions each family by area rounded to the given
// number of decimal places. Faces for which no plane or area can be
// computed are skipped with a Warning whose Index is the face's position
// in faces; the remaining faces are still grouped. The returned error is
// non-nil only if a geometry failure ended classification early; the
// groups discovered before the failure are still returned.
func GroupFaces(faces []Face, tol, fallback float64, decimals int) ([]*FaceGroup, []Warning, error) {
	c := Classifier[Face]{
		Tolerance:        tol,
		DefaultTolerance: fallback,
		Equivalent:       FaceEquivalence(),
		Valid:            func(f Face) bool { return f != nil },
		Check:            checkFace,
	}
	cl := c.Classify(faces)
	warnings := cl.Warnings
	var groups []*FaceGroup
	for _, class := range cl.Classes {
		g := &FaceGroup{
			Label: "Plane_" + class.Label,
			Faces: class.Members,
		}
		subs, w := Subdivide([]*Class[Face]{class}, Face.Area, decimals)
		warnings = append(warnings, w...)
		for _, s := range subs {
			g.Areas = append(g.Areas, s.Key)
			g.Unique = append(g.Unique, s.Representative())
		}
		groups = append(groups, g)
	}
	return groups, warnings, cl.Err
}

// checkFace establishes that a face's plane and area can be computed, so a
// face with no evaluable plane can never become a family representative.
func checkFace(f Face) error {
	if _, err := f.Plane(); err != nil {
		return fmt.Errorf("geogroup: extracting face plane: %v", err)
	}
	if _, err := f.Area(); err != nil {
		return fmt.Errorf("geogroup: extracting face area: %v", err)
	}
	return nil
}
