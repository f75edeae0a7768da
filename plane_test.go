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
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCoplanar(t *testing.T) {
	z0 := Plane{Normal: r3.Vec{Z: 1}}
	z0shift := Plane{Origin: r3.Vec{X: 3, Y: 4}, Normal: r3.Vec{Z: 2}} // in-plane shift, scaled normal
	z5 := Plane{Origin: r3.Vec{Z: 5}, Normal: r3.Vec{Z: 1}}
	tilted := Plane{Normal: r3.Vec{X: 0.1, Z: 1}}

	if !z0.Coplanar(z0shift, 0.01) {
		t.Error("in-plane shift should stay coplanar")
	}
	if z0.Coplanar(z5, 0.01) {
		t.Error("offset plane should not be coplanar")
	}
	if z0.Coplanar(tilted, 0.01) {
		t.Error("tilted plane should not be coplanar")
	}
}

// Three faces at z=0, z=0 (shifted in-plane), and z=5 form two plane groups.
func TestGroupFaces(t *testing.T) {
	faces := []Face{
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1},
		PlanarFace{P: Plane{Origin: r3.Vec{X: 2}, Normal: r3.Vec{Z: 1}}, A: 1},
		PlanarFace{P: Plane{Origin: r3.Vec{Z: 5}, Normal: r3.Vec{Z: 1}}, A: 4},
	}
	groups, warnings, err := GroupFaces(faces, 0.01, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(groups) != 2 {
		t.Fatalf("have %d groups, want 2", len(groups))
	}
	if groups[0].Label != "Plane_A" || groups[1].Label != "Plane_B" {
		t.Errorf("labels: have %q, %q", groups[0].Label, groups[1].Label)
	}
	if len(groups[0].Faces) != 2 || len(groups[1].Faces) != 1 {
		t.Errorf("member counts: have %d, %d, want 2, 1",
			len(groups[0].Faces), len(groups[1].Faces))
	}
}

// Faces in the same plane whose areas round to the same value collapse to
// one representative; the distinct rounded areas are retained in first-seen
// order.
func TestGroupFacesAreas(t *testing.T) {
	faces := []Face{
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1.0, C: r3.Vec{X: 1}},
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1.0004, C: r3.Vec{X: 2}},
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 2.0, C: r3.Vec{X: 3}},
	}
	groups, _, err := GroupFaces(faces, 0.01, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 {
		t.Fatalf("have %d groups, want 1", len(groups))
	}
	g := groups[0]
	if !reflect.DeepEqual(g.Areas, []float64{1, 2}) {
		t.Errorf("areas: have %v, want [1 2]", g.Areas)
	}
	if len(g.Unique) != 2 || g.Unique[0].Center() != (r3.Vec{X: 1}) {
		t.Errorf("unique: have %v, want first-seen faces for areas 1 and 2", g.Unique)
	}
}

type brokenFace struct{ PlanarFace }

func (f brokenFace) Plane() (Plane, error) {
	return Plane{}, fmt.Errorf("face has no plane")
}

// A face whose plane cannot be computed is skipped with a warning rather
// than aborting the batch.
func TestGroupFacesPlaneError(t *testing.T) {
	faces := []Face{
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1},
		brokenFace{},
		PlanarFace{P: Plane{Origin: r3.Vec{X: 1}, Normal: r3.Vec{Z: 1}}, A: 1},
	}
	groups, warnings, err := GroupFaces(faces, 0.01, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Index != 1 {
		t.Fatalf("warnings: have %v, want one at index 1", warnings)
	}
	if len(groups) != 1 || len(groups[0].Faces) != 2 {
		t.Errorf("have %d groups, want 1 with 2 faces", len(groups))
	}

	// nil faces are filtered before classification.
	groups, warnings, err = GroupFaces([]Face{nil, faces[0]}, 0.01, 0, 3)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("unexpected errors: %v, %v", err, warnings)
	}
	if len(groups) != 1 || len(groups[0].Faces) != 1 {
		t.Errorf("nil filtering: have %d groups", len(groups))
	}
}

// A broken face arriving first must be the one skipped: it must not become
// a family representative that every later face fails to compare against.
func TestGroupFacesPlaneErrorFirst(t *testing.T) {
	faces := []Face{
		brokenFace{},
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1},
		PlanarFace{P: Plane{Origin: r3.Vec{X: 1}, Normal: r3.Vec{Z: 1}}, A: 1},
	}
	groups, warnings, err := GroupFaces(faces, 0.01, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Index != 0 {
		t.Fatalf("warnings: have %v, want one at index 0", warnings)
	}
	if len(groups) != 1 || len(groups[0].Faces) != 2 {
		t.Fatalf("have %d groups, want 1 with 2 faces", len(groups))
	}
	if groups[0].Label != "Plane_A" {
		t.Errorf("label: have %q, want Plane_A", groups[0].Label)
	}
}

type brokenAreaFace struct{ PlanarFace }

func (f brokenAreaFace) Area() (float64, error) {
	return 0, fmt.Errorf("face has no area")
}

// A face whose area cannot be computed is skipped before classification, and
// its warning index refers to its position in the input slice.
func TestGroupFacesAreaError(t *testing.T) {
	faces := []Face{
		PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}, A: 1},
		brokenAreaFace{PlanarFace{P: Plane{Normal: r3.Vec{Z: 1}}}},
		PlanarFace{P: Plane{Origin: r3.Vec{X: 1}, Normal: r3.Vec{Z: 1}}, A: 2},
	}
	groups, warnings, err := GroupFaces(faces, 0.01, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Index != 1 {
		t.Fatalf("warnings: have %v, want one at index 1", warnings)
	}
	if len(groups) != 1 || len(groups[0].Faces) != 2 {
		t.Fatalf("have %d groups, want 1 with 2 faces", len(groups))
	}
	if !reflect.DeepEqual(groups[0].Areas, []float64{1, 2}) {
		t.Errorf("areas: have %v, want [1 2]", groups[0].Areas)
	}
}
