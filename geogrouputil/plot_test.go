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

package geogrouputil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/geogroup"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

func TestPlot(t *testing.T) {
	pts := []r3.Vec{
		{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 5, Y: 5}, {X: 9, Y: 2},
	}
	cl := geogroup.DedupPoints(pts, 0.01, 0)
	path := filepath.Join(t.TempDir(), "groups.png")
	if err := Plot(cl.Classes, path, 10*vg.Centimeter, 10*vg.Centimeter); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("plot file is empty")
	}
}
