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
	"fmt"

	"github.com/spatialmodel/geogroup"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot draws the members of each class as a scatter plot in the XY plane
// with one color per class, and saves it to filename. The file extension
// selects the format.
func Plot(classes []*geogroup.Class[r3.Vec], filename string, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = "Point groups"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, class := range classes {
		xys := make(plotter.XYs, len(class.Members))
		for j, m := range class.Members {
			xys[j].X = m.X
			xys[j].Y = m.Y
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("geogroup: plotting group %s: %v", class.Label, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(class.Label, s)
	}

	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("geogroup: saving plot: %v", err)
	}
	return nil
}
