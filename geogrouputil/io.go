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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/spatialmodel/geogroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReadPoints reads point locations from path. Shapefiles (.shp) and CSV
// files with x,y[,z] columns are supported; shapefile geometries are read
// as 2-D points at z=0. A CSV header row is skipped if present.
func ReadPoints(path string) ([]r3.Vec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return readPointsSHP(path)
	case ".csv":
		return readPointsCSV(path)
	default:
		return nil, fmt.Errorf("geogroup: unsupported input format %q", filepath.Ext(path))
	}
}

func readPointsSHP(path string) ([]r3.Vec, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("geogroup: opening shapefile: %v", err)
	}
	defer d.Close()
	var pts []r3.Vec
	for {
		g, _, more := d.DecodeRowFields()
		if !more {
			break
		}
		switch g := g.(type) {
		case geom.Point:
			pts = append(pts, r3.Vec{X: g.X, Y: g.Y})
		case geom.MultiPoint:
			for _, p := range g {
				pts = append(pts, r3.Vec{X: p.X, Y: p.Y})
			}
		default:
			return nil, fmt.Errorf("geogroup: unsupported geometry type %T in %s", g, path)
		}
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("geogroup: reading shapefile: %v", err)
	}
	return pts, nil
}

func readPointsCSV(path string) ([]r3.Vec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geogroup: opening input: %v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("geogroup: reading %s: %v", path, err)
	}
	var pts []r3.Vec
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("geogroup: %s row %d: need at least x and y columns", path, i+1)
		}
		var coords [3]float64
		var parseErr error
		for j := 0; j < len(row) && j < 3; j++ {
			coords[j], parseErr = strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if parseErr != nil {
				break
			}
		}
		if parseErr != nil {
			if i == 0 { // header row
				continue
			}
			return nil, fmt.Errorf("geogroup: %s row %d: %v", path, i+1, parseErr)
		}
		pts = append(pts, r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	return pts, nil
}

// WritePoints writes pts to a CSV file with an x,y,z header.
func WritePoints(path string, pts []r3.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("geogroup: creating output: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"x", "y", "z"})
	for _, p := range pts {
		w.Write([]string{fmtFloat(p.X), fmtFloat(p.Y), fmtFloat(p.Z)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("geogroup: writing %s: %v", path, err)
	}
	return nil
}

// WriteRanked writes ranked points with their group and member labels and
// their distance key to a CSV file.
func WriteRanked(path string, items []geogroup.RankedItem[r3.Vec]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("geogroup: creating output: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"x", "y", "z", "group", "label", "distance"})
	for _, item := range items {
		p := item.Entity
		w.Write([]string{
			fmtFloat(p.X), fmtFloat(p.Y), fmtFloat(p.Z),
			item.Class, item.Label, fmtFloat(item.Key),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("geogroup: writing %s: %v", path, err)
	}
	return nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
