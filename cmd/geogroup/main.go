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

// Command geogroup is a command-line interface for tolerance-based grouping
// and deduplication of geometric entities.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/geogroup/geogrouputil"
)

func main() {
	if err := geogrouputil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
