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
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// GetFloat64 returns the value of varName in cfg as a float64, handling
// values that arrive as strings from configuration files or environment
// variables.
func GetFloat64(varName string, cfg *viper.Viper) float64 {
	return cast.ToFloat64(cfg.Get(varName))
}

// checkInputFile makes sure the input file is specified and exists, and
// expands any environment variables.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf("geogroup: input file not specified")
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return "", fmt.Errorf("geogroup: input file: %v", err)
	}
	return f, nil
}

// checkOutputFile makes sure the output file is specified and its directory
// exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf("geogroup: output file not specified")
	}
	f = os.ExpandEnv(f)
	if d := filepath.Dir(f); d != "." {
		if err := os.MkdirAll(d, os.ModePerm); err != nil {
			return "", fmt.Errorf("geogroup: creating output directory: %v", err)
		}
	}
	return f, nil
}
