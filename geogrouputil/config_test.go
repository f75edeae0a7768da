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

	"github.com/spf13/viper"
)

func TestOptionDefaults(t *testing.T) {
	if have := GetFloat64("tolerance", Cfg); have != 0.001 {
		t.Errorf("tolerance default: have %g, want 0.001", have)
	}
	if have := Cfg.GetString("output"); have != "geogroup_output.csv" {
		t.Errorf("output default: have %q", have)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GEOGROUP_REF_Y", "7.5")
	if have := GetFloat64("ref.y", Cfg); have != 7.5 {
		t.Errorf("have %g, want 7.5", have)
	}
}

func TestGetFloat64String(t *testing.T) {
	cfg := viper.New()
	cfg.Set("tolerance", "0.05")
	if have := GetFloat64("tolerance", cfg); have != 0.05 {
		t.Errorf("have %g, want 0.05", have)
	}
}

func TestCheckInputFile(t *testing.T) {
	if _, err := checkInputFile(""); err == nil {
		t.Error("empty input path should be an error")
	}
	if _, err := checkInputFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing input file should be an error")
	}
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte("1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := checkInputFile(path); err != nil {
		t.Error(err)
	}
}

func TestCheckOutputFile(t *testing.T) {
	if _, err := checkOutputFile(""); err == nil {
		t.Error("empty output path should be an error")
	}
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")
	have, err := checkOutputFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if have != path {
		t.Errorf("have %q, want %q", have, path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}
