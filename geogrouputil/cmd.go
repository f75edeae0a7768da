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

// Package geogrouputil wires the geogroup library to a command-line
// interface: configuration handling, point input and output, and plotting.
package geogrouputil

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/geogroup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to GeoGroup.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "tolerance",
			usage: `
              tolerance is the distance below which two locations are considered
              coincident. If it is not positive, the built-in default is used.`,
			shorthand:  "t",
			defaultVal: 0.001,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input is the path to the file holding the points to be grouped.
              Shapefiles (.shp) and CSV files with x,y[,z] columns are supported.
              It can include environment variables.`,
			shorthand:  "i",
			defaultVal: "points.csv",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output is the path to the desired output CSV location. It can
              include environment variables.`,
			shorthand:  "o",
			defaultVal: "geogroup_output.csv",
			flagsets:   []*pflag.FlagSet{dedupCmd.Flags(), labelCmd.Flags()},
		},
		{
			name: "ref.x",
			usage: `
              ref.x is the X coordinate of the reference point that groups are
              ranked against.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{labelCmd.Flags()},
		},
		{
			name: "ref.y",
			usage: `
              ref.y is the Y coordinate of the reference point.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{labelCmd.Flags()},
		},
		{
			name: "ref.z",
			usage: `
              ref.z is the Z coordinate of the reference point.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{labelCmd.Flags()},
		},
		{
			name: "plot.output",
			usage: `
              plot.output is the path to the plot file to be created. The file
              extension selects the format (.png, .svg, .pdf).`,
			defaultVal: "geogroup_plot.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "plot.width",
			usage: `
              plot.width is the plot width in centimeters.`,
			defaultVal: 15.0,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "plot.height",
			usage: `
              plot.height is the plot height in centimeters.`,
			defaultVal: 15.0,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables. Dots in
	// option names map to underscores, so ref.x becomes GEOGROUP_REF_X.
	Cfg.SetEnvPrefix("GEOGROUP")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(dedupCmd)
	Root.AddCommand(labelCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geogroup: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geogroup",
	Short: "Group and deduplicate geometric entities by tolerance.",
	Long: `GeoGroup collapses near-duplicate points into a unique set and labels
the resulting groups. Use the subcommands specified below to access the
functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GEOGROUP_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GeoGroup.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GeoGroup v%s\n", geogroup.Version)
	},
	DisableAutoGenTag: true,
}

// dedupCmd writes the unique points from the input file to the output file.
var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Remove duplicate points within tolerance.",
	Long: `dedup reads points from the input file, collapses points that lie
within the tolerance of an earlier point, and writes the unique points to
the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := classifyInput()
		if err != nil {
			return err
		}
		out, err := checkOutputFile(Cfg.GetString("output"))
		if err != nil {
			return err
		}
		return WritePoints(out, cl.Unique())
	},
	DisableAutoGenTag: true,
}

// labelCmd writes every input point with its group and rank labels.
var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Label point groups ranked by distance from a reference point.",
	Long: `label reads points from the input file, groups points that lie
within the tolerance of each other, orders the members of each group by
distance from the reference point, and writes each point with its group
and member labels to the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := classifyInput()
		if err != nil {
			return err
		}
		ref := r3.Vec{
			X: GetFloat64("ref.x", Cfg),
			Y: GetFloat64("ref.y", Cfg),
			Z: GetFloat64("ref.z", Cfg),
		}
		items := geogroup.Rank(cl.Classes, geogroup.DistanceFrom(ref))
		out, err := checkOutputFile(Cfg.GetString("output"))
		if err != nil {
			return err
		}
		return WriteRanked(out, items)
	},
	DisableAutoGenTag: true,
}

// plotCmd draws the point groups.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot point groups.",
	Long: `plot reads and groups points as in dedup and draws them as a
scatter plot with one color per group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := classifyInput()
		if err != nil {
			return err
		}
		out, err := checkOutputFile(Cfg.GetString("plot.output"))
		if err != nil {
			return err
		}
		width := vg.Length(GetFloat64("plot.width", Cfg)) * vg.Centimeter
		height := vg.Length(GetFloat64("plot.height", Cfg)) * vg.Centimeter
		return Plot(cl.Classes, out, width, height)
	},
	DisableAutoGenTag: true,
}

// classifyInput reads and classifies the configured input points, logging
// advisory warnings and the resulting counts.
func classifyInput() (*geogroup.Classification[r3.Vec], error) {
	in, err := checkInputFile(Cfg.GetString("input"))
	if err != nil {
		return nil, err
	}
	pts, err := ReadPoints(in)
	if err != nil {
		return nil, err
	}
	cl := geogroup.DedupPoints(pts, GetFloat64("tolerance", Cfg), 0)
	for _, w := range cl.Warnings {
		logger.Warn(w.String())
	}
	if cl.Err != nil {
		logger.Error(cl.Err)
	}
	logger.WithFields(logrus.Fields{
		"original":   cl.Original,
		"unique":     cl.UniqueCount(),
		"duplicates": cl.DuplicateCount(),
	}).Info("classified points")
	return cl, nil
}

func init() {
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
}
