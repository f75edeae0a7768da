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
	"sort"
)

// Label returns the letter label for class i: "A" through "Z" for the first
// 26 classes, then "AA", "AB", … in spreadsheet-column order. The sequence
// is unbounded, so classifications with more than 26 classes keep unique,
// lexicographically ordered labels.
func Label(i int) string {
	var b []byte
	for i >= 0 {
		b = append([]byte{byte('A' + i%26)}, b...)
		i = i/26 - 1
	}
	return string(b)
}

// A RankedItem pairs an entity with its class label and its position within
// the class after ranking.
type RankedItem[E any] struct {
	Entity E

	// Class is the label of the class the entity belongs to.
	Class string

	// Label identifies the entity as "<class>-<index>", where index is the
	// 0-based position of the entity within its class after ranking.
	Label string

	// Key is the secondary sort key, typically a distance to a
	// reference point.
	Key float64
}

// Rank orders the members of each class ascending by the secondary key and
// labels them "<class>-0", "<class>-1", …. Classes stay in their discovery
// order; ties within a class keep their original relative order.
func Rank[E any](classes []*Class[E], key func(E) float64) []RankedItem[E] {
	var items []RankedItem[E]
	for _, class := range classes {
		ranked := make([]RankedItem[E], len(class.Members))
		for i, m := range class.Members {
			ranked[i] = RankedItem[E]{Entity: m, Class: class.Label, Key: key(m)}
		}
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Key < ranked[j].Key })
		for i := range ranked {
			ranked[i].Label = fmt.Sprintf("%s-%d", class.Label, i)
		}
		items = append(items, ranked...)
	}
	return items
}

// Subdivide splits each class into finer classes on a numeric key rounded to
// the given number of decimal places: members of one class whose keys round
// to the same value end up in the same sub-class, first-seen order
// preserved. Sub-classes are labeled "<parent>.0", "<parent>.1", … and carry
// the rounded key on their Key field.
//
// Members whose key cannot be computed are skipped with a Warning; the
// warning index counts entities across all classes in iteration order.
func Subdivide[E any](classes []*Class[E], key func(E) (float64, error), decimals int) ([]*Class[E], []Warning) {
	var out []*Class[E]
	var warnings []Warning
	n := 0
	for _, class := range classes {
		var subs []*Class[E]
		for _, m := range class.Members {
			k, err := key(m)
			if err != nil {
				warnings = append(warnings, Warning{Index: n, Err: err})
				n++
				continue
			}
			k = roundTo(k, decimals)
			var sub *Class[E]
			for _, s := range subs {
				if s.Key == k {
					sub = s
					break
				}
			}
			if sub == nil {
				sub = &Class[E]{
					Label: fmt.Sprintf("%s.%d", class.Label, len(subs)),
					Key:   k,
				}
				subs = append(subs, sub)
			}
			sub.Members = append(sub.Members, m)
			n++
		}
		out = append(out, subs...)
	}
	return out, warnings
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
