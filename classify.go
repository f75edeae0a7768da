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

import "fmt"

// An EquivalenceFunc reports whether a and b represent the same entity to
// within tol. Returning a non-nil error means the comparison could not be
// made for a; the classifier then skips a with a Warning.
type EquivalenceFunc[E any] func(a, b E, tol float64) (bool, error)

// A Class is an ordered set of entities that were judged equivalent to a
// single representative. The representative is always the first member
// inserted; later entities are only ever compared against it.
type Class[E any] struct {
	Members []E

	// Label identifies the class within one classification,
	// assigned in discovery order ("A", "B", …).
	Label string

	// Key is a numeric sub-key set by Subdivide, e.g. a rounded area.
	Key float64
}

// Representative returns the first-inserted member of the class.
func (c *Class[E]) Representative() E { return c.Members[0] }

// Len returns the number of members in the class.
func (c *Class[E]) Len() int { return len(c.Members) }

// A Classification is the result of one classifier pass. It is always
// returned, possibly empty or partial, rather than a failure.
type Classification[E any] struct {
	// Classes holds the discovered classes in discovery order.
	Classes []*Class[E]

	// Original is the number of entities that were classified, after
	// invalid and unclassifiable entities have been filtered out.
	Original int

	// Warnings reports entities that were skipped because an equivalence
	// comparison could not be made for them.
	Warnings []Warning

	// Err records a geometry failure that ended classification early.
	// The classes discovered before the failure are retained.
	Err error
}

// Unique returns the class representatives in discovery order.
func (cl *Classification[E]) Unique() []E {
	o := make([]E, len(cl.Classes))
	for i, c := range cl.Classes {
		o[i] = c.Representative()
	}
	return o
}

// UniqueCount returns the number of classes discovered.
func (cl *Classification[E]) UniqueCount() int { return len(cl.Classes) }

// DuplicateCount returns the number of entities that joined an existing
// class. UniqueCount()+DuplicateCount() always equals Original.
func (cl *Classification[E]) DuplicateCount() int { return cl.Original - len(cl.Classes) }

// A Classifier partitions a sequence of entities into equivalence classes.
// The zero value is not usable; Equivalent must be set.
type Classifier[E any] struct {
	// Tolerance is shared by every pairwise comparison in one call.
	// If it is not positive, DefaultTolerance is used instead.
	Tolerance float64

	// DefaultTolerance is the host-environment fallback used when
	// Tolerance is not positive, for example an active document's
	// absolute tolerance. If it is also not positive, the package
	// constant DefaultTolerance applies.
	DefaultTolerance float64

	// Equivalent is the pairwise predicate.
	Equivalent EquivalenceFunc[E]

	// Valid, if non-nil, filters out invalid entities before
	// classification begins. Filtered entities are not counted.
	Valid func(E) bool

	// Check, if non-nil, establishes that an entity's predicate inputs can
	// be computed before the entity may join or open a class. Entities
	// failing Check are skipped with a Warning and are not counted. Without
	// it, an unclassifiable entity arriving first would open a class and
	// then fail every later comparison made against it, skipping the good
	// entities instead.
	Check func(E) error
}

// Classify partitions entities in input order: each entity is tested against
// the representatives of the existing classes in creation order and joins
// the first class that matches; if none matches it opens a new class. The
// result therefore depends on the input order, and equivalence is not closed
// transitively: an entity equivalent to a later member but not to the
// representative opens its own class.
//
// A panic from the equivalence predicate (for example from a failing
// geometry kernel) is recovered here and recorded on the result's Err field,
// with the partial classification retained.
func (c *Classifier[E]) Classify(entities []E) (result *Classification[E]) {
	result = new(Classification[E])
	tol := Tolerance(c.Tolerance, c.DefaultTolerance)
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("geogroup: geometry failure during classification: %v", r)
		}
	}()
	for i, e := range entities {
		if c.Valid != nil && !c.Valid(e) {
			continue
		}
		if c.Check != nil {
			if err := c.Check(e); err != nil {
				result.Warnings = append(result.Warnings, Warning{Index: i, Err: err})
				continue
			}
		}
		var match *Class[E]
		skip := false
		for _, class := range result.Classes {
			ok, err := c.Equivalent(e, class.Representative(), tol)
			if err != nil {
				result.Warnings = append(result.Warnings, Warning{Index: i, Err: err})
				skip = true
				break
			}
			if ok {
				match = class
				break
			}
		}
		if skip {
			continue
		}
		result.Original++
		if match != nil {
			match.Members = append(match.Members, e)
			continue
		}
		result.Classes = append(result.Classes, &Class[E]{
			Members: []E{e},
			Label:   Label(len(result.Classes)),
		})
	}
	return result
}
