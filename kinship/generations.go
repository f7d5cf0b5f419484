/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package kinship

import "fmt"

/*
AncestryGenerations summarises the deepest ascending and descending reach
of a root person's relationships. DirectDescending only counts direct
descendants.
*/
type AncestryGenerations struct {
	Ascending        int
	Descending       int
	DirectDescending int
}

/*
GenerationsOf returns the generations of a single path.
*/
func GenerationsOf(p Path) AncestryGenerations {
	var res AncestryGenerations

	if gen := p.Generation(); gen > 0 {
		res.Ascending = gen
	} else {
		res.Descending = -gen
	}

	if p.d1 == 0 && !p.inLaw {
		res.DirectDescending = p.d2
	}

	return res
}

/*
Merge combines two generation summaries (component-wise maximum).
*/
func (a AncestryGenerations) Merge(other AncestryGenerations) AncestryGenerations {
	return AncestryGenerations{
		Ascending:        maxInt(a.Ascending, other.Ascending),
		Descending:       maxInt(a.Descending, other.Descending),
		DirectDescending: maxInt(a.DirectDescending, other.DirectDescending),
	}
}

/*
String returns a string representation of this summary.
*/
func (a AncestryGenerations) String() string {
	return fmt.Sprintf("ascending:%v descending:%v direct descending:%v",
		a.Ascending, a.Descending, a.DirectDescending)
}

/*
Summary holds statistics over all relationships of a root person.
*/
type Summary struct {
	Persons       int                 // Number of related persons excluding the root
	Generations   AncestryGenerations // Generation summary
	MostDistant   Path                // Most distant relationship
	MostDistantID string              // Target of the most distant relationship
}

/*
Summarize computes statistics over the relationship sets of a root person.
The set of the root person itself is ignored.
*/
func Summarize(rootID string, sets []*RelationshipSet) Summary {
	var res Summary

	found := false

	for _, s := range sets {
		if s.TargetID() == rootID || s.Len() == 0 {
			continue
		}

		res.Persons++

		for _, p := range s.Paths() {
			res.Generations = res.Generations.Merge(GenerationsOf(p))
		}

		if p := s.First(); !found || CompareInverted(p, res.MostDistant) > 0 {
			res.MostDistant = p
			res.MostDistantID = s.TargetID()
			found = true
		}
	}

	return res
}

/*
maxInt returns the larger of two integers.
*/
func maxInt(i1 int, i2 int) int {
	if i1 > i2 {
		return i1
	}
	return i2
}
