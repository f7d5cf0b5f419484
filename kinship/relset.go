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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krotik/kinship/graph/util"
)

/*
Policy decides which candidate paths are retained in a RelationshipSet.
*/
type Policy int

/*
Known merge policies
*/
const (

	/*
		SkipSpouseWhenExistsNonSpouseOf drops an in-law candidate if the set
		holds a blood path with the same geometry. A blood candidate removes
		its in-law twins.
	*/
	SkipSpouseWhenExistsNonSpouseOf Policy = iota

	/*
		SkipAllSpouseWhenExistsAnyNonSpouse drops in-law candidates once any
		blood path is known. A blood candidate removes all in-law paths and
		only the closest blood path is kept.
	*/
	SkipAllSpouseWhenExistsAnyNonSpouse

	/*
		ClosestSkippingSpouseWhenExistsAnyNonSpouse keeps only the closest path.
		Blood paths beat in-law paths regardless of distance.
	*/
	ClosestSkippingSpouseWhenExistsAnyNonSpouse

	/*
		ClosestKeepingCloserSpouse keeps the closest blood path and the closest
		in-law path if it is strictly closer than the blood path.
	*/
	ClosestKeepingCloserSpouse
)

var policyNames = []string{
	"skip-spouse-when-exists-non-spouse-of",
	"skip-all-spouse-when-exists-any-non-spouse",
	"closest-skipping-spouse-when-exists-any-non-spouse",
	"closest-keeping-closer-spouse",
}

/*
String returns the name of a merge policy.
*/
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

/*
ParsePolicy parses the name of a merge policy.
*/
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return 0, &util.GraphError{Type: util.ErrInvalidData,
		Detail: fmt.Sprintf("Unknown merge policy: %v (known: %v)", s, strings.Join(policyNames, ", "))}
}

/*
RelationshipSet holds the retained paths from a root person to a target person.
Paths are kept in the order of Compare.
*/
type RelationshipSet struct {
	targetID string
	paths    []Path
	sides    TreeSide
	seq      int
	via      []string // Predecessors of retained paths (not the root)
}

/*
NewRelationshipSet creates a new empty relationship set. The sequence number
records the order of discovery.
*/
func NewRelationshipSet(targetID string, seq int) *RelationshipSet {
	return &RelationshipSet{targetID: targetID, seq: seq}
}

/*
TargetID returns the id of the target person.
*/
func (rs *RelationshipSet) TargetID() string {
	return rs.targetID
}

/*
Sequence returns the discovery sequence number of this set.
*/
func (rs *RelationshipSet) Sequence() int {
	return rs.seq
}

/*
Len returns the number of retained paths.
*/
func (rs *RelationshipSet) Len() int {
	return len(rs.paths)
}

/*
Paths returns the retained paths in order.
*/
func (rs *RelationshipSet) Paths() []Path {
	return append([]Path(nil), rs.paths...)
}

/*
First returns the closest retained path. The set must not be empty.
*/
func (rs *RelationshipSet) First() Path {
	return rs.paths[0]
}

/*
FirstNonSpousal returns the closest retained blood path.
*/
func (rs *RelationshipSet) FirstNonSpousal() (Path, bool) {
	for _, p := range rs.paths {
		if !p.inLaw {
			return p, true
		}
	}
	return Path{}, false
}

/*
TreeSides returns the accumulated tree sides of this set.
*/
func (rs *RelationshipSet) TreeSides() TreeSide {
	return rs.sides
}

/*
Contains checks if a path with the same identity is retained.
*/
func (rs *RelationshipSet) Contains(p Path) bool {
	return rs.indexOf(p) >= 0
}

/*
ContainsDirect returns if the set holds a direct blood path.
*/
func (rs *RelationshipSet) ContainsDirect() bool {
	for _, p := range rs.paths {
		if !p.inLaw && p.IsDirect() {
			return true
		}
	}
	return false
}

/*
ContainsNonSpousal returns if the set holds at least one blood path.
*/
func (rs *RelationshipSet) ContainsNonSpousal() bool {
	_, ok := rs.FirstNonSpousal()
	return ok
}

/*
Merge folds a candidate path into this set. Returns true if the candidate
was retained. Merging a path which is already retained only adds its tree
sides and returns false.
*/
func (rs *RelationshipSet) Merge(c Path, policy Policy) bool {
	return rs.merge(c, policy, "")
}

/*
merge folds a candidate path which was reached from a given predecessor into
this set.
*/
func (rs *RelationshipSet) merge(c Path, policy Policy, via string) bool {

	if rs.Contains(c) {
		rs.addVia(c, via)
		return false
	}

	retain := false

	switch policy {

	case SkipSpouseWhenExistsNonSpouseOf:
		if c.inLaw {
			retain = !rs.any(func(p Path) bool { return !p.inLaw && c.IsInLawOf(p) })
		} else {
			rs.remove(func(p Path) bool { return p.inLaw && p.IsInLawOf(c) })
			retain = true
		}

	case SkipAllSpouseWhenExistsAnyNonSpouse:
		blood, hasBlood := rs.FirstNonSpousal()
		if c.inLaw {
			retain = !hasBlood
		} else if !hasBlood {
			rs.remove(func(p Path) bool { return p.inLaw })
			retain = true
		} else if Compare(c, blood) < 0 {
			rs.remove(func(p Path) bool { return true })
			retain = true
		}

	case ClosestSkippingSpouseWhenExistsAnyNonSpouse:
		hasBlood := rs.ContainsNonSpousal()
		if len(rs.paths) == 0 ||
			(!c.inLaw && !hasBlood) ||
			(!(c.inLaw && hasBlood) && Compare(c, rs.paths[0]) < 0) {

			rs.remove(func(p Path) bool { return true })
			retain = true
		}

	case ClosestKeepingCloserSpouse:
		blood, hasBlood := rs.FirstNonSpousal()
		if !c.inLaw {
			if !hasBlood || Compare(c, blood) < 0 {
				rs.remove(func(p Path) bool { return !p.inLaw || Compare(p, c) >= 0 })
				retain = true
			}
		} else if !hasBlood || Compare(c, blood) < 0 {
			closer := rs.any(func(p Path) bool { return p.inLaw && Compare(p, c) < 0 })
			if !closer {
				rs.remove(func(p Path) bool { return p.inLaw })
				retain = true
			}
		}
	}

	if retain {
		rs.insert(c)
		rs.addVia(c, via)
	} else if !c.inLaw {

		// A dropped blood path still connects the person to a side of the tree

		rs.addVia(c, via)
	}

	return retain
}

/*
insert adds a path keeping the order of the set.
*/
func (rs *RelationshipSet) insert(c Path) {
	i := sort.Search(len(rs.paths), func(i int) bool {
		return Compare(rs.paths[i], c) > 0
	})

	rs.paths = append(rs.paths, Path{})
	copy(rs.paths[i+1:], rs.paths[i:])
	rs.paths[i] = c
}

/*
remove removes all paths which match a given condition.
*/
func (rs *RelationshipSet) remove(cond func(Path) bool) {
	res := rs.paths[:0]
	for _, p := range rs.paths {
		if !cond(p) {
			res = append(res, p)
		}
	}
	rs.paths = res
}

/*
any checks if any retained path matches a given condition.
*/
func (rs *RelationshipSet) any(cond func(Path) bool) bool {
	for _, p := range rs.paths {
		if cond(p) {
			return true
		}
	}
	return false
}

/*
indexOf returns the index of a path with the same identity or -1.
*/
func (rs *RelationshipSet) indexOf(c Path) int {
	for i, p := range rs.paths {
		if Compare(p, c) == 0 {
			return i
		}
	}
	return -1
}

/*
addVia records the tree sides and the predecessor of a merged path.
*/
func (rs *RelationshipSet) addVia(c Path, via string) {
	rs.sides |= c.sides

	if via == "" {
		return
	}

	for _, v := range rs.via {
		if v == via {
			return
		}
	}

	rs.via = append(rs.via, via)
}

/*
propagateSides sets the accumulated tree sides on all retained paths.
*/
func (rs *RelationshipSet) propagateSides() {
	for i, p := range rs.paths {
		rs.paths[i] = p.withSides(rs.sides)
	}
}

/*
String returns a string representation of this set.
*/
func (rs *RelationshipSet) String() string {
	var paths []string
	for _, p := range rs.paths {
		paths = append(paths, p.String())
	}
	return fmt.Sprintf("%v: %v", rs.targetID, strings.Join(paths, " "))
}
