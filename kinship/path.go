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
	"strings"

	"github.com/krotik/kinship/graph/util"
)

/*
Path is the geometry of a relationship between a root person and a target
person. The zero value is the path of the root person to itself.
*/
type Path struct {
	d1       int      // Distance from the root person to the shared ancestor
	d2       int      // Distance from the shared ancestor to the target person
	inLaw    bool     // Path crosses a partnership
	half     bool     // Path branches at a half relation
	adoption Adoption // First non-biological link of the path
	related  []string // Persons next to the last step (sorted)
	sides    TreeSide // Annotation which is not part of the path identity
}

/*
SelfPath returns the path of a person to themselves.
*/
func SelfPath() Path {
	return Path{}
}

/*
DistanceToAncestorRoot returns the number of steps from the root person
up to the shared ancestor.
*/
func (p Path) DistanceToAncestorRoot() int {
	return p.d1
}

/*
DistanceToAncestorTarget returns the number of steps from the shared ancestor
down to the target person.
*/
func (p Path) DistanceToAncestorTarget() int {
	return p.d2
}

/*
IsInLaw returns if this path crosses a partnership.
*/
func (p Path) IsInLaw() bool {
	return p.inLaw
}

/*
IsHalf returns if this path branches at a half relation.
*/
func (p Path) IsHalf() bool {
	return p.half
}

/*
Adoption returns the first non-biological link of this path.
*/
func (p Path) Adoption() Adoption {
	return p.adoption
}

/*
RelatedPersonIDs returns the persons next to the last step of this path.
*/
func (p Path) RelatedPersonIDs() []string {
	return append([]string(nil), p.related...)
}

/*
TreeSides returns the tree sides of this path.
*/
func (p Path) TreeSides() TreeSide {
	return p.sides
}

/*
Distance returns the number of blood steps of this path.
*/
func (p Path) Distance() int {
	return p.d1 + p.d2
}

/*
TotalDistance returns the distance of this path counting a partnership as
an extra step.
*/
func (p Path) TotalDistance() int {
	if p.inLaw {
		return p.d1 + p.d2 + 1
	}
	return p.d1 + p.d2
}

/*
Generation returns the signed generation difference of this path. Positive
values point to ancestors.
*/
func (p Path) Generation() int {
	return p.d1 - p.d2
}

/*
IsDirect returns if the target is an ancestor or descendant of the root.
*/
func (p Path) IsDirect() bool {
	return p.d1 == 0 || p.d2 == 0
}

/*
IsInLawOf checks if this path and another path only differ in the in-law flag.
*/
func (p Path) IsInLawOf(other Path) bool {
	return p.d1 == other.d1 &&
		p.d2 == other.d2 &&
		p.inLaw != other.inLaw &&
		p.half == other.half &&
		p.adoption == other.adoption
}

/*
Advance extends this path by one step. The setHalf flag marks a step into a
half relation. The adoption is the type of a non-biological parent / child
link. The sides and related person ids are attached to the new path.

Extending an in-law path, ascending from or through a half relation, marking
a half relation twice or passing an adoption for a lateral step produce a
GraphError of type ErrInvalidTransition.
*/
func (p Path) Advance(dir Direction, setHalf bool, adoption Adoption,
	sides TreeSide, related []string) (Path, error) {

	if p.inLaw ||
		(p.half && dir == Ascend) ||
		(p.half && setHalf) ||
		(setHalf && dir != Descend) ||
		(adoption != AdoptionNone && dir == Lateral) {

		return p, &util.GraphError{
			Type:   util.ErrInvalidTransition,
			Detail: fmt.Sprintf("%v (setHalf:%v adoption:%v) from %v", dir, setHalf, adoption, p),
		}
	}

	res := Path{
		d1:       p.d1,
		d2:       p.d2,
		half:     p.half,
		adoption: p.adoption,
		related:  related,
		sides:    sides,
	}

	if adoption != AdoptionNone && res.adoption == AdoptionNone {
		res.adoption = adoption
	}

	switch dir {
	case Ascend:
		res.d1++
	case Descend:
		res.d2++
		res.half = p.half || setHalf
	case Lateral:
		res.inLaw = true
	}

	return res, nil
}

/*
withSides returns a copy of this path with the given tree sides.
*/
func (p Path) withSides(sides TreeSide) Path {
	p.sides = sides
	return p
}

/*
String returns a string representation of this path.
*/
func (p Path) String() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "(%v,%v", p.d1, p.d2)
	if p.inLaw {
		buf.WriteString(" in-law")
	}
	if p.half {
		buf.WriteString(" half")
	}
	if p.adoption != AdoptionNone {
		buf.WriteString(" " + p.adoption.String())
	}
	if len(p.related) > 0 {
		fmt.Fprintf(&buf, " via %v", strings.Join(p.related, ","))
	}
	buf.WriteString(")")

	return buf.String()
}

// Ordering
// ========

/*
Compare compares two paths. The order is a strict total order over the
identity of a path (tree sides are not part of it):

	1. total distance (in-law counts as an extra step)
	2. blood paths before in-law paths
	3. full paths before half paths
	4. related person ids (lexicographic, absent first)
	5. smaller generation difference first
	6. larger distance to the root's ancestor first
	7. no adoption before adoptive before foster
*/
func Compare(a Path, b Path) int {
	if c := compareInts(a.TotalDistance(), b.TotalDistance()); c != 0 {
		return c
	}
	return compareTieBreaks(a, b)
}

/*
CompareInverted compares two paths by distance but with all tie-breaks
inverted. It is used to find the most distant relationship.
*/
func CompareInverted(a Path, b Path) int {
	if c := compareInts(a.TotalDistance(), b.TotalDistance()); c != 0 {
		return c
	}
	return -compareTieBreaks(a, b)
}

/*
compareTieBreaks compares two paths of equal total distance.
*/
func compareTieBreaks(a Path, b Path) int {
	if c := compareBools(a.inLaw, b.inLaw); c != 0 {
		return c
	}
	if c := compareBools(a.half, b.half); c != 0 {
		return c
	}
	if c := compareStrings(a.related, b.related); c != 0 {
		return c
	}
	if c := compareInts(abs(a.Generation()), abs(b.Generation())); c != 0 {
		return c
	}
	if c := compareInts(b.d1, a.d1); c != 0 {
		return c
	}
	return compareInts(int(a.adoption), int(b.adoption))
}

/*
Equal checks if two paths have the same identity.
*/
func (p Path) Equal(other Path) bool {
	return Compare(p, other) == 0
}

/*
compareInts compares two integers.
*/
func compareInts(i1 int, i2 int) int {
	if i1 < i2 {
		return -1
	} else if i1 > i2 {
		return 1
	}
	return 0
}

/*
compareBools compares two booleans (false first).
*/
func compareBools(b1 bool, b2 bool) int {
	if b1 == b2 {
		return 0
	} else if !b1 {
		return -1
	}
	return 1
}

/*
compareStrings compares two string lists element by element. A shorter list
which is a prefix of a longer list comes first. Absent lists come first.
*/
func compareStrings(l1 []string, l2 []string) int {
	for i := 0; i < len(l1) && i < len(l2); i++ {
		if c := strings.Compare(l1[i], l2[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(l1), len(l2))
}

/*
abs returns the absolute value of an integer.
*/
func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
