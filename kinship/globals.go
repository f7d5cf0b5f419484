/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package kinship computes, classifies and orders the relationships between a
root person and every other person of a person graph.

Paths

A relationship is described by a Path. A path counts the steps from the root
person up to the nearest shared ancestor (DistanceToAncestorRoot) and the
steps from that ancestor down to the target person (DistanceToAncestorTarget).
A path which crosses a partnership is an in-law path. In-law paths are
terminal and cannot be extended. A half path branches at a family in which
only one of the expected parents is shared. Paths are values and are only
produced by Advance.

Exploration

The Explorer walks the graph from the root person one step at a time. Steps
go up to a parent (Ascend), down to a child (Descend) or across to a spouse
(Lateral). Candidate paths are served in order of their total distance and
are folded into a RelationshipSet per target person under a merge Policy.
Only retained paths are explored further. A depth cap truncates branches of
malformed cyclic data.

Classification

Classify maps a path into a reference type (PARENT, SIBLING, COUSIN, ...)
together with a generation and a grade. Order produces a reproducible
presentation order over all relationship sets of a root person.

Engine

The Engine combines all steps and caches point-to-point queries. It is safe
for concurrent use since the graph is read-only and all scratch state is
owned by a single call.
*/
package kinship

import (
	"strings"

	"github.com/krotik/kinship/graph"
)

// Logging
// =======

/*
Logger is a function which processes log messages from the kinship code
*/
type Logger func(v ...interface{})

/*
LogDebug is called if a debug message is logged in the kinship code
(by default disabled)
*/
var LogDebug = Logger(LogNull)

/*
LogNull is a discarding logger to be used for disabling loggers
*/
var LogNull = func(v ...interface{}) {
}

/*
Direction of a path step
*/
type Direction int

/*
Known step directions
*/
const (
	Ascend  Direction = iota // Step to a parent
	Descend                  // Step to a child
	Lateral                  // Step to a spouse
)

/*
String returns a string representation of a step direction.
*/
func (d Direction) String() string {
	switch d {
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	case Lateral:
		return "lateral"
	}
	return "unknown"
}

/*
Adoption describes the first non-biological link of a path.
*/
type Adoption int

/*
Known adoption types
*/
const (
	AdoptionNone Adoption = iota
	AdoptionAdoptive
	AdoptionFoster
)

/*
AdoptionOf returns the adoption type of a child link.
*/
func AdoptionOf(ref graph.ReferenceType) Adoption {
	switch ref {
	case graph.RefAdoptedChild:
		return AdoptionAdoptive
	case graph.RefFosterChild:
		return AdoptionFoster
	}
	return AdoptionNone
}

/*
String returns a string representation of an adoption type.
*/
func (a Adoption) String() string {
	switch a {
	case AdoptionAdoptive:
		return "adoptive"
	case AdoptionFoster:
		return "foster"
	}
	return ""
}

/*
TreeSide is a set of sides of the family tree through which a person is
reached from the root.
*/
type TreeSide uint8

/*
Known tree sides
*/
const (
	SideFather TreeSide = 1 << iota
	SideMother
	SideDescendant
	SideSpouse
)

var treeSideNames = []string{"FATHER", "MOTHER", "DESCENDANT", "SPOUSE"}

/*
Has checks if this set contains all given sides.
*/
func (s TreeSide) Has(side TreeSide) bool {
	return s&side == side
}

/*
String returns a string representation of a tree side set.
*/
func (s TreeSide) String() string {
	var names []string
	for i, name := range treeSideNames {
		if s&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

/*
parentSide returns the tree side of a parent step.
*/
func parentSide(parent *graph.Person) TreeSide {
	switch parent.Sex() {
	case graph.SexMale:
		return SideFather
	case graph.SexFemale:
		return SideMother
	}
	return 0
}
