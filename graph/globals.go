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
Package graph contains the person graph which is the input of the kinship engine.

Graph API

A Graph holds persons and the families which connect them. A Graph is created
with a Builder and is immutable once built. It is safe to share a Graph between
goroutines. Persons are looked up with Person(); unknown ids produce a
GraphError of type util.ErrNotFound.

Adjacency

For every person the graph provides ordered lists of parents, siblings, spouses
and children. All lists are ordered by the earliest known life event date of
the related person (persons without a date come last) and then by id. Families
are ordered by their union date and then by the id of the other partner.

The graph is a general graph and not a tree. Data errors and consanguineous
unions can produce cycles. Every traversal over the graph must keep its own
visited state.

Families

A family groups up to two partners and their children. Partner and child links
carry a reference type (HUSB, WIFE, CHILD, ADOPTED_CHILD, ...). Families are
used to decide if two siblings are full or half siblings.

Import

ImportJSON reads a graph from the node / edge exchange format:

	{
		nodes : [ { "key" : <id>, "kind" : "person"|"family", <attr> : <value> }, ... ]
		edges : [ { "key" : <id>, "kind" : "partner"|"child", "end1key" : ..., ... }, ... ]
	}
*/
package graph

import (
	"fmt"
	"strings"
)

// Logging
// =======

/*
Logger is a function which processes log messages from the graph code
*/
type Logger func(v ...interface{})

/*
LogDebug is called if a debug message is logged in the graph code
(by default disabled)
*/
var LogDebug = Logger(LogNull)

/*
LogNull is a discarding logger to be used for disabling loggers
*/
var LogNull = func(v ...interface{}) {
}

/*
Sex of a person
*/
type Sex byte

/*
Known sex values
*/
const (
	SexUnknown Sex = 'U'
	SexMale    Sex = 'M'
	SexFemale  Sex = 'F'
)

/*
String returns a string representation of a sex value.
*/
func (s Sex) String() string {
	return string([]byte{byte(s)})
}

/*
ParseSex parses a sex value. Anything which is not recognised is unknown.
*/
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return SexMale
	case "f", "female":
		return SexFemale
	}
	return SexUnknown
}

/*
ReferenceType is the closed set of relationship references. The first group
is produced by the kinship classifier. The second group describes links
inside a family. FAMILY is a placeholder for unresolved or aggregated
references.
*/
type ReferenceType int

/*
Known reference types
*/
const (
	RefSelf ReferenceType = iota
	RefParent
	RefChild
	RefSibling
	RefPibling
	RefNibling
	RefCousin
	RefSpouse
	RefHusb
	RefDivHusb
	RefWife
	RefDivWife
	RefFamily
	RefAdoptedChild
	RefFosterChild
)

var referenceTypeNames = []string{
	"SELF",
	"PARENT",
	"CHILD",
	"SIBLING",
	"PIBLING",
	"NIBLING",
	"COUSIN",
	"SPOUSE",
	"HUSB",
	"DIV_HUSB",
	"WIFE",
	"DIV_WIFE",
	"FAMILY",
	"ADOPTED_CHILD",
	"FOSTER_CHILD",
}

/*
String returns the name of a reference type.
*/
func (r ReferenceType) String() string {
	if r < 0 || int(r) >= len(referenceTypeNames) {
		return fmt.Sprintf("ReferenceType(%d)", int(r))
	}
	return referenceTypeNames[r]
}

/*
ParseReferenceType parses the name of a reference type.
*/
func ParseReferenceType(s string) (ReferenceType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range referenceTypeNames {
		if name == s {
			return ReferenceType(i), true
		}
	}
	return RefFamily, false
}

/*
IsChildType checks if a reference type describes a child link of a family.
*/
func (r ReferenceType) IsChildType() bool {
	return r == RefChild || r == RefAdoptedChild || r == RefFosterChild
}

/*
IsPartnerType checks if a reference type describes a partner link of a family.
*/
func (r ReferenceType) IsPartnerType() bool {
	return r == RefHusb || r == RefWife || r == RefDivHusb || r == RefDivWife || r == RefSpouse
}
