/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"fmt"
	"sort"
)

/*
Person is a node of the person graph. A person is owned by its graph and
must not be modified after the graph was built.
*/
type Person struct {
	id   string
	name string
	sex  Sex
	date *Date

	childOf   []*Family // Families in which this person is a child
	partnerIn []*Family // Families in which this person is a partner

	parents  []*Person
	siblings []*Person
	spouses  []*Person
	children []*Person
}

/*
ID returns the unique id of this person.
*/
func (p *Person) ID() string {
	return p.id
}

/*
Name returns the display name of this person.
*/
func (p *Person) Name() string {
	return p.name
}

/*
Sex returns the sex of this person.
*/
func (p *Person) Sex() Sex {
	return p.sex
}

/*
Date returns the earliest known life event date of this person or nil.
*/
func (p *Person) Date() *Date {
	return p.date
}

/*
String returns a string representation of this person.
*/
func (p *Person) String() string {
	if p.name != "" {
		return fmt.Sprintf("%v (%v)", p.name, p.id)
	}
	return p.id
}

/*
Family groups up to two partners and their children.
*/
type Family struct {
	id        string
	date      *Date
	separated bool

	partners   []*Person
	roles      map[string]ReferenceType // Partner id to partner reference type
	children   []*Person
	childTypes map[string]ReferenceType // Child id to child reference type
}

/*
ID returns the unique id of this family.
*/
func (f *Family) ID() string {
	return f.id
}

/*
Date returns the union date of this family or nil.
*/
func (f *Family) Date() *Date {
	return f.date
}

/*
Separated returns if the partners of this family are separated.
*/
func (f *Family) Separated() bool {
	return f.separated
}

/*
Partners returns the partners of this family.
*/
func (f *Family) Partners() []*Person {
	return append([]*Person(nil), f.partners...)
}

/*
Children returns the children of this family.
*/
func (f *Family) Children() []*Person {
	return append([]*Person(nil), f.children...)
}

/*
HasChild checks if a given person is a child of this family.
*/
func (f *Family) HasChild(p *Person) bool {
	_, ok := f.childTypes[p.id]
	return ok
}

/*
ChildType returns the reference type of a child of this family
(CHILD, ADOPTED_CHILD or FOSTER_CHILD). FAMILY is returned if the given
person is not a child of this family.
*/
func (f *Family) ChildType(p *Person) ReferenceType {
	if t, ok := f.childTypes[p.id]; ok {
		return t
	}
	return RefFamily
}

/*
PartnerRole returns the reference type of a partner of this family. The
role is resolved from the sex of the partner if it was not given
explicitly. Partners of a separated family are DIV_HUSB or DIV_WIFE.
FAMILY is returned if the given person is not a partner of this family.
*/
func (f *Family) PartnerRole(p *Person) ReferenceType {
	role, ok := f.roles[p.id]
	if !ok {
		return RefFamily
	}

	if role == RefSpouse {
		if p.sex == SexMale {
			role = RefHusb
		} else if p.sex == SexFemale {
			role = RefWife
		}
	}

	if f.separated {
		if role == RefHusb {
			role = RefDivHusb
		} else if role == RefWife {
			role = RefDivWife
		}
	}

	return role
}

/*
OtherPartner returns the partner of a given person in this family or nil
if there is none.
*/
func (f *Family) OtherPartner(p *Person) *Person {
	for _, partner := range f.partners {
		if partner != p {
			return partner
		}
	}
	return nil
}

/*
String returns a string representation of this family.
*/
func (f *Family) String() string {
	return fmt.Sprintf("Family %v (partners: %v children: %v)",
		f.id, len(f.partners), len(f.children))
}

/*
ParentLink is a parent of a person together with the reference type of the
child link (CHILD, ADOPTED_CHILD or FOSTER_CHILD).
*/
type ParentLink struct {
	Parent *Person
	Type   ReferenceType
}

// Ordering helpers
// ================

/*
lessPerson is the ordering of related persons: earliest known date first,
persons without a date last, ties broken by id.
*/
func lessPerson(p1 *Person, p2 *Person) bool {
	if c := CompareDates(p1.date, p2.date); c != 0 {
		return c < 0
	}
	return p1.id < p2.id
}

/*
sortPersons sorts a list of persons and removes duplicates.
*/
func sortPersons(persons []*Person) []*Person {
	seen := make(map[string]bool, len(persons))
	res := make([]*Person, 0, len(persons))

	for _, p := range persons {
		if !seen[p.id] {
			seen[p.id] = true
			res = append(res, p)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return lessPerson(res[i], res[j])
	})

	return res
}

/*
sortFamilies sorts the families of a given person: union date first,
families without a date last, then by the id of the other partner and
finally by family id.
*/
func sortFamilies(p *Person, families []*Family) {
	partnerID := func(f *Family) string {
		if o := f.OtherPartner(p); o != nil {
			return o.id
		}
		return ""
	}

	sort.SliceStable(families, func(i, j int) bool {
		f1, f2 := families[i], families[j]

		if c := CompareDates(f1.date, f2.date); c != 0 {
			return c < 0
		}

		if p1, p2 := partnerID(f1), partnerID(f2); p1 != p2 {
			return p1 < p2
		}

		return f1.id < f2.id
	})
}
