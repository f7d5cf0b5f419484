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

	"github.com/krotik/common/errorutil"
	"github.com/krotik/kinship/graph/util"
)

/*
Builder collects persons, families and links and builds an immutable Graph.
Problems are collected and reported together by Build.
*/
type Builder struct {
	people   map[string]*Person
	families map[string]*Family
	links    []*familyLink
	errors   *errorutil.CompositeError
}

/*
familyLink is a not yet resolved link between a person and a family.
*/
type familyLink struct {
	familyID string
	personID string
	refType  ReferenceType
	child    bool
}

/*
NewBuilder creates a new graph builder.
*/
func NewBuilder() *Builder {
	return &Builder{make(map[string]*Person), make(map[string]*Family),
		nil, errorutil.NewCompositeError()}
}

/*
AddPerson adds a person. The date is the earliest known life event date
of the person (YYYY, YYYY-MM, YYYY-MM-DD or empty).
*/
func (b *Builder) AddPerson(id string, name string, sex Sex, date string) *Builder {
	if id == "" {
		b.errors.Add(fmt.Errorf("Person with empty id"))
		return b
	} else if _, ok := b.people[id]; ok {
		b.errors.Add(fmt.Errorf("Duplicate person id: %v", id))
		return b
	}

	d, err := ParseDate(date)
	if err != nil {
		b.errors.Add(fmt.Errorf("Person %v: %v", id, err))
	}

	if sex != SexMale && sex != SexFemale {
		sex = SexUnknown
	}

	b.people[id] = &Person{id: id, name: name, sex: sex, date: d}

	return b
}

/*
AddFamily adds a family. The date is the union date of the family.
*/
func (b *Builder) AddFamily(id string, date string, separated bool) *Builder {
	if id == "" {
		b.errors.Add(fmt.Errorf("Family with empty id"))
		return b
	} else if _, ok := b.families[id]; ok {
		b.errors.Add(fmt.Errorf("Duplicate family id: %v", id))
		return b
	}

	d, err := ParseDate(date)
	if err != nil {
		b.errors.Add(fmt.Errorf("Family %v: %v", id, err))
	}

	b.families[id] = &Family{
		id:         id,
		date:       d,
		separated:  separated,
		roles:      make(map[string]ReferenceType),
		childTypes: make(map[string]ReferenceType),
	}

	return b
}

/*
AddPartner adds a partner link. The role should be HUSB, WIFE or SPOUSE (role
is resolved from the partner's sex).
*/
func (b *Builder) AddPartner(familyID string, personID string, role ReferenceType) *Builder {
	if !role.IsPartnerType() {
		b.errors.Add(fmt.Errorf("Invalid partner type %v for %v in family %v",
			role, personID, familyID))
		return b
	}

	// Divorced roles are derived from the separated flag of the family

	if role == RefDivHusb {
		role = RefHusb
	} else if role == RefDivWife {
		role = RefWife
	}

	b.links = append(b.links, &familyLink{familyID, personID, role, false})

	return b
}

/*
AddChild adds a child link. The type should be CHILD, ADOPTED_CHILD or
FOSTER_CHILD.
*/
func (b *Builder) AddChild(familyID string, personID string, childType ReferenceType) *Builder {
	if !childType.IsChildType() {
		b.errors.Add(fmt.Errorf("Invalid child type %v for %v in family %v",
			childType, personID, familyID))
		return b
	}

	b.links = append(b.links, &familyLink{familyID, personID, childType, true})

	return b
}

/*
Build validates the collected data and builds the graph. All problems are
returned together in a GraphError of type ErrInvalidData.
*/
func (b *Builder) Build() (*Graph, error) {

	// Resolve links

	for _, l := range b.links {
		f, ok := b.families[l.familyID]
		if !ok {
			b.errors.Add(fmt.Errorf("Unknown family %v", l.familyID))
			continue
		}

		p, ok := b.people[l.personID]
		if !ok {
			b.errors.Add(fmt.Errorf("Unknown person %v in family %v", l.personID, l.familyID))
			continue
		}

		if l.child {
			if _, ok := f.childTypes[p.id]; ok {
				b.errors.Add(fmt.Errorf("Duplicate child %v in family %v", p.id, f.id))
				continue
			}
			f.childTypes[p.id] = l.refType
			f.children = append(f.children, p)
			p.childOf = append(p.childOf, f)

		} else {
			if _, ok := f.roles[p.id]; ok {
				b.errors.Add(fmt.Errorf("Duplicate partner %v in family %v", p.id, f.id))
				continue
			} else if len(f.partners) == 2 {
				b.errors.Add(fmt.Errorf("Family %v has more than two partners", f.id))
				continue
			}
			f.roles[p.id] = l.refType
			f.partners = append(f.partners, p)
			p.partnerIn = append(p.partnerIn, f)
		}
	}

	for _, f := range b.families {
		for _, c := range f.children {
			if _, ok := f.roles[c.id]; ok {
				b.errors.Add(fmt.Errorf("Person %v is their own parent in family %v", c.id, f.id))
			}
		}
	}

	if b.errors.HasErrors() {
		return nil, &util.GraphError{Type: util.ErrInvalidData, Detail: b.errors.Error()}
	}

	// Sort families and compute adjacency

	for _, f := range b.families {
		sort.SliceStable(f.partners, func(i, j int) bool {
			return lessPerson(f.partners[i], f.partners[j])
		})
		sort.SliceStable(f.children, func(i, j int) bool {
			return lessPerson(f.children[i], f.children[j])
		})
	}

	for _, p := range b.people {
		var parents, siblings, spouses, children []*Person

		sortFamilies(p, p.childOf)
		sortFamilies(p, p.partnerIn)

		for _, f := range p.childOf {
			parents = append(parents, f.partners...)
		}

		for _, f := range p.partnerIn {
			if o := f.OtherPartner(p); o != nil {
				spouses = append(spouses, o)
			}
			children = append(children, f.children...)
		}

		// Siblings share at least one parent (full and half siblings)

		for _, parent := range parents {
			for _, f := range parent.partnerIn {
				for _, c := range f.children {
					if c != p {
						siblings = append(siblings, c)
					}
				}
			}
		}

		// Siblings from families without partners

		for _, f := range p.childOf {
			for _, c := range f.children {
				if c != p {
					siblings = append(siblings, c)
				}
			}
		}

		p.parents = sortPersons(parents)
		p.siblings = sortPersons(siblings)
		p.spouses = sortPersons(spouses)
		p.children = sortPersons(children)
	}

	g := newGraph(b.people, b.families)

	LogDebug(fmt.Sprintf("Built graph with %v persons and %v families",
		len(b.people), len(b.families)))

	return g, nil
}
