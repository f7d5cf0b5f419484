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
	"sort"

	"github.com/krotik/kinship/graph/util"
)

/*
Graph is an immutable graph of persons and families.
*/
type Graph struct {
	people   map[string]*Person
	families map[string]*Family
	order    []*Person // All persons ordered by id
}

/*
newGraph creates a new graph from resolved persons and families.
*/
func newGraph(people map[string]*Person, families map[string]*Family) *Graph {
	order := make([]*Person, 0, len(people))
	for _, p := range people {
		order = append(order, p)
	}

	sort.Slice(order, func(i, j int) bool {
		return order[i].id < order[j].id
	})

	return &Graph{people, families, order}
}

/*
Size returns the number of persons in this graph.
*/
func (g *Graph) Size() int {
	return len(g.order)
}

/*
Person looks up a person by id.
*/
func (g *Graph) Person(id string) (*Person, error) {
	if p, ok := g.people[id]; ok {
		return p, nil
	}
	return nil, &util.GraphError{Type: util.ErrNotFound, Detail: id}
}

/*
Family looks up a family by id.
*/
func (g *Graph) Family(id string) (*Family, error) {
	if f, ok := g.families[id]; ok {
		return f, nil
	}
	return nil, &util.GraphError{Type: util.ErrNotFound, Detail: "family " + id}
}

/*
Persons returns all persons of this graph ordered by id.
*/
func (g *Graph) Persons() []*Person {
	return append([]*Person(nil), g.order...)
}

/*
Parents returns the parents of a person.
*/
func (g *Graph) Parents(p *Person) []*Person {
	return append([]*Person(nil), p.parents...)
}

/*
ParentLinks returns the parents of a person together with the type of the
child link. A parent appears more than once if the person is linked to them
through more than one family (e.g. born and later adopted).
*/
func (g *Graph) ParentLinks(p *Person) []ParentLink {
	var res []ParentLink

	for _, f := range p.childOf {
		t := f.ChildType(p)
		for _, parent := range f.partners {
			res = append(res, ParentLink{parent, t})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Parent != res[j].Parent {
			return lessPerson(res[i].Parent, res[j].Parent)
		}
		return res[i].Type < res[j].Type
	})

	return res
}

/*
Siblings returns the full and half siblings of a person.
*/
func (g *Graph) Siblings(p *Person) []*Person {
	return append([]*Person(nil), p.siblings...)
}

/*
Spouses returns the spouses of a person.
*/
func (g *Graph) Spouses(p *Person) []*Person {
	return append([]*Person(nil), p.spouses...)
}

/*
Children returns the children of a person.
*/
func (g *Graph) Children(p *Person) []*Person {
	return append([]*Person(nil), p.children...)
}

/*
Families returns the families in which a person is a partner.
*/
func (g *Graph) Families(p *Person) []*Family {
	return append([]*Family(nil), p.partnerIn...)
}

/*
ParentFamilies returns the families in which a person is a child.
*/
func (g *Graph) ParentFamilies(p *Person) []*Family {
	return append([]*Family(nil), p.childOf...)
}
