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

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/krotik/common/sortutil"
	"github.com/krotik/kinship/config"
	"github.com/krotik/kinship/graph"
)

/*
Options control an exploration.
*/
type Options struct {
	Policy     Policy // Merge policy for candidate paths
	MaxDepth   int    // Maximum number of blood steps (config MaxTraversalDepth if not set)
	OnlyAscend bool   // Only explore ancestors
	TargetID   string // Stop once the relationship to this person is settled
}

/*
Explorer walks a person graph from a root person.
*/
type Explorer struct {
	g *graph.Graph
}

/*
NewExplorer creates a new explorer for a given graph.
*/
func NewExplorer(g *graph.Graph) *Explorer {
	return &Explorer{g}
}

/*
Result is the outcome of an exploration. It holds one relationship set per
reached person in discovery order.
*/
type Result struct {
	RootID string
	sets   *linkedhashmap.Map
}

/*
Set returns the relationship set of a given person.
*/
func (r *Result) Set(id string) (*RelationshipSet, bool) {
	if s, ok := r.sets.Get(id); ok {
		return s.(*RelationshipSet), true
	}
	return nil, false
}

/*
Sets returns all relationship sets in discovery order.
*/
func (r *Result) Sets() []*RelationshipSet {
	res := make([]*RelationshipSet, 0, r.sets.Size())
	for _, s := range r.sets.Values() {
		res = append(res, s.(*RelationshipSet))
	}
	return res
}

/*
Size returns the number of reached persons including the root person.
*/
func (r *Result) Size() int {
	return r.sets.Size()
}

/*
frontierItem is a candidate path which waits to be merged.
*/
type frontierItem struct {
	person *graph.Person // Person reached by the path
	prev   *graph.Person // Person from which the step was taken
	dir    Direction     // Direction of the step
	path   Path          // Candidate path
}

/*
relative is a possible next step from a person.
*/
type relative struct {
	person   *graph.Person
	dir      Direction
	half     bool
	adoption Adoption
	sides    TreeSide
	related  []string
}

/*
Explore computes the relationship sets of all persons reachable from a
root person. Candidates are served in order of their total distance so the
closest paths are always merged first. Only retained candidates are
explored further.
*/
func (e *Explorer) Explore(rootID string, opts Options) (*Result, error) {

	root, err := e.g.Person(rootID)
	if err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = int(config.Int(config.MaxTraversalDepth))
	}

	res := &Result{rootID, linkedhashmap.New()}

	frontier := sortutil.NewPriorityQueue()
	frontier.Push(&frontierItem{root, nil, Ascend, SelfPath()}, 0)

	truncated := 0

	for frontier.Size() > 0 {

		if opts.TargetID != "" && e.isSettled(res, opts, frontier.CurrentPriority()) {
			LogDebug(fmt.Sprintf("Relationship %v -> %v settled at distance %v",
				rootID, opts.TargetID, frontier.CurrentPriority()))
			break
		}

		item := frontier.Pop().(*frontierItem)

		set, ok := res.Set(item.person.ID())
		if !ok {
			set = NewRelationshipSet(item.person.ID(), res.sets.Size())
			res.sets.Put(item.person.ID(), set)
		}

		via := ""
		if item.prev != nil {
			via = item.prev.ID()
		}

		if !set.merge(item.path, opts.Policy, via) {
			continue
		}

		if item.path.Distance() >= maxDepth {
			truncated++
			LogDebug(fmt.Sprintf("Traversal depth %v reached at %v - truncating branch",
				maxDepth, item.person.ID()))
			continue
		}

		for _, rel := range e.relatives(item, opts.OnlyAscend) {
			next, err := item.path.Advance(rel.dir, rel.half, rel.adoption, rel.sides, rel.related)
			if err != nil {
				return nil, err
			}

			frontier.Push(&frontierItem{rel.person, item.person, rel.dir, next},
				next.TotalDistance())
		}
	}

	propagateSides(res)

	LogDebug(fmt.Sprintf("Explored %v persons from %v (policy: %v truncated: %v)",
		res.Size(), rootID, opts.Policy, truncated))

	return res, nil
}

/*
isSettled checks if the relationship to the target person cannot improve
anymore. Candidates which are still waiting are all further away than the
retained blood path.
*/
func (e *Explorer) isSettled(res *Result, opts Options, nextDistance int) bool {
	if opts.Policy == SkipSpouseWhenExistsNonSpouseOf {
		return false
	}

	set, ok := res.Set(opts.TargetID)
	if !ok {
		return false
	}

	blood, ok := set.FirstNonSpousal()

	return ok && nextDistance > blood.TotalDistance()
}

/*
relatives returns the next steps from a frontier item.

Arriving at a person by ascending (or at the root) continues to parents,
spouses and children. Arriving by descending continues to spouses and
children. Arriving by a lateral step ends the path. The person the step was
taken from is never a next step.
*/
func (e *Explorer) relatives(item *frontierItem, onlyAscend bool) []relative {
	var res []relative

	if item.dir == Lateral {
		return nil
	}

	p := item.person
	atRoot := item.prev == nil
	single := []string{p.ID()}

	sides := func(s TreeSide) TreeSide {
		if atRoot {
			return s
		}
		return 0
	}

	if item.dir == Ascend {
		for _, link := range e.g.ParentLinks(p) {
			res = append(res, relative{link.Parent, Ascend, false,
				AdoptionOf(link.Type), sides(parentSide(link.Parent)), single})
		}
	}

	if !onlyAscend {
		families := e.g.Families(p)

		// Other parents of the child we came from

		var prevParents []string

		if item.dir == Ascend && !atRoot && len(families) > 0 {
			prevParents = []string{}
			for _, f := range families {
				if f.HasChild(item.prev) {
					prevParents = append(prevParents, otherPartnerID(f, p))
				}
			}
		}

		for _, spouse := range e.g.Spouses(p) {
			res = append(res, relative{spouse, Lateral, false,
				AdoptionNone, sides(SideSpouse), single})
		}

		for _, f := range families {
			other := otherPartnerID(f, p)

			related := single
			if other != "" {
				related = []string{p.ID(), other}
				sort.Strings(related)
			}

			half := prevParents != nil && !containsString(prevParents, other)

			for _, c := range f.Children() {
				res = append(res, relative{c, Descend, half,
					AdoptionOf(f.ChildType(c)), sides(SideDescendant), related})
			}
		}
	}

	if !atRoot {
		filtered := res[:0]
		for _, rel := range res {
			if rel.person != item.prev {
				filtered = append(filtered, rel)
			}
		}
		res = filtered
	}

	return res
}

/*
propagateSides spreads the tree sides of each person to all persons which
were reached from it until nothing changes anymore.
*/
func propagateSides(res *Result) {
	sets := res.Sets()

	for changed := true; changed; {
		changed = false

		for _, s := range sets {
			for _, v := range s.via {
				if vs, ok := res.Set(v); ok {
					if ns := s.sides | vs.sides; ns != s.sides {
						s.sides = ns
						changed = true
					}
				}
			}
		}
	}

	for _, s := range sets {
		s.propagateSides()
	}
}

/*
otherPartnerID returns the id of the other partner of a family or an empty
string.
*/
func otherPartnerID(f *graph.Family, p *graph.Person) string {
	if o := f.OtherPartner(p); o != nil {
		return o.ID()
	}
	return ""
}

/*
containsString checks if a list contains a given string.
*/
func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
