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

	"github.com/krotik/common/datautil"
	"github.com/krotik/kinship/config"
	"github.com/krotik/kinship/graph"
	"github.com/krotik/kinship/graph/util"
)

/*
Engine computes relationships over a person graph.
*/
type Engine struct {
	g        *graph.Graph
	explorer *Explorer
	cache    *datautil.MapCache // Cache for point-to-point relationships
}

/*
Relationship is the classified relationship between two persons.
*/
type Relationship struct {
	RootID         string
	TargetID       string
	Path           Path
	Classification Classification
}

/*
Tree holds all relationships of a root person in presentation order.
*/
type Tree struct {
	RootID  string
	Groups  []*Group
	Index   map[string]int // Presentation index per target person
	Summary Summary
}

/*
NewEngine creates a new engine for a given graph. The relationship cache is
configured by RelationshipCacheMaxSize and RelationshipCacheMaxAgeSeconds.
*/
func NewEngine(g *graph.Graph) *Engine {
	return &Engine{g, NewExplorer(g), datautil.NewMapCache(
		uint64(config.Int(config.RelationshipCacheMaxSize)),
		config.Int(config.RelationshipCacheMaxAgeSeconds))}
}

/*
Graph returns the graph of this engine.
*/
func (e *Engine) Graph() *graph.Graph {
	return e.g
}

/*
Explore runs an exploration with explicit options.
*/
func (e *Engine) Explore(rootID string, opts Options) (*Result, error) {
	return e.explorer.Explore(rootID, opts)
}

/*
Relationships computes the relationship sets of all persons reachable from
a root person using the configured merge policy (MergePolicy).
*/
func (e *Engine) Relationships(rootID string) (*Result, error) {
	policy, err := ParsePolicy(config.Str(config.MergePolicy))
	if err != nil {
		return nil, err
	}

	return e.explorer.Explore(rootID, Options{Policy: policy})
}

/*
Between computes the closest relationship between two persons. Blood
relationships are preferred over in-law relationships. Results are cached
and each call returns its own copy.
*/
func (e *Engine) Between(rootID string, targetID string) (*Relationship, error) {
	key := fmt.Sprintf("%v\x00%v", rootID, targetID)

	if rel, ok := e.cache.Get(key); ok {
		r := *rel.(*Relationship)
		return &r, nil
	}

	target, err := e.g.Person(targetID)
	if err != nil {
		return nil, err
	}

	res, err := e.explorer.Explore(rootID, Options{
		Policy:   ClosestSkippingSpouseWhenExistsAnyNonSpouse,
		TargetID: targetID,
	})
	if err != nil {
		return nil, err
	}

	set, ok := res.Set(target.ID())
	if !ok || set.Len() == 0 {
		return nil, &util.GraphError{Type: util.ErrNoRelationship,
			Detail: fmt.Sprintf("%v -> %v", rootID, targetID)}
	}

	rel := &Relationship{rootID, targetID, set.First(), Classify(set.First(), e.g)}

	e.cache.Put(key, rel)

	r := *rel
	return &r, nil
}

/*
Tree computes all relationships of a root person in presentation order
together with a summary. The root person itself is not part of the tree.
*/
func (e *Engine) Tree(rootID string) (*Tree, error) {
	res, err := e.Relationships(rootID)
	if err != nil {
		return nil, err
	}

	var sets []*RelationshipSet

	for _, s := range res.Sets() {
		if s.TargetID() != rootID {
			sets = append(sets, s)
		}
	}

	groups, index := Order(sets)

	return &Tree{rootID, groups, index, Summarize(rootID, sets)}, nil
}

/*
Describe returns an English description of a path to a given target person.
*/
func (e *Engine) Describe(targetID string, p Path) string {
	sex := graph.SexUnknown
	if target, err := e.g.Person(targetID); err == nil {
		sex = target.Sex()
	}
	return Classify(p, e.g).Describe(sex)
}
