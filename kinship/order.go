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
	"sort"
)

/*
Group is the presentation entry of one target person. The primary path is
the best describing path; secondary paths follow it.
*/
type Group struct {
	Index     int    // Sequential presentation index starting at 1
	TargetID  string // Target person
	Primary   Path
	Secondary []Path
}

/*
Order produces one group per relationship set. Within a group blood paths
come before in-law paths. Groups are sorted by their primary path and then
by discovery order. The returned map holds the presentation index of each
target person. Empty sets are skipped.
*/
func Order(sets []*RelationshipSet) ([]*Group, map[string]int) {
	type entry struct {
		group *Group
		seq   int
	}

	entries := make([]entry, 0, len(sets))

	for _, s := range sets {
		if s.Len() == 0 {
			continue
		}

		paths := s.Paths()

		sort.SliceStable(paths, func(i, j int) bool {
			if paths[i].inLaw != paths[j].inLaw {
				return !paths[i].inLaw
			}
			return Compare(paths[i], paths[j]) < 0
		})

		entries = append(entries, entry{&Group{
			TargetID:  s.TargetID(),
			Primary:   paths[0],
			Secondary: paths[1:],
		}, s.Sequence()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := Compare(entries[i].group.Primary, entries[j].group.Primary); c != 0 {
			return c < 0
		}
		return entries[i].seq < entries[j].seq
	})

	groups := make([]*Group, len(entries))
	index := make(map[string]int, len(entries))

	for i, e := range entries {
		e.group.Index = i + 1
		groups[i] = e.group
		index[e.group.TargetID] = e.group.Index
	}

	return groups, index
}
