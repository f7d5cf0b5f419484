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

	"github.com/krotik/kinship/graph"
)

/*
Classification is the semantic category of a relationship path.
*/
type Classification struct {
	Type       graph.ReferenceType // SELF, SPOUSE, PARENT, CHILD, SIBLING, COUSIN, PIBLING or NIBLING
	Generation int                 // Generation difference (never negative)
	Grade      int                 // Degree of the relationship within its generation band
	IsInLaw    bool
	IsHalf     bool
	Adoption   Adoption
	RelatedSex graph.Sex // Sex of the blood relative of an in-law relationship
}

/*
Classify maps a path into a classification. The graph is used to resolve
the sex of the blood relative of an in-law path. The sex stays unknown if
the path has not exactly one related person.
*/
func Classify(p Path, g *graph.Graph) Classification {
	c := Classification{
		IsInLaw:    p.inLaw,
		IsHalf:     p.half,
		Adoption:   p.adoption,
		RelatedSex: graph.SexUnknown,
	}

	switch {
	case p.d1 > p.d2:
		c.Generation = p.d1 - p.d2
		c.Grade = p.d2
		c.Type = graph.RefPibling
		if c.Grade == 0 {
			c.Type = graph.RefParent
		}

	case p.d1 == p.d2:
		c.Generation = 0
		c.Grade = p.d1 - 1
		if c.Grade < 0 {
			c.Type = graph.RefSelf
			if p.inLaw {
				c.Type = graph.RefSpouse
			}
		} else if c.Grade == 0 {
			c.Type = graph.RefSibling
		} else {
			c.Type = graph.RefCousin
		}

	default:
		c.Generation = p.d2 - p.d1
		c.Grade = p.d1
		c.Type = graph.RefNibling
		if c.Grade == 0 {
			c.Type = graph.RefChild
		}
	}

	if p.inLaw && len(p.related) == 1 && g != nil {
		if related, err := g.Person(p.related[0]); err == nil {
			c.RelatedSex = related.Sex()
		}
	}

	return c
}

/*
Path derives the path geometry of this classification. Related person ids
and tree sides cannot be derived.
*/
func (c Classification) Path() Path {
	p := Path{inLaw: c.IsInLaw, half: c.IsHalf, adoption: c.Adoption}

	switch c.Type {
	case graph.RefParent, graph.RefPibling:
		p.d1 = c.Generation + c.Grade
		p.d2 = c.Grade

	case graph.RefChild, graph.RefNibling:
		p.d1 = c.Grade
		p.d2 = c.Generation + c.Grade

	case graph.RefSibling, graph.RefCousin:
		p.d1 = c.Grade + 1
		p.d2 = c.Grade + 1

	case graph.RefSpouse:
		p.inLaw = true
	}

	return p
}

/*
String returns a string representation of this classification.
*/
func (c Classification) String() string {
	res := fmt.Sprintf("%v(generation:%v grade:%v", c.Type, c.Generation, c.Grade)
	if c.IsInLaw {
		res += " in-law"
	}
	if c.IsHalf {
		res += " half"
	}
	if c.Adoption != AdoptionNone {
		res += " " + c.Adoption.String()
	}
	return res + ")"
}

// English descriptions
// ====================

/*
Describe returns an English description of this classification. The sex is
the sex of the target person.
*/
func (c Classification) Describe(sex graph.Sex) string {
	var res string

	if c.IsInLaw && c.Type != graph.RefSpouse {
		res = c.describeInLaw(sex)
	} else {
		res = bloodNoun(c.Type, c.Generation, c.Grade, sex)
		if c.IsHalf {
			res = "half-" + res
		}
	}

	if c.Adoption != AdoptionNone {
		res = fmt.Sprintf("%v (%v)", res, c.Adoption)
	}

	return res
}

/*
describeInLaw describes the spouse of a blood relative.
*/
func (c Classification) describeInLaw(sex graph.Sex) string {
	switch {
	case c.Type == graph.RefParent && c.Generation == 1:
		return "step-" + bloodNoun(c.Type, c.Generation, c.Grade, sex)

	case c.Type == graph.RefSibling && !c.IsHalf:
		return bloodNoun(c.Type, c.Generation, c.Grade, sex) + "-in-law"

	case c.Type == graph.RefChild && c.Generation == 1:
		return bloodNoun(c.Type, c.Generation, c.Grade, sex) + "-in-law"
	}

	relative := bloodNoun(c.Type, c.Generation, c.Grade, c.RelatedSex)
	if c.IsHalf {
		relative = "half-" + relative
	}

	return fmt.Sprintf("%v of %v", gendered(sex, "husband", "wife", "spouse"), relative)
}

/*
bloodNoun returns the English noun of a relationship.
*/
func bloodNoun(t graph.ReferenceType, generation int, grade int, sex graph.Sex) string {
	switch t {
	case graph.RefSelf:
		return "self"

	case graph.RefSpouse:
		return gendered(sex, "husband", "wife", "spouse")

	case graph.RefSibling:
		return gendered(sex, "brother", "sister", "sibling")

	case graph.RefParent:
		return greatPrefix(generation, true) + gendered(sex, "father", "mother", "parent")

	case graph.RefChild:
		return greatPrefix(generation, true) + gendered(sex, "son", "daughter", "child")

	case graph.RefPibling:
		if grade > 1 {
			return removedCousin(grade-1, generation)
		}
		return greatPrefix(generation, false) + gendered(sex, "uncle", "aunt", "pibling")

	case graph.RefNibling:
		if grade > 1 {
			return removedCousin(grade-1, generation)
		}
		return greatPrefix(generation, false) + gendered(sex, "nephew", "niece", "nibling")

	case graph.RefCousin:
		return removedCousin(grade, generation)
	}

	return "relative"
}

/*
greatPrefix returns the grand / great prefix of a generation.
*/
func greatPrefix(generation int, withGrand bool) string {
	greats := generation - 1
	suffix := ""

	if withGrand {
		if generation < 2 {
			return ""
		}
		greats = generation - 2
		suffix = "grand"
	}

	switch {
	case greats <= 0:
		return suffix
	case greats == 1:
		return "great-" + suffix
	}

	return fmt.Sprintf("%v great-%v", Ordinal(greats), suffix)
}

/*
removedCousin describes a cousin of a given degree which is a number of
generations removed.
*/
func removedCousin(degree int, removed int) string {
	res := Ordinal(degree) + " cousin"

	switch removed {
	case 0:
		return res
	case 1:
		return res + " once removed"
	case 2:
		return res + " twice removed"
	}

	return fmt.Sprintf("%v %v times removed", res, removed)
}

/*
gendered picks a word by sex.
*/
func gendered(sex graph.Sex, male string, female string, neutral string) string {
	switch sex {
	case graph.SexMale:
		return male
	case graph.SexFemale:
		return female
	}
	return neutral
}
