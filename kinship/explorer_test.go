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
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/krotik/kinship/config"
	"github.com/krotik/kinship/graph"
	"github.com/krotik/kinship/graph/util"
)

/*
buildFamilyGraph builds the test family:

	GP + GM (F0)  -> B, U
	B  + X  (F1)  -> A, C
	B  + Y  (F2)  -> D
	B  + F  (F4)
	A  + E  (F3)  -> K
	U  + V  (F5)  -> Q
	L                (not related)
*/
func buildFamilyGraph(t *testing.T) *graph.Graph {
	m, f := graph.SexMale, graph.SexFemale

	g, err := graph.NewBuilder().
		AddPerson("GP", "Grandpa", m, "1900").
		AddPerson("GM", "Grandma", f, "1902").
		AddPerson("B", "Bob", m, "1925").
		AddPerson("U", "Ursula", f, "1928").
		AddPerson("V", "Victor", m, "1926").
		AddPerson("X", "Xena", f, "1927").
		AddPerson("Y", "Yvonne", f, "1930").
		AddPerson("F", "Frida", f, "1940").
		AddPerson("A", "Anna", f, "1950").
		AddPerson("C", "Carl", m, "1952").
		AddPerson("D", "Dora", f, "1960").
		AddPerson("E", "Emil", m, "1949").
		AddPerson("K", "Kurt", m, "1975").
		AddPerson("Q", "Quentin", m, "1955").
		AddPerson("L", "Lonely", m, "").
		AddFamily("F0", "1924", false).
		AddFamily("F1", "1948", true).
		AddFamily("F2", "1958", true).
		AddFamily("F4", "1970", false).
		AddFamily("F3", "1974", false).
		AddFamily("F5", "1950", false).
		AddPartner("F0", "GP", graph.RefHusb).
		AddPartner("F0", "GM", graph.RefWife).
		AddPartner("F1", "B", graph.RefHusb).
		AddPartner("F1", "X", graph.RefWife).
		AddPartner("F2", "B", graph.RefHusb).
		AddPartner("F2", "Y", graph.RefWife).
		AddPartner("F4", "B", graph.RefHusb).
		AddPartner("F4", "F", graph.RefWife).
		AddPartner("F3", "A", graph.RefWife).
		AddPartner("F3", "E", graph.RefHusb).
		AddPartner("F5", "U", graph.RefWife).
		AddPartner("F5", "V", graph.RefHusb).
		AddChild("F0", "B", graph.RefChild).
		AddChild("F0", "U", graph.RefChild).
		AddChild("F1", "A", graph.RefChild).
		AddChild("F1", "C", graph.RefChild).
		AddChild("F2", "D", graph.RefChild).
		AddChild("F3", "K", graph.RefChild).
		AddChild("F5", "Q", graph.RefChild).
		Build()

	if err != nil {
		t.Fatal(err)
	}

	return g
}

/*
describeSet returns the classification of the first path of a set.
*/
func describeSet(res *Result, id string) string {
	s, ok := res.Set(id)
	if !ok {
		return "<none>"
	}
	return Classify(s.First(), nil).String()
}

func TestExploreFamily(t *testing.T) {
	g := buildFamilyGraph(t)
	config.LoadDefaultConfig()

	res, err := NewExplorer(g).Explore("A", Options{Policy: SkipAllSpouseWhenExistsAnyNonSpouse})
	if err != nil {
		t.Error(err)
		return
	}

	if res.Size() != 14 || res.RootID != "A" {
		t.Error("Unexpected result:", res.Size())
		return
	}

	for id, expected := range map[string]string{
		"A":  "SELF(generation:0 grade:-1)",
		"B":  "PARENT(generation:1 grade:0)",
		"X":  "PARENT(generation:1 grade:0)",
		"C":  "SIBLING(generation:0 grade:0)",
		"D":  "SIBLING(generation:0 grade:0 half)",
		"E":  "SPOUSE(generation:0 grade:-1 in-law)",
		"F":  "PARENT(generation:1 grade:0 in-law)",
		"Y":  "PARENT(generation:1 grade:0 in-law)",
		"GP": "PARENT(generation:2 grade:0)",
		"U":  "PIBLING(generation:1 grade:1)",
		"V":  "PIBLING(generation:1 grade:1 in-law)",
		"Q":  "COUSIN(generation:0 grade:1)",
		"K":  "CHILD(generation:1 grade:0)",
		"L":  "<none>",
	} {
		if res := describeSet(res, id); res != expected {
			t.Error("Unexpected result for", id, ":", res, "expected:", expected)
			return
		}
	}

	// The mother is never reported through her husband

	if s, _ := res.Set("X"); s.Len() != 1 || s.ContainsDirect() != true {
		t.Error("Unexpected result:", s)
		return
	}

	// Full siblings are reached through both parents

	if s, _ := res.Set("C"); s.String() != "C: (1,1 via B,X)" || s.TreeSides() != SideFather|SideMother {
		t.Error("Unexpected result:", s, s.TreeSides())
		return
	}

	for id, expected := range map[string]TreeSide{
		"B":  SideFather,
		"X":  SideMother,
		"D":  SideFather,
		"GM": SideFather,
		"U":  SideFather,
		"Q":  SideFather,
		"V":  SideFather,
		"E":  SideSpouse,
		"K":  SideDescendant,
		"F":  SideFather,
	} {
		s, _ := res.Set(id)
		if res := s.First().TreeSides(); res != expected {
			t.Error("Unexpected tree sides for", id, ":", res)
			return
		}
	}

	// Discovery order

	var order []string
	for _, s := range res.Sets() {
		order = append(order, s.TargetID())
	}

	if res := strings.Join(order, " "); res != "A B X E K GP GM Y F C D U V Q" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestExploreStepParentAndRelatedSex(t *testing.T) {
	g := buildFamilyGraph(t)

	res, err := NewExplorer(g).Explore("A", Options{Policy: SkipSpouseWhenExistsNonSpouseOf})
	if err != nil {
		t.Error(err)
		return
	}

	// The step-mother is the in-law of the father

	s, _ := res.Set("F")
	c := Classify(s.First(), g)

	if c.Type != graph.RefParent || !c.IsInLaw || c.RelatedSex != graph.SexMale {
		t.Error("Unexpected result:", c)
		return
	}

	if res := c.Describe(graph.SexFemale); res != "step-mother" {
		t.Error("Unexpected result:", res)
		return
	}

	// The mother as wife of the father is dropped since she is a blood relative

	if s, _ := res.Set("X"); s.String() != "X: (1,0 via A)" {
		t.Error("Unexpected result:", s)
		return
	}
}

func TestExploreNotFoundAndOptions(t *testing.T) {
	g := buildFamilyGraph(t)
	e := NewExplorer(g)

	if _, err := e.Explore("nobody", Options{}); !util.IsType(err, util.ErrNotFound) {
		t.Error("Unexpected result:", err)
		return
	}

	// Only ancestors

	res, err := e.Explore("A", Options{Policy: SkipAllSpouseWhenExistsAnyNonSpouse, OnlyAscend: true})
	if err != nil {
		t.Error(err)
		return
	}

	var ids []string
	for _, s := range res.Sets() {
		ids = append(ids, s.TargetID())
	}

	if res := strings.Join(ids, " "); res != "A B X GP GM" {
		t.Error("Unexpected result:", res)
		return
	}

	// Depth cap truncates branches

	res, err = e.Explore("K", Options{Policy: SkipAllSpouseWhenExistsAnyNonSpouse, MaxDepth: 1})
	if err != nil {
		t.Error(err)
		return
	}

	if _, ok := res.Set("B"); ok {
		t.Error("Grandparent should not be reached")
		return
	}

	if res := describeSet(res, "A"); res != "PARENT(generation:1 grade:0)" {
		t.Error("Unexpected result:", res)
		return
	}

	// Depth from config

	config.LoadDefaultConfig()
	config.Config[config.MaxTraversalDepth] = "2"
	defer config.LoadDefaultConfig()

	res, err = e.Explore("K", Options{Policy: SkipAllSpouseWhenExistsAnyNonSpouse})
	if err != nil {
		t.Error(err)
		return
	}

	if _, ok := res.Set("GP"); ok {
		t.Error("Great-grandparent should not be reached")
		return
	}

	if _, ok := res.Set("C"); ok {
		t.Error("Uncle should not be reached")
		return
	}

	if res := describeSet(res, "X"); res != "PARENT(generation:2 grade:0)" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestExploreSymmetry(t *testing.T) {
	g := buildFamilyGraph(t)
	e := NewExplorer(g)

	pairs := [][2]string{{"A", "K"}, {"GP", "A"}, {"C", "K"}, {"A", "Q"}, {"A", "D"}}

	for _, pair := range pairs {
		r1, _ := e.Explore(pair[0], Options{Policy: ClosestSkippingSpouseWhenExistsAnyNonSpouse})
		r2, _ := e.Explore(pair[1], Options{Policy: ClosestSkippingSpouseWhenExistsAnyNonSpouse})

		s1, _ := r1.Set(pair[1])
		s2, _ := r2.Set(pair[0])

		c1 := Classify(s1.First(), g)
		c2 := Classify(s2.First(), g)

		if c1.Generation != c2.Generation || c1.Grade != c2.Grade || c1.IsHalf != c2.IsHalf {
			t.Error("Relationship is not symmetric:", pair, c1, c2)
			return
		}

		p1, p2 := s1.First(), s2.First()

		if p1.DistanceToAncestorRoot() != p2.DistanceToAncestorTarget() ||
			p1.DistanceToAncestorTarget() != p2.DistanceToAncestorRoot() {
			t.Error("Paths are not mirrored:", pair, p1, p2)
			return
		}

		mirror := map[graph.ReferenceType]graph.ReferenceType{
			graph.RefParent:  graph.RefChild,
			graph.RefChild:   graph.RefParent,
			graph.RefPibling: graph.RefNibling,
			graph.RefNibling: graph.RefPibling,
			graph.RefSibling: graph.RefSibling,
			graph.RefCousin:  graph.RefCousin,
		}

		if mirror[c1.Type] != c2.Type {
			t.Error("Types are not mirrored:", pair, c1, c2)
			return
		}
	}
}

func TestExploreDoubleRelationship(t *testing.T) {
	m, f := graph.SexMale, graph.SexFemale

	// R and T are 1st cousins through their fathers and 2nd cousins
	// through their mothers

	g, err := graph.NewBuilder().
		AddPerson("G1", "", m, "").AddPerson("G2", "", f, "").
		AddPerson("H1", "", m, "").AddPerson("H2", "", f, "").
		AddPerson("P1", "", m, "").AddPerson("P2", "", m, "").
		AddPerson("S1", "", f, "").AddPerson("S2", "", f, "").
		AddPerson("M1", "", f, "").AddPerson("M2", "", f, "").
		AddPerson("R", "", m, "").AddPerson("T", "", f, "").
		AddFamily("FA", "", false).AddFamily("FH", "", false).
		AddFamily("FS1", "", false).AddFamily("FS2", "", false).
		AddFamily("FR", "", false).AddFamily("FT", "", false).
		AddPartner("FA", "G1", graph.RefHusb).AddPartner("FA", "G2", graph.RefWife).
		AddPartner("FH", "H1", graph.RefHusb).AddPartner("FH", "H2", graph.RefWife).
		AddPartner("FS1", "S1", graph.RefWife).AddPartner("FS2", "S2", graph.RefWife).
		AddPartner("FR", "P1", graph.RefHusb).AddPartner("FR", "M1", graph.RefWife).
		AddPartner("FT", "P2", graph.RefHusb).AddPartner("FT", "M2", graph.RefWife).
		AddChild("FA", "P1", graph.RefChild).AddChild("FA", "P2", graph.RefChild).
		AddChild("FH", "S1", graph.RefChild).AddChild("FH", "S2", graph.RefChild).
		AddChild("FS1", "M1", graph.RefChild).AddChild("FS2", "M2", graph.RefChild).
		AddChild("FR", "R", graph.RefChild).AddChild("FT", "T", graph.RefChild).
		Build()

	if err != nil {
		t.Error(err)
		return
	}

	e := NewExplorer(g)

	res, err := e.Explore("R", Options{Policy: SkipAllSpouseWhenExistsAnyNonSpouse})
	if err != nil {
		t.Error(err)
		return
	}

	if s, _ := res.Set("T"); s.String() != "T: (2,2 via M2,P2)" {
		t.Error("Unexpected result:", s)
		return
	}

	// The aunt by marriage is also a blood relative

	if s, _ := res.Set("M2"); s.String() != "M2: (3,2 via S2)" {
		t.Error("Unexpected result:", s)
		return
	}

	// The dropped 2nd cousin path still places T on the mother's side

	for _, id := range []string{"T", "M2"} {
		if s, _ := res.Set(id); s.TreeSides() != SideFather|SideMother ||
			s.First().TreeSides() != SideFather|SideMother {
			t.Error("Unexpected tree sides for", id, ":", s.TreeSides())
			return
		}
	}

	if s, _ := res.Set("P2"); s.TreeSides() != SideFather {
		t.Error("Unexpected result:", s.TreeSides())
		return
	}

	res, _ = e.Explore("R", Options{Policy: SkipSpouseWhenExistsNonSpouseOf})

	if s, _ := res.Set("T"); s.String() != "T: (2,2 via M2,P2) (3,3 via M2,P2)" {
		t.Error("Unexpected result:", s)
		return
	}

	res, _ = e.Explore("R", Options{Policy: ClosestKeepingCloserSpouse})

	if s, _ := res.Set("M2"); s.String() != "M2: (2,1 in-law via P2) (3,2 via S2)" {
		t.Error("Unexpected result:", s)
		return
	}

	if s, _ := res.Set("T"); s.String() != "T: (2,2 via M2,P2)" || s.TreeSides() != SideFather|SideMother {
		t.Error("Unexpected result:", s, s.TreeSides())
		return
	}
}

func TestExploreCycle(t *testing.T) {

	// P and Q are each other's parents (broken data)

	g, err := graph.NewBuilder().
		AddPerson("P", "", graph.SexMale, "").
		AddPerson("Q", "", graph.SexFemale, "").
		AddFamily("FP", "", false).
		AddFamily("FQ", "", false).
		AddPartner("FP", "P", graph.RefHusb).
		AddChild("FP", "Q", graph.RefChild).
		AddPartner("FQ", "Q", graph.RefWife).
		AddChild("FQ", "P", graph.RefChild).
		Build()

	if err != nil {
		t.Error(err)
		return
	}

	for p := SkipSpouseWhenExistsNonSpouseOf; p <= ClosestKeepingCloserSpouse; p++ {
		res, err := NewExplorer(g).Explore("P", Options{Policy: p, MaxDepth: 10})
		if err != nil {
			t.Error(err)
			return
		}

		if res.Size() != 2 || describeSet(res, "P") != "SELF(generation:0 grade:-1)" {
			t.Error("Unexpected result:", p, res.Sets())
			return
		}
	}
}

func TestExploreAdoption(t *testing.T) {
	g, err := graph.NewBuilder().
		AddPerson("Z", "", graph.SexFemale, "").
		AddPerson("W", "", graph.SexMale, "").
		AddPerson("O", "", graph.SexMale, "").
		AddFamily("F", "", false).
		AddPartner("F", "Z", graph.RefWife).
		AddChild("F", "W", graph.RefAdoptedChild).
		AddChild("F", "O", graph.RefChild).
		Build()

	if err != nil {
		t.Error(err)
		return
	}

	e := NewEngine(g)

	for _, test := range [][3]string{
		{"W", "Z", "mother (adoptive)"},
		{"Z", "W", "son (adoptive)"},
		{"O", "W", "brother (adoptive)"},
		{"O", "Z", "mother"},
	} {
		rel, err := e.Between(test[0], test[1])
		if err != nil {
			t.Error(err)
			return
		}

		if res := e.Describe(test[1], rel.Path); res != test[2] {
			t.Error("Unexpected result:", test, res)
			return
		}
	}
}

func TestExploreLogging(t *testing.T) {
	g := buildFamilyGraph(t)

	var buf bytes.Buffer

	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	// Debug messages are discarded by default

	if _, err := NewExplorer(g).Explore("K", Options{MaxDepth: 1}); err != nil {
		t.Error(err)
		return
	}

	if buf.Len() != 0 {
		t.Error("Unexpected log output:", buf.String())
		return
	}

	var msgs []string

	LogDebug = func(v ...interface{}) {
		msgs = append(msgs, fmt.Sprint(v...))
	}
	defer func() {
		LogDebug = LogNull
	}()

	if _, err := NewExplorer(g).Explore("K", Options{MaxDepth: 1}); err != nil {
		t.Error(err)
		return
	}

	if res := strings.Join(msgs, "\n"); !strings.Contains(res,
		"Traversal depth 1 reached at A - truncating branch") ||
		!strings.Contains(res, "Explored 3 persons from K (policy: skip-spouse-when-exists-non-spouse-of truncated: 2)") {
		t.Error("Unexpected result:", res)
		return
	}

	if buf.Len() != 0 {
		t.Error("Unexpected log output:", buf.String())
		return
	}
}
