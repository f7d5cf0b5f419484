/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"bytes"
	"testing"
)

func TestGraphNode(t *testing.T) {
	gn := NewGraphNode()

	if res := gn.Key(); res != "" {
		t.Error("Unexpected key:", res)
		return
	}

	if res := gn.Attr("a"); res != nil {
		t.Error("Unexpected result:", res)
		return
	}

	gn.SetAttr(NodeKey, "I1")
	gn.SetAttr(NodeKind, KindPerson)
	gn.SetAttr(NodeName, "Mary Smith")
	gn.SetAttr(NodeSex, "F")

	if res := gn.Key(); res != "I1" {
		t.Error("Unexpected key:", res)
		return
	}

	if res := gn.Kind(); res != "person" {
		t.Error("Unexpected kind:", res)
		return
	}

	if res := gn.Name(); res != "Mary Smith" {
		t.Error("Unexpected name:", res)
		return
	}

	gn.SetAttr("buf", bytes.NewBuffer([]byte("abba")))

	if res := gn.(*graphNode).stringAttr("buf"); res != "abba" {
		t.Error("Unexpected attr:", res)
		return
	}

	// Numeric keys from a JSON decoder are still usable

	gn2 := NewGraphNodeFromMap(map[string]interface{}{
		NodeKey:  float64(12),
		NodeKind: KindFamily,
	})

	if res := gn2.Key(); res != "12" {
		t.Error("Unexpected key:", res)
		return
	}

	gn.SetAttr("buf", nil)

	if res := gn.String(); res != `GraphNode:
     key : I1
    kind : person
    name : Mary Smith
     sex : F
` {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestGraphEdge(t *testing.T) {
	ge := NewGraphEdge()

	ge.SetAttr(NodeKey, "E1")
	ge.SetAttr(NodeKind, KindChild)

	ge.SetAttr(EdgeEnd1Key, "I1")
	ge.SetAttr(EdgeEnd1Kind, KindPerson)
	ge.SetAttr(EdgeEnd1Role, RoleChild)

	ge.SetAttr(EdgeEnd2Key, "F1")
	ge.SetAttr(EdgeEnd2Kind, KindFamily)
	ge.SetAttr(EdgeEnd2Role, RoleFamily)

	if ge.End1Key() != "I1" || ge.End1Kind() != "person" || ge.End1Role() != "child" {
		t.Error("Unexpected result")
		return
	}

	if ge.End2Key() != "F1" || ge.End2Kind() != "family" || ge.End2Role() != "family" {
		t.Error("Unexpected result")
		return
	}

	if res := ge.Spec("I1"); res != "child:child:family:family" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ge.Spec("F1"); res != "family:child:child:person" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ge.Spec("X"); res != "" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ge.EndKeyByRole(RoleFamily); res != "F1" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ge.EndKeyByRole(RoleChild); res != "I1" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ge.EndKeyByRole(RolePartner); res != "" {
		t.Error("Unexpected result:", res)
		return
	}

	if NewGraphEdgeFromNode(nil) != nil {
		t.Error("Unexpected result")
		return
	}

	ge2 := NewGraphEdgeFromNode(NewGraphNodeFromMap(ge.Data()))

	if ge2.End1Key() != "I1" {
		t.Error("Unexpected result")
		return
	}
}
